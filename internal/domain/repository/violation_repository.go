package repository

import (
	"context"
	"time"

	"bantay/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for violation persistence.
var (
	// ErrViolationNotFound is returned when a violation is not found.
	ErrViolationNotFound = errors.New("violation not found")
	// ErrInspectionReference is returned when a violation references an
	// inspection that does not exist.
	ErrInspectionReference = errors.New("referenced inspection does not exist")
)

// ViolationRepository defines the interface for violation database operations.
type ViolationRepository interface {
	// Create persists a new violation under an inspection. A dangling
	// inspection reference yields ErrInspectionReference.
	Create(ctx context.Context, violation *entity.Violation) error

	// FindByID retrieves a violation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Violation, error)

	// FindByInspection retrieves all violations recorded under an inspection,
	// in creation order.
	FindByInspection(ctx context.Context, inspectionID uuid.UUID) ([]*entity.Violation, error)

	// Resolve marks a violation resolved, setting the flag, notes and date
	// together, and returns the updated record.
	Resolve(ctx context.Context, id uuid.UUID, notes string, resolvedAt time.Time) (*entity.Violation, error)
}
