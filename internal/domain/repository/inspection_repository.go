package repository

import (
	"context"
	"time"

	"bantay/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for inspection persistence.
var (
	// ErrInspectionNotFound is returned when an inspection is not found.
	ErrInspectionNotFound = errors.New("inspection not found")
	// ErrTindahanReference is returned when an inspection references a
	// tindahan that does not exist.
	ErrTindahanReference = errors.New("referenced tindahan does not exist")
)

// InspectionChanges is an explicit change-set for partial inspection updates.
type InspectionChanges struct {
	InspectionType *entity.InspectionType
	InspectorName  *string
	InspectionDate *time.Time
	Status         *entity.InspectionStatus
	Notes          *string
}

// InspectionFilter narrows List results.
type InspectionFilter struct {
	// TindahanID restricts results to inspections of one tindahan.
	TindahanID *uuid.UUID
}

// InspectionRepository defines the interface for inspection database operations.
type InspectionRepository interface {
	// Create persists a new inspection. The referenced tindahan must exist;
	// a dangling reference yields ErrTindahanReference.
	Create(ctx context.Context, inspection *entity.Inspection) error

	// FindByID retrieves an inspection with its violations.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Inspection, error)

	// List retrieves inspections in creation order, optionally filtered.
	List(ctx context.Context, params ListParams, filter InspectionFilter) ([]*entity.Inspection, error)

	// Update applies the non-nil fields of changes and refreshes the update
	// timestamp, returning the updated record.
	Update(ctx context.Context, id uuid.UUID, changes InspectionChanges) (*entity.Inspection, error)
}
