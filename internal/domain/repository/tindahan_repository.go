// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"bantay/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for tindahan persistence.
var (
	// ErrTindahanNotFound is returned when a tindahan is not found.
	ErrTindahanNotFound = errors.New("tindahan not found")
	// ErrDuplicateBusinessName is returned when the business name is already registered.
	ErrDuplicateBusinessName = errors.New("business name already registered")
)

// Pagination bounds applied by List operations across all repositories.
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// ListParams carries offset pagination for list queries. Limits outside
// [1, MaxListLimit] are clamped by Normalize.
type ListParams struct {
	Skip  int
	Limit int
}

// Normalize returns params with skip and limit forced into their valid ranges.
func (p ListParams) Normalize() ListParams {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultListLimit
	}
	if p.Limit > MaxListLimit {
		p.Limit = MaxListLimit
	}

	return p
}

// TindahanChanges is an explicit change-set for partial updates. Only non-nil
// fields are written; everything else keeps its stored value.
type TindahanChanges struct {
	BusinessName         *string
	OwnerName            *string
	BusinessType         *entity.BusinessType
	Address              *string
	ContactNumber        *string
	BarangayZone         *string
	BusinessPermitNumber *string
	PermitIssuedDate     *time.Time
	PermitExpiryDate     *time.Time
	ComplianceStatus     *entity.ComplianceStatus
	LastInspectionDate   *time.Time
	NextInspectionDue    *time.Time
	IsActive             *bool
}

// TindahanRepository defines the interface for tindahan database operations.
type TindahanRepository interface {
	// Create persists a new tindahan registration and fills in generated values.
	Create(ctx context.Context, tindahan *entity.Tindahan) error

	// FindByID retrieves a tindahan by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tindahan, error)

	// FindByName retrieves a tindahan by its business name. The business
	// name carries a uniqueness constraint, so at most one record matches.
	FindByName(ctx context.Context, businessName string) (*entity.Tindahan, error)

	// List retrieves tindahan in registration order. When activeOnly is
	// true, deactivated records are excluded.
	List(ctx context.Context, params ListParams, activeOnly bool) ([]*entity.Tindahan, error)

	// Update applies the non-nil fields of changes and refreshes the update
	// timestamp, returning the updated record. The timestamp is refreshed
	// even when the change-set is empty.
	Update(ctx context.Context, id uuid.UUID, changes TindahanChanges) (*entity.Tindahan, error)

	// Deactivate flips the active flag to false. It is idempotent on an
	// already-inactive record and returns ErrTindahanNotFound for unknown ids.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
