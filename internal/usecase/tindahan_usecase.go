// Package usecase defines the application's use case interfaces and their
// input types.
package usecase

import (
	"context"
	"time"

	"bantay/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterTindahanInput carries the fields of a new tindahan registration.
type RegisterTindahanInput struct {
	BusinessName         string
	OwnerName            string
	BusinessType         entity.BusinessType
	Address              string
	ContactNumber        *string
	BarangayZone         string
	BusinessPermitNumber *string
	PermitIssuedDate     *time.Time
	PermitExpiryDate     *time.Time
}

// UpdateTindahanInput carries a partial update. Nil fields are left untouched
// on the stored record.
type UpdateTindahanInput struct {
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
	IsActive             *bool
}

// ListTindahanInput carries pagination and filtering for tindahan listings.
type ListTindahanInput struct {
	Skip       int
	Limit      int
	ActiveOnly bool
}

// TindahanUsecase defines the interface for tindahan registration use cases.
type TindahanUsecase interface {
	// Register records a new tindahan. The returned record carries a fresh
	// ID and the compliant default status.
	Register(ctx context.Context, input *RegisterTindahanInput) (*entity.Tindahan, error)

	// Get retrieves a single registration by ID.
	Get(ctx context.Context, id uuid.UUID) (*entity.Tindahan, error)

	// GetByName retrieves a registration by its unique business name.
	GetByName(ctx context.Context, businessName string) (*entity.Tindahan, error)

	// List retrieves registrations in registration order.
	List(ctx context.Context, input *ListTindahanInput) ([]*entity.Tindahan, error)

	// Update applies a partial update and returns the updated record.
	Update(ctx context.Context, id uuid.UUID, input *UpdateTindahanInput) (*entity.Tindahan, error)

	// Deactivate soft deletes a registration.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// PermitQR renders the PNG permit QR code for a registration.
	PermitQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
