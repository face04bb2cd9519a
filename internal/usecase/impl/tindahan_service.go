// Package impl contains the concrete use case services.
package impl

import (
	"context"
	"fmt"
	"time"

	"bantay/internal/domain/entity"
	domainerrors "bantay/internal/domain/errors"
	"bantay/internal/domain/repository"
	"bantay/internal/domain/service"
	"bantay/internal/errors"
	"bantay/internal/usecase"

	"github.com/google/uuid"
)

type tindahanService struct {
	tindahanRepo   repository.TindahanRepository
	phoneValidator service.PhoneValidator
	qrcodeService  service.QRCodeService
}

// NewTindahanService creates a new tindahan service instance.
func NewTindahanService(
	tindahanRepo repository.TindahanRepository,
	phoneValidator service.PhoneValidator,
	qrcodeService service.QRCodeService,
) usecase.TindahanUsecase {
	return &tindahanService{
		tindahanRepo:   tindahanRepo,
		phoneValidator: phoneValidator,
		qrcodeService:  qrcodeService,
	}
}

// Register records a new tindahan with the compliant default status.
func (s *tindahanService) Register(ctx context.Context, input *usecase.RegisterTindahanInput) (*entity.Tindahan, error) {
	if input.ContactNumber != nil {
		if err := s.phoneValidator.Validate(*input.ContactNumber); err != nil {
			return nil, domainerrors.ErrInvalidContactNumber.WithDetails(err.Error())
		}
	}

	now := time.Now()
	tindahan := &entity.Tindahan{
		ID:                   uuid.New(),
		BusinessName:         input.BusinessName,
		OwnerName:            input.OwnerName,
		BusinessType:         input.BusinessType,
		Address:              input.Address,
		ContactNumber:        input.ContactNumber,
		BarangayZone:         input.BarangayZone,
		IsActive:             true,
		BusinessPermitNumber: input.BusinessPermitNumber,
		PermitIssuedDate:     input.PermitIssuedDate,
		PermitExpiryDate:     input.PermitExpiryDate,
		ComplianceStatus:     entity.ComplianceStatusCompliant,
		RegisteredAt:         now,
		UpdatedAt:            now,
	}

	if err := s.tindahanRepo.Create(ctx, tindahan); err != nil {
		if errors.Is(err, repository.ErrDuplicateBusinessName) {
			return nil, domainerrors.ErrTindahanAlreadyExists
		}

		return nil, fmt.Errorf("failed to create tindahan: %w", err)
	}

	return tindahan, nil
}

// Get retrieves a single registration by ID.
func (s *tindahanService) Get(ctx context.Context, id uuid.UUID) (*entity.Tindahan, error) {
	tindahan, err := s.tindahanRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTindahanNotFound) {
			return nil, domainerrors.ErrTindahanNotFound
		}

		return nil, fmt.Errorf("failed to find tindahan by ID: %w", err)
	}

	return tindahan, nil
}

// GetByName retrieves a registration by its unique business name.
func (s *tindahanService) GetByName(ctx context.Context, businessName string) (*entity.Tindahan, error) {
	tindahan, err := s.tindahanRepo.FindByName(ctx, businessName)
	if err != nil {
		if errors.Is(err, repository.ErrTindahanNotFound) {
			return nil, domainerrors.ErrTindahanNotFound
		}

		return nil, fmt.Errorf("failed to find tindahan by name: %w", err)
	}

	return tindahan, nil
}

// List retrieves registrations in registration order.
func (s *tindahanService) List(ctx context.Context, input *usecase.ListTindahanInput) ([]*entity.Tindahan, error) {
	params := repository.ListParams{Skip: input.Skip, Limit: input.Limit}.Normalize()

	tindahanList, err := s.tindahanRepo.List(ctx, params, input.ActiveOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list tindahan: %w", err)
	}

	return tindahanList, nil
}

// Update applies only the fields present in the input.
func (s *tindahanService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateTindahanInput) (*entity.Tindahan, error) {
	if input.ContactNumber != nil {
		if err := s.phoneValidator.Validate(*input.ContactNumber); err != nil {
			return nil, domainerrors.ErrInvalidContactNumber.WithDetails(err.Error())
		}
	}

	changes := repository.TindahanChanges{
		BusinessName:         input.BusinessName,
		OwnerName:            input.OwnerName,
		BusinessType:         input.BusinessType,
		Address:              input.Address,
		ContactNumber:        input.ContactNumber,
		BarangayZone:         input.BarangayZone,
		BusinessPermitNumber: input.BusinessPermitNumber,
		PermitIssuedDate:     input.PermitIssuedDate,
		PermitExpiryDate:     input.PermitExpiryDate,
		ComplianceStatus:     input.ComplianceStatus,
		IsActive:             input.IsActive,
	}

	tindahan, err := s.tindahanRepo.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, repository.ErrTindahanNotFound) {
			return nil, domainerrors.ErrTindahanNotFound
		}
		if errors.Is(err, repository.ErrDuplicateBusinessName) {
			return nil, domainerrors.ErrTindahanAlreadyExists
		}

		return nil, fmt.Errorf("failed to update tindahan: %w", err)
	}

	return tindahan, nil
}

// Deactivate soft deletes a registration. A second call on an already
// deactivated record still succeeds.
func (s *tindahanService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := s.tindahanRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTindahanNotFound) {
			return domainerrors.ErrTindahanNotFound
		}

		return fmt.Errorf("failed to deactivate tindahan: %w", err)
	}

	return nil
}

// PermitQR renders the PNG permit QR code for an existing registration.
func (s *tindahanService) PermitQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GeneratePermitQR(id)
	if err != nil {
		return nil, fmt.Errorf("failed to generate permit QR: %w", err)
	}

	return png, nil
}
