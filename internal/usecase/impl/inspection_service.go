package impl

import (
	"context"
	"fmt"
	"time"

	"bantay/internal/domain/entity"
	domainerrors "bantay/internal/domain/errors"
	"bantay/internal/domain/repository"
	"bantay/internal/errors"
	"bantay/internal/usecase"

	"github.com/google/uuid"
)

type inspectionService struct {
	inspectionRepo repository.InspectionRepository
	violationRepo  repository.ViolationRepository
}

// NewInspectionService creates a new inspection service instance.
func NewInspectionService(
	inspectionRepo repository.InspectionRepository,
	violationRepo repository.ViolationRepository,
) usecase.InspectionUsecase {
	return &inspectionService{
		inspectionRepo: inspectionRepo,
		violationRepo:  violationRepo,
	}
}

// Schedule records a new inspection for an existing tindahan with the
// scheduled default status.
func (s *inspectionService) Schedule(ctx context.Context, input *usecase.ScheduleInspectionInput) (*entity.Inspection, error) {
	now := time.Now()
	inspection := &entity.Inspection{
		ID:             uuid.New(),
		TindahanID:     input.TindahanID,
		InspectionType: input.InspectionType,
		InspectorName:  input.InspectorName,
		InspectionDate: input.InspectionDate,
		Status:         entity.InspectionStatusScheduled,
		Notes:          input.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.inspectionRepo.Create(ctx, inspection); err != nil {
		if errors.Is(err, repository.ErrTindahanReference) {
			return nil, domainerrors.ErrTindahanNotFound
		}

		return nil, fmt.Errorf("failed to create inspection: %w", err)
	}

	return inspection, nil
}

// Get retrieves an inspection together with its violations.
func (s *inspectionService) Get(ctx context.Context, id uuid.UUID) (*entity.Inspection, error) {
	inspection, err := s.inspectionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInspectionNotFound) {
			return nil, domainerrors.ErrInspectionNotFound
		}

		return nil, fmt.Errorf("failed to find inspection by ID: %w", err)
	}

	return inspection, nil
}

// List retrieves inspections in creation order.
func (s *inspectionService) List(ctx context.Context, input *usecase.ListInspectionsInput) ([]*entity.Inspection, error) {
	params := repository.ListParams{Skip: input.Skip, Limit: input.Limit}.Normalize()
	filter := repository.InspectionFilter{TindahanID: input.TindahanID}

	inspections, err := s.inspectionRepo.List(ctx, params, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}

	return inspections, nil
}

// Update applies only the fields present in the input. Completing an
// inspection does not cascade into the tindahan's compliance status.
func (s *inspectionService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateInspectionInput) (*entity.Inspection, error) {
	changes := repository.InspectionChanges{
		InspectionType: input.InspectionType,
		InspectorName:  input.InspectorName,
		InspectionDate: input.InspectionDate,
		Status:         input.Status,
		Notes:          input.Notes,
	}

	inspection, err := s.inspectionRepo.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, repository.ErrInspectionNotFound) {
			return nil, domainerrors.ErrInspectionNotFound
		}

		return nil, fmt.Errorf("failed to update inspection: %w", err)
	}

	return inspection, nil
}

// RecordViolation logs a violation under an inspection.
func (s *inspectionService) RecordViolation(ctx context.Context, inspectionID uuid.UUID, input *usecase.RecordViolationInput) (*entity.Violation, error) {
	if !entity.ValidSeverity(input.Severity) {
		return nil, domainerrors.ErrSeverityOutOfRange
	}

	now := time.Now()
	violation := &entity.Violation{
		ID:            uuid.New(),
		InspectionID:  inspectionID,
		ViolationType: input.ViolationType,
		Description:   input.Description,
		Severity:      input.Severity,
		IsResolved:    false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.violationRepo.Create(ctx, violation); err != nil {
		if errors.Is(err, repository.ErrInspectionReference) {
			return nil, domainerrors.ErrInspectionNotFound
		}

		return nil, fmt.Errorf("failed to create violation: %w", err)
	}

	return violation, nil
}

// ListViolations retrieves the violations recorded under an inspection.
func (s *inspectionService) ListViolations(ctx context.Context, inspectionID uuid.UUID) ([]*entity.Violation, error) {
	if _, err := s.Get(ctx, inspectionID); err != nil {
		return nil, err
	}

	violations, err := s.violationRepo.FindByInspection(ctx, inspectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find violations by inspection: %w", err)
	}

	return violations, nil
}

// ResolveViolation marks a violation resolved, setting the flag, notes and
// date together. The resolution date defaults to now when omitted.
func (s *inspectionService) ResolveViolation(ctx context.Context, violationID uuid.UUID, input *usecase.ResolveViolationInput) (*entity.Violation, error) {
	resolvedAt := time.Now()
	if input.ResolutionDate != nil {
		resolvedAt = *input.ResolutionDate
	}

	violation, err := s.violationRepo.Resolve(ctx, violationID, input.ResolutionNotes, resolvedAt)
	if err != nil {
		if errors.Is(err, repository.ErrViolationNotFound) {
			return nil, domainerrors.ErrViolationNotFound
		}

		return nil, fmt.Errorf("failed to resolve violation: %w", err)
	}

	return violation, nil
}
