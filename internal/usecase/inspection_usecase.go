package usecase

import (
	"context"
	"time"

	"bantay/internal/domain/entity"

	"github.com/google/uuid"
)

// ScheduleInspectionInput carries the fields of a new inspection.
type ScheduleInspectionInput struct {
	TindahanID     uuid.UUID
	InspectionType entity.InspectionType
	InspectorName  string
	InspectionDate time.Time
	Notes          *string
}

// UpdateInspectionInput carries a partial inspection update.
type UpdateInspectionInput struct {
	InspectionType *entity.InspectionType
	InspectorName  *string
	InspectionDate *time.Time
	Status         *entity.InspectionStatus
	Notes          *string
}

// ListInspectionsInput carries pagination and filtering for inspection listings.
type ListInspectionsInput struct {
	Skip       int
	Limit      int
	TindahanID *uuid.UUID
}

// RecordViolationInput carries the fields of a violation found during an
// inspection.
type RecordViolationInput struct {
	ViolationType entity.ViolationType
	Description   string
	Severity      int
}

// ResolveViolationInput carries the resolution of a violation. The resolved
// flag, notes and date are set together.
type ResolveViolationInput struct {
	ResolutionNotes string
	ResolutionDate  *time.Time
}

// InspectionUsecase defines the interface for inspection and violation use
// cases. Completing an inspection or resolving a violation does not touch the
// tindahan's compliance status.
type InspectionUsecase interface {
	// Schedule records a new inspection for an existing tindahan.
	Schedule(ctx context.Context, input *ScheduleInspectionInput) (*entity.Inspection, error)

	// Get retrieves an inspection together with its violations.
	Get(ctx context.Context, id uuid.UUID) (*entity.Inspection, error)

	// List retrieves inspections in creation order.
	List(ctx context.Context, input *ListInspectionsInput) ([]*entity.Inspection, error)

	// Update applies a partial update and returns the updated record.
	Update(ctx context.Context, id uuid.UUID, input *UpdateInspectionInput) (*entity.Inspection, error)

	// RecordViolation logs a violation under an inspection.
	RecordViolation(ctx context.Context, inspectionID uuid.UUID, input *RecordViolationInput) (*entity.Violation, error)

	// ListViolations retrieves the violations recorded under an inspection.
	ListViolations(ctx context.Context, inspectionID uuid.UUID) ([]*entity.Violation, error)

	// ResolveViolation marks a violation resolved.
	ResolveViolation(ctx context.Context, violationID uuid.UUID, input *ResolveViolationInput) (*entity.Violation, error)
}
