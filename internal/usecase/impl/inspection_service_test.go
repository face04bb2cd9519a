package impl

import (
	"context"
	"testing"
	"time"

	"bantay/internal/domain/entity"
	domainerrors "bantay/internal/domain/errors"
	"bantay/internal/domain/repository"
	mockRepo "bantay/internal/mocks/repository"
	"bantay/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// inspectionServiceFixtures holds all test dependencies for inspection service tests.
type inspectionServiceFixtures struct {
	service        usecase.InspectionUsecase
	inspectionRepo *mockRepo.MockInspectionRepository
	violationRepo  *mockRepo.MockViolationRepository
}

func createTestInspectionService(t *testing.T) inspectionServiceFixtures {
	inspectionRepo := mockRepo.NewMockInspectionRepository(t)
	violationRepo := mockRepo.NewMockViolationRepository(t)
	service := NewInspectionService(inspectionRepo, violationRepo)

	return inspectionServiceFixtures{
		service:        service,
		inspectionRepo: inspectionRepo,
		violationRepo:  violationRepo,
	}
}

func TestInspectionService_Schedule_Success(t *testing.T) {
	fx := createTestInspectionService(t)

	ctx := context.Background()
	input := &usecase.ScheduleInspectionInput{
		TindahanID:     uuid.New(),
		InspectionType: entity.InspectionTypeRoutine,
		InspectorName:  "Inspector Cruz",
		InspectionDate: time.Now().Add(48 * time.Hour),
	}

	fx.inspectionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Inspection")).
		Return(nil)

	inspection, err := fx.service.Schedule(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, inspection.ID)
	assert.Equal(t, input.TindahanID, inspection.TindahanID)
	assert.Equal(t, entity.InspectionStatusScheduled, inspection.Status)
}

func TestInspectionService_Schedule_UnknownTindahan(t *testing.T) {
	fx := createTestInspectionService(t)

	ctx := context.Background()
	input := &usecase.ScheduleInspectionInput{
		TindahanID:     uuid.New(),
		InspectionType: entity.InspectionTypeComplaint,
		InspectorName:  "Inspector Cruz",
		InspectionDate: time.Now(),
	}

	fx.inspectionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Inspection")).
		Return(repository.ErrTindahanReference)

	inspection, err := fx.service.Schedule(ctx, input)

	require.Error(t, err)
	assert.Nil(t, inspection)
	assert.ErrorIs(t, err, domainerrors.ErrTindahanNotFound)
}

func TestInspectionService_List_FiltersByTindahan(t *testing.T) {
	fx := createTestInspectionService(t)

	ctx := context.Background()
	tindahanID := uuid.New()
	expected := []*entity.Inspection{{ID: uuid.New(), TindahanID: tindahanID}}

	fx.inspectionRepo.EXPECT().
		List(ctx,
			repository.ListParams{Skip: 0, Limit: repository.DefaultListLimit},
			repository.InspectionFilter{TindahanID: &tindahanID},
		).
		Return(expected, nil)

	list, err := fx.service.List(ctx, &usecase.ListInspectionsInput{TindahanID: &tindahanID})

	require.NoError(t, err)
	assert.Equal(t, expected, list)
}

func TestInspectionService_Update_StatusOnly(t *testing.T) {
	fx := createTestInspectionService(t)

	ctx := context.Background()
	id := uuid.New()
	status := entity.InspectionStatusCompleted
	updated := &entity.Inspection{ID: id, Status: status}

	fx.inspectionRepo.EXPECT().
		Update(ctx, id, mock.MatchedBy(func(changes repository.InspectionChanges) bool {
			return changes.Status != nil && *changes.Status == status &&
				changes.InspectorName == nil && changes.Notes == nil
		})).
		Return(updated, nil)

	inspection, err := fx.service.Update(ctx, id, &usecase.UpdateInspectionInput{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, updated, inspection)
}

func TestInspectionService_RecordViolation_Success(t *testing.T) {
	fx := createTestInspectionService(t)

	ctx := context.Background()
	inspectionID := uuid.New()
	input := &usecase.RecordViolationInput{
		ViolationType: entity.ViolationTypeNoPermit,
		Description:   "Operating without a business permit",
		Severity:      5,
	}

	fx.violationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Violation")).
		Return(nil)

	violation, err := fx.service.RecordViolation(ctx, inspectionID, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, violation.ID)
	assert.Equal(t, inspectionID, violation.InspectionID)
	assert.Equal(t, 5, violation.Severity)
	assert.False(t, violation.IsResolved)
}

func TestInspectionService_RecordViolation_SeverityOutOfRange(t *testing.T) {
	fx := createTestInspectionService(t)

	ctx := context.Background()
	inspectionID := uuid.New()

	for _, severity := range []int{0, 6, -1} {
		input := &usecase.RecordViolationInput{
			ViolationType: entity.ViolationTypeOther,
			Description:   "Out of range severity",
			Severity:      severity,
		}

		violation, err := fx.service.RecordViolation(ctx, inspectionID, input)

		require.Error(t, err)
		assert.Nil(t, violation)
		assert.ErrorIs(t, err, domainerrors.ErrSeverityOutOfRange)
	}
}

func TestInspectionService_RecordViolation_UnknownInspection(t *testing.T) {
	fx := createTestInspectionService(t)

	ctx := context.Background()
	inspectionID := uuid.New()
	input := &usecase.RecordViolationInput{
		ViolationType: entity.ViolationTypeBlockingTraffic,
		Description:   "Cart blocking the sidewalk",
		Severity:      2,
	}

	fx.violationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Violation")).
		Return(repository.ErrInspectionReference)

	violation, err := fx.service.RecordViolation(ctx, inspectionID, input)

	require.Error(t, err)
	assert.Nil(t, violation)
	assert.ErrorIs(t, err, domainerrors.ErrInspectionNotFound)
}

func TestInspectionService_ListViolations_UnknownInspection(t *testing.T) {
	fx := createTestInspectionService(t)

	ctx := context.Background()
	inspectionID := uuid.New()

	fx.inspectionRepo.EXPECT().
		FindByID(ctx, inspectionID).
		Return(nil, repository.ErrInspectionNotFound)

	violations, err := fx.service.ListViolations(ctx, inspectionID)

	require.Error(t, err)
	assert.Nil(t, violations)
	assert.ErrorIs(t, err, domainerrors.ErrInspectionNotFound)
}

func TestInspectionService_ResolveViolation_DefaultsResolutionDate(t *testing.T) {
	fx := createTestInspectionService(t)

	ctx := context.Background()
	violationID := uuid.New()
	notes := "Permit secured and posted"
	before := time.Now()

	fx.violationRepo.EXPECT().
		Resolve(ctx, violationID, notes, mock.AnythingOfType("time.Time")).
		RunAndReturn(func(_ context.Context, id uuid.UUID, resolutionNotes string, resolvedAt time.Time) (*entity.Violation, error) {
			assert.False(t, resolvedAt.Before(before))

			return &entity.Violation{
				ID:              id,
				IsResolved:      true,
				ResolutionNotes: &resolutionNotes,
				ResolutionDate:  &resolvedAt,
			}, nil
		})

	violation, err := fx.service.ResolveViolation(ctx, violationID, &usecase.ResolveViolationInput{
		ResolutionNotes: notes,
	})

	require.NoError(t, err)
	assert.True(t, violation.IsResolved)
	require.NotNil(t, violation.ResolutionNotes)
	assert.Equal(t, notes, *violation.ResolutionNotes)
	assert.NotNil(t, violation.ResolutionDate)
}

func TestInspectionService_ResolveViolation_NotFound(t *testing.T) {
	fx := createTestInspectionService(t)

	ctx := context.Background()
	violationID := uuid.New()
	resolvedAt := time.Now()

	fx.violationRepo.EXPECT().
		Resolve(ctx, violationID, "done", resolvedAt).
		Return(nil, repository.ErrViolationNotFound)

	violation, err := fx.service.ResolveViolation(ctx, violationID, &usecase.ResolveViolationInput{
		ResolutionNotes: "done",
		ResolutionDate:  &resolvedAt,
	})

	require.Error(t, err)
	assert.Nil(t, violation)
	assert.ErrorIs(t, err, domainerrors.ErrViolationNotFound)
}
