package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"bantay/internal/domain/entity"
	domainerrors "bantay/internal/domain/errors"
	"bantay/internal/domain/repository"
	mockRepo "bantay/internal/mocks/repository"
	mockService "bantay/internal/mocks/service"
	"bantay/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reportServiceFixtures holds all test dependencies for report service tests.
type reportServiceFixtures struct {
	service    usecase.ReportUsecase
	reportRepo *mockRepo.MockReportRepository
	exporter   *mockService.MockReportExporter
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	reportRepo := mockRepo.NewMockReportRepository(t)
	exporter := mockService.NewMockReportExporter(t)
	service := NewReportService(reportRepo, exporter)

	return reportServiceFixtures{
		service:    service,
		reportRepo: reportRepo,
		exporter:   exporter,
	}
}

func TestReportService_File_Success(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	start := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC)
	input := &usecase.FileReportInput{
		ReportType:        entity.ReportTypeMonthly,
		ReportPeriodStart: start,
		ReportPeriodEnd:   end,
		GeneratedBy:       "Barangay Secretary",
		Summary:           "July compliance summary",
		Metrics: &entity.ComplianceMetrics{
			TotalTindahan:  42,
			ComplianceRate: 85.7,
		},
	}

	fx.reportRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ComplianceReport")).
		Return(nil)

	report, err := fx.service.File(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, report.ID)
	assert.True(t, strings.HasPrefix(report.ReferenceNumber, "RPT-"))
	assert.Len(t, report.ReferenceNumber, len("RPT-")+14)
	assert.Equal(t, input.Metrics, report.Metrics)
}

func TestReportService_File_InvalidPeriod(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	start := time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)

	report, err := fx.service.File(ctx, &usecase.FileReportInput{
		ReportType:        entity.ReportTypeMonthly,
		ReportPeriodStart: start,
		ReportPeriodEnd:   end,
		GeneratedBy:       "Barangay Secretary",
		Summary:           "Backwards period",
	})

	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReportPeriod)
}

func TestReportService_File_EqualPeriodBounds(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	day := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)

	fx.reportRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ComplianceReport")).
		Return(nil)

	report, err := fx.service.File(ctx, &usecase.FileReportInput{
		ReportType:        entity.ReportTypeZoneSpecific,
		ReportPeriodStart: day,
		ReportPeriodEnd:   day,
		GeneratedBy:       "Barangay Secretary",
		Summary:           "Single day snapshot",
	})

	require.NoError(t, err)
	assert.Equal(t, day, report.ReportPeriodStart)
	assert.Equal(t, day, report.ReportPeriodEnd)
}

func TestReportService_Get_NotFound(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.reportRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrReportNotFound)

	report, err := fx.service.Get(ctx, id)

	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, domainerrors.ErrReportNotFound)
}

func TestReportService_Export_Success(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	id := uuid.New()
	stored := &entity.ComplianceReport{
		ID:              id,
		ReferenceNumber: "RPT-20260701120000",
		ReportType:      entity.ReportTypeMonthly,
	}
	workbook := []byte("PK\x03\x04")

	fx.reportRepo.EXPECT().FindByID(ctx, id).Return(stored, nil)
	fx.exporter.EXPECT().ExportXLSX(stored).Return(workbook, nil)

	got, err := fx.service.Export(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, workbook, got)
}

func TestReportService_Export_NotFound(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.reportRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrReportNotFound)

	got, err := fx.service.Export(ctx, id)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrReportNotFound)
}
