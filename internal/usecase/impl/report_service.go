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
	"bantay/internal/util"

	"github.com/google/uuid"
)

const reportReferencePrefix = "RPT"

type reportService struct {
	reportRepo repository.ReportRepository
	exporter   service.ReportExporter
}

// NewReportService creates a new compliance report service instance.
func NewReportService(
	reportRepo repository.ReportRepository,
	exporter service.ReportExporter,
) usecase.ReportUsecase {
	return &reportService{
		reportRepo: reportRepo,
		exporter:   exporter,
	}
}

// File records a new compliance report. The metrics snapshot is fixed here
// and never recomputed on read.
func (s *reportService) File(ctx context.Context, input *usecase.FileReportInput) (*entity.ComplianceReport, error) {
	if input.ReportPeriodEnd.Before(input.ReportPeriodStart) {
		return nil, domainerrors.ErrInvalidReportPeriod
	}

	now := time.Now()
	report := &entity.ComplianceReport{
		ID:                uuid.New(),
		ReferenceNumber:   util.GenerateReferenceNumber(reportReferencePrefix, now),
		ReportType:        input.ReportType,
		ReportPeriodStart: input.ReportPeriodStart,
		ReportPeriodEnd:   input.ReportPeriodEnd,
		BarangayZone:      input.BarangayZone,
		GeneratedBy:       input.GeneratedBy,
		Summary:           input.Summary,
		Recommendations:   input.Recommendations,
		Metrics:           input.Metrics,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to create compliance report: %w", err)
	}

	return report, nil
}

// Get retrieves a report by ID.
func (s *reportService) Get(ctx context.Context, id uuid.UUID) (*entity.ComplianceReport, error) {
	report, err := s.reportRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, domainerrors.ErrReportNotFound
		}

		return nil, fmt.Errorf("failed to find report by ID: %w", err)
	}

	return report, nil
}

// List retrieves reports in creation order.
func (s *reportService) List(ctx context.Context, input *usecase.ListReportsInput) ([]*entity.ComplianceReport, error) {
	params := repository.ListParams{Skip: input.Skip, Limit: input.Limit}.Normalize()

	reports, err := s.reportRepo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	return reports, nil
}

// Export renders a report as an XLSX workbook.
func (s *reportService) Export(ctx context.Context, id uuid.UUID) ([]byte, error) {
	report, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	workbook, err := s.exporter.ExportXLSX(report)
	if err != nil {
		return nil, fmt.Errorf("failed to export report: %w", err)
	}

	return workbook, nil
}
