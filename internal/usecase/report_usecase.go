package usecase

import (
	"context"
	"time"

	"bantay/internal/domain/entity"

	"github.com/google/uuid"
)

// FileReportInput carries the fields of a new compliance report. Metrics are
// a caller-supplied snapshot fixed at filing time.
type FileReportInput struct {
	ReportType        entity.ReportType
	ReportPeriodStart time.Time
	ReportPeriodEnd   time.Time
	BarangayZone      *string
	GeneratedBy       string
	Summary           string
	Recommendations   *string
	Metrics           *entity.ComplianceMetrics
}

// ListReportsInput carries pagination for report listings.
type ListReportsInput struct {
	Skip  int
	Limit int
}

// ReportUsecase defines the interface for compliance report use cases.
// Reports are write-once; there is no update or delete operation.
type ReportUsecase interface {
	// File records a new compliance report and assigns its reference number.
	File(ctx context.Context, input *FileReportInput) (*entity.ComplianceReport, error)

	// Get retrieves a report by ID.
	Get(ctx context.Context, id uuid.UUID) (*entity.ComplianceReport, error)

	// List retrieves reports in creation order.
	List(ctx context.Context, input *ListReportsInput) ([]*entity.ComplianceReport, error)

	// Export renders a report as an XLSX workbook.
	Export(ctx context.Context, id uuid.UUID) ([]byte, error)
}
