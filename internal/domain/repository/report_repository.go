package repository

import (
	"context"

	"bantay/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrReportNotFound is returned when a compliance report is not found.
var ErrReportNotFound = errors.New("compliance report not found")

// ReportRepository defines the interface for compliance report database
// operations. Reports are write-once; there is no update or delete.
type ReportRepository interface {
	// Create persists a new compliance report with its metrics snapshot.
	Create(ctx context.Context, report *entity.ComplianceReport) error

	// FindByID retrieves a report by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ComplianceReport, error)

	// List retrieves reports in creation order.
	List(ctx context.Context, params ListParams) ([]*entity.ComplianceReport, error)
}
