package service

import (
	"bantay/internal/domain/entity"
)

// ReportExporter renders a compliance report into a downloadable document.
type ReportExporter interface {
	// ExportXLSX renders the report, including its metrics snapshot when
	// present, as an XLSX workbook.
	ExportXLSX(report *entity.ComplianceReport) ([]byte, error)
}
