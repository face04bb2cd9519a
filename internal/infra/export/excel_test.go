package export

import (
	"bytes"
	"testing"
	"time"

	"bantay/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExcelExporter_ExportXLSX(t *testing.T) {
	exporter := NewExcelExporter()

	zone := "Zone 3"
	report := &entity.ComplianceReport{
		ID:                uuid.New(),
		ReferenceNumber:   "RPT-20260701120000",
		ReportType:        entity.ReportTypeMonthly,
		ReportPeriodStart: time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
		ReportPeriodEnd:   time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC),
		BarangayZone:      &zone,
		GeneratedBy:       "Barangay Secretary",
		Summary:           "July compliance summary",
		Metrics: &entity.ComplianceMetrics{
			TotalTindahan:  42,
			ComplianceRate: 85.7,
		},
		CreatedAt: time.Now(),
	}

	data, err := exporter.ExportXLSX(report)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Report")

	reference, err := f.GetCellValue("Report", "B1")
	require.NoError(t, err)
	assert.Equal(t, report.ReferenceNumber, reference)

	rows, err := f.GetRows("Report")
	require.NoError(t, err)

	var flat []string
	for _, row := range rows {
		flat = append(flat, row...)
	}
	assert.Contains(t, flat, "Total Tindahan")
	assert.Contains(t, flat, "Barangay Zone")
}

func TestExcelExporter_ExportXLSX_WithoutMetrics(t *testing.T) {
	exporter := NewExcelExporter()

	report := &entity.ComplianceReport{
		ID:                uuid.New(),
		ReferenceNumber:   "RPT-20260801090000",
		ReportType:        entity.ReportTypePermitStatus,
		ReportPeriodStart: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		ReportPeriodEnd:   time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
		GeneratedBy:       "Barangay Captain",
		Summary:           "Permit standing only",
		CreatedAt:         time.Now(),
	}

	data, err := exporter.ExportXLSX(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Report")
	require.NoError(t, err)

	var flat []string
	for _, row := range rows {
		flat = append(flat, row...)
	}
	assert.NotContains(t, flat, "Total Tindahan")
}
