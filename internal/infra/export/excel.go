// Package export renders compliance reports as XLSX workbooks.
package export

import (
	"bytes"
	"fmt"
	"time"

	"bantay/internal/domain/entity"
	"bantay/internal/domain/service"
	"bantay/internal/util"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const reportSheet = "Report"

type excelExporter struct{}

// NewExcelExporter creates the XLSX report exporter.
func NewExcelExporter() service.ReportExporter {
	return &excelExporter{}
}

// ExportXLSX renders the report summary and its metrics snapshot into a
// single-sheet workbook.
func (e *excelExporter) ExportXLSX(report *entity.ComplianceReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reportSheet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create report sheet")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "failed to drop default sheet")
	}

	rows := [][2]any{
		{"Reference Number", report.ReferenceNumber},
		{"Report Type", report.ReportType.String()},
		{"Period Start", report.ReportPeriodStart.Format(time.DateOnly)},
		{"Period End", report.ReportPeriodEnd.Format(time.DateOnly)},
		{"Generated By", report.GeneratedBy},
		{"Filed", util.FormatDate(report.CreatedAt)},
		{"Summary", report.Summary},
	}
	if report.BarangayZone != nil {
		rows = append(rows, [2]any{"Barangay Zone", *report.BarangayZone})
	}
	if report.Recommendations != nil {
		rows = append(rows, [2]any{"Recommendations", *report.Recommendations})
	}

	rowNo := 1
	for _, row := range rows {
		f.SetCellValue(reportSheet, "A"+fmt.Sprint(rowNo), row[0])
		f.SetCellValue(reportSheet, "B"+fmt.Sprint(rowNo), row[1])
		rowNo++
	}

	if report.Metrics != nil {
		rowNo++
		f.SetCellValue(reportSheet, "A"+fmt.Sprint(rowNo), "Metric")
		f.SetCellValue(reportSheet, "B"+fmt.Sprint(rowNo), "Value")
		rowNo++

		metrics := [][2]any{
			{"Total Tindahan", report.Metrics.TotalTindahan},
			{"Compliant", report.Metrics.CompliantTindahan},
			{"Warning", report.Metrics.WarningTindahan},
			{"In Violation", report.Metrics.ViolationTindahan},
			{"Suspended", report.Metrics.SuspendedTindahan},
			{"Expired Permits", report.Metrics.ExpiredPermits},
			{"Pending Inspections", report.Metrics.PendingInspections},
			{"Total Violations", report.Metrics.TotalViolations},
			{"Resolved Violations", report.Metrics.ResolvedViolations},
			{"Compliance Rate", report.Metrics.ComplianceRate},
		}
		for _, row := range metrics {
			f.SetCellValue(reportSheet, "A"+fmt.Sprint(rowNo), row[0])
			f.SetCellValue(reportSheet, "B"+fmt.Sprint(rowNo), row[1])
			rowNo++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write workbook")
	}

	return buf.Bytes(), nil
}
