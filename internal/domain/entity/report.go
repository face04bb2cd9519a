package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportType classifies a compliance report.
type ReportType string

const (
	// ReportTypeMonthly is a monthly compliance summary.
	ReportTypeMonthly ReportType = "monthly"
	// ReportTypeQuarterly is a quarterly compliance report.
	ReportTypeQuarterly ReportType = "quarterly"
	// ReportTypeAnnual is an annual compliance report.
	ReportTypeAnnual ReportType = "annual"
	// ReportTypeZoneSpecific covers a single barangay zone.
	ReportTypeZoneSpecific ReportType = "zone_specific"
	// ReportTypeViolationSummary summarizes recorded violations.
	ReportTypeViolationSummary ReportType = "violation_summary"
	// ReportTypePermitStatus summarizes permit standing.
	ReportTypePermitStatus ReportType = "permit_status"
)

// String returns the string representation of the ReportType.
func (t ReportType) String() string {
	return string(t)
}

// IsValid checks if the ReportType is a valid value.
func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeMonthly, ReportTypeQuarterly, ReportTypeAnnual,
		ReportTypeZoneSpecific, ReportTypeViolationSummary, ReportTypePermitStatus:
		return true
	default:
		return false
	}
}

// ComplianceMetrics is a point-in-time aggregate snapshot embedded in a
// report. It is fixed when the report is filed, never recomputed on read.
type ComplianceMetrics struct {
	TotalTindahan      int     `json:"total_tindahan"`
	CompliantTindahan  int     `json:"compliant_tindahan"`
	WarningTindahan    int     `json:"warning_tindahan"`
	ViolationTindahan  int     `json:"violation_tindahan"`
	SuspendedTindahan  int     `json:"suspended_tindahan"`
	ExpiredPermits     int     `json:"expired_permits"`
	PendingInspections int     `json:"pending_inspections"`
	TotalViolations    int     `json:"total_violations"`
	ResolvedViolations int     `json:"resolved_violations"`
	ComplianceRate     float64 `json:"compliance_rate"`
}

// ComplianceReport is a filed compliance summary for a reporting period.
// Reports are created once and never updated or deleted.
type ComplianceReport struct {
	ID                uuid.UUID          // Unique identifier of the report.
	ReferenceNumber   string             // Service-generated reference, e.g. RPT-20250901120000.
	ReportType        ReportType         // Classification of the report.
	ReportPeriodStart time.Time          // Start of the reporting period.
	ReportPeriodEnd   time.Time          // End of the reporting period.
	BarangayZone      *string            // Zone scope when the report is zone specific.
	GeneratedBy       string             // Name of the official who filed the report.
	Summary           string             // Report summary text.
	Recommendations   *string            // Optional recommendations for improvement.
	Metrics           *ComplianceMetrics // Optional metrics snapshot fixed at filing time.
	CreatedAt         time.Time          // Timestamp of record creation.
	UpdatedAt         time.Time          // Timestamp of the last modification.
}
