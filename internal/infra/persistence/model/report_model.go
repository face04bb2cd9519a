package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ComplianceReportModel mirrors the 'compliance_reports' table. Metrics hold
// the snapshot computed at filing time as a jsonb column.
type ComplianceReportModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	ReferenceNumber   string    `gorm:"type:varchar(30);unique;not null"`
	ReportType        string    `gorm:"type:varchar(30);not null"`
	ReportPeriodStart time.Time `gorm:"not null"`
	ReportPeriodEnd   time.Time `gorm:"not null"`
	BarangayZone      *string   `gorm:"type:varchar(50)"`
	GeneratedBy       string    `gorm:"type:varchar(100);not null"`
	Summary           string    `gorm:"type:text;not null"`
	Recommendations   *string   `gorm:"type:text"`
	Metrics           datatypes.JSON
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ComplianceReportModel) TableName() string {
	return "compliance_reports"
}
