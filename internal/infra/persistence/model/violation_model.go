package model

import (
	"time"

	"github.com/google/uuid"
)

// ViolationModel mirrors the 'violations' table. InspectionID references
// inspections.id (UUID). Severity is constrained to 1..5 at the database level.
type ViolationModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	InspectionID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ViolationType   string    `gorm:"type:varchar(30);not null"`
	Description     string    `gorm:"type:text;not null"`
	Severity        int       `gorm:"not null;check:severity >= 1 AND severity <= 5"`
	IsResolved      bool      `gorm:"not null;default:false"`
	ResolutionNotes *string   `gorm:"type:text"`
	ResolutionDate  *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ViolationModel) TableName() string {
	return "violations"
}
