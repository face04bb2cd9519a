package model

import (
	"time"

	"github.com/google/uuid"
)

// InspectionModel mirrors the 'inspections' table. TindahanID references
// tindahan.id (UUID).
type InspectionModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	TindahanID     uuid.UUID `gorm:"type:uuid;not null;index"`
	InspectionType string    `gorm:"type:varchar(30);not null"`
	InspectorName  string    `gorm:"type:varchar(100);not null"`
	InspectionDate time.Time `gorm:"not null"`
	Status         string    `gorm:"type:varchar(20);not null"`
	Notes          *string   `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Violations []ViolationModel `gorm:"foreignKey:InspectionID"`
}

// TableName explicitly sets the table name for GORM.
func (InspectionModel) TableName() string {
	return "inspections"
}
