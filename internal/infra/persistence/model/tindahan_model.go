// Package model contains the GORM persistence models mirroring the database
// tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// TindahanModel mirrors the 'tindahan' table. The business name carries a
// unique constraint; deactivation flips is_active instead of deleting rows.
type TindahanModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessName         string    `gorm:"type:varchar(100);unique;not null"`
	OwnerName            string    `gorm:"type:varchar(100);not null"`
	BusinessType         string    `gorm:"type:varchar(30);not null"`
	Address              string    `gorm:"type:varchar(255);not null"`
	ContactNumber        *string   `gorm:"type:varchar(20)"`
	BarangayZone         string    `gorm:"type:varchar(50);not null;index"`
	IsActive             bool      `gorm:"not null;default:true"`
	BusinessPermitNumber *string   `gorm:"type:varchar(50)"`
	PermitIssuedDate     *time.Time
	PermitExpiryDate     *time.Time
	ComplianceStatus     string `gorm:"type:varchar(20);not null"`
	LastInspectionDate   *time.Time
	NextInspectionDue    *time.Time
	RegisteredAt         time.Time
	UpdatedAt            time.Time

	Inspections []InspectionModel `gorm:"foreignKey:TindahanID"`
}

// TableName explicitly sets the table name for GORM.
func (TindahanModel) TableName() string {
	return "tindahan"
}
