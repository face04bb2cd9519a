// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusinessType classifies how a registered business operates.
type BusinessType string

const (
	// BusinessTypeTindahan is a small sari-sari store with a fixed stall.
	BusinessTypeTindahan BusinessType = "tindahan"
	// BusinessTypeStreetHawker is a mobile street vendor.
	BusinessTypeStreetHawker BusinessType = "street_hawker"
	// BusinessTypePeddler is a door-to-door seller.
	BusinessTypePeddler BusinessType = "peddler"
	// BusinessTypeFoodCart is a food cart vendor.
	BusinessTypeFoodCart BusinessType = "food_cart"
	// BusinessTypeOther covers operations outside the named categories.
	BusinessTypeOther BusinessType = "other"
)

// String returns the string representation of the BusinessType.
func (b BusinessType) String() string {
	return string(b)
}

// IsValid checks if the BusinessType is a valid value.
func (b BusinessType) IsValid() bool {
	switch b {
	case BusinessTypeTindahan, BusinessTypeStreetHawker, BusinessTypePeddler,
		BusinessTypeFoodCart, BusinessTypeOther:
		return true
	default:
		return false
	}
}

// ComplianceStatus summarizes a business's regulatory standing.
type ComplianceStatus string

const (
	// ComplianceStatusCompliant is the default standing at registration.
	ComplianceStatusCompliant ComplianceStatus = "compliant"
	// ComplianceStatusWarning marks a business with outstanding warnings.
	ComplianceStatusWarning ComplianceStatus = "warning"
	// ComplianceStatusViolation marks a business with unresolved violations.
	ComplianceStatusViolation ComplianceStatus = "violation"
	// ComplianceStatusSuspended marks a business barred from operating.
	ComplianceStatusSuspended ComplianceStatus = "suspended"
)

// String returns the string representation of the ComplianceStatus.
func (s ComplianceStatus) String() string {
	return string(s)
}

// IsValid checks if the ComplianceStatus is a valid value.
func (s ComplianceStatus) IsValid() bool {
	switch s {
	case ComplianceStatusCompliant, ComplianceStatusWarning,
		ComplianceStatusViolation, ComplianceStatusSuspended:
		return true
	default:
		return false
	}
}

// Tindahan is a small local business registered with the barangay for
// regulatory compliance tracking. Records are never physically removed;
// deregistration only flips IsActive to false.
type Tindahan struct {
	ID                   uuid.UUID        // Immutable identifier assigned at registration.
	BusinessName         string           // Business/tindahan name, unique across registrations.
	OwnerName            string           // Owner/operator name.
	BusinessType         BusinessType     // Type of business operation.
	Address              string           // Business address as free text.
	ContactNumber        *string          // Optional contact number, validated for the configured region.
	BarangayZone         string           // Barangay zone/section the business operates in.
	IsActive             bool             // Whether the business is currently operating.
	BusinessPermitNumber *string          // Optional barangay business permit number.
	PermitIssuedDate     *time.Time       // Date the permit was issued.
	PermitExpiryDate     *time.Time       // Date the permit expires.
	ComplianceStatus     ComplianceStatus // Current compliance standing, compliant at creation.
	LastInspectionDate   *time.Time       // Date of the most recent inspection.
	NextInspectionDue    *time.Time       // When the next inspection is due.
	RegisteredAt         time.Time        // Timestamp of registration with the barangay.
	UpdatedAt            time.Time        // Timestamp of the last modification.
}
