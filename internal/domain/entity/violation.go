package entity

import (
	"time"

	"github.com/google/uuid"
)

// Severity bounds for a violation, inclusive on both ends.
const (
	SeverityMin = 1
	SeverityMax = 5
)

// ViolationType classifies the infraction found during an inspection.
type ViolationType string

const (
	// ViolationTypeNoPermit is operating without a permit.
	ViolationTypeNoPermit ViolationType = "no_permit"
	// ViolationTypeExpiredPermit is operating on an expired permit.
	ViolationTypeExpiredPermit ViolationType = "expired_permit"
	// ViolationTypeUnauthorizedLocation is operating in an unauthorized area.
	ViolationTypeUnauthorizedLocation ViolationType = "unauthorized_location"
	// ViolationTypeUnsanitaryConditions is poor hygiene or sanitation.
	ViolationTypeUnsanitaryConditions ViolationType = "unsanitary_conditions"
	// ViolationTypeNoiseViolation is excessive noise.
	ViolationTypeNoiseViolation ViolationType = "noise_violation"
	// ViolationTypeBlockingTraffic is blocking pedestrian or vehicle traffic.
	ViolationTypeBlockingTraffic ViolationType = "blocking_traffic"
	// ViolationTypeOverpricing is selling above regulated prices.
	ViolationTypeOverpricing ViolationType = "overpricing"
	// ViolationTypeUnauthorizedProducts is selling prohibited items.
	ViolationTypeUnauthorizedProducts ViolationType = "unauthorized_products"
	// ViolationTypeOther covers infractions outside the named categories.
	ViolationTypeOther ViolationType = "other"
)

// String returns the string representation of the ViolationType.
func (t ViolationType) String() string {
	return string(t)
}

// IsValid checks if the ViolationType is a valid value.
func (t ViolationType) IsValid() bool {
	switch t {
	case ViolationTypeNoPermit, ViolationTypeExpiredPermit,
		ViolationTypeUnauthorizedLocation, ViolationTypeUnsanitaryConditions,
		ViolationTypeNoiseViolation, ViolationTypeBlockingTraffic,
		ViolationTypeOverpricing, ViolationTypeUnauthorizedProducts,
		ViolationTypeOther:
		return true
	default:
		return false
	}
}

// ValidSeverity reports whether severity is within the [SeverityMin, SeverityMax] range.
func ValidSeverity(severity int) bool {
	return severity >= SeverityMin && severity <= SeverityMax
}

// Violation is an infraction recorded under an inspection. Resolution sets
// the flag, notes and date together through the resolve operation.
type Violation struct {
	ID              uuid.UUID     // Unique identifier of the violation.
	InspectionID    uuid.UUID     // The inspection where the violation was found.
	ViolationType   ViolationType // Classification of the infraction.
	Description     string        // Detailed description of the violation.
	Severity        int           // Severity on a 1-5 scale.
	IsResolved      bool          // Whether the violation has been resolved.
	ResolutionNotes *string       // Notes on how the violation was resolved.
	ResolutionDate  *time.Time    // When the violation was resolved.
	CreatedAt       time.Time     // Timestamp of record creation.
	UpdatedAt       time.Time     // Timestamp of the last modification.
}
