package entity

import (
	"time"

	"github.com/google/uuid"
)

// InspectionType classifies why an inspection takes place.
type InspectionType string

const (
	// InspectionTypeRoutine is a regular scheduled inspection.
	InspectionTypeRoutine InspectionType = "routine"
	// InspectionTypeComplaint follows a resident complaint.
	InspectionTypeComplaint InspectionType = "complaint"
	// InspectionTypeFollowUp re-checks an earlier finding.
	InspectionTypeFollowUp InspectionType = "follow_up"
	// InspectionTypeRenewal supports a permit renewal.
	InspectionTypeRenewal InspectionType = "renewal"
	// InspectionTypeEmergency is an unscheduled urgent inspection.
	InspectionTypeEmergency InspectionType = "emergency"
)

// String returns the string representation of the InspectionType.
func (t InspectionType) String() string {
	return string(t)
}

// IsValid checks if the InspectionType is a valid value.
func (t InspectionType) IsValid() bool {
	switch t {
	case InspectionTypeRoutine, InspectionTypeComplaint, InspectionTypeFollowUp,
		InspectionTypeRenewal, InspectionTypeEmergency:
		return true
	default:
		return false
	}
}

// InspectionStatus tracks the progress of an inspection.
type InspectionStatus string

const (
	// InspectionStatusScheduled is the default status at creation.
	InspectionStatusScheduled InspectionStatus = "scheduled"
	// InspectionStatusInProgress marks an inspection underway.
	InspectionStatusInProgress InspectionStatus = "in_progress"
	// InspectionStatusCompleted marks a finished inspection.
	InspectionStatusCompleted InspectionStatus = "completed"
	// InspectionStatusCancelled marks a called-off inspection.
	InspectionStatusCancelled InspectionStatus = "cancelled"
)

// String returns the string representation of the InspectionStatus.
func (s InspectionStatus) String() string {
	return string(s)
}

// IsValid checks if the InspectionStatus is a valid value.
func (s InspectionStatus) IsValid() bool {
	switch s {
	case InspectionStatusScheduled, InspectionStatusInProgress,
		InspectionStatusCompleted, InspectionStatusCancelled:
		return true
	default:
		return false
	}
}

// Inspection is a scheduled or performed compliance check of a tindahan.
// Completing an inspection does not change the tindahan's compliance status;
// status transitions happen only through explicit updates.
type Inspection struct {
	ID             uuid.UUID        // Unique identifier of the inspection.
	TindahanID     uuid.UUID        // The tindahan being inspected. Must reference an existing record.
	InspectionType InspectionType   // Why the inspection takes place.
	InspectorName  string           // Name of the assigned inspector.
	InspectionDate time.Time        // When the inspection happens.
	Status         InspectionStatus // Progress of the inspection, scheduled at creation.
	Notes          *string          // Optional inspector notes.
	Violations     []*Violation     // Violations recorded during this inspection.
	CreatedAt      time.Time        // Timestamp of record creation.
	UpdatedAt      time.Time        // Timestamp of the last modification.
}
