package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessType_IsValid(t *testing.T) {
	for _, bt := range []BusinessType{
		BusinessTypeTindahan, BusinessTypeStreetHawker, BusinessTypePeddler,
		BusinessTypeFoodCart, BusinessTypeOther,
	} {
		assert.True(t, bt.IsValid(), bt.String())
	}

	assert.False(t, BusinessType("kiosk").IsValid())
	assert.False(t, BusinessType("").IsValid())
}

func TestComplianceStatus_IsValid(t *testing.T) {
	for _, cs := range []ComplianceStatus{
		ComplianceStatusCompliant, ComplianceStatusWarning,
		ComplianceStatusViolation, ComplianceStatusSuspended,
	} {
		assert.True(t, cs.IsValid(), cs.String())
	}

	assert.False(t, ComplianceStatus("banned").IsValid())
}

func TestInspectionEnums_IsValid(t *testing.T) {
	assert.True(t, InspectionTypeRoutine.IsValid())
	assert.True(t, InspectionTypeEmergency.IsValid())
	assert.False(t, InspectionType("surprise").IsValid())

	assert.True(t, InspectionStatusScheduled.IsValid())
	assert.True(t, InspectionStatusCancelled.IsValid())
	assert.False(t, InspectionStatus("done").IsValid())
}

func TestViolationType_IsValid(t *testing.T) {
	assert.True(t, ViolationTypeNoPermit.IsValid())
	assert.True(t, ViolationTypeOther.IsValid())
	assert.False(t, ViolationType("littering").IsValid())
}

func TestValidSeverity_Boundaries(t *testing.T) {
	tests := []struct {
		severity int
		valid    bool
	}{
		{severity: 0, valid: false},
		{severity: 1, valid: true},
		{severity: 3, valid: true},
		{severity: 5, valid: true},
		{severity: 6, valid: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidSeverity(tt.severity), "severity %d", tt.severity)
	}
}

func TestReportType_IsValid(t *testing.T) {
	assert.True(t, ReportTypeMonthly.IsValid())
	assert.True(t, ReportTypePermitStatus.IsValid())
	assert.False(t, ReportType("weekly").IsValid())
}
