package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoneValidator_Validate(t *testing.T) {
	validator := NewPhoneValidator("PH")

	tests := []struct {
		name    string
		number  string
		wantErr bool
	}{
		{"local mobile", "09171234567", false},
		{"international format", "+639171234567", false},
		{"landline with area code", "(02) 8123 4567", false},
		{"too short", "0917", true},
		{"not a number", "not-a-number", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.number)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPhoneValidator_Validate_RegionMismatch(t *testing.T) {
	validator := NewPhoneValidator("PH")

	// A US number in international format is still valid; the region only
	// matters for numbers without a country prefix.
	assert.NoError(t, validator.Validate("+12125551234"))
}
