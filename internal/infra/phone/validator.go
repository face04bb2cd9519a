// Package phone validates contact numbers against a configured region.
package phone

import (
	"bantay/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/ttacon/libphonenumber"
)

type phoneValidator struct {
	region string
}

// NewPhoneValidator creates a validator that parses numbers relative to the
// given ISO 3166-1 alpha-2 region.
func NewPhoneValidator(region string) service.PhoneValidator {
	return &phoneValidator{region: region}
}

// Validate parses the number and checks it against the region's numbering plan.
func (v *phoneValidator) Validate(number string) error {
	parsed, err := libphonenumber.Parse(number, v.region)
	if err != nil {
		return errors.Wrap(err, "failed to parse phone number")
	}

	if !libphonenumber.IsValidNumber(parsed) {
		return errors.Errorf("phone number is not valid for region %s", v.region)
	}

	return nil
}
