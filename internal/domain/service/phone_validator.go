// Package service defines interfaces for supporting services implemented
// in the infra layer.
package service

// PhoneValidator validates contact numbers for the configured region.
type PhoneValidator interface {
	// Validate returns an error when the number cannot be parsed or is not
	// valid for the region.
	Validate(number string) error
}
