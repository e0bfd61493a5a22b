package models

import (
	"fmt"

	"github.com/ghuser/freightbox/pkg/iso6346"
)

// OwnerCode is a value object identifying the legal owner of a container.
// Encapsulates validation rules: exactly 3 uppercase ASCII letters.
type OwnerCode string

// NewOwnerCode constructs a valid OwnerCode or returns an error if constraints are violated.
func NewOwnerCode(s string) (OwnerCode, error) {
	if len(s) != iso6346.OwnerLen {
		return "", fmt.Errorf("owner code must be exactly %d letters, got %d", iso6346.OwnerLen, len(s))
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return "", fmt.Errorf("owner code must contain only uppercase letters A-Z, got %q", s)
		}
	}
	return OwnerCode(s), nil
}

// String returns the underlying string value.
func (o OwnerCode) String() string {
	return string(o)
}
