// Package errexit maps domain sentinel errors to process exit codes.
// Add a case to Code for each new domain sentinel error.
package errexit

import (
	"errors"

	containerdomain "github.com/ghuser/freightbox/services/container/domain"
)

// Exit codes returned by the CLI.
const (
	OK         = 0
	Failure    = 1 // unexpected error
	Invalid    = 2 // the input was rejected by a domain rule
	Exhausted  = 3 // serial space exhausted, operator action required
	Unverified = 4 // an identifier failed check digit verification
)

// ErrUnverified marks an identifier that failed verification.
var ErrUnverified = errors.New("identifier failed verification")

// Code maps err to an exit code.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
func Code(err error) int {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, containerdomain.ErrSerialSpaceExhausted):
		return Exhausted
	case errors.Is(err, ErrUnverified):
		return Unverified
	case errors.Is(err, containerdomain.ErrInvalidOwnerCode),
		errors.Is(err, containerdomain.ErrInvalidSerial),
		errors.Is(err, containerdomain.ErrInvalidLength),
		errors.Is(err, containerdomain.ErrInvalidRequest),
		errors.Is(err, containerdomain.ErrUnknownVariant),
		errors.Is(err, containerdomain.ErrTemperatureOutOfRange),
		errors.Is(err, containerdomain.ErrInvalidTemperature),
		errors.Is(err, containerdomain.ErrTemperatureRequired),
		errors.Is(err, containerdomain.ErrTemperatureNotSupported):
		return Invalid
	default:
		return Failure
	}
}
