package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the container domain. Use errors.Is() to check these.
// All of them are permanent validation failures; none should be retried.
var (
	// ErrInvalidOwnerCode indicates an owner code that is not exactly 3 uppercase letters.
	ErrInvalidOwnerCode = errors.New("invalid owner code")

	// ErrInvalidSerial indicates a serial outside [0, 999999].
	ErrInvalidSerial = errors.New("invalid serial")

	// ErrSerialSpaceExhausted indicates the allocator has issued every 6-digit serial.
	// It is fatal: recovering requires restarting the numbering space.
	ErrSerialSpaceExhausted = errors.New("serial space exhausted")

	// ErrResetNotPermitted indicates a serial reset on an allocator built without reset support.
	ErrResetNotPermitted = errors.New("serial reset not permitted")

	// ErrTemperatureOutOfRange indicates a celsius value outside the variant's range.
	ErrTemperatureOutOfRange = errors.New("temperature out of range")

	// ErrTooHot indicates a celsius value above the variant's upper bound.
	ErrTooHot = errors.New("temperature too hot")

	// ErrTooCold indicates a celsius value below the variant's lower bound.
	ErrTooCold = errors.New("temperature too cold")

	// ErrInvalidTemperature indicates a NaN or infinite temperature.
	ErrInvalidTemperature = errors.New("invalid temperature")

	// ErrTemperatureNotSupported indicates a temperature on a variant without a celsius field.
	ErrTemperatureNotSupported = errors.New("temperature not supported by variant")

	// ErrTemperatureRequired indicates a missing celsius value for a temperature-controlled variant.
	ErrTemperatureRequired = errors.New("temperature required by variant")

	// ErrUnknownVariant indicates a variant tag outside the closed set.
	ErrUnknownVariant = errors.New("unknown container variant")

	// ErrInvalidLength indicates a non-positive or non-finite container length.
	ErrInvalidLength = errors.New("invalid container length")

	// ErrInvalidRequest indicates a create request failing structural validation.
	ErrInvalidRequest = errors.New("invalid create request")
)

// Violation names the side of a temperature range that was crossed.
type Violation string

const (
	// TooHot means the value exceeded the upper bound.
	TooHot Violation = "too_hot"
	// TooCold means the value fell below the lower bound.
	TooCold Violation = "too_cold"
)

// TemperatureError reports a celsius value rejected by a variant's range.
// It matches ErrTemperatureOutOfRange and one of ErrTooHot / ErrTooCold.
type TemperatureError struct {
	Celsius   float64
	Limit     float64
	Violation Violation
}

func (e *TemperatureError) Error() string {
	if e.Violation == TooHot {
		return fmt.Sprintf("temperature too hot: %g°C exceeds maximum %g°C", e.Celsius, e.Limit)
	}
	return fmt.Sprintf("temperature too cold: %g°C below minimum %g°C", e.Celsius, e.Limit)
}

// Is reports whether target is a sentinel this error stands for.
func (e *TemperatureError) Is(target error) bool {
	switch target {
	case ErrTemperatureOutOfRange:
		return true
	case ErrTooHot:
		return e.Violation == TooHot
	case ErrTooCold:
		return e.Violation == TooCold
	default:
		return false
	}
}
