package models

import (
	"fmt"
	"math"

	"github.com/ghuser/freightbox/services/container/domain"
)

// TemperatureRange is a closed celsius interval whose sides may be unbounded.
// The zero value is unbounded on both sides.
type TemperatureRange struct {
	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// AtMost returns the range (-inf, maxC].
func AtMost(maxC float64) TemperatureRange {
	return TemperatureRange{Max: maxC, HasMax: true}
}

// AtLeast returns the range [minC, +inf).
func AtLeast(minC float64) TemperatureRange {
	return TemperatureRange{Min: minC, HasMin: true}
}

// Intersect returns the values allowed by both r and o. Bounds only ever
// tighten: a side bounded in either operand stays bounded in the result.
func (r TemperatureRange) Intersect(o TemperatureRange) TemperatureRange {
	out := r
	if o.HasMin && (!out.HasMin || o.Min > out.Min) {
		out.Min, out.HasMin = o.Min, true
	}
	if o.HasMax && (!out.HasMax || o.Max < out.Max) {
		out.Max, out.HasMax = o.Max, true
	}
	return out
}

// Empty reports whether no value satisfies the range.
func (r TemperatureRange) Empty() bool {
	return r.HasMin && r.HasMax && r.Min > r.Max
}

// Check returns nil if celsius lies within the range. A violation is reported
// as a *domain.TemperatureError; NaN and infinities wrap ErrInvalidTemperature.
func (r TemperatureRange) Check(celsius float64) error {
	if math.IsNaN(celsius) || math.IsInf(celsius, 0) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidTemperature, celsius)
	}
	if r.HasMax && celsius > r.Max {
		return &domain.TemperatureError{Celsius: celsius, Limit: r.Max, Violation: domain.TooHot}
	}
	if r.HasMin && celsius < r.Min {
		return &domain.TemperatureError{Celsius: celsius, Limit: r.Min, Violation: domain.TooCold}
	}
	return nil
}

// String formats the range in interval notation, e.g. "[-20, 4]".
func (r TemperatureRange) String() string {
	lo, hi := "(-inf", "+inf)"
	if r.HasMin {
		lo = fmt.Sprintf("[%g", r.Min)
	}
	if r.HasMax {
		hi = fmt.Sprintf("%g]", r.Max)
	}
	return lo + ", " + hi
}

// CelsiusToFahrenheit converts c to degrees Fahrenheit.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// FahrenheitToCelsius converts f to degrees Celsius.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}
