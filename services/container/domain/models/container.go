package models

import (
	"errors"
	"fmt"
	"math"

	"github.com/ghuser/freightbox/pkg/iso6346"
	"github.com/ghuser/freightbox/services/container/domain"
)

// Container is the core aggregate for this bounded context.
//
// Identity, length and contents are fixed at construction. Only the
// temperature of refrigerated kinds may change afterwards, and every change
// is validated before it is applied. Reads are safe from many goroutines;
// SetCelsius and SetFahrenheit are not synchronized, so callers sharing one
// container across goroutines must guard it themselves.
type Container struct {
	owner      OwnerCode
	category   CategoryCode
	serial     Serial
	checkDigit int
	variant    VariantTag
	lengthFt   float64
	contents   []string

	rule    TemperatureRange
	celsius *float64
}

// ContainerParams carries everything needed to build a Container.
// Celsius must be set exactly when the variant carries a temperature.
type ContainerParams struct {
	Owner    OwnerCode
	Serial   Serial
	Variant  VariantTag
	LengthFt float64
	Contents []string
	Celsius  *float64
}

// NewContainer constructs a fully validated Container. The category comes
// from the variant and the check digit is derived from owner, category and
// serial, so the identifier always verifies.
func NewContainer(p ContainerParams) (*Container, error) {
	v, err := LookupVariant(p.Variant)
	if err != nil {
		return nil, err
	}
	if err := checkLength(p.LengthFt); err != nil {
		return nil, err
	}

	code, err := iso6346.Encode(p.Owner.String(), byte(v.Category), p.Serial.Int())
	switch {
	case errors.Is(err, iso6346.ErrInvalidSerial):
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSerial, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidOwnerCode, err)
	}

	c := &Container{
		owner:      p.Owner,
		category:   v.Category,
		serial:     p.Serial,
		checkDigit: int(code[iso6346.PayloadLen] - '0'),
		variant:    v.Tag,
		lengthFt:   p.LengthFt,
		contents:   append([]string(nil), p.Contents...),
	}

	rule, carries, err := EffectiveTemperatureRange(v.Tag)
	if err != nil {
		return nil, err
	}
	switch {
	case carries && p.Celsius == nil:
		return nil, fmt.Errorf("%w: %s", domain.ErrTemperatureRequired, v.Tag)
	case !carries && p.Celsius != nil:
		return nil, fmt.Errorf("%w: %s", domain.ErrTemperatureNotSupported, v.Tag)
	case carries:
		if err := rule.Check(*p.Celsius); err != nil {
			return nil, err
		}
		celsius := *p.Celsius
		c.rule, c.celsius = rule, &celsius
	}

	return c, nil
}

func checkLength(ft float64) error {
	if math.IsNaN(ft) || math.IsInf(ft, 0) || ft <= 0 {
		return fmt.Errorf("%w: %v ft", domain.ErrInvalidLength, ft)
	}
	return nil
}

// OwnerCode returns the owner code.
func (c *Container) OwnerCode() OwnerCode { return c.owner }

// Category returns the equipment category code.
func (c *Container) Category() CategoryCode { return c.category }

// Serial returns the allocated serial.
func (c *Container) Serial() Serial { return c.serial }

// CheckDigit returns the identifier check digit.
func (c *Container) CheckDigit() int { return c.checkDigit }

// Variant returns the container kind.
func (c *Container) Variant() VariantTag { return c.variant }

// LengthFt returns the container length in feet.
func (c *Container) LengthFt() float64 { return c.lengthFt }

// Contents returns a copy of the items loaded at construction.
func (c *Container) Contents() []string {
	return append([]string(nil), c.contents...)
}

// Identifier returns the 11-character ISO 6346 code, e.g. "CSQU3054383".
func (c *Container) Identifier() string {
	return fmt.Sprintf("%s%s%s%d", c.owner, c.category, c.serial, c.checkDigit)
}

// String implements fmt.Stringer.
func (c *Container) String() string {
	return c.Identifier()
}

// VolumeFt3 returns the usable volume: the standard box volume minus the
// deductions of every variant in the lineage.
func (c *Container) VolumeFt3() float64 {
	deduction, err := VolumeDeduction(c.variant)
	if err != nil {
		return 0
	}
	return HeightFt*WidthFt*c.lengthFt - deduction
}

// TemperatureRange returns the permitted celsius range; ok is false for
// kinds without a temperature.
func (c *Container) TemperatureRange() (r TemperatureRange, ok bool) {
	if c.celsius == nil {
		return TemperatureRange{}, false
	}
	return c.rule, true
}

// Celsius returns the current temperature; ok is false for kinds without one.
func (c *Container) Celsius() (celsius float64, ok bool) {
	if c.celsius == nil {
		return 0, false
	}
	return *c.celsius, true
}

// Fahrenheit returns the current temperature converted to Fahrenheit.
func (c *Container) Fahrenheit() (fahrenheit float64, ok bool) {
	celsius, ok := c.Celsius()
	if !ok {
		return 0, false
	}
	return CelsiusToFahrenheit(celsius), true
}

// SetCelsius replaces the temperature. On any error the previous value is kept.
func (c *Container) SetCelsius(celsius float64) error {
	if c.celsius == nil {
		return fmt.Errorf("%w: %s", domain.ErrTemperatureNotSupported, c.variant)
	}
	if err := c.rule.Check(celsius); err != nil {
		return err
	}
	*c.celsius = celsius
	return nil
}

// SetFahrenheit converts fahrenheit to Celsius and applies it via SetCelsius.
func (c *Container) SetFahrenheit(fahrenheit float64) error {
	return c.SetCelsius(FahrenheitToCelsius(fahrenheit))
}
