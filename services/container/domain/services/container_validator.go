// Package services contains stateless domain services for the container bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"math"

	"github.com/ghuser/freightbox/pkg/iso6346"
	"github.com/ghuser/freightbox/services/container/domain"
	"github.com/ghuser/freightbox/services/container/domain/models"
)

// ValidateOwnerCode checks s against the owner code rules and wraps any
// failure in domain.ErrInvalidOwnerCode.
func ValidateOwnerCode(s string) (models.OwnerCode, error) {
	owner, err := models.NewOwnerCode(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidOwnerCode, err)
	}
	return owner, nil
}

// ValidateLength rejects non-positive and non-finite container lengths.
func ValidateLength(ft float64) error {
	if math.IsNaN(ft) || math.IsInf(ft, 0) || ft <= 0 {
		return fmt.Errorf("%w: %v ft", domain.ErrInvalidLength, ft)
	}
	return nil
}

// ValidateTemperatureOption checks that celsius is supplied exactly when
// the variant carries a temperature, and that it lies in the variant's
// effective range.
func ValidateTemperatureOption(tag models.VariantTag, celsius *float64) error {
	rule, carries, err := models.EffectiveTemperatureRange(tag)
	if err != nil {
		return err
	}
	switch {
	case carries && celsius == nil:
		return fmt.Errorf("%w: %s", domain.ErrTemperatureRequired, tag)
	case !carries && celsius != nil:
		return fmt.Errorf("%w: %s", domain.ErrTemperatureNotSupported, tag)
	case carries:
		return rule.Check(*celsius)
	}
	return nil
}

// ValidateContainerForCreation performs cross-field validation on a fully
// constructed Container before it is handed to callers. It assumes the
// Container was built via models.NewContainer and re-checks the invariants
// that span several fields.
func ValidateContainerForCreation(c *models.Container) error {
	if c == nil {
		return fmt.Errorf("container cannot be nil")
	}

	if !iso6346.Verify(c.Identifier()) {
		return fmt.Errorf("identifier %q fails check digit verification", c.Identifier())
	}

	v, err := models.LookupVariant(c.Variant())
	if err != nil {
		return err
	}
	if c.Category() != v.Category {
		return fmt.Errorf("category %s does not match variant %s (want %s)", c.Category(), v.Tag, v.Category)
	}

	if err := ValidateLength(c.LengthFt()); err != nil {
		return err
	}

	var current *float64
	if celsius, ok := c.Celsius(); ok {
		current = &celsius
	}
	if err := ValidateTemperatureOption(c.Variant(), current); err != nil {
		return fmt.Errorf("invalid temperature: %w", err)
	}

	return nil
}
