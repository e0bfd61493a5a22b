package models

import (
	"fmt"
	"strings"

	"github.com/ghuser/freightbox/services/container/domain"
)

// Standard container dimensions and variant limits.
const (
	HeightFt        = 8.5
	WidthFt         = 8.0
	FridgeVolumeFt3 = 100.0
	MaxCelsius      = 4.0
	MinCelsius      = -20.0
)

// CategoryCode is the single-letter equipment category in an identifier.
type CategoryCode byte

const (
	// CategoryFreight marks general cargo containers.
	CategoryFreight CategoryCode = 'U'
	// CategoryRefrigerated marks refrigerated-class containers.
	CategoryRefrigerated CategoryCode = 'R'
)

// String returns the category as a one-character string.
func (c CategoryCode) String() string {
	return string(rune(c))
}

// VariantTag names one container kind from the closed set below.
type VariantTag string

const (
	VariantStandard           VariantTag = "standard"
	VariantRefrigerated       VariantTag = "refrigerated"
	VariantHeatedRefrigerated VariantTag = "heated-refrigerated"
)

// String returns the string representation of VariantTag.
func (t VariantTag) String() string {
	return string(t)
}

// IsValid checks whether the tag is one of the predefined variants.
func (t VariantTag) IsValid() bool {
	_, ok := variants[t]
	return ok
}

// ParseVariantTag converts a string to a VariantTag.
func ParseVariantTag(s string) (VariantTag, error) {
	tag := VariantTag(strings.ToLower(strings.TrimSpace(s)))
	if !tag.IsValid() {
		return "", fmt.Errorf("%w: %q (valid: standard, refrigerated, heated-refrigerated)", domain.ErrUnknownVariant, s)
	}
	return tag, nil
}

// Variant describes one container kind as plain data. Parent names the
// variant whose constraints this one extends; its own fields only ever add
// to the parent's (deductions are summed, temperature ranges intersected).
type Variant struct {
	Tag                VariantTag
	Parent             VariantTag
	Category           CategoryCode
	VolumeDeductionFt3 float64
	Temperature        *TemperatureRange
}

var (
	refrigeratedBound = AtMost(MaxCelsius)
	heatedBound       = AtLeast(MinCelsius)
)

var variants = map[VariantTag]Variant{
	VariantStandard: {
		Tag:      VariantStandard,
		Category: CategoryFreight,
	},
	VariantRefrigerated: {
		Tag:                VariantRefrigerated,
		Parent:             VariantStandard,
		Category:           CategoryRefrigerated,
		VolumeDeductionFt3: FridgeVolumeFt3,
		Temperature:        &refrigeratedBound,
	},
	VariantHeatedRefrigerated: {
		Tag:         VariantHeatedRefrigerated,
		Parent:      VariantRefrigerated,
		Category:    CategoryRefrigerated,
		Temperature: &heatedBound,
	},
}

// LookupVariant returns the descriptor for tag.
func LookupVariant(tag VariantTag) (Variant, error) {
	v, ok := variants[tag]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %q", domain.ErrUnknownVariant, tag)
	}
	return v, nil
}

// Lineage returns the descriptors from the root ancestor down to tag.
func Lineage(tag VariantTag) ([]Variant, error) {
	var chain []Variant
	for t := tag; t != ""; {
		v, err := LookupVariant(t)
		if err != nil {
			return nil, err
		}
		chain = append([]Variant{v}, chain...)
		t = v.Parent
	}
	return chain, nil
}

// EffectiveTemperatureRange intersects every bound along the lineage of tag,
// root first. ok is false when no variant in the lineage declares a bound,
// meaning containers of that kind carry no celsius field.
func EffectiveTemperatureRange(tag VariantTag) (r TemperatureRange, ok bool, err error) {
	chain, err := Lineage(tag)
	if err != nil {
		return TemperatureRange{}, false, err
	}
	for _, v := range chain {
		if v.Temperature == nil {
			continue
		}
		r, ok = r.Intersect(*v.Temperature), true
	}
	return r, ok, nil
}

// VolumeDeduction sums the volume deductions along the lineage of tag.
func VolumeDeduction(tag VariantTag) (float64, error) {
	chain, err := Lineage(tag)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, v := range chain {
		total += v.VolumeDeductionFt3
	}
	return total, nil
}

// CarriesTemperature reports whether containers of kind tag have a celsius field.
func CarriesTemperature(tag VariantTag) bool {
	_, ok, err := EffectiveTemperatureRange(tag)
	return err == nil && ok
}
