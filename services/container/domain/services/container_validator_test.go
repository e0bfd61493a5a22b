package services

import (
	"errors"
	"testing"

	"github.com/ghuser/freightbox/services/container/domain"
	"github.com/ghuser/freightbox/services/container/domain/models"
)

func ptr(v float64) *float64 { return &v }

func TestValidateOwnerCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "ELO", false},
		{"lowercase", "elo", true},
		{"too short", "EL", true},
		{"too long", "ELOX", true},
		{"digits", "123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateOwnerCode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateOwnerCode(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidOwnerCode) {
				t.Fatalf("expected ErrInvalidOwnerCode, got %v", err)
			}
		})
	}
}

func TestValidateLength(t *testing.T) {
	for _, ft := range []float64{20, 40, 0.5} {
		if err := ValidateLength(ft); err != nil {
			t.Errorf("ValidateLength(%g): unexpected error %v", ft, err)
		}
	}
	for _, ft := range []float64{0, -1} {
		if err := ValidateLength(ft); !errors.Is(err, domain.ErrInvalidLength) {
			t.Errorf("ValidateLength(%g): expected ErrInvalidLength, got %v", ft, err)
		}
	}
}

func TestValidateTemperatureOption(t *testing.T) {
	tests := []struct {
		name    string
		tag     models.VariantTag
		celsius *float64
		wantErr error
	}{
		{"standard without temperature", models.VariantStandard, nil, nil},
		{"standard with temperature", models.VariantStandard, ptr(1), domain.ErrTemperatureNotSupported},
		{"refrigerated in range", models.VariantRefrigerated, ptr(4), nil},
		{"refrigerated missing", models.VariantRefrigerated, nil, domain.ErrTemperatureRequired},
		{"refrigerated too hot", models.VariantRefrigerated, ptr(4.01), domain.ErrTooHot},
		{"heated too cold", models.VariantHeatedRefrigerated, ptr(-20.01), domain.ErrTooCold},
		{"heated too hot", models.VariantHeatedRefrigerated, ptr(4.01), domain.ErrTooHot},
		{"unknown variant", "tank", nil, domain.ErrUnknownVariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTemperatureOption(tt.tag, tt.celsius)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateContainerForCreation(t *testing.T) {
	t.Run("nil container returns error", func(t *testing.T) {
		if err := ValidateContainerForCreation(nil); err == nil {
			t.Fatal("expected error for nil container")
		}
	})

	t.Run("valid containers return nil", func(t *testing.T) {
		params := []models.ContainerParams{
			{Owner: "CSQ", Serial: 305438, Variant: models.VariantStandard, LengthFt: 20},
			{Owner: "ELO", Serial: 1337, Variant: models.VariantRefrigerated, LengthFt: 200, Celsius: ptr(3)},
			{Owner: "ELO", Serial: 1338, Variant: models.VariantHeatedRefrigerated, LengthFt: 40, Celsius: ptr(-20)},
		}
		for _, p := range params {
			c, err := models.NewContainer(p)
			if err != nil {
				t.Fatalf("NewContainer: %v", err)
			}
			if err := ValidateContainerForCreation(c); err != nil {
				t.Fatalf("unexpected error for %s: %v", c, err)
			}
		}
	})

	t.Run("zero value container is rejected", func(t *testing.T) {
		if err := ValidateContainerForCreation(&models.Container{}); err == nil {
			t.Fatal("expected error for uninitialized container")
		}
	})
}
