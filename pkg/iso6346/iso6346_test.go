package iso6346

import (
	"errors"
	"math/rand"
	"testing"
)

func TestEncode_ReferenceVectors(t *testing.T) {
	tests := []struct {
		owner    string
		category byte
		serial   int
		want     string
	}{
		{"CSQ", 'U', 305438, "CSQU3054383"},
		{"ELO", 'R', 1337, "ELOR0013375"},
		{"ELO", 'U', 1337, "ELOU0013377"},
		{"CSQ", 'U', 305430, "CSQU3054300"}, // remainder 10 maps to 0
		{"AAA", 'U', 0, "AAAU0000007"},
		{"ZZZ", 'R', MaxSerial, "ZZZR9999990"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := Encode(tt.owner, tt.category, tt.serial)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Encode(%q, %q, %d) = %q, want %q", tt.owner, tt.category, tt.serial, got, tt.want)
			}
		})
	}
}

func TestEncode_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		owner    string
		category byte
		serial   int
		wantErr  error
	}{
		{"lowercase owner", "elo", 'U', 1, ErrInvalidFormat},
		{"short owner", "EL", 'U', 1, ErrInvalidFormat},
		{"long owner", "ELOX", 'U', 1, ErrInvalidFormat},
		{"digit in owner", "E1O", 'U', 1, ErrInvalidFormat},
		{"non-ascii owner", "ÉLO", 'U', 1, ErrInvalidFormat},
		{"lowercase category", "ELO", 'u', 1, ErrInvalidFormat},
		{"digit category", "ELO", '1', 1, ErrInvalidFormat},
		{"negative serial", "ELO", 'U', -1, ErrInvalidSerial},
		{"serial too large", "ELO", 'U', MaxSerial + 1, ErrInvalidSerial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.owner, tt.category, tt.serial)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestEncodeVerify_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(6346))
	letter := func() byte { return byte('A' + rng.Intn(26)) }

	for i := 0; i < 5000; i++ {
		owner := string([]byte{letter(), letter(), letter()})
		category := letter()
		serial := rng.Intn(MaxSerial + 1)

		code, err := Encode(owner, category, serial)
		if err != nil {
			t.Fatalf("Encode(%q, %q, %d): %v", owner, category, serial, err)
		}
		if !Verify(code) {
			t.Fatalf("Verify(%q) = false", code)
		}
		parsed, err := Parse(code)
		if err != nil {
			t.Fatalf("Parse(%q): %v", code, err)
		}
		if parsed.Owner != owner || parsed.Category != category || parsed.Serial != serial {
			t.Fatalf("Parse(%q) = %+v", code, parsed)
		}
		if parsed.String() != code {
			t.Fatalf("String() = %q, want %q", parsed.String(), code)
		}
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"CSQU3054383", true},
		{"CSQU3054384", false}, // wrong check digit
		{"CSQU3054833", false}, // transposed digits
		{"CSQU305438", false},  // missing check digit
		{"CSQU30543833", false},
		{"csqu3054383", false},
		{"CSQ13054383", false},
		{"CSQU30543X3", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := Verify(tt.code); got != tt.want {
				t.Fatalf("Verify(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestCheckDigit_RejectsBadPayload(t *testing.T) {
	if _, err := CheckDigit("CSQU30543"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for short payload, got %v", err)
	}
	if _, err := CheckDigit("CSQU30543-"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for bad character, got %v", err)
	}
}

func TestLetterValues_SkipMultiplesOfEleven(t *testing.T) {
	prev := 0
	for i, v := range letterValues {
		if v%11 == 0 {
			t.Errorf("letter %c maps to multiple of 11: %d", 'A'+i, v)
		}
		if v <= prev {
			t.Errorf("letter %c value %d not increasing after %d", 'A'+i, v, prev)
		}
		prev = v
	}
	if letterValues[0] != 10 || letterValues[25] != 38 {
		t.Fatalf("unexpected table bounds: A=%d Z=%d", letterValues[0], letterValues[25])
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize(" csqu 305438\t3 ")
	if got != "CSQU3054383" {
		t.Fatalf("Normalize = %q", got)
	}
	if !Verify(got) {
		t.Fatal("expected normalized code to verify")
	}
}
