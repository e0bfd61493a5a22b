package models

import "testing"

func TestNewSerial(t *testing.T) {
	t.Run("lower bound", func(t *testing.T) {
		s, err := NewSerial(0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.String() != "000000" {
			t.Fatalf("expected zero-padded serial, got %q", s.String())
		}
	})

	t.Run("upper bound", func(t *testing.T) {
		s, err := NewSerial(MaxSerial)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.String() != "999999" {
			t.Fatalf("expected %q, got %q", "999999", s.String())
		}
	})

	t.Run("default start pads to six digits", func(t *testing.T) {
		s, _ := NewSerial(1337)
		if s.String() != "001337" || s.Int() != 1337 {
			t.Fatalf("unexpected serial %q (%d)", s.String(), s.Int())
		}
	})

	t.Run("negative returns error", func(t *testing.T) {
		if _, err := NewSerial(-1); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("seven digits returns error", func(t *testing.T) {
		if _, err := NewSerial(MaxSerial + 1); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
