package models

import (
	"fmt"

	"github.com/ghuser/freightbox/pkg/iso6346"
)

// MaxSerial is the largest serial the 6-digit identifier field can hold.
const MaxSerial = iso6346.MaxSerial

// Serial is a process-unique container serial in [0, MaxSerial].
type Serial int

// NewSerial constructs a valid Serial or returns an error if n is out of range.
func NewSerial(n int) (Serial, error) {
	if n < 0 || n > MaxSerial {
		return 0, fmt.Errorf("serial %d not in [0, %d]", n, MaxSerial)
	}
	return Serial(n), nil
}

// Int returns the serial as a plain int.
func (s Serial) Int() int {
	return int(s)
}

// String returns the serial zero-padded to 6 digits.
func (s Serial) String() string {
	return fmt.Sprintf("%0*d", iso6346.SerialLen, int(s))
}
