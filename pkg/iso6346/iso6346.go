// Package iso6346 encodes and verifies ISO 6346 freight container identifiers.
//
// An identifier is 11 characters: a 3-letter owner code, a 1-letter equipment
// category, a 6-digit serial number and a check digit:
//
//	CSQ U 305438 3
//
// The check digit is a weighted sum of the first 10 characters modulo 11, with
// a remainder of 10 written as 0. All functions are pure and safe for
// concurrent use.
package iso6346

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	// OwnerLen is the number of letters in an owner code.
	OwnerLen = 3
	// SerialLen is the number of digits in a serial number.
	SerialLen = 6
	// PayloadLen is the length of an identifier without its check digit.
	PayloadLen = OwnerLen + 1 + SerialLen
	// CodeLen is the length of a full identifier.
	CodeLen = PayloadLen + 1
	// MaxSerial is the largest serial that fits the 6-digit field.
	MaxSerial = 999999
)

var (
	// ErrInvalidFormat indicates an owner code, category or code with the wrong shape.
	ErrInvalidFormat = errors.New("invalid iso6346 format")

	// ErrInvalidSerial indicates a serial outside [0, MaxSerial].
	ErrInvalidSerial = errors.New("invalid iso6346 serial")
)

// letterValues is the published ISO 6346 equivalence table. Values that are
// multiples of 11 (11, 22, 33) are skipped.
var letterValues = [26]int{
	10, 12, 13, 14, 15, 16, 17, 18, 19, 20, // A-J
	21, 23, 24, 25, 26, 27, 28, 29, 30, 31, // K-T
	32, 34, 35, 36, 37, 38, // U-Z
}

// Code is a parsed identifier.
type Code struct {
	Owner      string
	Category   byte
	Serial     int
	CheckDigit int
}

// String formats the code as its 11-character identifier.
func (c Code) String() string {
	return fmt.Sprintf("%s%c%0*d%d", c.Owner, c.Category, SerialLen, c.Serial, c.CheckDigit)
}

// Encode builds the full identifier for owner, category and serial.
func Encode(owner string, category byte, serial int) (string, error) {
	payload, err := Payload(owner, category, serial)
	if err != nil {
		return "", err
	}
	digit, err := CheckDigit(payload)
	if err != nil {
		return "", err
	}
	return payload + string(rune('0'+digit)), nil
}

// Payload assembles the 10-character identifier body without a check digit.
func Payload(owner string, category byte, serial int) (string, error) {
	if !isUpperLetters(owner, OwnerLen) {
		return "", fmt.Errorf("%w: owner code %q must be %d uppercase letters", ErrInvalidFormat, owner, OwnerLen)
	}
	if !isUpper(category) {
		return "", fmt.Errorf("%w: category %q must be one uppercase letter", ErrInvalidFormat, category)
	}
	if serial < 0 || serial > MaxSerial {
		return "", fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidSerial, serial, MaxSerial)
	}
	return fmt.Sprintf("%s%c%0*d", owner, category, SerialLen, serial), nil
}

// CheckDigit computes the check digit of a 10-character payload.
func CheckDigit(payload string) (int, error) {
	if len(payload) != PayloadLen {
		return 0, fmt.Errorf("%w: payload %q must be %d characters", ErrInvalidFormat, payload, PayloadLen)
	}
	sum := 0
	for i := 0; i < PayloadLen; i++ {
		v, ok := charValue(payload[i])
		if !ok {
			return 0, fmt.Errorf("%w: unexpected character %q at position %d", ErrInvalidFormat, payload[i], i)
		}
		sum += v << i
	}
	return sum % 11 % 10, nil
}

// Verify reports whether code is a well-formed identifier whose last
// character matches the check digit of the first 10.
func Verify(code string) bool {
	_, err := Parse(code)
	return err == nil
}

// Parse splits a verified identifier into its parts.
func Parse(code string) (Code, error) {
	if len(code) != CodeLen {
		return Code{}, fmt.Errorf("%w: code %q must be %d characters", ErrInvalidFormat, code, CodeLen)
	}
	owner, category := code[:OwnerLen], code[OwnerLen]
	if !isUpperLetters(owner, OwnerLen) || !isUpper(category) {
		return Code{}, fmt.Errorf("%w: code %q must start with 4 uppercase letters", ErrInvalidFormat, code)
	}
	serial := 0
	for i := OwnerLen + 1; i < CodeLen; i++ {
		if !isDigit(code[i]) {
			return Code{}, fmt.Errorf("%w: code %q must end with %d digits", ErrInvalidFormat, code, SerialLen+1)
		}
		if i < PayloadLen {
			serial = serial*10 + int(code[i]-'0')
		}
	}
	want, err := CheckDigit(code[:PayloadLen])
	if err != nil {
		return Code{}, err
	}
	got := int(code[PayloadLen] - '0')
	if got != want {
		return Code{}, fmt.Errorf("%w: check digit of %q is %d, want %d", ErrInvalidFormat, code, got, want)
	}
	return Code{Owner: owner, Category: category, Serial: serial, CheckDigit: got}, nil
}

// Normalize removes whitespace and upper-cases s, so printed forms such as
// "csqu 305438 3" can be passed to Verify or Parse.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}

func charValue(c byte) (int, bool) {
	switch {
	case isDigit(c):
		return int(c - '0'), true
	case isUpper(c):
		return letterValues[c-'A'], true
	default:
		return 0, false
	}
}

func isUpperLetters(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isUpper(s[i]) {
			return false
		}
	}
	return true
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
