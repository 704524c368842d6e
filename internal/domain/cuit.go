package domain

import (
	"log/slog"
	"strings"
)

// Cuit is a validated Argentine tax identification number.
//
// Invariants:
//   - exactly 11 digits once separators are removed
//   - the last digit matches the mod-11 check digit of the first ten
//
// The zero value is not a valid CUIT; construct via NewCuit.
type Cuit struct {
	digits string
}

// NewCuit parses a CUIT from external input. Any non-digit characters
// (dashes, spaces, dots) are ignored, so "30-12345678-1" and "30123456781"
// produce the same value.
func NewCuit(raw string) (Cuit, error) {
	if strings.TrimSpace(raw) == "" {
		return Cuit{}, NewEmptyInputError("CUIT")
	}

	digits := digitsOnly(raw)
	if len(digits) != 11 {
		return Cuit{}, NewFormatError("CUIT must contain exactly 11 digits (XX-XXXXXXXX-X)")
	}

	if int(digits[10]-'0') != mod11CuitCheck(digits) {
		return Cuit{}, NewChecksumError("invalid CUIT checksum")
	}

	return Cuit{digits: digits}, nil
}

// MustCuit creates a Cuit, panicking if invalid.
// Use only in tests or for values known to be valid.
func MustCuit(raw string) Cuit {
	c, err := NewCuit(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the canonical XX-XXXXXXXX-X form.
func (c Cuit) String() string {
	if c.IsZero() {
		return ""
	}
	return c.digits[0:2] + "-" + c.digits[2:10] + "-" + c.digits[10:]
}

// Normalized returns the 11 raw digits, the form stored in the database.
func (c Cuit) Normalized() string {
	return c.digits
}

// Masked hides the first half of the document number: 30-****5678-1.
func (c Cuit) Masked() string {
	if c.IsZero() {
		return ""
	}
	return c.digits[0:2] + "-****" + c.digits[6:10] + "-" + c.digits[10:]
}

func (c Cuit) Prefix() string {
	return c.section(0, 2)
}

func (c Cuit) DocumentNumber() string {
	return c.section(2, 10)
}

func (c Cuit) CheckDigit() string {
	return c.section(10, 11)
}

func (c Cuit) Equal(other Cuit) bool {
	return c.digits == other.digits
}

// IsZero returns true if this is the zero value (uninitialized).
func (c Cuit) IsZero() bool {
	return c.digits == ""
}

// LogValue keeps raw CUITs out of structured logs.
func (c Cuit) LogValue() slog.Value {
	return slog.StringValue(c.Masked())
}

func (c Cuit) section(from, to int) string {
	if c.IsZero() {
		return ""
	}
	return c.digits[from:to]
}
