package domain

import (
	"fmt"
	"log/slog"
	"strings"
)

const accountDigitsLen = 22

// Cbu is a validated 22-digit bank account identifier (Clave Bancaria
// Uniforme): 4-digit issuer code, 16-digit account id and 2 control digits.
//
// The first control digit covers the issuer code and the second covers the
// account id, both computed with the 1-2-1-2 fold cycle.
type Cbu struct {
	digits string
}

// NewCbu parses a CBU from external input, ignoring separators.
func NewCbu(raw string) (Cbu, error) {
	digits, err := parseControlledDigits(raw, "CBU", cbuWeights)
	if err != nil {
		return Cbu{}, err
	}
	return Cbu{digits: digits}, nil
}

// MustCbu creates a Cbu, panicking if invalid.
func MustCbu(raw string) Cbu {
	c, err := NewCbu(raw)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Cbu) Kind() AccountKind { return AccountKindCBU }

// String returns the 22 raw digits.
func (c Cbu) String() string { return c.digits }

// Masked keeps the first and last three digits: 285****************262.
func (c Cbu) Masked() string { return maskControlledDigits(c.digits) }

// Formatted returns IIII-AAAAAAAAAAAAAAAA-CC.
func (c Cbu) Formatted() string { return formatControlledDigits(c.digits) }

// IssuerCode returns the 4-digit bank and branch prefix.
func (c Cbu) IssuerCode() string { return section(c.digits, 0, 4) }

// BankCode returns the 3-digit BCRA bank entity number.
func (c Cbu) BankCode() string { return section(c.digits, 0, 3) }

func (c Cbu) AccountID() string { return section(c.digits, 4, 20) }

func (c Cbu) ControlDigits() string { return section(c.digits, 20, 22) }

func (c Cbu) Equal(other Cbu) bool { return c.digits == other.digits }

func (c Cbu) IsZero() bool { return c.digits == "" }

func (c Cbu) LogValue() slog.Value { return slog.StringValue(c.Masked()) }

func (Cbu) isAccount() {}

// parseControlledDigits applies the shared CBU/CVU shape rules and the
// weight-specific control digit check.
func parseControlledDigits(raw, name string, weights [2]int) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", NewEmptyInputError(name)
	}

	digits := digitsOnly(raw)
	if len(digits) != accountDigitsLen {
		return "", NewFormatError(fmt.Sprintf("%s must be exactly %d digits", name, accountDigitsLen))
	}

	if !validControlPair(digits, weights) {
		return "", NewChecksumError(fmt.Sprintf("%s has invalid control digits", name))
	}
	return digits, nil
}

func maskControlledDigits(digits string) string {
	if len(digits) != accountDigitsLen {
		return digits
	}
	return digits[:3] + strings.Repeat("*", 16) + digits[19:]
}

func formatControlledDigits(digits string) string {
	if len(digits) != accountDigitsLen {
		return digits
	}
	return digits[0:4] + "-" + digits[4:20] + "-" + digits[20:22]
}

func section(s string, from, to int) string {
	if len(s) < to {
		return ""
	}
	return s[from:to]
}
