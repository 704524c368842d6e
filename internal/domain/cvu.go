package domain

import "log/slog"

// Cvu is a validated 22-digit virtual account identifier (Clave Virtual
// Uniforme) issued by a payment service provider. It has the same 4/16/2
// shape as a Cbu but uses the 2-1-2-1 fold cycle, and the issuer code names
// the PSP rather than a bank.
type Cvu struct {
	digits string
}

// NewCvu parses a CVU from external input, ignoring separators.
func NewCvu(raw string) (Cvu, error) {
	digits, err := parseControlledDigits(raw, "CVU", cvuWeights)
	if err != nil {
		return Cvu{}, err
	}
	return Cvu{digits: digits}, nil
}

// MustCvu creates a Cvu, panicking if invalid.
func MustCvu(raw string) Cvu {
	c, err := NewCvu(raw)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Cvu) Kind() AccountKind { return AccountKindCVU }

func (c Cvu) String() string { return c.digits }

func (c Cvu) Masked() string { return maskControlledDigits(c.digits) }

func (c Cvu) Formatted() string { return formatControlledDigits(c.digits) }

// IssuerCode returns the 4-digit PSP entity code.
func (c Cvu) IssuerCode() string { return section(c.digits, 0, 4) }

// EntityCode is IssuerCode under the name PSPs use for it.
func (c Cvu) EntityCode() string { return c.IssuerCode() }

func (c Cvu) AccountID() string { return section(c.digits, 4, 20) }

func (c Cvu) ControlDigits() string { return section(c.digits, 20, 22) }

func (c Cvu) Equal(other Cvu) bool { return c.digits == other.digits }

func (c Cvu) IsZero() bool { return c.digits == "" }

func (c Cvu) LogValue() slog.Value { return slog.StringValue(c.Masked()) }

func (Cvu) isAccount() {}
