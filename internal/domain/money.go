package domain

import (
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency is one of the ISO 4217 codes the platform settles in.
type Currency string

const (
	CurrencyARS Currency = "ARS"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyBRL Currency = "BRL"
)

// DefaultCurrency is used when a constructor receives an empty currency.
const DefaultCurrency = CurrencyARS

// ParseCurrency maps an ISO code to a supported Currency. An empty string
// resolves to DefaultCurrency.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case "":
		return DefaultCurrency, nil
	case CurrencyARS, CurrencyUSD, CurrencyEUR, CurrencyBRL:
		return c, nil
	}
	return "", NewUnknownVariantError("currency", s)
}

func (c Currency) String() string {
	return string(c)
}

// RoundingMode selects how fractions of a cent are resolved.
type RoundingMode int

const (
	// RoundBankers rounds half to even. It is the default everywhere.
	RoundBankers RoundingMode = iota
	// RoundHalfUp rounds half away from zero.
	RoundHalfUp
)

var (
	hundred     = decimal.NewFromInt(100)
	two         = decimal.NewFromInt(2)
	maxCents    = decimal.NewFromInt(math.MaxInt64)
	moneyString = regexp.MustCompile(`^[+-]?\d*\.?\d+$`)
)

// Money is a non-negative amount of a single currency stored as integer
// cents. Values are immutable; every operation returns a new Money.
type Money struct {
	cents    int64
	currency Currency
}

// NewMoney converts a decimal amount of currency units into Money, rounding
// to the nearest cent with banker's rounding.
func NewMoney(amount decimal.Decimal, cur Currency) (Money, error) {
	resolved, err := ParseCurrency(string(cur))
	if err != nil {
		return Money{}, err
	}
	if amount.IsNegative() {
		return Money{}, NewNegativeResultError("money amount cannot be negative")
	}

	cents := RoundBankers.round(amount.Mul(hundred))
	if cents.GreaterThan(maxCents) {
		return Money{}, NewFormatError("money amount out of range")
	}
	return Money{cents: cents.IntPart(), currency: resolved}, nil
}

// MoneyFromFloat builds Money from a float. The float is first converted to
// the shortest decimal that represents it, so 100.005 is treated as the
// literal 100.005 and rounds half-to-even to 100.00.
func MoneyFromFloat(amount float64, cur Currency) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, NewFormatError("money amount must be finite")
	}
	return NewMoney(decimal.NewFromFloat(amount), cur)
}

// ParseMoney builds Money from a plain decimal string such as "1500.25".
// Exponents, thousands separators and currency symbols are rejected.
func ParseMoney(amount string, cur Currency) (Money, error) {
	trimmed := strings.TrimSpace(amount)
	if trimmed == "" {
		return Money{}, NewEmptyInputError("money amount")
	}
	if !moneyString.MatchString(trimmed) {
		return Money{}, NewFormatError("money amount must be a valid number")
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Money{}, &DomainError{Code: ErrCodeInvalidFormat, Message: "money amount must be a valid number", Err: err}
	}
	return NewMoney(d, cur)
}

// MoneyFromCents rebuilds Money from its stored integer representation.
func MoneyFromCents(cents int64, cur Currency) (Money, error) {
	resolved, err := ParseCurrency(string(cur))
	if err != nil {
		return Money{}, err
	}
	if cents < 0 {
		return Money{}, NewNegativeResultError("money amount cannot be negative")
	}
	return Money{cents: cents, currency: resolved}, nil
}

// ZeroMoney returns a zero amount of cur.
func ZeroMoney(cur Currency) (Money, error) {
	return MoneyFromCents(0, cur)
}

// MustMoney parses amount and panics on failure. Tests and constant tables only.
func MustMoney(amount string, cur Currency) Money {
	m, err := ParseMoney(amount, cur)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Currency() Currency { return m.currency }

// Amount returns the value in currency units.
func (m Money) Amount() decimal.Decimal {
	return decimal.New(m.cents, -2)
}

// Float64 returns the amount in currency units as a float, for display and
// interop only.
func (m Money) Float64() float64 {
	return m.Amount().InexactFloat64()
}

func (m Money) IsZero() bool { return m.cents == 0 }

// Zero returns a zero amount in m's currency.
func (m Money) Zero() Money { return Money{currency: m.currency} }

func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	if other.cents > math.MaxInt64-m.cents {
		return Money{}, NewFormatError("money amount out of range")
	}
	return Money{cents: m.cents + other.cents, currency: m.currency}, nil
}

// Subtract fails instead of producing a negative amount.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	if other.cents > m.cents {
		return Money{}, NewNegativeResultError("money subtraction would produce a negative amount")
	}
	return Money{cents: m.cents - other.cents, currency: m.currency}, nil
}

// Multiply scales the amount by factor and rounds the result to a whole cent.
func (m Money) Multiply(factor decimal.Decimal, mode RoundingMode) (Money, error) {
	if factor.IsNegative() {
		return Money{}, NewNegativeResultError("money multiplication factor must be non-negative")
	}

	cents := mode.round(decimal.NewFromInt(m.cents).Mul(factor))
	if cents.GreaterThan(maxCents) {
		return Money{}, NewFormatError("money amount out of range")
	}
	return Money{cents: cents.IntPart(), currency: m.currency}, nil
}

// Divide splits the amount by divisor, rounding the exact quotient to a whole
// cent.
func (m Money) Divide(divisor decimal.Decimal, mode RoundingMode) (Money, error) {
	if divisor.IsZero() {
		return Money{}, &DomainError{Code: ErrCodeDivisionByZero, Message: "money cannot be divided by zero"}
	}
	if divisor.IsNegative() {
		return Money{}, NewNegativeResultError("money divisor must be positive")
	}

	q, r := decimal.NewFromInt(m.cents).QuoRem(divisor, 0)
	switch r.Mul(two).Cmp(divisor) {
	case 1:
		q = q.Add(decimal.NewFromInt(1))
	case 0:
		if mode == RoundHalfUp || q.IntPart()%2 != 0 {
			q = q.Add(decimal.NewFromInt(1))
		}
	}
	if q.GreaterThan(maxCents) {
		return Money{}, NewFormatError("money amount out of range")
	}
	return Money{cents: q.IntPart(), currency: m.currency}, nil
}

func (m Money) GreaterThan(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.cents > other.cents, nil
}

func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.cents >= other.cents, nil
}

func (m Money) LessThan(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.cents < other.cents, nil
}

func (m Money) LessThanOrEqual(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.cents <= other.cents, nil
}

// Equal is value equality: same cents and same currency.
func (m Money) Equal(other Money) bool {
	return m.cents == other.cents && m.currency == other.currency
}

// String returns the amount with exactly two decimals, e.g. "100.00".
func (m Money) String() string {
	return m.Amount().StringFixed(2)
}

// Format renders the amount for locale (a BCP 47 tag such as "es-AR"). When
// the locale cannot be parsed it falls back to "ARS 100.00".
func (m Money) Format(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return m.fallbackFormat()
	}
	unit, err := currency.ParseISO(string(m.currency))
	if err != nil {
		return m.fallbackFormat()
	}

	p := message.NewPrinter(tag)
	return p.Sprintf("%v %v", currency.Symbol(unit), number.Decimal(m.Float64(), number.Scale(2)))
}

func (m Money) fallbackFormat() string {
	return string(m.currency) + " " + m.String()
}

func (m Money) sameCurrency(other Money) error {
	if m.currency != other.currency {
		return NewCurrencyMismatchError(m.currency, other.currency)
	}
	return nil
}

func (mode RoundingMode) round(d decimal.Decimal) decimal.Decimal {
	if mode == RoundHalfUp {
		return d.Round(0)
	}
	return d.RoundBank(0)
}
