package domain

import (
	"fmt"
	"strings"
)

// AccountKind discriminates the Account variants.
type AccountKind string

const (
	AccountKindCBU   AccountKind = "CBU"
	AccountKindCVU   AccountKind = "CVU"
	AccountKindAlias AccountKind = "ALIAS"
)

// ParseAccountKind maps a stored discriminant back to an AccountKind.
func ParseAccountKind(s string) (AccountKind, error) {
	switch k := AccountKind(strings.ToUpper(strings.TrimSpace(s))); k {
	case AccountKindCBU, AccountKindCVU, AccountKindAlias:
		return k, nil
	}
	return "", NewUnknownVariantError("account kind", s)
}

func (k AccountKind) String() string {
	return string(k)
}

// Account is the destination or origin of a transfer. It is a closed union:
// only Cbu, Cvu and Alias implement it, and every consumer switches over
// those three types.
type Account interface {
	Kind() AccountKind
	String() string
	Masked() string
	isAccount()
}

var (
	_ Account = Cbu{}
	_ Account = Cvu{}
	_ Account = Alias{}
)

// ParseAccount sniffs the format of input and builds the matching variant.
//
// A string with exactly 22 digits (separators ignored) is tried as a CBU
// first and as a CVU second. A number that satisfies both checksums is
// therefore always classified as a CBU. Anything else is parsed as an alias.
func ParseAccount(input string) (Account, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, NewEmptyInputError("account")
	}

	if digits := digitsOnly(trimmed); len(digits) == accountDigitsLen {
		if cbu, err := NewCbu(digits); err == nil {
			return cbu, nil
		}
		if cvu, err := NewCvu(digits); err == nil {
			return cvu, nil
		}
		return nil, NewChecksumError("invalid CBU/CVU: control digits do not match either scheme")
	}

	alias, err := NewAlias(trimmed)
	if err != nil {
		return nil, &DomainError{
			Code:    ErrCodeInvalidFormat,
			Message: "invalid account format: expected a 22-digit CBU/CVU or a 6-20 character alias",
			Err:     err,
		}
	}
	return alias, nil
}

// ParseAccountOfKind rebuilds an account from a stored kind and value,
// re-validating the value for that kind.
func ParseAccountOfKind(kind AccountKind, value string) (Account, error) {
	switch kind {
	case AccountKindCBU:
		return NewCbuAccount(value)
	case AccountKindCVU:
		return NewCvuAccount(value)
	case AccountKindAlias:
		return NewAliasAccount(value)
	}
	return nil, NewUnknownVariantError("account kind", string(kind))
}

func NewCbuAccount(raw string) (Account, error) {
	c, err := NewCbu(raw)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func NewCvuAccount(raw string) (Account, error) {
	c, err := NewCvu(raw)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func NewAliasAccount(raw string) (Account, error) {
	a, err := NewAlias(raw)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// AccountToString returns the canonical value of any variant.
func AccountToString(a Account) string {
	switch v := a.(type) {
	case Cbu:
		return v.String()
	case Cvu:
		return v.String()
	case Alias:
		return v.String()
	case nil:
		return ""
	}
	panic(fmt.Sprintf("unhandled account variant %T", a))
}

// AccountToMaskedString returns the only form of an account that may be
// displayed or logged.
func AccountToMaskedString(a Account) string {
	switch v := a.(type) {
	case Cbu:
		return v.Masked()
	case Cvu:
		return v.Masked()
	case Alias:
		return v.Masked()
	case nil:
		return ""
	}
	panic(fmt.Sprintf("unhandled account variant %T", a))
}

// AccountsEqual requires the same variant and the same underlying value.
func AccountsEqual(a, b Account) bool {
	switch x := a.(type) {
	case Cbu:
		y, ok := b.(Cbu)
		return ok && x.Equal(y)
	case Cvu:
		y, ok := b.(Cvu)
		return ok && x.Equal(y)
	case Alias:
		y, ok := b.(Alias)
		return ok && x.Equal(y)
	case nil:
		return b == nil
	}
	panic(fmt.Sprintf("unhandled account variant %T", a))
}
