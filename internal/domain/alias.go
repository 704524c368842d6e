package domain

import (
	"log/slog"
	"regexp"
	"strings"
)

const (
	aliasMinLen = 6
	aliasMaxLen = 20
)

var aliasPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Alias is a human-readable account nickname that a banking rail resolves
// to a CBU or CVU.
//
// Invariants:
//   - trimmed and lowercase
//   - 6 to 20 characters
//   - only letters, digits, dots, underscores and hyphens
type Alias struct {
	value string
}

// NewAlias parses an alias from external input. Surrounding whitespace is
// dropped and letters are lowercased before validation.
func NewAlias(raw string) (Alias, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Alias{}, NewEmptyInputError("alias")
	}

	if n := len([]rune(normalized)); n < aliasMinLen || n > aliasMaxLen {
		return Alias{}, NewFormatError("alias must be between 6 and 20 characters")
	}

	if !aliasPattern.MatchString(normalized) {
		return Alias{}, NewFormatError("alias can only contain letters, numbers, dots, underscores, and hyphens")
	}

	return Alias{value: normalized}, nil
}

// MustAlias creates an Alias, panicking if invalid.
func MustAlias(raw string) Alias {
	a, err := NewAlias(raw)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Alias) Kind() AccountKind { return AccountKindAlias }

func (a Alias) String() string { return a.value }

// Masked shows max(2, len/4) characters on each side and stars the rest,
// e.g. "my.wallet" becomes "my*****et".
func (a Alias) Masked() string {
	n := len(a.value)
	if n <= 4 {
		return a.value
	}
	visible := max(2, n/4)
	return a.value[:visible] + strings.Repeat("*", n-2*visible) + a.value[n-visible:]
}

func (a Alias) Len() int { return len(a.value) }

func (a Alias) Equal(other Alias) bool { return a.value == other.value }

func (a Alias) IsZero() bool { return a.value == "" }

func (a Alias) LogValue() slog.Value { return slog.StringValue(a.Masked()) }

func (Alias) isAccount() {}
