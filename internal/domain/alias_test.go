package domain_test

import (
	"strings"
	"testing"

	"github.com/DanielPopoola/transfer-core/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlias(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		alias, err := domain.NewAlias("  My.Wallet ")

		require.NoError(t, err)
		assert.Equal(t, "my.wallet", alias.String())
		assert.Equal(t, 9, alias.Len())
		assert.Equal(t, domain.AccountKindAlias, alias.Kind())
	})

	t.Run("accepts the length bounds", func(t *testing.T) {
		_, err := domain.NewAlias("abcdef")
		assert.NoError(t, err)

		_, err = domain.NewAlias(strings.Repeat("a", 20))
		assert.NoError(t, err)
	})

	tests := []struct {
		name    string
		input   string
		code    string
		message string
	}{
		{"empty", "", domain.ErrCodeEmptyInput, "alias must be a non-empty string"},
		{"blank", "   ", domain.ErrCodeEmptyInput, "alias must be a non-empty string"},
		{"too short", "abcde", domain.ErrCodeInvalidFormat, "alias must be between 6 and 20 characters"},
		{"too long", strings.Repeat("a", 21), domain.ErrCodeInvalidFormat, "alias must be between 6 and 20 characters"},
		{"space inside", "my wallet", domain.ErrCodeInvalidFormat, "alias can only contain"},
		{"symbol", "wallet$pay", domain.ErrCodeInvalidFormat, "alias can only contain"},
		{"accented letter", "cañada.pay", domain.ErrCodeInvalidFormat, "alias can only contain"},
	}

	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := domain.NewAlias(tt.input)

			require.Error(t, err)
			assert.True(t, domain.IsErrorCode(err, tt.code))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestAlias_Masked(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"my.wallet", "my*****et"},
		{"abcdef", "ab**ef"},
		{"empresa.pagos", "emp*******gos"},
		{"abcdefghijklmnopqrst", "abcde**********pqrst"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			alias := domain.MustAlias(tt.input)

			assert.Equal(t, tt.want, alias.Masked())
			assert.Equal(t, tt.want, alias.LogValue().String())
		})
	}
}
