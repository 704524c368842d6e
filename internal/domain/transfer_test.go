package domain_test

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/DanielPopoola/transfer-core/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransfer(t *testing.T) {
	debit := domain.MustCbu("2850590940090418135262")
	credit := domain.MustAlias("proveedor.sa")
	createdAt := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates a transfer", func(t *testing.T) {
		transfer, err := domain.NewTransfer("tr-1", "company-1", ars("1000"), ars("50"), debit, credit, createdAt)

		require.NoError(t, err)
		assert.Equal(t, "tr-1", transfer.ID())
		assert.Equal(t, "company-1", transfer.CompanyID())
		assert.Equal(t, "1000.00", transfer.Amount().String())
		assert.Equal(t, "50.00", transfer.Fee().String())
		assert.True(t, domain.AccountsEqual(debit, transfer.DebitAccount()))
		assert.True(t, domain.AccountsEqual(credit, transfer.CreditAccount()))
		assert.Equal(t, createdAt, transfer.CreatedAt())

		total, err := transfer.Total()
		require.NoError(t, err)
		assert.Equal(t, "1050.00", total.String())
	})

	t.Run("accepts a zero fee", func(t *testing.T) {
		_, err := domain.NewTransfer("tr-1", "company-1", ars("5"), ars("0"), debit, credit, createdAt)
		assert.NoError(t, err)
	})

	tests := []struct {
		name      string
		id        string
		companyID string
		amount    domain.Money
		fee       domain.Money
		debit     domain.Account
		credit    domain.Account
		wantErr   error
	}{
		{"missing id", "", "company-1", ars("10"), ars("1"), debit, credit, domain.ErrMissingRequiredField},
		{"missing company", "tr-1", "  ", ars("10"), ars("1"), debit, credit, domain.ErrMissingRequiredField},
		{"zero amount", "tr-1", "company-1", ars("0"), ars("1"), debit, credit, domain.ErrInvalidAmount},
		{"fee in another currency", "tr-1", "company-1", ars("10"), domain.MustMoney("1", domain.CurrencyUSD), debit, credit, domain.ErrCurrencyMismatch},
		{"missing debit", "tr-1", "company-1", ars("10"), ars("1"), nil, credit, domain.ErrMissingRequiredField},
		{"missing credit", "tr-1", "company-1", ars("10"), ars("1"), debit, nil, domain.ErrMissingRequiredField},
		{"same account", "tr-1", "company-1", ars("10"), ars("1"), debit, domain.MustCbu("2850-5909400904181352-62"), domain.ErrSameAccount},
	}

	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := domain.NewTransfer(tt.id, tt.companyID, tt.amount, tt.fee, tt.debit, tt.credit, createdAt)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestTransfer_LogValueMasksAccounts(t *testing.T) {
	transfer, err := domain.NewTransfer(
		"tr-1",
		"company-1",
		ars("1000"),
		ars("50"),
		domain.MustCbu("2850590940090418135262"),
		domain.MustCvu("0000003100010000000002"),
		time.Now(),
	)
	require.NoError(t, err)

	var buf strings.Builder
	slog.New(slog.NewJSONHandler(&buf, nil)).Info("transfer created", "transfer", transfer)

	out := buf.String()
	assert.Contains(t, out, "285****************262")
	assert.Contains(t, out, "000****************002")
	assert.NotContains(t, out, "2850590940090418135262")
	assert.NotContains(t, out, "0000003100010000000002")
}
