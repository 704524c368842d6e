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

var joinedAt = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func newCompany(t *testing.T, companyType domain.CompanyType) *domain.Company {
	t.Helper()
	company, err := domain.NewCompany(companyType, "company-1", domain.MustCuit("30-12345678-1"), "Acme SA", joinedAt)
	require.NoError(t, err)
	return company
}

func TestNewCompany(t *testing.T) {
	t.Run("binds PYME policies", func(t *testing.T) {
		company := newCompany(t, domain.CompanyTypePyme)

		assert.Equal(t, "company-1", company.ID())
		assert.Equal(t, "30-12345678-1", company.Cuit().String())
		assert.Equal(t, "Acme SA", company.BusinessName())
		assert.Equal(t, joinedAt, company.JoinedAt())
		assert.Equal(t, domain.CompanyTypePyme, company.Type())
		assert.Equal(t, domain.FeePolicyFlatRate, company.FeePolicy())
		assert.Equal(t, domain.LimitPolicyPyme, company.LimitPolicy())
	})

	t.Run("binds CORPORATE policies", func(t *testing.T) {
		company := newCompany(t, domain.CompanyTypeCorporate)

		assert.Equal(t, domain.FeePolicyTiered, company.FeePolicy())
		assert.Equal(t, domain.LimitPolicyCorporate, company.LimitPolicy())
	})

	t.Run("trims the business name", func(t *testing.T) {
		company, err := domain.NewCompany(domain.CompanyTypePyme, "c", domain.MustCuit("20-12345678-6"), "  Kiosco Uno  ", joinedAt)

		require.NoError(t, err)
		assert.Equal(t, "Kiosco Uno", company.BusinessName())
	})

	tests := []struct {
		name        string
		companyType domain.CompanyType
		id          string
		cuit        domain.Cuit
		business    string
		joined      time.Time
		wantErr     error
	}{
		{"unknown type", "STARTUP", "c", domain.MustCuit("30-12345678-1"), "Acme", joinedAt, domain.ErrUnknownVariant},
		{"missing id", domain.CompanyTypePyme, " ", domain.MustCuit("30-12345678-1"), "Acme", joinedAt, domain.ErrMissingRequiredField},
		{"zero cuit", domain.CompanyTypePyme, "c", domain.Cuit{}, "Acme", joinedAt, domain.ErrMissingRequiredField},
		{"blank business name", domain.CompanyTypePyme, "c", domain.MustCuit("30-12345678-1"), "   ", joinedAt, domain.ErrMissingRequiredField},
		{"long business name", domain.CompanyTypePyme, "c", domain.MustCuit("30-12345678-1"), strings.Repeat("x", 256), joinedAt, domain.ErrInvalidFormat},
		{"zero joined at", domain.CompanyTypePyme, "c", domain.MustCuit("30-12345678-1"), "Acme", time.Time{}, domain.ErrMissingRequiredField},
	}

	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := domain.NewCompany(tt.companyType, tt.id, tt.cuit, tt.business, tt.joined)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}

	t.Run("accepts a 255 character business name", func(t *testing.T) {
		_, err := domain.NewCompany(domain.CompanyTypePyme, "c", domain.MustCuit("30-12345678-1"), strings.Repeat("x", 255), joinedAt)
		assert.NoError(t, err)
	})
}

func TestReconstituteCompany(t *testing.T) {
	t.Run("rebuilds from stored columns", func(t *testing.T) {
		company, err := domain.ReconstituteCompany("c-9", "30712345671", "Grande SA", "CORPORATE", joinedAt)

		require.NoError(t, err)
		assert.Equal(t, "30-71234567-1", company.Cuit().String())
		assert.Equal(t, domain.CompanyTypeCorporate, company.Type())
		assert.Equal(t, domain.FeePolicyTiered, company.FeePolicy())
	})

	t.Run("rejects a corrupted cuit", func(t *testing.T) {
		_, err := domain.ReconstituteCompany("c-9", "30712345670", "Grande SA", "CORPORATE", joinedAt)
		assert.True(t, errors.Is(err, domain.ErrInvalidChecksum))
	})

	t.Run("rejects an unknown discriminant", func(t *testing.T) {
		_, err := domain.ReconstituteCompany("c-9", "30712345671", "Grande SA", "COOP", joinedAt)
		assert.True(t, errors.Is(err, domain.ErrUnknownVariant))
	})
}

func TestCompany_Fees(t *testing.T) {
	pyme := newCompany(t, domain.CompanyTypePyme)
	corporate := newCompany(t, domain.CompanyTypeCorporate)

	fee, err := pyme.CalculateTransferFee(ars("1000"))
	require.NoError(t, err)
	assert.Equal(t, "50.00", fee.String())

	fee, err = corporate.CalculateTransferFee(ars("50000"))
	require.NoError(t, err)
	assert.Equal(t, "250.00", fee.String())

	assert.Equal(t, "100000.00", pyme.MaxTransferAmount(domain.CurrencyARS).String())
	assert.Equal(t, "1000000.00", corporate.MaxTransferAmount(domain.CurrencyARS).String())
	assert.Equal(t, "50000.00", pyme.DailyLimit(domain.CurrencyARS).String())
	assert.Equal(t, "10000000.00", corporate.MonthlyLimit(domain.CurrencyARS).String())
}

func TestCompany_CanTransfer(t *testing.T) {
	t.Run("PYME delegates to its limits", func(t *testing.T) {
		pyme := newCompany(t, domain.CompanyTypePyme)

		assert.True(t, pyme.CanTransfer(ars("1"), ars("49999"), ars("499999")))
		assert.False(t, pyme.CanTransfer(ars("1"), ars("50000"), ars("100000")))
	})

	t.Run("rejects amounts above the fee policy maximum first", func(t *testing.T) {
		corporate := newCompany(t, domain.CompanyTypeCorporate)

		assert.True(t, corporate.CanTransfer(ars("1000000"), ars("0"), ars("0")))
		assert.False(t, corporate.CanTransfer(ars("1000000.01"), ars("0"), ars("0")))
	})

	t.Run("PYME per-transfer maximum is above its daily cap", func(t *testing.T) {
		pyme := newCompany(t, domain.CompanyTypePyme)

		assert.False(t, pyme.CanTransfer(ars("60000"), ars("0"), ars("0")))
		assert.False(t, pyme.CanTransfer(ars("100000.01"), ars("0"), ars("0")))
	})
}

func TestCompanyType_Features(t *testing.T) {
	pyme := newCompany(t, domain.CompanyTypePyme)
	corporate := newCompany(t, domain.CompanyTypeCorporate)

	assert.True(t, pyme.IsEligibleForGovernmentSupport())
	assert.False(t, corporate.IsEligibleForGovernmentSupport())

	assert.False(t, pyme.RequiresComplianceReporting())
	assert.True(t, corporate.RequiresComplianceReporting())

	assert.Len(t, pyme.RequiredDocuments(), 4)
	assert.Contains(t, pyme.RequiredDocuments(), "PYME Certificate")
	assert.Len(t, corporate.RequiredDocuments(), 6)
	assert.Contains(t, corporate.RequiredDocuments(), "Audited Financial Statements")

	t.Run("documents are returned by copy", func(t *testing.T) {
		docs := pyme.RequiredDocuments()
		docs[0] = "tampered"

		assert.Equal(t, "CUIT Certificate", pyme.RequiredDocuments()[0])
	})

	t.Run("parses stored discriminants", func(t *testing.T) {
		ct, err := domain.ParseCompanyType("pyme")
		require.NoError(t, err)
		assert.Equal(t, domain.CompanyTypePyme, ct)

		_, err = domain.ParseCompanyType("")
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeUnknownVariant))
	})
}

func TestCompany_LogValueMasksCuit(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("registered", "company", newCompany(t, domain.CompanyTypePyme))

	assert.Contains(t, buf.String(), "30-****5678-1")
	assert.NotContains(t, buf.String(), "30-12345678-1")
	assert.NotContains(t, buf.String(), "30123456781")
}
