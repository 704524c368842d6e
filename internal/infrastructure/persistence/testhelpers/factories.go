package testhelpers

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/DanielPopoola/transfer-core/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Account fixtures with valid control digits.
const (
	CbuGalicia   = "0070590940090418135232"
	CbuFrances   = "0170590940090418135212"
	CvuWallet    = "0000003100010000000002"
	CvuWallet2   = "0001003100010000000092"
	AliasPayroll = "empresa.sueldos"
)

var weights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// RandomCuit builds a CUIT with a random document number and a matching
// check digit.
func RandomCuit(t *testing.T) domain.Cuit {
	t.Helper()

	digits := fmt.Sprintf("30%08d", rand.IntN(100_000_000))
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	check := 11 - sum%11
	switch check {
	case 11:
		check = 0
	case 10:
		check = 9
	}

	cuit, err := domain.NewCuit(fmt.Sprintf("%s%d", digits, check))
	require.NoError(t, err)
	return cuit
}

// NewCompany builds an unsaved company of the given type.
func NewCompany(t *testing.T, companyType domain.CompanyType, joinedAt time.Time) *domain.Company {
	t.Helper()

	company, err := domain.NewCompany(
		companyType,
		uuid.New().String(),
		RandomCuit(t),
		"Test Company "+uuid.New().String()[:8],
		joinedAt,
	)
	require.NoError(t, err)
	return company
}

// NewTransfer builds an unsaved ARS transfer from CbuGalicia to CvuWallet.
func NewTransfer(t *testing.T, company *domain.Company, amount string, createdAt time.Time) *domain.Transfer {
	t.Helper()

	money := domain.MustMoney(amount, domain.CurrencyARS)
	fee, err := company.CalculateTransferFee(money)
	require.NoError(t, err)

	debit, err := domain.NewCbuAccount(CbuGalicia)
	require.NoError(t, err)
	credit, err := domain.NewCvuAccount(CvuWallet)
	require.NoError(t, err)

	transfer, err := domain.NewTransfer(uuid.New().String(), company.ID(), money, fee, debit, credit, createdAt)
	require.NoError(t, err)
	return transfer
}
