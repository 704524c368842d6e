package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/transfer-core/internal/application"
	"github.com/DanielPopoola/transfer-core/internal/application/services"
	"github.com/DanielPopoola/transfer-core/internal/domain"
	"github.com/DanielPopoola/transfer-core/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/transfer-core/internal/infrastructure/persistence/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ServicesTestSuite struct {
	suite.Suite
	testDB    *testhelpers.TestDatabase
	companies *services.CompanyService
	transfers *services.TransferService
	now       time.Time
}

func TestServicesSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	suite.Run(t, new(ServicesTestSuite))
}

// SetupSuite runs once before all tests
func (suite *ServicesTestSuite) SetupSuite() {
	suite.testDB = testhelpers.SetupTestDatabase(suite.T())
}

// TearDownSuite runs once after all tests
func (suite *ServicesTestSuite) TearDownSuite() {
	suite.testDB.Cleanup(suite.T())
}

// SetupTest runs before each test
func (suite *ServicesTestSuite) SetupTest() {
	suite.testDB.CleanTables(suite.T())
	suite.now = time.Now().UTC().Truncate(time.Microsecond)

	clock := services.WithClock(func() time.Time { return suite.now })
	companyRepo := postgres.NewCompanyRepository(suite.testDB.DB)
	transferRepo := postgres.NewTransferRepository(suite.testDB.DB)
	tx := postgres.NewTransactionCoordinator(suite.testDB.DB)

	suite.companies = services.NewCompanyService(companyRepo, testhelpers.Logger(), clock)
	suite.transfers = services.NewTransferService(companyRepo, transferRepo, tx, testhelpers.Logger(), clock)
}

func (suite *ServicesTestSuite) register(companyType string) *domain.Company {
	company, err := suite.companies.Register(context.Background(), services.RegisterCompanyCommand{
		Cuit:         testhelpers.RandomCuit(suite.T()).String(),
		BusinessName: "Registered " + companyType,
		Type:         companyType,
	})
	require.NoError(suite.T(), err)
	return company
}

func (suite *ServicesTestSuite) transfer(companyID, amount string) (*domain.Transfer, error) {
	return suite.transfers.Create(context.Background(), services.CreateTransferCommand{
		CompanyID:     companyID,
		Amount:        amount,
		Currency:      "ARS",
		DebitAccount:  testhelpers.CbuGalicia,
		CreditAccount: testhelpers.AliasPayroll,
	})
}

func (suite *ServicesTestSuite) Test_Register_ThenLookup() {
	ctx := context.Background()
	t := suite.T()
	company := suite.register("CORPORATE")

	byID, err := suite.companies.Get(ctx, company.ID())
	require.NoError(t, err)
	assert.Equal(t, company.BusinessName(), byID.BusinessName())

	byCuit, err := suite.companies.GetByCuit(ctx, company.Cuit().Normalized())
	require.NoError(t, err)
	assert.Equal(t, company.ID(), byCuit.ID())

	_, err = suite.companies.Register(ctx, services.RegisterCompanyCommand{
		Cuit:         company.Cuit().String(),
		BusinessName: "Copycat SA",
		Type:         "PYME",
	})
	assertServiceCode(t, err, application.ErrCodeConflict)
}

func (suite *ServicesTestSuite) Test_Transfer_DailyLimitAcrossCalls() {
	ctx := context.Background()
	t := suite.T()
	suite.now = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	company := suite.register("PYME")

	_, err := suite.transfer(company.ID(), "30000")
	require.NoError(t, err)
	_, err = suite.transfer(company.ID(), "20000")
	require.NoError(t, err)

	_, err = suite.transfer(company.ID(), "0.01")
	assertServiceCode(t, err, application.ErrCodeLimitExceeded)

	// a new day resets the daily window but not the monthly one
	suite.now = suite.now.Add(24 * time.Hour)
	_, err = suite.transfer(company.ID(), "0.01")
	require.NoError(t, err)

	transfers, err := suite.transfers.ListByCompany(ctx, company.ID())
	require.NoError(t, err)
	assert.Len(t, transfers, 3)
}

func (suite *ServicesTestSuite) Test_Transfer_ConcurrentRequestsRespectLimit() {
	t := suite.T()
	company := suite.register("PYME")

	const attempts = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		limited   int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.transfer(company.ID(), "10000")

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
				return
			}
			if svcErr, ok := application.IsServiceError(err); ok && svcErr.Code == application.ErrCodeLimitExceeded {
				limited++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, succeeded)
	assert.Equal(t, attempts-5, limited)

	quote, err := suite.transfers.Quote(context.Background(), company.ID(), "1", "ARS")
	require.NoError(t, err)
	assert.True(t, quote.DailyRemaining.IsZero())
	assert.False(t, quote.Allowed)
}

func (suite *ServicesTestSuite) Test_Reports_PreviousMonth() {
	ctx := context.Background()
	t := suite.T()

	registeredAt := suite.now
	suite.now = services.StartOfMonth(registeredAt).AddDate(0, -1, 3)
	lastMonth := suite.register("CORPORATE")
	_, err := suite.transfer(lastMonth.ID(), "1000")
	require.NoError(t, err)

	suite.now = registeredAt
	thisMonth := suite.register("PYME")
	_, err = suite.transfer(thisMonth.ID(), "1000")
	require.NoError(t, err)

	from, to := services.PreviousMonth(suite.now)

	joined, err := suite.companies.JoinedBetween(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, joined, 1)
	assert.Equal(t, lastMonth.ID(), joined[0].ID())

	active, err := suite.companies.WithTransfersBetween(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, lastMonth.ID(), active[0].ID())
}
