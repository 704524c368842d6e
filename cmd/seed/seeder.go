package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/transfer-core/internal/application"
	"github.com/DanielPopoola/transfer-core/internal/application/services"
	"github.com/DanielPopoola/transfer-core/internal/infrastructure/persistence"
	"github.com/DanielPopoola/transfer-core/internal/infrastructure/persistence/postgres"
)

var errAlreadySeeded = errors.New("sample data already present")

const reportLocale = "es-AR"

type sampleCompany struct {
	cuit         string
	businessName string
	companyType  string
	joined       func(now time.Time) time.Time
}

type sampleTransfer struct {
	company int
	amount  string
	debit   string
	credit  string
	created func(now time.Time) time.Time
}

func daysAgo(days int) func(time.Time) time.Time {
	return func(now time.Time) time.Time { return now.AddDate(0, 0, -days) }
}

// monthsAndDaysAgo goes back whole calendar months first, then days.
func monthsAndDaysAgo(months, days int) func(time.Time) time.Time {
	return func(now time.Time) time.Time { return now.AddDate(0, -months, -days) }
}

var sampleCompanies = []sampleCompany{
	{"20-12345678-6", "Tech Solutions SA", "CORPORATE", daysAgo(15)},
	{"30-71234567-1", "Small Business Inc", "PYME", daysAgo(10)},
	{"30-11223344-6", "Enterprise Corp", "CORPORATE", monthsAndDaysAgo(2, 5)},
	{"23-55667788-3", "Local Services Ltd", "PYME", daysAgo(5)},
	{"33-99887766-6", "Global Industries", "CORPORATE", monthsAndDaysAgo(2, 10)},
}

var sampleTransfers = []sampleTransfer{
	{0, "15000.50", "0170590940090418135212", "2850590940090418135262", daysAgo(12)},
	{0, "25000.00", "0170590940090418135212", "0000003100010000000002", daysAgo(8)},
	{1, "8500.75", "0720590940090418135232", "proveedores.sur", daysAgo(20)},
	{2, "45000.00", "0070590940090418135232", "0170590940090418135212", monthsAndDaysAgo(2, 3)},
	{3, "12000.25", "0001003100010000000092", "0200590940090418135262", daysAgo(3)},
	{0, "33000.00", "0170590940090418135212", "0340590940090418135202", daysAgo(2)},
}

// seeder drives the application services with a movable clock so that
// sample rows get historical timestamps while still passing every limit and
// fee rule.
type seeder struct {
	at        time.Time
	now       time.Time
	companies *services.CompanyService
	transfers *services.TransferService
	logger    *slog.Logger
}

func newSeeder(db *persistence.DB, logger *slog.Logger) *seeder {
	s := &seeder{now: time.Now().UTC(), logger: logger}
	s.at = s.now

	clock := services.WithClock(func() time.Time { return s.at })
	companyRepo := postgres.NewCompanyRepository(db)
	transferRepo := postgres.NewTransferRepository(db)
	tx := postgres.NewTransactionCoordinator(db)

	s.companies = services.NewCompanyService(companyRepo, logger, clock)
	s.transfers = services.NewTransferService(companyRepo, transferRepo, tx, logger, clock)
	return s
}

func (s *seeder) seed(ctx context.Context) error {
	_, err := s.companies.GetByCuit(ctx, sampleCompanies[0].cuit)
	if err == nil {
		return errAlreadySeeded
	}
	if svcErr, ok := application.IsServiceError(err); !ok || svcErr.Code != application.ErrCodeNotFound {
		return fmt.Errorf("check existing sample data: %w", err)
	}

	ids := make([]string, len(sampleCompanies))
	for i, sample := range sampleCompanies {
		s.at = sample.joined(s.now)
		company, err := s.companies.Register(ctx, services.RegisterCompanyCommand{
			Cuit:         sample.cuit,
			BusinessName: sample.businessName,
			Type:         sample.companyType,
		})
		if err != nil {
			return fmt.Errorf("register %s: %w", sample.businessName, err)
		}
		ids[i] = company.ID()
	}
	s.logger.Info("inserted companies", "count", len(ids))

	for _, sample := range sampleTransfers {
		s.at = sample.created(s.now)
		_, err := s.transfers.Create(ctx, services.CreateTransferCommand{
			CompanyID:     ids[sample.company],
			Amount:        sample.amount,
			Currency:      "ARS",
			DebitAccount:  sample.debit,
			CreditAccount: sample.credit,
		})
		if err != nil {
			return fmt.Errorf("transfer for %s: %w", sampleCompanies[sample.company].businessName, err)
		}
	}
	s.logger.Info("inserted transfers", "count", len(sampleTransfers))

	s.at = s.now
	return nil
}

// report logs the previous calendar month's joins and active companies.
func (s *seeder) report(ctx context.Context) error {
	from, to := services.PreviousMonth(s.now)

	joined, err := s.companies.JoinedBetween(ctx, from, to)
	if err != nil {
		return fmt.Errorf("companies joined last month: %w", err)
	}
	s.logger.Info("companies joined last month",
		"from", from.Format(time.DateOnly),
		"to", to.Format(time.DateOnly),
		"count", len(joined),
	)
	for _, company := range joined {
		s.logger.Info("joined", "company", company, "joined_at", company.JoinedAt().Format(time.DateOnly))
	}

	active, err := s.companies.WithTransfersBetween(ctx, from, to)
	if err != nil {
		return fmt.Errorf("companies with transfers last month: %w", err)
	}
	s.logger.Info("companies with transfers last month", "count", len(active))

	for _, company := range active {
		quote, err := s.transfers.Quote(ctx, company.ID(), "1", "ARS")
		if err != nil {
			return fmt.Errorf("quote for %s: %w", company.ID(), err)
		}
		s.logger.Info("active",
			"company", company,
			"daily_remaining", quote.DailyRemaining.Format(reportLocale),
			"monthly_remaining", quote.MonthlyRemaining.Format(reportLocale),
		)
	}

	return nil
}
