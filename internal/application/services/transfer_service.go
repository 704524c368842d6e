package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/transfer-core/internal/application"
	"github.com/DanielPopoola/transfer-core/internal/domain"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// TransferQuote previews a transfer without persisting it.
type TransferQuote struct {
	Amount           domain.Money
	Fee              domain.Money
	Total            domain.Money
	DailyRemaining   domain.Money
	MonthlyRemaining domain.Money
	Allowed          bool
}

type TransferService struct {
	companies application.CompanyRepository
	transfers application.TransferRepository
	tx        application.TransactionManager
	validate  *validator.Validate
	logger    *slog.Logger
	now       func() time.Time
}

func NewTransferService(
	companies application.CompanyRepository,
	transfers application.TransferRepository,
	tx application.TransactionManager,
	logger *slog.Logger,
	opts ...Option,
) *TransferService {
	o := applyOptions(opts)
	return &TransferService{
		companies: companies,
		transfers: transfers,
		tx:        tx,
		validate:  validator.New(),
		logger:    logger,
		now:       o.now,
	}
}

// Create parses the command, checks the company's limits against its usage
// for the current day and month, and persists the transfer with its fee.
//
// The company row is locked for the whole check-and-insert so concurrent
// transfers of one company cannot both pass the same limit.
func (s *TransferService) Create(ctx context.Context, cmd CreateTransferCommand) (*domain.Transfer, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, application.NewInvalidInputError(err)
	}

	amount, err := domain.ParseMoney(cmd.Amount, domain.Currency(cmd.Currency))
	if err != nil {
		return nil, application.NewInvalidInputError(err)
	}
	debit, err := domain.ParseAccount(cmd.DebitAccount)
	if err != nil {
		return nil, application.NewInvalidInputError(fmt.Errorf("debit account: %w", err))
	}
	credit, err := domain.ParseAccount(cmd.CreditAccount)
	if err != nil {
		return nil, application.NewInvalidInputError(fmt.Errorf("credit account: %w", err))
	}

	now := s.now().UTC()
	var transfer *domain.Transfer

	err = s.tx.WithTransaction(ctx, func(
		ctx context.Context,
		companies application.CompanyRepository,
		transfers application.TransferRepository,
	) error {
		company, err := companies.FindByIDForUpdate(ctx, cmd.CompanyID)
		if err != nil {
			return err
		}

		dailyUsed, monthlyUsed, err := usage(ctx, transfers, company.ID(), amount.Currency(), now)
		if err != nil {
			return err
		}

		if !company.CanTransfer(amount, dailyUsed, monthlyUsed) {
			s.logger.Warn("transfer rejected by limits",
				"company", company,
				"amount", amount.String(),
				"daily_used", dailyUsed.String(),
				"monthly_used", monthlyUsed.String(),
			)
			return application.NewLimitExceededError(fmt.Sprintf(
				"transfer of %s %s exceeds the limits for a %s company",
				amount.Currency(), amount, company.Type(),
			))
		}

		fee, err := company.CalculateTransferFee(amount)
		if err != nil {
			return application.NewInvalidInputError(err)
		}

		t, err := domain.NewTransfer(uuid.New().String(), company.ID(), amount, fee, debit, credit, now)
		if err != nil {
			return application.NewInvalidInputError(err)
		}

		if err := transfers.Create(ctx, t); err != nil {
			return err
		}
		transfer = t
		return nil
	})
	if err != nil {
		return nil, toServiceError(err)
	}

	s.logger.Info("transfer created", "transfer", transfer)
	return transfer, nil
}

func (s *TransferService) ListByCompany(ctx context.Context, companyID string) ([]*domain.Transfer, error) {
	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		return nil, toServiceError(err)
	}

	transfers, err := s.transfers.FindByCompanyID(ctx, companyID)
	if err != nil {
		return nil, toServiceError(err)
	}
	return transfers, nil
}

// Quote computes the fee and the remaining daily and monthly headroom for a
// prospective transfer.
func (s *TransferService) Quote(ctx context.Context, companyID, rawAmount, currency string) (*TransferQuote, error) {
	amount, err := domain.ParseMoney(rawAmount, domain.Currency(currency))
	if err != nil {
		return nil, application.NewInvalidInputError(err)
	}

	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, toServiceError(err)
	}

	fee, err := company.CalculateTransferFee(amount)
	if err != nil {
		return nil, application.NewInvalidInputError(err)
	}
	total, err := amount.Add(fee)
	if err != nil {
		return nil, application.NewInvalidInputError(err)
	}

	dailyUsed, monthlyUsed, err := concurrentUsage(ctx, s.transfers, company.ID(), amount.Currency(), s.now().UTC())
	if err != nil {
		return nil, toServiceError(err)
	}

	return &TransferQuote{
		Amount:           amount,
		Fee:              fee,
		Total:            total,
		DailyRemaining:   remaining(company.DailyLimit(amount.Currency()), dailyUsed),
		MonthlyRemaining: remaining(company.MonthlyLimit(amount.Currency()), monthlyUsed),
		Allowed:          company.CanTransfer(amount, dailyUsed, monthlyUsed),
	}, nil
}

func usage(
	ctx context.Context,
	transfers application.TransferRepository,
	companyID string,
	cur domain.Currency,
	now time.Time,
) (domain.Money, domain.Money, error) {
	daily, err := transfers.SumSince(ctx, companyID, cur, StartOfDay(now))
	if err != nil {
		return domain.Money{}, domain.Money{}, err
	}
	monthly, err := transfers.SumSince(ctx, companyID, cur, StartOfMonth(now))
	if err != nil {
		return domain.Money{}, domain.Money{}, err
	}
	return daily, monthly, nil
}

// concurrentUsage runs both sums in parallel. Only safe on a pool-backed
// repository; a pgx.Tx serves one query at a time.
func concurrentUsage(
	ctx context.Context,
	transfers application.TransferRepository,
	companyID string,
	cur domain.Currency,
	now time.Time,
) (domain.Money, domain.Money, error) {
	var daily, monthly domain.Money

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		daily, err = transfers.SumSince(gctx, companyID, cur, StartOfDay(now))
		return err
	})
	g.Go(func() error {
		var err error
		monthly, err = transfers.SumSince(gctx, companyID, cur, StartOfMonth(now))
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Money{}, domain.Money{}, err
	}
	return daily, monthly, nil
}

// remaining is limit minus used, floored at zero.
func remaining(limit, used domain.Money) domain.Money {
	left, err := limit.Subtract(used)
	if err != nil {
		return limit.Zero()
	}
	return left
}
