package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/DanielPopoola/transfer-core/internal/application"
	"github.com/DanielPopoola/transfer-core/internal/domain"
	"github.com/DanielPopoola/transfer-core/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var _ application.TransferRepository = (*TransferRepository)(nil)

type TransferRepository struct {
	q persistence.Executor
}

func NewTransferRepository(db *persistence.DB) *TransferRepository {
	return &TransferRepository{q: db.Pool}
}

func (r *TransferRepository) Create(ctx context.Context, transfer *domain.Transfer) error {
	query := `
		INSERT INTO transfers (
			id, company_id, amount_cents, fee_cents, currency,
			debit_account_kind, debit_account, credit_account_kind, credit_account,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	m := toTransferModel(transfer)
	_, err := r.q.Exec(ctx, query,
		m.ID,
		m.CompanyID,
		m.AmountCents,
		m.FeeCents,
		m.Currency,
		m.DebitAccountKind,
		m.DebitAccount,
		m.CreditAccountKind,
		m.CreditAccount,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transfer: %w", err)
	}

	return nil
}

// FindByCompanyID returns the company's transfers, newest first.
func (r *TransferRepository) FindByCompanyID(ctx context.Context, companyID string) ([]*domain.Transfer, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, nil
	}

	query := `
		SELECT id, company_id, amount_cents, fee_cents, currency,
		       debit_account_kind, debit_account, credit_account_kind, credit_account,
		       created_at
		FROM transfers
		WHERE company_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("query transfers by company_id: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Transfer, error) {
		var m TransferModel
		err := row.Scan(
			&m.ID, &m.CompanyID, &m.AmountCents, &m.FeeCents, &m.Currency,
			&m.DebitAccountKind, &m.DebitAccount, &m.CreditAccountKind, &m.CreditAccount,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		return toTransferDomain(m)
	})
	if err != nil {
		return nil, fmt.Errorf("scan transfers: %w", err)
	}
	return results, nil
}

// SumSince totals the amounts, fees excluded, the company transferred in cur
// from since onwards.
func (r *TransferRepository) SumSince(
	ctx context.Context,
	companyID string,
	cur domain.Currency,
	since time.Time,
) (domain.Money, error) {
	query := `
		SELECT COALESCE(SUM(amount_cents), 0)::BIGINT
		FROM transfers
		WHERE company_id = $1 AND currency = $2 AND created_at >= $3
	`

	var cents int64
	if err := r.q.QueryRow(ctx, query, companyID, string(cur), since).Scan(&cents); err != nil {
		return domain.Money{}, fmt.Errorf("sum transfers since %s: %w", since.Format(time.RFC3339), err)
	}
	return moneyFromColumn(cents, string(cur))
}
