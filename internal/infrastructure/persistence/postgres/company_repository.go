package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanielPopoola/transfer-core/internal/application"
	"github.com/DanielPopoola/transfer-core/internal/domain"
	"github.com/DanielPopoola/transfer-core/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	companyColumns = `id, cuit, business_name, type, joined_at`
	cuitConstraint = "companies_cuit_key"
)

var _ application.CompanyRepository = (*CompanyRepository)(nil)

type CompanyRepository struct {
	q persistence.Executor
}

func NewCompanyRepository(db *persistence.DB) *CompanyRepository {
	return &CompanyRepository{q: db.Pool}
}

func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	query := `
		INSERT INTO companies (id, cuit, business_name, type, joined_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	m := toCompanyModel(company)
	_, err := r.q.Exec(ctx, query, m.ID, m.Cuit, m.BusinessName, m.Type, m.JoinedAt)
	if err != nil {
		if constraint, ok := persistence.UniqueViolation(err); ok && constraint == cuitConstraint {
			return fmt.Errorf("create company %s: %w", company.Cuit().Masked(), application.ErrDuplicateCuit)
		}
		return fmt.Errorf("failed to create company: %w", err)
	}

	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, application.ErrCompanyNotFound
	}

	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return scanCompany(r.q.QueryRow(ctx, query, id))
}

// FindByIDForUpdate locks the company row until the surrounding transaction
// ends. Transfers for one company serialize on this lock.
func (r *CompanyRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Company, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, application.ErrCompanyNotFound
	}

	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1 FOR UPDATE`
	return scanCompany(r.q.QueryRow(ctx, query, id))
}

func (r *CompanyRepository) FindByCuit(ctx context.Context, cuit domain.Cuit) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE cuit = $1`
	return scanCompany(r.q.QueryRow(ctx, query, cuitToColumn(cuit)))
}

func (r *CompanyRepository) FindJoinedBetween(ctx context.Context, from, to time.Time) ([]*domain.Company, error) {
	query := `
		SELECT ` + companyColumns + `
		FROM companies
		WHERE joined_at >= $1 AND joined_at < $2
		ORDER BY joined_at ASC
	`

	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("query companies joined between: %w", err)
	}
	return collectCompanies(rows)
}

func (r *CompanyRepository) FindWithTransfersBetween(ctx context.Context, from, to time.Time) ([]*domain.Company, error) {
	query := `
		SELECT ` + companyColumns + `
		FROM companies c
		WHERE EXISTS (
			SELECT 1 FROM transfers t
			WHERE t.company_id = c.id
			  AND t.created_at >= $1
			  AND t.created_at < $2
		)
		ORDER BY c.business_name ASC
	`

	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("query companies with transfers between: %w", err)
	}
	return collectCompanies(rows)
}

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var m CompanyModel
	err := row.Scan(&m.ID, &m.Cuit, &m.BusinessName, &m.Type, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, application.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to scan company: %w", err)
	}
	return toCompanyDomain(m)
}

func collectCompanies(rows pgx.Rows) ([]*domain.Company, error) {
	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Company, error) {
		var m CompanyModel
		if err := row.Scan(&m.ID, &m.Cuit, &m.BusinessName, &m.Type, &m.JoinedAt); err != nil {
			return nil, err
		}
		return toCompanyDomain(m)
	})
	if err != nil {
		return nil, fmt.Errorf("scan companies: %w", err)
	}
	return results, nil
}
