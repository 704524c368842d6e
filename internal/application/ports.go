package application

import (
	"context"
	"errors"
	"time"

	"github.com/DanielPopoola/transfer-core/internal/domain"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrDuplicateCuit   = errors.New("a company with this CUIT already exists")
)

// CompanyRepository is the port for company persistence.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	FindByID(ctx context.Context, id string) (*domain.Company, error)
	// FindByIDForUpdate locks the company row until the surrounding
	// transaction ends.
	FindByIDForUpdate(ctx context.Context, id string) (*domain.Company, error)
	FindByCuit(ctx context.Context, cuit domain.Cuit) (*domain.Company, error)
	FindJoinedBetween(ctx context.Context, from, to time.Time) ([]*domain.Company, error)
	FindWithTransfersBetween(ctx context.Context, from, to time.Time) ([]*domain.Company, error)
}

// TransferRepository is the port for transfer persistence.
type TransferRepository interface {
	Create(ctx context.Context, transfer *domain.Transfer) error
	FindByCompanyID(ctx context.Context, companyID string) ([]*domain.Transfer, error)
	// SumSince totals the amounts a company moved in cur at or after since.
	SumSince(ctx context.Context, companyID string, cur domain.Currency, since time.Time) (domain.Money, error)
}

// TransactionManager runs fn with repositories bound to one transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type TransactionManager interface {
	WithTransaction(
		ctx context.Context,
		fn func(ctx context.Context, companies CompanyRepository, transfers TransferRepository) error,
	) error
}
