package mocks

import (
	"context"
	"time"

	"github.com/DanielPopoola/transfer-core/internal/application"
	"github.com/DanielPopoola/transfer-core/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockCompanyRepository struct {
	mock.Mock
}

func NewMockCompanyRepository(t mock.TestingT) *MockCompanyRepository {
	m := &MockCompanyRepository{}
	m.Test(t)
	return m
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	args := m.Called(ctx, id)
	return company(args, 0), args.Error(1)
}

func (m *MockCompanyRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Company, error) {
	args := m.Called(ctx, id)
	return company(args, 0), args.Error(1)
}

func (m *MockCompanyRepository) FindByCuit(ctx context.Context, cuit domain.Cuit) (*domain.Company, error) {
	args := m.Called(ctx, cuit)
	return company(args, 0), args.Error(1)
}

func (m *MockCompanyRepository) FindJoinedBetween(ctx context.Context, from, to time.Time) ([]*domain.Company, error) {
	args := m.Called(ctx, from, to)
	companies, _ := args.Get(0).([]*domain.Company)
	return companies, args.Error(1)
}

func (m *MockCompanyRepository) FindWithTransfersBetween(ctx context.Context, from, to time.Time) ([]*domain.Company, error) {
	args := m.Called(ctx, from, to)
	companies, _ := args.Get(0).([]*domain.Company)
	return companies, args.Error(1)
}

type MockTransferRepository struct {
	mock.Mock
}

func NewMockTransferRepository(t mock.TestingT) *MockTransferRepository {
	m := &MockTransferRepository{}
	m.Test(t)
	return m
}

func (m *MockTransferRepository) Create(ctx context.Context, transfer *domain.Transfer) error {
	args := m.Called(ctx, transfer)
	return args.Error(0)
}

func (m *MockTransferRepository) FindByCompanyID(ctx context.Context, companyID string) ([]*domain.Transfer, error) {
	args := m.Called(ctx, companyID)
	transfers, _ := args.Get(0).([]*domain.Transfer)
	return transfers, args.Error(1)
}

func (m *MockTransferRepository) SumSince(
	ctx context.Context,
	companyID string,
	cur domain.Currency,
	since time.Time,
) (domain.Money, error) {
	args := m.Called(ctx, companyID, cur, since)
	money, _ := args.Get(0).(domain.Money)
	return money, args.Error(1)
}

// InlineTransactionManager runs fn directly against the wrapped repositories
// without a real transaction.
type InlineTransactionManager struct {
	Companies application.CompanyRepository
	Transfers application.TransferRepository
}

func (tm *InlineTransactionManager) WithTransaction(
	ctx context.Context,
	fn func(ctx context.Context, companies application.CompanyRepository, transfers application.TransferRepository) error,
) error {
	return fn(ctx, tm.Companies, tm.Transfers)
}

func company(args mock.Arguments, i int) *domain.Company {
	c, _ := args.Get(i).(*domain.Company)
	return c
}
