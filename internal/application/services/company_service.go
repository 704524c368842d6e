package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/DanielPopoola/transfer-core/internal/application"
	"github.com/DanielPopoola/transfer-core/internal/domain"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
)

type CompanyService struct {
	companies application.CompanyRepository
	validate  *validator.Validate
	logger    *slog.Logger
	now       func() time.Time
}

func NewCompanyService(
	companies application.CompanyRepository,
	logger *slog.Logger,
	opts ...Option,
) *CompanyService {
	o := applyOptions(opts)
	return &CompanyService{
		companies: companies,
		validate:  validator.New(),
		logger:    logger,
		now:       o.now,
	}
}

// Register validates the command, binds the company's policies from its type
// and persists it. A CUIT can only be registered once.
func (s *CompanyService) Register(ctx context.Context, cmd RegisterCompanyCommand) (*domain.Company, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, application.NewInvalidInputError(err)
	}

	cuit, err := domain.NewCuit(cmd.Cuit)
	if err != nil {
		return nil, application.NewInvalidInputError(err)
	}

	companyType, err := domain.ParseCompanyType(cmd.Type)
	if err != nil {
		return nil, application.NewInvalidInputError(err)
	}

	company, err := domain.NewCompany(companyType, uuid.New().String(), cuit, cmd.BusinessName, s.now().UTC())
	if err != nil {
		return nil, application.NewInvalidInputError(err)
	}

	if err := s.companies.Create(ctx, company); err != nil {
		if errors.Is(err, application.ErrDuplicateCuit) {
			return nil, application.NewConflictError(err)
		}
		return nil, application.NewInternalError(err)
	}

	s.logger.Info("company registered",
		"company", company,
		"government_support", company.IsEligibleForGovernmentSupport(),
		"compliance_reporting", company.RequiresComplianceReporting(),
	)

	return company, nil
}

func (s *CompanyService) Get(ctx context.Context, id string) (*domain.Company, error) {
	if id == "" {
		return nil, application.NewInvalidInputError(domain.NewMissingRequiredFieldError("company ID"))
	}

	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, toServiceError(err)
	}
	return company, nil
}

func (s *CompanyService) GetByCuit(ctx context.Context, rawCuit string) (*domain.Company, error) {
	cuit, err := domain.NewCuit(rawCuit)
	if err != nil {
		return nil, application.NewInvalidInputError(err)
	}

	company, err := s.companies.FindByCuit(ctx, cuit)
	if err != nil {
		return nil, toServiceError(err)
	}
	return company, nil
}

// JoinedBetween lists companies whose join date falls in [from, to).
func (s *CompanyService) JoinedBetween(ctx context.Context, from, to time.Time) ([]*domain.Company, error) {
	if err := validRange(from, to); err != nil {
		return nil, err
	}

	companies, err := s.companies.FindJoinedBetween(ctx, from, to)
	if err != nil {
		return nil, toServiceError(err)
	}
	return companies, nil
}

// WithTransfersBetween lists companies that made at least one transfer in
// [from, to).
func (s *CompanyService) WithTransfersBetween(ctx context.Context, from, to time.Time) ([]*domain.Company, error) {
	if err := validRange(from, to); err != nil {
		return nil, err
	}

	companies, err := s.companies.FindWithTransfersBetween(ctx, from, to)
	if err != nil {
		return nil, toServiceError(err)
	}
	return companies, nil
}
