package application

import (
	"context"
	"errors"

	"github.com/DanielPopoola/transfer-core/internal/domain"
)

// ErrorCategory represents the nature of an error for logging and for the
// caller that maps it onto its transport.
type ErrorCategory string

const (
	CategoryValidation     ErrorCategory = "VALIDATION"
	CategoryBusinessRule   ErrorCategory = "BUSINESS_RULE"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines the error category. Validation failures are
// deterministic, so no category is retryable.
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryInfrastructure
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeLimitExceeded:
			return CategoryBusinessRule
		case ErrCodeNotFound, ErrCodeConflict:
			return CategoryClientError
		case ErrCodeInternal:
			return CategoryInfrastructure
		case ErrCodeInvalidInput:
			if category, ok := categorizeDomainError(svcErr.Err); ok {
				return category
			}
			return CategoryValidation
		}
	}

	if errors.Is(err, ErrCompanyNotFound) || errors.Is(err, ErrDuplicateCuit) {
		return CategoryClientError
	}

	if category, ok := categorizeDomainError(err); ok {
		return category
	}

	return CategoryInfrastructure
}

func categorizeDomainError(err error) (ErrorCategory, bool) {
	var domainErr *domain.DomainError
	if !errors.As(err, &domainErr) {
		return "", false
	}

	switch domainErr.Code {
	case domain.ErrCodeSameAccount,
		domain.ErrCodeNegativeResult,
		domain.ErrCodeCurrencyMismatch,
		domain.ErrCodeInvalidAmount,
		domain.ErrCodeDivisionByZero:
		return CategoryBusinessRule, true
	}
	return CategoryValidation, true
}

// ToErrorCode returns a stable machine-readable code for err.
func ToErrorCode(err error) string {
	if err == nil {
		return ""
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	switch {
	case errors.Is(err, ErrCompanyNotFound):
		return ErrCodeNotFound
	case errors.Is(err, ErrDuplicateCuit):
		return ErrCodeConflict
	}

	return ErrCodeInternal
}
