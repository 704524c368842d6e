package application_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DanielPopoola/transfer-core/internal/application"
	"github.com/DanielPopoola/transfer-core/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCategorizeError(t *testing.T) {
	_, checksumErr := domain.NewCuit("30-12345678-0")
	_, negativeErr := domain.MustMoney("1", domain.CurrencyARS).Subtract(domain.MustMoney("2", domain.CurrencyARS))

	tests := []struct {
		name string
		err  error
		want application.ErrorCategory
	}{
		{"nil", nil, ""},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), application.CategoryInfrastructure},
		{"bare checksum", checksumErr, application.CategoryValidation},
		{"wrapped checksum", application.NewInvalidInputError(checksumErr), application.CategoryValidation},
		{"negative result", negativeErr, application.CategoryBusinessRule},
		{"same account", domain.ErrSameAccount, application.CategoryBusinessRule},
		{"limit exceeded", application.NewLimitExceededError("daily limit"), application.CategoryBusinessRule},
		{"not found", application.NewNotFoundError(application.ErrCompanyNotFound), application.CategoryClientError},
		{"bare duplicate", fmt.Errorf("insert: %w", application.ErrDuplicateCuit), application.CategoryClientError},
		{"conflict", application.NewConflictError(application.ErrDuplicateCuit), application.CategoryClientError},
		{"internal wrapping domain", application.NewInternalError(checksumErr), application.CategoryInfrastructure},
		{"unknown", errors.New("connection reset"), application.CategoryInfrastructure},
		{"invalid input without cause", application.NewInvalidInputError(errors.New("bad")), application.CategoryValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, application.CategorizeError(tt.err))
		})
	}
}

func TestToErrorCode(t *testing.T) {
	_, checksumErr := domain.NewCbu("2850590940090418135201")

	assert.Equal(t, "", application.ToErrorCode(nil))
	assert.Equal(t, application.ErrCodeInvalidInput, application.ToErrorCode(application.NewInvalidInputError(checksumErr)))
	assert.Equal(t, domain.ErrCodeInvalidChecksum, application.ToErrorCode(checksumErr))
	assert.Equal(t, application.ErrCodeNotFound, application.ToErrorCode(fmt.Errorf("load: %w", application.ErrCompanyNotFound)))
	assert.Equal(t, application.ErrCodeConflict, application.ToErrorCode(application.ErrDuplicateCuit))
	assert.Equal(t, application.ErrCodeInternal, application.ToErrorCode(errors.New("boom")))
}

func TestServiceError(t *testing.T) {
	cause := errors.New("duplicate key")
	err := application.NewConflictError(cause)

	assert.Equal(t, "resource already exists: duplicate key", err.Error())
	assert.ErrorIs(t, err, cause)

	svcErr, ok := application.IsServiceError(fmt.Errorf("register: %w", err))
	assert.True(t, ok)
	assert.Equal(t, application.ErrCodeConflict, svcErr.Code)
}
