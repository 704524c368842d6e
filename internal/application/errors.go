package application

import (
	"errors"
	"fmt"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeLimitExceeded = "LIMIT_EXCEEDED"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInvalidInput,
		Message: "invalid input",
		Err:     err,
	}
}

func NewNotFoundError(err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeNotFound,
		Message: "resource not found",
		Err:     err,
	}
}

func NewConflictError(err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeConflict,
		Message: "resource already exists",
		Err:     err,
	}
}

func NewLimitExceededError(message string) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeLimitExceeded,
		Message: message,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInternal,
		Message: "an internal error occurred",
		Err:     err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
