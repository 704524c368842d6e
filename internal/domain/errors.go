package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a validation or business rule failure
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a DomainError carrying the same code, so the
// sentinels below match any error of their kind.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Domain validation errors
const (
	ErrCodeEmptyInput           = "EMPTY_OR_WRONG_TYPE"
	ErrCodeInvalidFormat        = "FORMAT_ERROR"
	ErrCodeInvalidChecksum      = "CHECKSUM_ERROR"
	ErrCodeCurrencyMismatch     = "CURRENCY_MISMATCH"
	ErrCodeNegativeResult       = "NEGATIVE_RESULT"
	ErrCodeUnknownVariant       = "UNKNOWN_VARIANT"
	ErrCodeInvalidAmount        = "INVALID_AMOUNT"
	ErrCodeDivisionByZero       = "DIVISION_BY_ZERO"
	ErrCodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ErrCodeSameAccount          = "SAME_ACCOUNT"
)

var (
	ErrEmptyInput           = &DomainError{Code: ErrCodeEmptyInput, Message: "input is empty"}
	ErrInvalidFormat        = &DomainError{Code: ErrCodeInvalidFormat, Message: "invalid format"}
	ErrInvalidChecksum      = &DomainError{Code: ErrCodeInvalidChecksum, Message: "invalid checksum"}
	ErrCurrencyMismatch     = &DomainError{Code: ErrCodeCurrencyMismatch, Message: "currency mismatch"}
	ErrNegativeResult       = &DomainError{Code: ErrCodeNegativeResult, Message: "negative amount"}
	ErrUnknownVariant       = &DomainError{Code: ErrCodeUnknownVariant, Message: "unknown variant"}
	ErrInvalidAmount        = &DomainError{Code: ErrCodeInvalidAmount, Message: "invalid amount"}
	ErrDivisionByZero       = &DomainError{Code: ErrCodeDivisionByZero, Message: "division by zero"}
	ErrMissingRequiredField = &DomainError{Code: ErrCodeMissingRequiredField, Message: "missing required field"}
	ErrSameAccount          = &DomainError{Code: ErrCodeSameAccount, Message: "same account"}
)

func NewEmptyInputError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeEmptyInput,
		Message: fmt.Sprintf("%s must be a non-empty string", field),
	}
}

func NewFormatError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidFormat,
		Message: message,
	}
}

func NewChecksumError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidChecksum,
		Message: message,
	}
}

func NewCurrencyMismatchError(left, right Currency) *DomainError {
	return &DomainError{
		Code:    ErrCodeCurrencyMismatch,
		Message: fmt.Sprintf("currency mismatch: %s vs %s", left, right),
	}
}

func NewNegativeResultError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeNegativeResult,
		Message: message,
	}
}

func NewUnknownVariantError(kind, value string) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnknownVariant,
		Message: fmt.Sprintf("unknown %s: %q", kind, value),
	}
}

func NewInvalidAmountError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: message,
	}
}

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
