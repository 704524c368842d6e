package services

import (
	"errors"
	"time"

	"github.com/DanielPopoola/transfer-core/internal/application"
)

// Option customizes a service at construction.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now, mainly for tests that pin the usage windows.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func applyOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfMonth truncates t to the first instant of its month in UTC.
func StartOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// PreviousMonth returns the half-open range [from, to) covering the calendar
// month before the one containing t.
func PreviousMonth(t time.Time) (time.Time, time.Time) {
	to := StartOfMonth(t)
	return to.AddDate(0, -1, 0), to
}

// toServiceError passes service errors through and wraps anything else as
// an internal failure.
func toServiceError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := application.IsServiceError(err); ok {
		return err
	}
	if errors.Is(err, application.ErrCompanyNotFound) {
		return application.NewNotFoundError(err)
	}
	return application.NewInternalError(err)
}

func validRange(from, to time.Time) error {
	if !from.Before(to) {
		return application.NewInvalidInputError(errors.New("range start must be before range end"))
	}
	return nil
}
