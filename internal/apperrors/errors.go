// Package apperrors defines the error taxonomy shared by the sampler. None of
// these errors is fatal: a failed refresh leaves the last known good state in
// place and the caller decides whether to log, retry or flag stale data.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable means the OS metrics source failed or returned
	// nothing usable.
	ErrSourceUnavailable = errors.New("metrics source unavailable")

	// ErrInvalidAggregate means the source reported figures that cannot be
	// combined without underflow, e.g. free memory above total memory.
	ErrInvalidAggregate = errors.New("invalid aggregate")
)

// SourceError wraps a failure of the metrics source for one subsystem.
// It matches ErrSourceUnavailable with errors.Is.
type SourceError struct {
	// Subsystem is the refresh that failed ("cpu", "network", ...).
	Subsystem string
	// Cause is the error returned by the source, if any.
	Cause error
}

// Error returns a message naming the subsystem and cause.
func (e *SourceError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Subsystem, ErrSourceUnavailable)
	}
	return fmt.Sprintf("%s: %s: %v", e.Subsystem, ErrSourceUnavailable, e.Cause)
}

// Unwrap returns the source's error.
func (e *SourceError) Unwrap() error { return e.Cause }

// Is makes every SourceError match ErrSourceUnavailable.
func (e *SourceError) Is(target error) bool { return target == ErrSourceUnavailable }

// NewSourceError builds a SourceError for subsystem.
func NewSourceError(subsystem string, cause error) error {
	return &SourceError{Subsystem: subsystem, Cause: cause}
}

// AggregateError reports which figure failed validation.
type AggregateError struct {
	// Field names the figure, e.g. "memory" or "swap".
	Field string
	// Free and Total are the offending values.
	Free  uint64
	Total uint64
}

func (e *AggregateError) Error() string {
	return fmt.Sprintf("%s: %s free %d exceeds total %d", ErrInvalidAggregate, e.Field, e.Free, e.Total)
}

// Is makes every AggregateError match ErrInvalidAggregate.
func (e *AggregateError) Is(target error) bool { return target == ErrInvalidAggregate }

// WrapError wraps err with a formatted context message. It returns nil when
// err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
