package apperrors

import (
	"errors"
	"strings"
	"testing"
)

func TestSourceError(t *testing.T) {
	cause := errors.New("sysctl failed")
	err := NewSourceError("cpu", cause)

	if !errors.Is(err, ErrSourceUnavailable) {
		t.Error("SourceError should match ErrSourceUnavailable")
	}
	if !errors.Is(err, cause) {
		t.Error("SourceError should unwrap to its cause")
	}
	var se *SourceError
	if !errors.As(err, &se) || se.Subsystem != "cpu" {
		t.Errorf("errors.As() = %+v", se)
	}
	if !strings.Contains(err.Error(), "sysctl failed") || !strings.Contains(err.Error(), "cpu") {
		t.Errorf("Error() = %q", err.Error())
	}
	if got := NewSourceError("disks", nil).Error(); got != "disks: metrics source unavailable" {
		t.Errorf("Error() without cause = %q", got)
	}
}

func TestAggregateError(t *testing.T) {
	err := error(&AggregateError{Field: "memory", Free: 17, Total: 16})
	if !errors.Is(err, ErrInvalidAggregate) {
		t.Error("AggregateError should match ErrInvalidAggregate")
	}
	if errors.Is(err, ErrSourceUnavailable) {
		t.Error("AggregateError should not match ErrSourceUnavailable")
	}
	if !strings.Contains(err.Error(), "memory free 17 exceeds total 16") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "ctx") != nil {
		t.Error("WrapError(nil) should be nil")
	}
	base := errors.New("boom")
	err := WrapError(base, "refresh %s", "cpu")
	if err.Error() != "refresh cpu: boom" {
		t.Errorf("WrapError() = %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("WrapError should preserve the chain")
	}
}
