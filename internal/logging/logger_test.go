package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestFieldHelpers(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		f := String("key", "value")
		if f.Key != "key" || f.Value != "value" {
			t.Errorf("String() = %+v", f)
		}
	})
	t.Run("Uint64", func(t *testing.T) {
		f := Uint64("n", 12345678901234567890)
		if f.Value != uint64(12345678901234567890) {
			t.Errorf("Uint64().Value = %v", f.Value)
		}
	})
	t.Run("Err", func(t *testing.T) {
		err := errors.New("boom")
		f := Err(err)
		if f.Key != "error" || f.Value != err {
			t.Errorf("Err() = %+v", f)
		}
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "sampler")
	logger.Info("refresh done", String("subsystem", "cpu"), Int("cpus", 8))

	out := buf.String()
	for _, want := range []string{"sampler", "refresh done", "cpu", "8", "info"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got: %s", want, out)
		}
	}
}

func TestZerologAdapter_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")
	logger.Error("refresh failed", errors.New("sysctl: no such oid"), String("subsystem", "memory"))

	out := buf.String()
	for _, want := range []string{"refresh failed", "sysctl: no such oid", "memory", "error"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got: %s", want, out)
		}
	}
}

func TestZerologAdapter_applyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string", Field{Key: "s", Value: "hello"}, "hello"},
		{"int32", Field{Key: "pid", Value: int32(42)}, "42"},
		{"uint64", Field{Key: "huge", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64", Field{Key: "pct", Value: 12.5}, "12.5"},
		{"bool", Field{Key: "ok", Value: true}, "true"},
		{"error", Field{Key: "err", Value: errors.New("oops")}, "oops"},
		{"struct", Field{Key: "data", Value: struct{ X int }{X: 7}}, "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info("msg", tt.field)
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("output missing %q: %s", tt.contains, buf.String())
			}
		})
	}
}

func TestZerologAdapter_WithLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf)).WithLevel("warn")

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("entries below warn were written: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn entry missing: %s", out)
	}

	if same := logger.WithLevel("bogus"); same != logger {
		t.Error("WithLevel with an unknown level should return the receiver")
	}
}

func TestZerologAdapter_Println(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "test").Println("error gathering metrics:", 2, "errors")
	out := buf.String()
	if !strings.Contains(out, `"message":"error gathering metrics: 2 errors"`) {
		t.Errorf("Println output = %s", out)
	}
	if !strings.Contains(out, `"level":"error"`) {
		t.Errorf("Println level = %s, want error", out)
	}
}

func TestNewNop(t *testing.T) {
	var l Logger = NewNop()
	l.Info("nothing")
	l.Error("nothing", errors.New("x"))
}
