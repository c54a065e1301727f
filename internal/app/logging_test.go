package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	if ParseLogLevel("debug") != LogLevelDebug {
		t.Error("expected debug")
	}
	if ParseLogLevel("WARN") != LogLevelWarn {
		t.Error("expected warn")
	}
	if ParseLogLevel("bogus") != LogLevelInfo {
		t.Error("unknown levels should default to info")
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, LogLevelWarn)

	log.Debug("not this")
	log.Info("nor this")
	log.Warn("but this")
	log.Error("and this")

	out := buf.String()
	if strings.Contains(out, "not this") || strings.Contains(out, "nor this") {
		t.Errorf("below-threshold messages leaked: %q", out)
	}
	if !strings.Contains(out, "but this") || !strings.Contains(out, "and this") {
		t.Errorf("expected warn and error output, got %q", out)
	}
}

func TestLoggerFormatting(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, LogLevelInfo)

	log.Info("loaded %d rows", 42)

	out := buf.String()
	if !strings.Contains(out, "loaded 42 rows") {
		t.Errorf("expected formatted message, got %q", out)
	}
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("expected level tag, got %q", out)
	}
	if !strings.Contains(out, "loupe") {
		t.Errorf("expected prefix, got %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, LogLevelInfo).WithField("session", "abc123")

	log.Info("hello")

	if !strings.Contains(buf.String(), "session=abc123") {
		t.Errorf("expected session field, got %q", buf.String())
	}
}

func TestLoggerWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(&buf, LogLevelInfo)
	_ = parent.WithField("child", true)

	parent.Info("plain")

	if strings.Contains(buf.String(), "child") {
		t.Errorf("parent logger picked up the child's field: %q", buf.String())
	}
}

func TestLoggerNilOutput(t *testing.T) {
	log := NewLogger(nil, LogLevelDebug)
	// Must not panic.
	log.Info("into the void")
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, LogLevelError)

	log.Info("dropped")
	log.SetLevel(LogLevelDebug)
	log.Info("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("pre-change message leaked: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("post-change message missing: %q", out)
	}
}
