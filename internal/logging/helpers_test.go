package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersNoopOnNilLogger(t *testing.T) {
	Info(nil, "info")
	Warn(nil, "warn")
	Error(nil, "error", errors.New("boom"))
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Error(logger, "store failed", errors.New("boom"), FieldOperation, "create")

	out := buf.String()
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "operation=create") {
		t.Fatalf("expected error and operation fields, got %q", out)
	}
}

func TestInfoAndWarnWrite(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Info(logger, "hello")
	Warn(logger, "careful")

	out := buf.String()
	if !strings.Contains(out, "level=INFO") || !strings.Contains(out, "level=WARN") {
		t.Fatalf("expected info and warn lines, got %q", out)
	}
}
