package slint

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger() should never return nil")
	}
	// Must not panic or write anywhere.
	Logger().Info("discarded", "key", "value")
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Info("hello from the font stack")

	if !strings.Contains(buf.String(), "hello from the font stack") {
		t.Errorf("log output = %q, want the logged message", buf.String())
	}

	SetLogger(nil)
	buf.Reset()
	Logger().Info("silent again")
	if buf.Len() != 0 {
		t.Errorf("nop logger wrote %q", buf.String())
	}
}
