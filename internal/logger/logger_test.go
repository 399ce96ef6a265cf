package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewWithWriter(level, &buf)
	l.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }
	return l, &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"DEBUG", DEBUG},
		{"debug", DEBUG},
		{" info ", INFO},
		{"WARN", WARN},
		{"warning", WARN},
		{"ERROR", ERROR},
		{"", INFO},
		{"verbose", INFO},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestLoggerFormat(t *testing.T) {
	l, buf := newTestLogger(DEBUG)

	l.Info("start handled", "user_id", 42, "premium", true)

	expected := "[2024-05-01 12:30:00] INFO: start handled user_id=42 premium=true\n"
	if buf.String() != expected {
		t.Errorf("got %q, want %q", buf.String(), expected)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	l, buf := newTestLogger(WARN)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown too")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below WARN should be filtered: %q", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 2 lines, got %q", out)
	}

	buf.Reset()
	l.SetLevel(DEBUG)
	l.Debug("visible now")
	if !strings.Contains(buf.String(), "DEBUG: visible now") {
		t.Errorf("expected debug entry after SetLevel, got %q", buf.String())
	}
}

func TestLoggerWith(t *testing.T) {
	l, buf := newTestLogger(INFO)

	child := l.With("component", "bot")
	child.Info("polling", "offset", 7)
	l.Info("parent")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if !strings.HasSuffix(lines[0], "INFO: polling component=bot offset=7") {
		t.Errorf("child entry = %q", lines[0])
	}
	if strings.Contains(lines[1], "component=") {
		t.Errorf("parent must not inherit child fields: %q", lines[1])
	}
}

func TestLoggerOddFields(t *testing.T) {
	l, buf := newTestLogger(INFO)

	l.Info("odd", "dangling")

	if !strings.HasSuffix(buf.String(), "INFO: odd\n") {
		t.Errorf("dangling key should be dropped, got %q", buf.String())
	}
}

func TestErrorHandler(t *testing.T) {
	l, buf := newTestLogger(INFO)

	l.ErrorHandler("telegram client error")(errors.New("connection reset"))

	if !strings.Contains(buf.String(), "ERROR: telegram client error error=connection reset") {
		t.Errorf("unexpected output %q", buf.String())
	}
}
