package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLevel(t *testing.T) {
	testCases := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"invalid", slog.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			if got := Level(tc.level); got != tc.want {
				t.Errorf("Level(%q): want %v, got %v", tc.level, tc.want, got)
			}
		})
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)

	log.Info("dropped")
	log.Warn("kept", "pair", "(a, b)")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("want 1 log line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %s", err)
	}
	if entry["msg"] != "kept" || entry["pair"] != "(a, b)" {
		t.Errorf("unexpected log entry: %v", entry)
	}
}

func TestNewWithFormat(t *testing.T) {
	var buf bytes.Buffer
	NewWithFormat("text", "debug", &buf).Debug("hello", "k", 1)

	if got := buf.String(); !strings.Contains(got, "msg=hello") || !strings.Contains(got, "k=1") {
		t.Errorf("text output: got %q", got)
	}
}
