package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestInit_Formats(t *testing.T) {
	cases := []struct {
		format string
		want   string
	}{
		{"text", "level=INFO"},
		{"json", `"level":"INFO"`},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		Init(slog.LevelInfo, tc.format, &buf)
		New("fmt").Info("probe")
		if !strings.Contains(buf.String(), tc.want) {
			t.Errorf("format %q: expected %q in output, got: %s", tc.format, tc.want, buf.String())
		}
	}
}

func TestNew_ComponentAttribute(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelDebug, "text", &buf)

	New("workflow").Info("step complete")

	if !strings.Contains(buf.String(), "component=workflow") {
		t.Errorf("expected component attribute, got: %s", buf.String())
	}
}

func TestInit_LevelGating(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelWarn, "text", &buf)

	logger := New("gate")
	logger.Info("suppressed")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Error("Info message should be gated at Warn level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("Warn message should pass at Warn level")
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := ParseLevel(tc.name); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}
