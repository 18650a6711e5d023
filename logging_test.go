package pubtheme

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		l := NewLogger(tt.level, false, &bytes.Buffer{})
		if got := l.GetLevel(); got != tt.expected {
			t.Errorf("NewLogger(%q).GetLevel() = %v, want %v", tt.level, got, tt.expected)
		}
	}
}

func TestNewLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("info", false, &buf)
	l.Debug().Msg("hidden")
	l.Info().Str("slug", "hello").Msg("rendered")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug event should be filtered: %q", out)
	}
	if !strings.Contains(out, `"slug":"hello"`) || !strings.Contains(out, `"message":"rendered"`) {
		t.Errorf("unexpected log output: %q", out)
	}
}
