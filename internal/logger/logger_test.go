package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/nummatch/internal/logger"
)

// restoreDefault puts back the default logger after a test replaces it.
func restoreDefault(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"", slog.LevelInfo, true},
		{"loud", slog.LevelInfo, false},
	}
	for _, c := range cases {
		got, ok := logger.ParseLevel(c.in)
		assert.Equal(t, c.want, got, "%q", c.in)
		assert.Equal(t, c.ok, ok, "%q", c.in)
	}
}

func TestSetupJSON(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	l, err := logger.Setup(&buf, "warn", "json")
	require.NoError(t, err)
	l.Info("hidden")
	slog.Warn("verdict", "input", "1+2", "correct", true)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "verdict", entry["msg"])
	assert.Equal(t, "1+2", entry["input"])
	assert.Equal(t, true, entry["correct"])
}

func TestSetupText(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	_, err := logger.Setup(&buf, "debug", "TEXT")
	require.NoError(t, err)
	slog.Debug("checking", "input", "3!")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "msg=checking")
	assert.Contains(t, buf.String(), "input=3!")
}

func TestSetupUnknownLevel(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	l, err := logger.Setup(&buf, "loud", "text")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "invalid log level configured")
	assert.Contains(t, buf.String(), "configured_level=loud")
	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
}

func TestSetupUnknownFormat(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	_, err := logger.Setup(&buf, "info", "xml")
	assert.Error(t, err)
}
