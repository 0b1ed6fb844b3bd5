package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/roster/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew_TextToFallback(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := New(config.LoggingConfig{Level: "info", Format: "text"}, &buf)
	defer func() { _ = closer.Close() }()

	logger.Debug("hidden")
	logger.Info("store seeded", "persons", 5)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "store seeded")
	assert.Contains(t, out, "persons=5")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := New(config.LoggingConfig{Level: "debug", Format: "json"}, &buf)
	defer func() { _ = closer.Close() }()

	logger.Debug("annotated", "count", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "annotated", entry["msg"])
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, float64(3), entry["count"])
}

func TestNew_RotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.log")
	var fallback bytes.Buffer

	logger, closer := New(config.LoggingConfig{Level: "info", Format: "text", File: path}, &fallback)
	logger.Info("written to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Zero(t, fallback.Len())
}
