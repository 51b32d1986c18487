package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/katalvlaran/coinchange/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"Warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, logging.ParseLogLevel(in), "level %q", in)
	}
}

func TestNewLogger_JSONWithModule(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLoggerForTest(&buf, "coinchange", "v0.1.0", "info")

	logger.Debug("hidden")
	logger.Info("tables built", "target", 63)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "exactly one JSON line expected")
	assert.Equal(t, "tables built", entry["msg"])
	assert.Equal(t, "coinchange", entry["module"])
	assert.Equal(t, "v0.1.0", entry["version"])
	assert.EqualValues(t, 63, entry["target"])
	assert.NotContains(t, entry, "source")
}

func TestNewLogger_DebugAddsSource(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLoggerForTest(&buf, "coinchange", "dev", "debug")
	logger.Debug("visible")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Contains(t, entry, "source")
}
