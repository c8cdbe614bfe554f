package util

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codescope/src/config"
)

func newBufferLogger(cfg config.LoggingConfig) (*Logger, *bytes.Buffer) {
	l := NewLogger(cfg)
	buf := &bytes.Buffer{}
	l.output = buf
	return l, buf
}

func TestLoggerLevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(config.LoggingConfig{Level: "warn"})

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept warn")
	l.Error("kept error")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "[WARN] kept warn")
	assert.Contains(t, out, "[ERROR] kept error")
}

func TestLoggerFormatting(t *testing.T) {
	l, buf := newBufferLogger(config.LoggingConfig{Level: "info"})

	l.Info("analyzed %d files in %s", 3, "src")
	assert.Contains(t, buf.String(), "analyzed 3 files in src")
}

func TestLoggerJSONFormat(t *testing.T) {
	l, buf := newBufferLogger(config.LoggingConfig{
		Level:            "info",
		Format:           "json",
		IncludeTimestamp: true,
	})

	l.Info("hello %s", "world")

	var entry map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "hello world", entry["msg"])
	assert.NotEmpty(t, entry["ts"])
}

func TestLoggerCaller(t *testing.T) {
	l, buf := newBufferLogger(config.LoggingConfig{
		Level:         "info",
		Format:        "json",
		IncludeCaller: true,
	})

	l.Info("with caller")

	var entry map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.True(t, strings.HasPrefix(entry["caller"], "logger_test.go:"))
}

func TestLoggerDefaultsToInfoOnUnknownLevel(t *testing.T) {
	l := NewLogger(config.LoggingConfig{Level: "chatty"})
	assert.Equal(t, "info", l.GetLevel())
}
