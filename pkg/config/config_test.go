package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "screenshot.png", cfg.Output.File)
	assert.Equal(t, "output", cfg.Output.Dir)
	assert.False(t, cfg.Output.Timestamp)
	assert.Equal(t, 3, cfg.Capture.DelaySeconds)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "<defaults>", cfg.Source)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("SCREENSHOT_OUTPUT", "desk.jpg")
	t.Setenv("SCREENSHOT_DELAY", "0")
	t.Setenv("SCREENSHOT_TIMESTAMP", "true")
	t.Setenv("SCREENSHOT_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "desk.jpg", cfg.Output.File)
	assert.Equal(t, 0, cfg.Capture.DelaySeconds)
	assert.True(t, cfg.Output.Timestamp)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "<environment>", cfg.Source)
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	t.Setenv("SCREENSHOT_LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}

func TestNormalizeLogLevel(t *testing.T) {
	cases := map[string]string{
		"info":    "info",
		"DEBUG":   "debug",
		" warn ":  "warn",
		"warning": "warn",
		"Error":   "error",
	}
	for input, want := range cases {
		got, err := NormalizeLogLevel(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got)
	}

	_, err := NormalizeLogLevel("verbose")
	assert.Error(t, err)
}

func TestNormalizeFormat(t *testing.T) {
	cases := map[string]string{
		"json":    "json",
		"CONSOLE": "console",
		"text":    "console",
	}
	for input, want := range cases {
		got, err := NormalizeFormat(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got)
	}

	_, err := NormalizeFormat("xml")
	assert.Error(t, err)
}
