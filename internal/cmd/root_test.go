package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csv610/ScreenShot/pkg/config"
)

func parsedFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	root := NewRootCommand()
	require.NoError(t, root.Flags().Parse(args))
	return root
}

func TestDetermineModeFullScreen(t *testing.T) {
	root := parsedFlags(t)

	mode, err := determineMode(root.Flags())
	require.NoError(t, err)
	assert.Equal(t, modeFullScreen, mode)
}

func TestDetermineModeRegion(t *testing.T) {
	root := parsedFlags(t, "--x1", "0", "--y1", "0", "--x2", "100", "--y2", "100")

	mode, err := determineMode(root.Flags())
	require.NoError(t, err)
	assert.Equal(t, modeRegion, mode)
}

func TestDetermineModeInterval(t *testing.T) {
	root := parsedFlags(t, "--interval", "2", "--time-limit", "10")

	mode, err := determineMode(root.Flags())
	require.NoError(t, err)
	assert.Equal(t, modeInterval, mode)
}

func TestDetermineModeIntervalTakesPrecedenceOverRegion(t *testing.T) {
	root := parsedFlags(t,
		"--interval", "2", "--time-limit", "10",
		"--x1", "0", "--y1", "0", "--x2", "100", "--y2", "100")

	mode, err := determineMode(root.Flags())
	require.NoError(t, err)
	assert.Equal(t, modeInterval, mode)
}

func TestDetermineModePartialRegionWithIntervalFails(t *testing.T) {
	root := parsedFlags(t, "--interval", "2", "--time-limit", "10", "--x1", "5")

	_, err := determineMode(root.Flags())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all coordinates")
}

func TestDetermineModeIncompleteRegion(t *testing.T) {
	root := parsedFlags(t, "--x1", "0", "--y2", "100")

	_, err := determineMode(root.Flags())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all coordinates")
}

func TestDetermineModeIncompleteInterval(t *testing.T) {
	root := parsedFlags(t, "--interval", "2")

	_, err := determineMode(root.Flags())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--time-limit")
}

func TestExecuteIncompleteGroupFails(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"--x1", "10"})

	var stderr bytes.Buffer
	root.SetErr(&stderr)

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "Error:")
}

func TestSessionOptionsCarryOutputDirOverride(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("SCREENSHOT_OUTPUT_DIR", custom)

	cfg, err := config.Load()
	require.NoError(t, err)

	opts := sessionOptions(newRootOptions(cfg), nil)

	assert.Equal(t, custom, opts.OutputDir)
	assert.Equal(t, "screenshot.png", opts.Output)
}

func TestSecondsToDuration(t *testing.T) {
	assert.Equal(t, 2*time.Second, secondsToDuration(2))
	assert.Equal(t, 3500*time.Millisecond, secondsToDuration(3.5))
	assert.Equal(t, time.Duration(0), secondsToDuration(0))
}
