// Package cmd wires the capture session to the command-line surface.
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/csv610/ScreenShot/pkg/config"
	"github.com/csv610/ScreenShot/pkg/logging"
	"github.com/csv610/ScreenShot/pkg/session"
)

// captureMode identifies which of the three operations to run.
type captureMode int

const (
	modeFullScreen captureMode = iota
	modeRegion
	modeInterval
)

type rootOptions struct {
	output    string
	delay     int
	timestamp bool
	outputDir string

	x1, y1, x2, y2 int

	interval  float64
	timeLimit float64

	logLevel  string
	logFormat string
}

// newRootOptions seeds the flag defaults from configuration so that
// SCREENSHOT_* environment overrides reach the session.
func newRootOptions(cfg config.Config) *rootOptions {
	return &rootOptions{
		output:    cfg.Output.File,
		delay:     cfg.Capture.DelaySeconds,
		timestamp: cfg.Output.Timestamp,
		outputDir: cfg.Output.Dir,
		logLevel:  cfg.Logging.Level,
		logFormat: cfg.Logging.Format,
	}
}

// NewRootCommand builds the CLI. Flag defaults come from configuration
// (built-in defaults overridden by SCREENSHOT_* environment variables);
// flags win over both.
func NewRootCommand() *cobra.Command {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}

	opts := newRootOptions(cfg)

	rootCmd := &cobra.Command{
		Use:   "screenshot",
		Short: "Capture screenshots of the screen",
		Long: `Capture screenshots of the full screen, a rectangular region, or a
timed series of shots, and save them as image files.

Mode selection by flag presence: --interval/--time-limit run interval
capture, --x1/--y1/--x2/--y2 run region capture, otherwise the full
screen is captured once.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			return runCapture(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", opts.output, "output file name (bare names are placed under the output directory)")
	flags.IntVarP(&opts.delay, "delay", "d", opts.delay, "seconds to wait before capturing")
	flags.BoolVarP(&opts.timestamp, "timestamp", "t", opts.timestamp, "append a timestamp to the output file name")

	flags.IntVar(&opts.x1, "x1", 0, "top-left X coordinate (region capture)")
	flags.IntVar(&opts.y1, "y1", 0, "top-left Y coordinate (region capture)")
	flags.IntVar(&opts.x2, "x2", 0, "bottom-right X coordinate (region capture)")
	flags.IntVar(&opts.y2, "y2", 0, "bottom-right Y coordinate (region capture)")

	flags.Float64VarP(&opts.interval, "interval", "i", 0, "seconds between screenshots (interval capture)")
	flags.Float64VarP(&opts.timeLimit, "time-limit", "l", 0, "total duration in seconds (interval capture)")

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", opts.logFormat, "log output format (console, json)")

	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func runCapture(cmd *cobra.Command, opts *rootOptions) error {
	mode, err := determineMode(cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  opts.logLevel,
		Format: opts.logFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer logger.Sync()

	sess, err := session.New(sessionOptions(opts, logger))
	if err != nil {
		return err
	}

	logger.Info("session ready",
		zap.String("output", sess.OutputPath()), zap.Int("delay_seconds", opts.delay))

	ctx := cmd.Context()
	switch mode {
	case modeInterval:
		return sess.CaptureInterval(ctx, secondsToDuration(opts.interval), secondsToDuration(opts.timeLimit))
	case modeRegion:
		return sess.CaptureArea(ctx, opts.x1, opts.y1, opts.x2, opts.y2)
	default:
		return sess.CaptureScreen(ctx)
	}
}

func sessionOptions(opts *rootOptions, logger *zap.Logger) session.Options {
	return session.Options{
		Output:       opts.output,
		DelaySeconds: opts.delay,
		Timestamp:    opts.timestamp,
		OutputDir:    opts.outputDir,
		Logger:       logger,
	}
}

// determineMode inspects flag presence. Both flag groups are checked for
// completeness before a mode is chosen, so a stray partial group is a
// usage error even when the other group wins; interval flags take
// precedence over region coordinates.
func determineMode(flags *pflag.FlagSet) (captureMode, error) {
	coords := []string{"x1", "y1", "x2", "y2"}
	set := 0
	for _, name := range coords {
		if flags.Changed(name) {
			set++
		}
	}
	if set != 0 && set != len(coords) {
		return 0, fmt.Errorf("all coordinates (--x1, --y1, --x2, --y2) must be provided for region capture")
	}

	intervalSet := flags.Changed("interval")
	timeLimitSet := flags.Changed("time-limit")
	if intervalSet || timeLimitSet {
		if !(intervalSet && timeLimitSet) {
			return 0, fmt.Errorf("both --interval and --time-limit must be provided for interval capture")
		}
		return modeInterval, nil
	}

	if set == len(coords) {
		return modeRegion, nil
	}
	return modeFullScreen, nil
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
