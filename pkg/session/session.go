// Package session implements the capture session: a validated parameter
// object exposing full-screen, region, and interval capture over an injected
// screen capturer and image encoder.
package session

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/csv610/ScreenShot/pkg/capture"
	"github.com/csv610/ScreenShot/pkg/encode"
)

// Sleeper blocks for the given duration, honouring context cancellation.
type Sleeper func(context.Context, time.Duration) error

// Options configure a capture session. Zero-value collaborators are
// replaced with the real implementations, so tests can inject fakes while
// the CLI supplies only the user-facing fields.
type Options struct {
	// Output is the requested file name (default "screenshot.png").
	Output string

	// DelaySeconds is the wait before each capture operation. Must be
	// non-negative.
	DelaySeconds int

	// Timestamp appends a construction-time timestamp to the file name.
	Timestamp bool

	// OutputDir is prepended to bare file names (default "output").
	OutputDir string

	Capturer capture.ScreenCapturer
	Encoder  encode.ImageEncoder
	Logger   *zap.Logger
	Clock    func() time.Time
	Sleeper  Sleeper

	// Probe reports platform capture support. Defaults to the real
	// environment detection.
	Probe func() capture.Environment
}

// Session holds the resolved output policy and the capture collaborators.
// It is immutable after construction except for the interval sequence
// counter.
type Session struct {
	outputPath string
	delay      time.Duration
	capturer   capture.ScreenCapturer
	encoder    encode.ImageEncoder
	logger     *zap.Logger
	clock      func() time.Time
	sleeper    Sleeper
	seq        int
}

// New validates the options, resolves the output path, and ensures its
// parent directory exists. No capture happens here.
func New(opts Options) (*Session, error) {
	if opts.DelaySeconds < 0 {
		return nil, fmt.Errorf("%w: delay must be non-negative, got %d", ErrInvalidArgument, opts.DelaySeconds)
	}

	probe := opts.Probe
	if probe == nil {
		probe = func() capture.Environment { return capture.DetectEnvironment(nil) }
	}
	if env := probe(); !env.Available {
		if env.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, env.Message)
		}
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, env.OS)
	}

	output := opts.Output
	if output == "" {
		output = "screenshot.png"
	}
	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = "output"
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	resolved := resolveOutputPath(output, opts.Timestamp, clock(), outputDir)
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("%w: create output directory: %v", ErrIO, err)
	}

	capturer := opts.Capturer
	if capturer == nil {
		capturer = capture.NewDisplayCapturer()
	}
	encoder := opts.Encoder
	if encoder == nil {
		encoder = encode.NewFileEncoder()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sleeper := opts.Sleeper
	if sleeper == nil {
		sleeper = defaultSleeper
	}

	return &Session{
		outputPath: resolved,
		delay:      time.Duration(opts.DelaySeconds) * time.Second,
		capturer:   capturer,
		encoder:    encoder,
		logger:     logger,
		clock:      clock,
		sleeper:    sleeper,
	}, nil
}

// OutputPath returns the resolved output file path.
func (s *Session) OutputPath() string {
	return s.outputPath
}

// CaptureScreen waits the configured delay, grabs the entire virtual
// display, and saves it to the resolved output path.
func (s *Session) CaptureScreen(ctx context.Context) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	img, err := s.capturer.CaptureAll()
	if err != nil {
		s.logger.Error("full-screen capture failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrCapture, err)
	}
	if err := s.save(img, s.outputPath); err != nil {
		return err
	}

	s.logger.Info("full-screen screenshot saved", zap.String("path", s.outputPath))
	return nil
}

// CaptureArea waits the configured delay and grabs the rectangle with
// top-left (x1,y1) and bottom-right (x2,y2). The rectangle is half-open,
// [x1,x2) x [y1,y2), in virtual-display pixel coordinates. Coordinate
// validation happens before the delay.
func (s *Session) CaptureArea(ctx context.Context, x1, y1, x2, y2 int) error {
	if err := validateCoordinates(x1, y1, x2, y2); err != nil {
		return err
	}
	if err := s.wait(ctx); err != nil {
		return err
	}

	img, err := s.capturer.CaptureRect(image.Rect(x1, y1, x2, y2))
	if err != nil {
		s.logger.Error("region capture failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrCapture, err)
	}
	if err := s.save(img, s.outputPath); err != nil {
		return err
	}

	s.logger.Info("region screenshot saved",
		zap.String("path", s.outputPath),
		zap.Int("x1", x1), zap.Int("y1", y1), zap.Int("x2", x2), zap.Int("y2", y2))
	return nil
}

// CaptureInterval repeatedly grabs the full screen every interval until
// timeLimit elapses, writing each shot to a sequence-numbered variant of
// the output path. The first shot always happens; any single failure
// aborts the whole run.
func (s *Session) CaptureInterval(ctx context.Context, interval, timeLimit time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %s", ErrInvalidArgument, interval)
	}
	if timeLimit <= 0 {
		return fmt.Errorf("%w: time limit must be positive, got %s", ErrInvalidArgument, timeLimit)
	}
	if err := s.wait(ctx); err != nil {
		return err
	}

	s.logger.Info("starting interval capture",
		zap.Duration("interval", interval), zap.Duration("time_limit", timeLimit))

	start := s.clock()
	shots := 0
	for s.clock().Sub(start) < timeLimit {
		s.seq++
		path := sequencePath(s.outputPath, s.seq)

		img, err := s.capturer.CaptureAll()
		if err != nil {
			s.logger.Error("interval capture failed", zap.Int("shot", s.seq), zap.Error(err))
			return fmt.Errorf("%w: shot %d: %v", ErrCapture, s.seq, err)
		}
		if err := s.save(img, path); err != nil {
			return err
		}
		shots++

		elapsed := s.clock().Sub(start)
		s.logger.Info("screenshot saved",
			zap.Int("shot", s.seq), zap.String("path", path), zap.Duration("elapsed", elapsed))

		remaining := timeLimit - elapsed
		if remaining <= 0 {
			break
		}
		if err := s.sleeper(ctx, min(interval, remaining)); err != nil {
			return err
		}
	}

	s.logger.Info("interval capture completed", zap.Int("shots", shots))
	return nil
}

func (s *Session) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	s.logger.Info("waiting before capture", zap.Duration("delay", s.delay))
	return s.sleeper(ctx, s.delay)
}

func (s *Session) save(img image.Image, path string) error {
	if err := s.encoder.Save(img, path); err != nil {
		s.logger.Error("save failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

func validateCoordinates(x1, y1, x2, y2 int) error {
	if x1 < 0 || y1 < 0 || x2 < 0 || y2 < 0 {
		return fmt.Errorf("%w: coordinates must be non-negative", ErrInvalidArgument)
	}
	if x1 >= x2 {
		return fmt.Errorf("%w: x1 (%d) must be less than x2 (%d)", ErrInvalidArgument, x1, x2)
	}
	if y1 >= y2 {
		return fmt.Errorf("%w: y1 (%d) must be less than y2 (%d)", ErrInvalidArgument, y1, y2)
	}
	return nil
}

func defaultSleeper(ctx context.Context, wait time.Duration) error {
	if wait <= 0 {
		return nil
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
