// Package capture wraps the platform screen-grab primitive behind a small
// interface so callers and tests can substitute deterministic fakes.
package capture

import (
	"errors"
	"image"
)

var (
	// ErrNoDisplay reports that no active display was found.
	ErrNoDisplay = errors.New("no active displays found")
	// ErrNotSupported reports that the platform cannot capture the screen.
	ErrNotSupported = errors.New("screen capture not supported on this platform")
)

// ScreenCapturer grabs pixels from the display.
type ScreenCapturer interface {
	// CaptureAll grabs the entire virtual display, spanning every
	// active monitor.
	CaptureAll() (image.Image, error)

	// CaptureRect grabs the given rectangle in virtual-display pixel
	// coordinates. The rectangle is half-open: [Min.X, Max.X) x
	// [Min.Y, Max.Y).
	CaptureRect(rect image.Rectangle) (image.Image, error)
}
