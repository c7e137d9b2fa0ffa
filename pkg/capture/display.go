package capture

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// DisplayCapturer captures the physical display through the
// github.com/kbinani/screenshot primitive.
type DisplayCapturer struct{}

// NewDisplayCapturer returns the real screen capturer for this host.
func NewDisplayCapturer() *DisplayCapturer {
	return &DisplayCapturer{}
}

// CaptureAll grabs the union of all active display bounds as one image.
func (*DisplayCapturer) CaptureAll() (image.Image, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, ErrNoDisplay
	}

	bounds := screenshot.GetDisplayBounds(0)
	for i := 1; i < n; i++ {
		bounds = bounds.Union(screenshot.GetDisplayBounds(i))
	}

	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("capture full screen: %w", err)
	}
	return img, nil
}

// CaptureRect grabs the requested rectangle in virtual-display coordinates.
func (*DisplayCapturer) CaptureRect(rect image.Rectangle) (image.Image, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return nil, ErrNoDisplay
	}

	img, err := screenshot.CaptureRect(rect)
	if err != nil {
		return nil, fmt.Errorf("capture region %v: %w", rect, err)
	}
	return img, nil
}
