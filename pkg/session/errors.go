package session

import "errors"

// Error kinds surfaced by session construction and the capture operations.
// Callers classify with errors.Is; the CLI maps any of them to exit code 1.
var (
	// ErrInvalidArgument reports a bad delay, malformed region
	// coordinates, or a non-positive interval or time limit.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedPlatform reports that the running operating system
	// cannot capture the screen.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrIO reports a directory-creation or image-save failure.
	ErrIO = errors.New("i/o failure")

	// ErrCapture reports a failure of the underlying capture primitive.
	ErrCapture = errors.New("capture failed")
)
