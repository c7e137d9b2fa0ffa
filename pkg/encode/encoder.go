// Package encode writes captured images to disk, inferring the format from
// the file extension.
package encode

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ImageEncoder persists a captured image at the given path.
type ImageEncoder interface {
	Save(img image.Image, path string) error
}

// FileEncoder encodes images as PNG or JPEG based on the path extension.
// Unknown and missing extensions fall back to PNG.
type FileEncoder struct {
	// Quality is the JPEG quality (1-100). Zero means jpeg.DefaultQuality.
	Quality int
}

// NewFileEncoder returns an encoder with default settings.
func NewFileEncoder() *FileEncoder {
	return &FileEncoder{}
}

// Save writes img to path, creating the file and encoding per extension.
// A close failure is reported too, so a save only succeeds once the data
// has been handed to the filesystem.
func (e *FileEncoder) Save(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}

	if err := e.encode(file, img, filepath.Ext(path)); err != nil {
		file.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %q: %w", path, err)
	}
	return nil
}

func (e *FileEncoder) encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		quality := e.Quality
		if quality == 0 {
			quality = jpeg.DefaultQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	default:
		return png.Encode(w, img)
	}
}
