package session

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// timestampLayout renders 2024-01-02 15:04:05 as 20240102_150405.
const timestampLayout = "20060102_150405"

// resolveOutputPath applies the two naming rules from construction: an
// optional timestamp suffix on the base name, and a default directory for
// bare file names.
func resolveOutputPath(output string, addTimestamp bool, now time.Time, defaultDir string) string {
	path := output
	if addTimestamp {
		path = insertSuffix(path, "_"+now.Format(timestampLayout))
	}

	if filepath.Dir(path) == "." {
		path = filepath.Join(defaultDir, path)
	}
	return path
}

// sequencePath derives the per-shot file name for interval capture by
// inserting a 1-based, zero-padded counter before the extension.
func sequencePath(resolved string, index int) string {
	dir := filepath.Dir(resolved)
	base := insertSuffix(filepath.Base(resolved), fmt.Sprintf("_%04d", index))
	return filepath.Join(dir, base)
}

// insertSuffix places suffix immediately before the file extension, or at
// the end when the name has no extension.
func insertSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return stem + suffix + ext
}
