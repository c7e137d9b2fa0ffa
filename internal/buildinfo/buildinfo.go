// Package buildinfo exposes version metadata stamped at build time via
// -ldflags "-X github.com/csv610/ScreenShot/internal/buildinfo.version=...".
package buildinfo

import "runtime/debug"

var version = "dev"

// Version returns the stamped version, falling back to the module version
// recorded by the Go toolchain for go-install builds.
func Version() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}
