package capture

import (
	"fmt"
	"os"
	"runtime"
)

// Environment describes screen capture availability on this host.
type Environment struct {
	OS        string
	Available bool
	Message   string
}

// LookupEnvFunc exposes environment probing for testability.
type LookupEnvFunc func(string) (string, bool)

// lookupEnv is declared for swapping in tests.
var lookupEnv = func(key string) (string, bool) {
	return os.LookupEnv(key)
}

// DetectEnvironment reports whether the running platform supports
// full-screen pixel capture. Windows and macOS always have a windowing
// system; Linux and FreeBSD need a running display server, signalled by
// DISPLAY or WAYLAND_DISPLAY.
func DetectEnvironment(lookup LookupEnvFunc) Environment {
	return detectForOS(runtime.GOOS, lookup)
}

func detectForOS(goos string, lookup LookupEnvFunc) Environment {
	if lookup == nil {
		lookup = lookupEnv
	}
	env := Environment{OS: goos}

	switch goos {
	case "windows", "darwin":
		env.Available = true
	case "linux", "freebsd":
		if _, ok := lookup("DISPLAY"); ok {
			env.Available = true
			break
		}
		if _, ok := lookup("WAYLAND_DISPLAY"); ok {
			env.Available = true
			break
		}
		env.Message = "no display server detected (DISPLAY and WAYLAND_DISPLAY unset)"
	default:
		env.Message = fmt.Sprintf("screen capture is not supported on %s", goos)
	}

	return env
}
