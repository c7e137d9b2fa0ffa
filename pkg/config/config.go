package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// lookupEnv is declared for swapping in tests.
var lookupEnv = func(key string) (string, bool) {
	return os.LookupEnv(key)
}

// EnvPrefix is the prefix for environment variable overrides, e.g.
// SCREENSHOT_OUTPUT or SCREENSHOT_LOG_LEVEL.
const EnvPrefix = "SCREENSHOT"

// Config captures the user-adjustable knobs for the capture CLI.
type Config struct {
	Output  OutputConfig
	Capture CaptureConfig
	Logging LoggingConfig

	// Source indicates where the configuration originated.
	Source string
}

// OutputConfig controls where captured images are written.
type OutputConfig struct {
	// File is the output file name. A bare file name (no directory
	// component) is placed under Dir when the session resolves it.
	File string `mapstructure:"output"`

	// Dir is the default directory for bare output file names.
	Dir string `mapstructure:"output_dir"`

	// Timestamp appends a timestamp to the output file name.
	Timestamp bool `mapstructure:"timestamp"`
}

// CaptureConfig holds capture timing defaults.
type CaptureConfig struct {
	// DelaySeconds is the wait before each capture operation.
	DelaySeconds int `mapstructure:"delay"`
}

// LoggingConfig defines log verbosity and formatting.
type LoggingConfig struct {
	Level  string `mapstructure:"log_level"`
	Format string `mapstructure:"log_format"`
}

// Default returns the baseline configuration used when no overrides are supplied.
func Default() Config {
	return Config{
		Output: OutputConfig{
			File:      "screenshot.png",
			Dir:       "output",
			Timestamp: false,
		},
		Capture: CaptureConfig{
			DelaySeconds: 3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Source: "<defaults>",
	}
}

// Load resolves configuration from defaults and environment variables.
// There is deliberately no configuration file: the CLI is driven by flags,
// with SCREENSHOT_* environment variables as the only ambient override.
func Load() (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("output", cfg.Output.File)
	v.SetDefault("output_dir", cfg.Output.Dir)
	v.SetDefault("timestamp", cfg.Output.Timestamp)
	v.SetDefault("delay", cfg.Capture.DelaySeconds)
	v.SetDefault("log_level", cfg.Logging.Level)
	v.SetDefault("log_format", cfg.Logging.Format)

	cfg.Output.File = v.GetString("output")
	cfg.Output.Dir = v.GetString("output_dir")
	cfg.Output.Timestamp = v.GetBool("timestamp")
	cfg.Capture.DelaySeconds = v.GetInt("delay")

	level, err := NormalizeLogLevel(v.GetString("log_level"))
	if err != nil {
		return Config{}, err
	}
	cfg.Logging.Level = level

	format, err := NormalizeFormat(v.GetString("log_format"))
	if err != nil {
		return Config{}, err
	}
	cfg.Logging.Format = format

	for _, key := range []string{"output", "output_dir", "timestamp", "delay", "log_level", "log_format"} {
		if _, ok := lookupEnv(EnvPrefix + "_" + strings.ToUpper(key)); ok {
			cfg.Source = "<environment>"
			break
		}
	}

	return cfg, nil
}

// NormalizeLogLevel canonicalises a log level string.
func NormalizeLogLevel(level string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case "debug", "info", "warn", "error":
		return normalized, nil
	case "warning":
		return "warn", nil
	default:
		return "", fmt.Errorf("unsupported log level %q", level)
	}
}

// NormalizeFormat canonicalises a log output format string.
func NormalizeFormat(format string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(format))
	switch normalized {
	case "json", "console":
		return normalized, nil
	case "text":
		return "console", nil
	default:
		return "", fmt.Errorf("unsupported log format %q", format)
	}
}
