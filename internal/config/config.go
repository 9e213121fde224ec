// Package config holds the configuration of the redfa command: the values
// gathered from flags, optionally overlaid on an HCL config file.
package config

import "errors"

// Log output selectors accepted by Config.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config carries everything the redfa binary needs for one run.
type Config struct {
	// Pattern is the regular expression to compile. Required.
	Pattern string

	// Alphabet is the working alphabet; empty selects the default
	// (lowercase English letters).
	Alphabet string

	// DotPath is where the Graphviz rendering is written: a file path,
	// "-" for stdout, or empty to disable.
	DotPath string

	// Listing enables the textual component listing on stdout.
	Listing bool

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// LogFormat is one of text, json.
	LogFormat string
}

// New validates cfg and returns it.
func New(cfg Config) (*Config, error) {
	if cfg.Pattern == "" {
		return nil, errors.New("a regular expression is required")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	switch cfg.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}
	return &cfg, nil
}
