// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import "fmt"

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultEntropyInterval spans the six entropy bands of the entropy challenge.
	DefaultEntropyInterval = 10.0
	// DefaultChallenge detects the challenge from the baseline log's schema.
	DefaultChallenge = "auto"
)

// Config represents the top-level application configuration.
type Config struct {
	Debug           bool    `json:"debug"`
	Challenge       string  `json:"challenge"`
	EntropyInterval float64 `json:"entropyInterval"`
	Color           string  `json:"color"`
	Strict          bool    `json:"strict"`
	LogFile         string  `json:"logFile,omitempty"`
	ConfigPath      string  `json:"-"`
}

// Normalize fills zero values with defaults and validates enum-like fields.
func (c *Config) Normalize() error {
	if c.Challenge == "" {
		c.Challenge = DefaultChallenge
	}
	if c.EntropyInterval == 0 {
		c.EntropyInterval = DefaultEntropyInterval
	}
	if c.EntropyInterval <= 0 {
		return fmt.Errorf("entropyInterval must be positive, got %v", c.EntropyInterval)
	}
	switch c.Color {
	case "":
		c.Color = "auto"
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	return nil
}
