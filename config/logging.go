package config

import (
	"fmt"

	"github.com/kilianp07/ersim/infra/logger"
)

// LoggingConfig defines the diagnostic log output. Logs go to stderr so they
// never mix with the simulation transcript.
type LoggingConfig struct {
	// Level is a zerolog level name: debug, info, warn, error.
	Level string `json:"level"`
	// Format is "console" or "json".
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "warn"
	}
	if c.Format == "" {
		c.Format = logger.FormatConsole
	}
}

// Validate checks the level and format.
func (c LoggingConfig) Validate() error {
	if _, err := logger.ParseLevel(c.Level); err != nil {
		return err
	}
	if c.Format != logger.FormatConsole && c.Format != logger.FormatJSON {
		return fmt.Errorf("unknown format %s", c.Format)
	}
	return nil
}
