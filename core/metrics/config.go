package metrics

import "github.com/kilianp07/ersim/core/factory"

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
}

// SetDefaults enables the statistics sink used by the final summary when no
// sink is configured.
func (c *Config) SetDefaults() {
	if len(c.Sinks) == 0 {
		c.Sinks = []factory.ModuleConfig{{Type: "stats"}}
	}
}
