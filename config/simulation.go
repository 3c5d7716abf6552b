package config

import (
	"fmt"
	"time"
)

// SimulationConfig tunes the round loop.
type SimulationConfig struct {
	// Rounds is the number of rounds played.
	Rounds int `json:"rounds"`
	// RandomBatchSize is the number of incidents generated in random mode.
	RandomBatchSize int `json:"random_batch_size"`
	// MissChanceDenominator N gives every available unit a 1 in N chance to
	// fail its dispatch.
	MissChanceDenominator int `json:"miss_chance_denominator"`
	IncidentPauseMS       int `json:"incident_pause_ms"`
	RoundPauseMS          int `json:"round_pause_ms"`
	// NoDelay disables every pause.
	NoDelay bool `json:"no_delay"`
	// Seed fixes the random source. Zero seeds from the clock.
	Seed int64 `json:"seed"`
}

// SetDefaults applies sane defaults.
func (c *SimulationConfig) SetDefaults() {
	if c.Rounds == 0 {
		c.Rounds = 5
	}
	if c.RandomBatchSize == 0 {
		c.RandomBatchSize = 5
	}
	if c.MissChanceDenominator == 0 {
		c.MissChanceDenominator = 10
	}
	if c.IncidentPauseMS == 0 {
		c.IncidentPauseMS = 500
	}
	if c.RoundPauseMS == 0 {
		c.RoundPauseMS = 1000
	}
}

// Validate checks the bounds of every field.
func (c SimulationConfig) Validate() error {
	switch {
	case c.Rounds < 1:
		return fmt.Errorf("rounds must be at least 1, got %d", c.Rounds)
	case c.RandomBatchSize < 1:
		return fmt.Errorf("random_batch_size must be at least 1, got %d", c.RandomBatchSize)
	case c.MissChanceDenominator < 1:
		return fmt.Errorf("miss_chance_denominator must be at least 1, got %d", c.MissChanceDenominator)
	case c.IncidentPauseMS < 0 || c.RoundPauseMS < 0:
		return fmt.Errorf("pauses must not be negative")
	}
	return nil
}

// IncidentPause is the delay between two incidents of a round.
func (c SimulationConfig) IncidentPause() time.Duration {
	if c.NoDelay {
		return 0
	}
	return time.Duration(c.IncidentPauseMS) * time.Millisecond
}

// RoundPause is the delay after each round.
func (c SimulationConfig) RoundPause() time.Duration {
	if c.NoDelay {
		return 0
	}
	return time.Duration(c.RoundPauseMS) * time.Millisecond
}
