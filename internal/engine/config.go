package engine

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid engine config")

// RoundOption is one entry of the time-selection menu.
type RoundOption struct {
	Seconds int
	Label   string
	Desc    string
}

var RoundOptions = []RoundOption{
	{30, "30 seconds", "Quick Challenge"},
	{60, "1 minute", "Standard Game"},
	{90, "1.5 minutes", "Extended Play"},
}

// OptionIndex returns the menu position for seconds, or -1.
func OptionIndex(seconds int) int {
	for i, o := range RoundOptions {
		if o.Seconds == seconds {
			return i
		}
	}
	return -1
}

type Config struct {
	// RoundSeconds is the time budget of every recipe.
	RoundSeconds int
	// SpawnChance is the per-frame probability of a new object.
	SpawnChance float64
	// Seed for the spawner. Zero means seed from the clock.
	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		RoundSeconds: RoundOptions[0].Seconds,
		SpawnChance:  DefaultSpawnChance,
	}
}

func (c Config) Validate() error {
	if c.RoundSeconds <= 0 {
		return fmt.Errorf("%w: round seconds %d must be positive", ErrInvalidConfig, c.RoundSeconds)
	}
	if c.SpawnChance < 0 || c.SpawnChance > 1 {
		return fmt.Errorf("%w: spawn chance %v out of [0,1]", ErrInvalidConfig, c.SpawnChance)
	}
	return nil
}
