package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// defaultGrid mirrors the grid in defaults/frogger.yaml.
var defaultGrid = []string{
	"GGGGGGGGGGGGGGGGGGGGGGGGGGGGGG",
	"GGGOOGGGGGGGOOGGGGGGGGOOGGGGGG",
	"RRRRRRRRRRRRRRRRRRRRRRRRRRRRRR",
	"RRRRRRRRRRRRRRRRRRRRRRRRRRRRRR",
	"RRRRRRRRRRRRRRRRRRRRRRRRRRRRRR",
	"RRRRRRRRRRRRRRRRRRRRRRRRRRRRRR",
	"GGGGGGGGOOGGGGGGGGOOGGGGGGGOGG",
	"RRRRRRRRRRRRRRRRRRRRRRRRRRRRRR",
	"RRRRRRRRRRRRRRRRRRRRRRRRRRRRRR",
	"RRRRRRRRRRRRRRRRRRRRRRRRRRRRRR",
	"RRRRRRRRRRRRRRRRRRRRRRRRRRRRRR",
	"GGGGGGGGGGGGGGGGGGGGGGGGGGGGGG",
	"GOOGGGGGGGGGGGOOGGGGGGGGGOOGGG",
	"RRRRRRRRRRRRRRRRRRRRRRRRRRRRRR",
	"RRRRRRRRRRRRRRRRRRRRRRRRRRRRRR",
	"RRRRRRRRRRRRRRRRRRRRRRRRRRRRRR",
	"RRRRRRRRRRRRRRRRRRRRRRRRRRRRRR",
	"GGGGGGGGGGGGGGGGGGGGGGGGGGGGGG",
	"GGGGGGOOGGGGGGGGGGGGOOGGGGGGGG",
	"GGGGGGGGGGGGGGGGGGGGGGGGGGGGGG",
}

// DefaultFroggerConfig returns the default frogger configuration.
func DefaultFroggerConfig() FroggerConfig {
	grid := make([]string, len(defaultGrid))
	copy(grid, defaultGrid)

	return FroggerConfig{
		Board: BoardConfig{
			Width:     30,
			Height:    20,
			RoadLanes: 6,
			Grid:      grid,
		},
		Cars: CarsConfig{
			Count:      10,
			MinDelayMs: 120,
			MaxDelayMs: 320,
			Proximity:  2,
			Categories: CategoriesConfig{
				Friendly: 20,
				Neutral:  20,
			},
		},
		Player: PlayerConfig{
			JumpDelayMs:     200,
			InvincibilityMs: 500,
		},
		Stork: StorkConfig{
			Enabled: true,
		},
		Scoring: ScoringConfig{
			Base:      1000,
			PerSecond: 10,
			PerMove:   2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFroggerYAML
}
