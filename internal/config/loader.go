package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const froggerFile = "frogger.yaml"

// Load loads the frogger configuration and validates it.
// Search order: customPath -> ~/.frogger/configs/frogger.yaml -> ./configs/frogger.yaml -> embedded default.
// Values missing from a file keep their defaults.
func Load(customPath string) (FroggerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FroggerConfig{}, withSource(customPath, fmt.Errorf("read: %w", err))
		}
		return parse(customPath, data)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(froggerFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			return parse(userCfgPath, data)
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", froggerFile)
	if data, err := os.ReadFile(localPath); err == nil {
		return parse(localPath, data)
	}

	// Use embedded default YAML
	cfg, err := parse("embedded", defaultFroggerYAML)
	if err != nil {
		return DefaultFroggerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (FroggerConfig, error) {
	return parse("", data)
}

func parse(source string, data []byte) (FroggerConfig, error) {
	cfg := DefaultFroggerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FroggerConfig{}, withSource(source, fmt.Errorf("parse: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		var cerr *Error
		if errors.As(err, &cerr) && cerr.Source == "" {
			cerr.Source = source
		}
		return FroggerConfig{}, err
	}
	return cfg, nil
}

// Validate checks ranges and grid dimensions.
// Lane discovery happens when the board is built.
func (c FroggerConfig) Validate() error {
	b := c.Board
	if b.Width < 1 || b.Height < 1 {
		return Errorf("board size %dx%d must be positive", b.Width, b.Height)
	}
	if b.Width > MaxBoardSize || b.Height > MaxBoardSize {
		return Errorf("board size %dx%d exceeds %dx%d", b.Width, b.Height, MaxBoardSize, MaxBoardSize)
	}
	if len(b.Grid) == 0 {
		return Errorf("no grid found")
	}
	if len(b.Grid) < b.Height {
		return Errorf("grid has %d rows, board height is %d", len(b.Grid), b.Height)
	}
	for i := 0; i < b.Height; i++ {
		if n := len([]rune(b.Grid[i])); n < b.Width {
			return Errorf("grid row %d has %d columns, board width is %d", i+1, n, b.Width)
		}
	}
	if b.RoadLanes < 0 {
		return Errorf("road_lanes must not be negative")
	}

	cars := c.Cars
	if cars.Count < 0 {
		return Errorf("cars.count must not be negative")
	}
	if cars.Count > 0 && b.Width < carWidth+2 {
		return Errorf("board width %d too narrow for cars (need %d)", b.Width, carWidth+2)
	}
	if cars.MinDelayMs < 1 || cars.MaxDelayMs < cars.MinDelayMs {
		return Errorf("cars delay range [%d,%d] is invalid", cars.MinDelayMs, cars.MaxDelayMs)
	}
	if cars.Proximity < 0 {
		return Errorf("cars.proximity must not be negative")
	}
	cat := cars.Categories
	if cat.Friendly < 0 || cat.Neutral < 0 || cat.Hostile() < 0 {
		return Errorf("car categories friendly=%d neutral=%d must be within 0..100 in total", cat.Friendly, cat.Neutral)
	}

	if c.Player.JumpDelayMs < 0 || c.Player.InvincibilityMs < 0 {
		return Errorf("player delays must not be negative")
	}
	if c.Stork.DelayMs < 0 {
		return Errorf("stork.delay_ms must not be negative")
	}
	if c.Scoring.Base < 0 || c.Scoring.PerSecond < 0 || c.Scoring.PerMove < 0 {
		return Errorf("scoring values must not be negative")
	}
	return nil
}

// carWidth matches the car footprint in the game package.
const carWidth = 4

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".frogger", "configs", filename)
}
