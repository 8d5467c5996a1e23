// Package config provides YAML-based game configuration loading and
// difficulty presets for the frogger game.
package config

import "time"

// MaxBoardSize bounds the board in both dimensions.
const MaxBoardSize = 70

// FroggerConfig contains all configuration for a frogger session.
type FroggerConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Cars    CarsConfig    `yaml:"cars"`
	Player  PlayerConfig  `yaml:"player"`
	Stork   StorkConfig   `yaml:"stork"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig describes the terrain grid.
type BoardConfig struct {
	Width     int      `yaml:"width"`
	Height    int      `yaml:"height"`
	RoadLanes int      `yaml:"road_lanes"` // 0 = every road band found in the grid
	Grid      []string `yaml:"grid"`       // rows of 'R' road, 'G' grass, 'O' obstacle
}

// CarsConfig defines the traffic.
type CarsConfig struct {
	Count      int              `yaml:"count"`
	MinDelayMs int              `yaml:"min_delay_ms"` // fastest car: one cell per MinDelayMs
	MaxDelayMs int              `yaml:"max_delay_ms"` // slowest car: one cell per MaxDelayMs
	Proximity  int              `yaml:"proximity"`    // cells; frog this close counts as "near"
	Categories CategoriesConfig `yaml:"categories"`
}

// CategoriesConfig holds percentages for car categories.
// Hostile takes whatever friendly and neutral leave of 100.
type CategoriesConfig struct {
	Friendly int `yaml:"friendly"`
	Neutral  int `yaml:"neutral"`
}

// Hostile returns the implied hostile percentage.
func (c CategoriesConfig) Hostile() int {
	return 100 - c.Friendly - c.Neutral
}

// PlayerConfig defines frog timing.
type PlayerConfig struct {
	JumpDelayMs     int `yaml:"jump_delay_ms"`
	InvincibilityMs int `yaml:"invincibility_ms"`
}

// StorkConfig toggles the predator.
type StorkConfig struct {
	Enabled bool `yaml:"enabled"`
	DelayMs int  `yaml:"delay_ms"` // 0 = twice the frog's jump delay
}

// ScoringConfig defines the win score formula:
// max(0, Base - PerSecond*elapsedSeconds - PerMove*moves).
type ScoringConfig struct {
	Base      int `yaml:"base"`
	PerSecond int `yaml:"per_second"`
	PerMove   int `yaml:"per_move"`
}

// JumpDelay returns the frog's jump delay.
func (c PlayerConfig) JumpDelay() time.Duration {
	return time.Duration(c.JumpDelayMs) * time.Millisecond
}

// Invincibility returns the post-disembark grace period.
func (c PlayerConfig) Invincibility() time.Duration {
	return time.Duration(c.InvincibilityMs) * time.Millisecond
}

// Delay returns the stork's move delay, derived from the jump delay when unset.
func (c StorkConfig) Delay(jumpDelay time.Duration) time.Duration {
	if c.DelayMs > 0 {
		return time.Duration(c.DelayMs) * time.Millisecond
	}
	return 2 * jumpDelay
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyClassic DifficultyPreset = "classic"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard, DifficultyClassic:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}
