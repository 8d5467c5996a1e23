// Package frogger implements the road-crossing game: a frog hops across
// lanes of independently timed cars while an optional stork hunts it.
// Every entity gates its moves on its own timer read from core.Clock, so a
// step only moves what is due.
package frogger

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// Mode identifiers used by the registry and score storage.
const (
	ModeStandard = "frogger"
	ModeClassic  = "frogger_classic"
)

// randSource is the subset of *rand.Rand the simulation draws from.
type randSource interface {
	Intn(n int) int
}

// Game is one frogger session.
type Game struct {
	id    string
	title string
	cfg   config.FroggerConfig

	board *Board
	bands []int // lane anchor rows in use

	clock core.Clock
	rng   randSource
	start time.Time
	end   time.Time // set when the outcome is decided

	lanes *LaneRegistry
	cars  []Car
	frog  Frog
	stork Stork

	outcome Outcome
	score   int
}

// New creates a standard game from cfg. The board and lanes are checked
// here so that Reset cannot fail.
func New(cfg config.FroggerConfig) (*Game, error) {
	return newGame(ModeStandard, "Frogger", cfg)
}

// NewClassic creates a game with the early rules: no stork, every car hostile.
func NewClassic(cfg config.FroggerConfig) (*Game, error) {
	config.ApplyPreset(&cfg, config.DifficultyClassic)
	return newGame(ModeClassic, "Frogger (Classic)", cfg)
}

func newGame(id, title string, cfg config.FroggerConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	board, err := NewBoard(cfg.Board)
	if err != nil {
		return nil, err
	}

	bands := board.RoadBands()
	switch {
	case cfg.Board.RoadLanes > len(bands):
		return nil, config.Errorf("road_lanes is %d but the grid has %d road bands", cfg.Board.RoadLanes, len(bands))
	case cfg.Board.RoadLanes > 0:
		bands = bands[:cfg.Board.RoadLanes]
	}
	if cfg.Cars.Count > 0 && len(bands) == 0 {
		return nil, config.Errorf("%d cars configured but the grid has no road bands", cfg.Cars.Count)
	}

	g := &Game{
		id:    id,
		title: title,
		cfg:   cfg,
		board: board,
		bands: bands,
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

func init() {
	registry.Register(ModeStandard, "Frogger", func(cfg config.FroggerConfig) (registry.Game, error) {
		return New(cfg)
	})
	registry.Register(ModeClassic, "Frogger (Classic)", func(cfg config.FroggerConfig) (registry.Game, error) {
		return NewClassic(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FroggerConfig {
	return g.cfg
}

// Reset starts a fresh session on the same board.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.clock = rc.ClockOrSystem()
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.start = g.clock.Now()
	g.outcome = OutcomeContinue
	g.score = 0

	g.lanes = NewLaneRegistry(g.bands, g.rng)
	g.frog = newFrog(g.board, g.cfg.Player.JumpDelay(), g.start)
	g.spawnCars(g.start)
	g.spawnStork(g.start)
}

// Step runs one loop iteration: the frog takes the action, then every due
// car moves in slice order, then the stork, then the outcome is evaluated.
// A finished game ignores further steps.
func (g *Game) Step(a core.Action) core.StepResult {
	if g.outcome.Over() {
		return core.StepResult{State: g.State()}
	}

	now := g.clock.Now()
	g.updateFrog(a, now)
	g.updateCars(now)
	g.updateStork(now)
	g.outcome = g.evaluate(now)
	if g.outcome.Over() {
		g.end = now
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Moves:    g.frog.Moves,
		Seconds:  g.ElapsedSeconds(),
		GameOver: g.outcome.Over(),
		Won:      g.outcome == OutcomeWon,
		Message:  g.outcome.Message(),
	}
}

// Outcome returns the result of the last evaluated step.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// ElapsedSeconds returns whole seconds since the session started, frozen
// once the game is over.
func (g *Game) ElapsedSeconds() int {
	if g.outcome.Over() {
		return int(g.end.Sub(g.start) / time.Second)
	}
	return int(core.ElapsedMs(g.clock, g.start) / 1000)
}
