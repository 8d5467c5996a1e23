package frogger

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

var testEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// maxRand always draws the largest value: no wrap, last choices.
type maxRand struct{}

func (maxRand) Intn(n int) int { return n - 1 }

// zeroRand always draws zero: wrap, first choices.
type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

// laneGrid is 20x6 with one road band at rows 3-4.
var laneGrid = []string{
	"GGGGGGGGGGGGGGGGGGGG",
	"GGGGGGGGGGGGGGGGGGGG",
	"RRRRRRRRRRRRRRRRRRRR",
	"RRRRRRRRRRRRRRRRRRRR",
	"GGGGGGGGGGGGGGGGGGGG",
	"GGGGGGGGGGGGGGGGGGGG",
}

// testConfig builds a quiet configuration: hostile cars that move every
// 10s, no stork, 200ms jump delay.
func testConfig(grid []string, cars int) config.FroggerConfig {
	cfg := config.DefaultFroggerConfig()
	cfg.Board = config.BoardConfig{
		Width:  len([]rune(grid[0])),
		Height: len(grid),
		Grid:   grid,
	}
	cfg.Cars.Count = cars
	cfg.Cars.MinDelayMs = 10000
	cfg.Cars.MaxDelayMs = 10000
	cfg.Cars.Categories = config.CategoriesConfig{}
	cfg.Stork.Enabled = false
	return cfg
}

func grassGrid(w, h int) []string {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat("G", w)
	}
	return rows
}

// newTestGame creates a game on a manual clock.
func newTestGame(t *testing.T, cfg config.FroggerConfig) (*Game, *core.ManualClock) {
	t.Helper()
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	clock := core.NewManualClock(testEpoch)
	g.Reset(core.RuntimeConfig{Seed: 1, Clock: clock})
	return g, clock
}

// placeCar parks car i at (x, lane row) heading dir, due to move every delay.
func placeCar(g *Game, i, x int, dir Direction, delay time.Duration) *Car {
	c := &g.cars[i]
	c.X = x
	c.Dir = dir
	c.MoveDelay = delay
	return c
}

// checkLaneInvariants verifies the registry against the visible cars.
func checkLaneInvariants(t *testing.T, g *Game) {
	t.Helper()
	free := 0
	for i := range g.lanes.Len() {
		lane := g.lanes.Lane(i)
		if lane.Occupancy < 0 {
			t.Fatalf("lane %d occupancy %d < 0", i, lane.Occupancy)
		}
		if lane.Occupancy == 0 {
			free++
		}
		resident := 0
		for _, c := range g.cars {
			if c.Visible && c.Y == lane.Row {
				resident++
			}
		}
		if resident != lane.Occupancy {
			t.Fatalf("lane %d (row %d): occupancy %d, visible cars %d", i, lane.Row, lane.Occupancy, resident)
		}
	}
	if free != g.lanes.Free() {
		t.Fatalf("free lanes = %d, counted %d", g.lanes.Free(), free)
	}
}
