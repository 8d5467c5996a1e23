package frogger

import (
	"time"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Stork is the optional predator. It homes in on the frog one diagonal
// step at a time.
type Stork struct {
	X, Y      int
	DX, DY    int // last heading, each -1, 0 or 1
	MoveDelay time.Duration
	Alive     bool

	lastMove time.Time
}

// spawnStork places the stork somewhere in the upper-left quarter of the board.
func (g *Game) spawnStork(now time.Time) {
	if !g.cfg.Stork.Enabled {
		g.stork = Stork{}
		return
	}
	g.stork = Stork{
		X:         1 + g.rng.Intn(max(1, g.board.Width()/2)),
		Y:         1 + g.rng.Intn(max(1, g.board.Height()/2)),
		MoveDelay: g.cfg.Stork.Delay(g.cfg.Player.JumpDelay()),
		Alive:     true,
		lastMove:  now,
	}
}

// storkActive reports whether the stork hunts this step.
func (g *Game) storkActive() bool {
	return g.stork.Alive && !g.frog.Carried
}

// updateStork moves the stork one step toward the frog when its timer allows.
func (g *Game) updateStork(now time.Time) {
	s := &g.stork
	if !g.storkActive() || !core.Elapsed(g.clock, s.lastMove, s.MoveDelay) {
		return
	}
	s.DX = core.Sign(g.frog.X - s.X)
	s.DY = core.Sign(g.frog.Y - s.Y)
	s.X = core.Clamp(s.X+s.DX, 1, g.board.Width())
	s.Y = core.Clamp(s.Y+s.DY, 1, g.board.Height())
	s.lastMove = now
}
