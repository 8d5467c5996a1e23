package frogger

import (
	"time"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Frog footprint in cells.
const (
	FrogWidth  = 2
	FrogHeight = 1
)

// Facing is the direction the frog last tried to hop.
type Facing int

const (
	FacingUp Facing = iota
	FacingDown
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "up"
	}
}

// facingFor maps a directional action to a facing.
func facingFor(a core.Action) Facing {
	switch a {
	case core.ActionDown:
		return FacingDown
	case core.ActionLeft:
		return FacingLeft
	case core.ActionRight:
		return FacingRight
	default:
		return FacingUp
	}
}

// Frog is the player. X, Y is its left cell; it also covers X+1.
type Frog struct {
	X, Y       int
	Facing     Facing
	JumpDelay  time.Duration
	Carried    bool
	Invincible bool
	Moves      int

	ride            int // index of the carrying car, valid while Carried
	lastJump        time.Time
	invincibleSince time.Time
}

// Rect returns the frog's footprint.
func (f *Frog) Rect() core.Rect {
	return core.NewRect(f.X, f.Y, FrogWidth, FrogHeight)
}

// Ride returns the index of the carrying car, or -1.
func (f *Frog) Ride() int {
	if !f.Carried {
		return -1
	}
	return f.ride
}

// facesToward reports whether the frog looks at r from the side it faces.
func (f *Frog) facesToward(r core.Rect) bool {
	switch f.Facing {
	case FacingUp:
		return f.Y >= r.Bottom()
	case FacingDown:
		return f.Y < r.Y
	case FacingLeft:
		return f.X >= r.Right()
	case FacingRight:
		return f.X+FrogWidth <= r.X
	}
	return false
}

// newFrog places the frog at the bottom centre of the board, facing up.
func newFrog(b *Board, jumpDelay time.Duration, now time.Time) Frog {
	return Frog{
		X:         b.Width()/2 + 1,
		Y:         b.Height(),
		Facing:    FacingUp,
		JumpDelay: jumpDelay,
		lastJump:  now,
		ride:      -1,
	}
}

// updateFrog applies one input action to the frog.
func (g *Game) updateFrog(a core.Action, now time.Time) {
	f := &g.frog
	if f.Invincible && core.Elapsed(g.clock, f.invincibleSince, g.cfg.Player.Invincibility()) {
		f.Invincible = false
	}

	switch {
	case a == core.ActionEmbark:
		g.embark()
	case a == core.ActionDisembark:
		g.disembark(now)
	case a.IsMove():
		if f.Carried || !core.Elapsed(g.clock, f.lastJump, f.JumpDelay) {
			return
		}
		g.hop(a, now)
	}
}

// hop attempts a directional move. Facing and the jump timer update even
// when the move is fully blocked.
func (g *Game) hop(a core.Action, now time.Time) {
	f := &g.frog
	f.Facing = facingFor(a)
	f.lastJump = now

	x, y := f.X, f.Y
	switch f.Facing {
	case FacingUp, FacingDown:
		ny := y - 1
		if f.Facing == FacingDown {
			ny = y + 1
		}
		if g.board.Walkable(x, ny) && g.board.Walkable(x+1, ny) {
			y = ny
		}
	case FacingLeft:
		if g.board.Walkable(x-1, y) {
			x--
			if g.board.Walkable(x-1, y) {
				x--
			}
		}
	case FacingRight:
		// the right edge cell is x+1
		if g.board.Walkable(x+2, y) {
			x++
			if g.board.Walkable(x+2, y) {
				x++
			}
		}
	}

	if x != f.X || y != f.Y {
		f.X, f.Y = x, y
		f.Moves++
	}
}

// embark boards the first idle friendly car near the frog.
func (g *Game) embark() {
	f := &g.frog
	if f.Carried {
		return
	}
	for i := range g.cars {
		c := &g.cars[i]
		if !c.Visible || c.Category != CategoryFriendly || c.Carrying || !g.near(c) {
			continue
		}
		c.Carrying = true
		f.Carried = true
		f.ride = i
		// the frog rides off the playfield, one row below the board
		f.X = c.X + 1
		f.Y = g.board.Height() + 1
		return
	}
}

// disembark drops the frog next to its car, behind it when that fits and
// ahead of it otherwise, and starts invincibility. When neither side has
// room the frog stays aboard.
func (g *Game) disembark(now time.Time) {
	f := &g.frog
	if !f.Carried {
		return
	}
	c := &g.cars[f.ride]

	behind, ahead := c.X-FrogWidth, c.X+CarWidth
	if c.Dir == DirLeft {
		behind, ahead = ahead, behind
	}
	x := behind
	if !g.canStand(x, c.Y) {
		x = ahead
		if !g.canStand(x, c.Y) {
			return
		}
	}

	c.Carrying = false
	f.Carried = false
	f.ride = -1
	f.X, f.Y = x, c.Y
	f.Invincible = true
	f.invincibleSince = now
}

// canStand reports whether the frog footprint fits at (x, y).
func (g *Game) canStand(x, y int) bool {
	return g.board.Walkable(x, y) && g.board.Walkable(x+1, y)
}
