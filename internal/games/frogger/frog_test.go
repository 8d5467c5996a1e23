package frogger

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

const jump = 200 * time.Millisecond

func TestFrogStartPosition(t *testing.T) {
	g, _ := newTestGame(t, testConfig(grassGrid(10, 10), 0))
	f := g.frog
	if f.X != 6 || f.Y != 10 || f.Facing != FacingUp {
		t.Errorf("frog at (%d,%d) facing %v, want (6,10) facing up", f.X, f.Y, f.Facing)
	}
}

func TestUpFiveTimes(t *testing.T) {
	g, clock := newTestGame(t, testConfig(grassGrid(10, 10), 0))

	for range 5 {
		clock.Advance(jump)
		g.Step(core.ActionUp)
	}

	if g.frog.Y != 5 || g.frog.X != 6 {
		t.Errorf("frog at (%d,%d), want (6,5)", g.frog.X, g.frog.Y)
	}
	if g.frog.Moves != 5 {
		t.Errorf("Moves = %d, want 5", g.frog.Moves)
	}
	if g.State().Moves != 5 {
		t.Errorf("State().Moves = %d, want 5", g.State().Moves)
	}
}

func TestJumpGate(t *testing.T) {
	g, clock := newTestGame(t, testConfig(grassGrid(10, 10), 0))

	g.Step(core.ActionUp)
	if g.frog.Y != 10 {
		t.Fatal("frog hopped before the jump delay")
	}

	clock.Advance(jump)
	g.Step(core.ActionUp)
	if g.frog.Y != 9 {
		t.Fatalf("frog y=%d, want 9", g.frog.Y)
	}

	clock.Advance(jump - time.Millisecond)
	g.Step(core.ActionLeft)
	if g.frog.Y != 9 || g.frog.X != 6 || g.frog.Facing != FacingUp {
		t.Error("gated move should change nothing")
	}
}

func TestVerticalMoveBlockedByObstacle(t *testing.T) {
	grid := grassGrid(10, 10)
	grid[8] = "GGGGGGOGGG" // x=7, row 9: under the frog's right cell
	g, clock := newTestGame(t, testConfig(grid, 0))

	g.frog.Facing = FacingLeft
	clock.Advance(jump)
	g.Step(core.ActionUp)

	f := g.frog
	if f.X != 6 || f.Y != 10 {
		t.Errorf("frog moved onto an obstacle: (%d,%d)", f.X, f.Y)
	}
	if f.Facing != FacingUp {
		t.Errorf("facing = %v, want up", f.Facing)
	}
	if f.Moves != 0 {
		t.Errorf("Moves = %d, want 0", f.Moves)
	}
	if !f.lastJump.Equal(clock.Now()) {
		t.Error("blocked move should still reset the jump timer")
	}
}

func TestMoveOffBoardBlocked(t *testing.T) {
	g, clock := newTestGame(t, testConfig(grassGrid(10, 10), 0))
	clock.Advance(jump)
	g.Step(core.ActionDown)

	if g.frog.Y != 10 || g.frog.Facing != FacingDown || g.frog.Moves != 0 {
		t.Errorf("frog y=%d facing %v moves %d", g.frog.Y, g.frog.Facing, g.frog.Moves)
	}
}

func TestHorizontalMoves(t *testing.T) {
	grid := grassGrid(10, 10)
	grid[9] = "GGGGGGGGOG" // obstacle at x=9 on the start row

	tests := []struct {
		name   string
		startX int
		action core.Action
		wantX  int
	}{
		{"full step left", 6, core.ActionLeft, 4},
		{"full step right", 4, core.ActionRight, 6},
		{"half step before obstacle", 6, core.ActionRight, 7},
		{"blocked by obstacle", 7, core.ActionRight, 7},
		{"half step at left border", 2, core.ActionLeft, 1},
		{"blocked at left border", 1, core.ActionLeft, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, clock := newTestGame(t, testConfig(grid, 0))
			g.frog.X = tt.startX
			clock.Advance(jump)
			g.Step(tt.action)

			if g.frog.X != tt.wantX {
				t.Errorf("x = %d, want %d", g.frog.X, tt.wantX)
			}
			if !g.board.Walkable(g.frog.X, g.frog.Y) || !g.board.Walkable(g.frog.X+1, g.frog.Y) {
				t.Errorf("frog stands on an obstacle at x=%d", g.frog.X)
			}
			wantMoves := 0
			if tt.wantX != tt.startX {
				wantMoves = 1
			}
			if g.frog.Moves != wantMoves {
				t.Errorf("Moves = %d, want %d", g.frog.Moves, wantMoves)
			}
			if g.frog.Facing != facingFor(tt.action) {
				t.Errorf("facing = %v, want %v", g.frog.Facing, facingFor(tt.action))
			}
		})
	}
}

func TestHalfStepAtRightBorder(t *testing.T) {
	g, clock := newTestGame(t, testConfig(grassGrid(10, 10), 0))
	g.frog.X = 8 // covers 8-9, one column left
	clock.Advance(jump)
	g.Step(core.ActionRight)
	if g.frog.X != 9 {
		t.Errorf("x = %d, want 9", g.frog.X)
	}
}

func TestInvincibilityExpires(t *testing.T) {
	g, clock := newTestGame(t, testConfig(grassGrid(10, 10), 0))
	g.frog.Invincible = true
	g.frog.invincibleSince = clock.Now()

	clock.Advance(499 * time.Millisecond)
	g.Step(core.ActionNone)
	if !g.frog.Invincible {
		t.Fatal("invincibility ended early")
	}

	clock.Advance(time.Millisecond)
	g.Step(core.ActionNone)
	if g.frog.Invincible {
		t.Error("invincibility should end after 500ms")
	}
}

func TestFacesToward(t *testing.T) {
	car := core.NewRect(10, 3, CarWidth, CarHeight) // cols 10-13, rows 3-4
	tests := []struct {
		name   string
		x, y   int
		facing Facing
		want   bool
	}{
		{"below facing up", 11, 6, FacingUp, true},
		{"below facing down", 11, 6, FacingDown, false},
		{"above facing down", 11, 1, FacingDown, true},
		{"above facing up", 11, 1, FacingUp, false},
		{"right facing left", 14, 3, FacingLeft, true},
		{"right facing right", 14, 3, FacingRight, false},
		{"left facing right", 8, 4, FacingRight, true},
		{"left facing left", 8, 4, FacingLeft, false},
	}
	for _, tt := range tests {
		f := Frog{X: tt.x, Y: tt.y, Facing: tt.facing}
		if got := f.facesToward(car); got != tt.want {
			t.Errorf("%s: facesToward = %v, want %v", tt.name, got, tt.want)
		}
	}
}
