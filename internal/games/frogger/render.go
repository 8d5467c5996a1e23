package frogger

import (
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Layout
const (
	hudRows     = 2 // status line and key hints above the board
	boardOffset = hudRows + 1
)

// Glyphs
const (
	GlyphObstacle = '▓'
	GlyphStork    = 'S'
	GlyphGoal     = '·'
)

// Frog glyphs by facing.
var frogGlyphs = map[Facing]string{
	FacingUp:    "/\\",
	FacingDown:  "\\/",
	FacingLeft:  "<:",
	FacingRight: ":>",
}

// Car glyphs by direction: top row, bottom row.
var carGlyphs = map[Direction][2]string{
	DirRight: {"[##>", "o--o"},
	DirLeft:  {"<##]", "o--o"},
}

var categoryColors = map[Category]core.Color{
	CategoryHostile:  core.ColorRed,
	CategoryNeutral:  core.ColorYellow,
	CategoryFriendly: core.ColorBrightBlue,
}

const (
	frogColor       = core.ColorBrightGreen
	invincibleColor = core.ColorBrightYellow
)

// MinScreenSize returns the terminal size needed to show the whole board.
func (g *Game) MinScreenSize() (w, h int) {
	return g.board.Width() + 2, g.board.Height() + 2 + hudRows
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	minW, minH := g.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		renderTooSmall(dst, minW, minH)
		return
	}

	snap := g.Snapshot()
	ox := (dst.Width()-minW)/2 + 1 // screen column of board x=1
	oy := boardOffset              // screen row of board y=1
	cell := func(x, y int) (int, int) { return ox + x - 1, oy + y - 1 }

	g.renderHUD(dst, snap)

	dst.DrawBox(core.NewRect(ox-1, oy-1, minW, snap.Board.Height()+2))
	renderTerrain(dst, snap.Board, cell)

	for i := range snap.Cars {
		renderCar(dst, &snap.Cars[i], cell)
	}

	if !snap.Frog.Carried {
		fg := frogColor
		if snap.Frog.Invincible {
			fg = invincibleColor
		}
		x, y := cell(snap.Frog.X, snap.Frog.Y)
		bg := dst.GetCell(x, y).Bg
		dst.DrawText(x, y, frogGlyphs[snap.Frog.Facing], fg, bg)
	}

	if snap.StorkActive {
		x, y := cell(snap.Stork.X, snap.Stork.Y)
		dst.SetCell(x, y, core.Cell{Rune: GlyphStork, Fg: core.ColorWhite, Bg: core.ColorMagenta})
	}

	if snap.Outcome.Over() {
		renderOverlay(dst, snap, oy+snap.Board.Height()/2)
	}
}

// renderHUD draws the status line and key hints.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	status := fmt.Sprintf("Moves: %d  Time: %ds", snap.Moves, snap.ElapsedSec)
	if snap.Frog.Carried {
		status += "  [IN CAR]"
	}
	if snap.Frog.Invincible {
		status += "  [INVINCIBLE]"
	}
	dst.DrawText(1, 0, status, core.ColorDefault, core.ColorDefault)
	dst.DrawText(dst.Width()-len([]rune(g.title))-1, 0, g.title, core.ColorBrightGreen, core.ColorDefault)

	hint := "Arrows/WASD hop  I get in  O get out  Q quit"
	dst.DrawText(1, 1, hint, core.ColorGray, core.ColorDefault)
}

func renderTerrain(dst *core.Screen, b *Board, cell func(x, y int) (int, int)) {
	for y := 1; y <= b.Height(); y++ {
		for x := 1; x <= b.Width(); x++ {
			sx, sy := cell(x, y)
			c := core.Cell{Rune: ' ', Bg: core.ColorGrass}
			switch b.At(x, y) {
			case TerrainRoad:
				c.Bg = core.ColorRoad
			case TerrainObstacle:
				c = core.Cell{Rune: GlyphObstacle, Fg: core.ColorGray, Bg: core.ColorGrass}
			default:
				if y == 1 {
					c.Rune, c.Fg = GlyphGoal, core.ColorBrightGreen
				}
			}
			dst.SetCell(sx, sy, c)
		}
	}
}

func renderCar(dst *core.Screen, c *Car, cell func(x, y int) (int, int)) {
	fg := categoryColors[c.Category]
	if c.Carrying {
		fg = frogColor
	}
	rows := carGlyphs[c.Dir]
	for dy, row := range rows {
		x, y := cell(c.X, c.Y+dy)
		dst.DrawText(x, y, row, fg, core.ColorRoad)
	}
}

// renderTooSmall asks for a bigger window, shortening the notice to fit.
func renderTooSmall(dst *core.Screen, minW, minH int) {
	notice, need := "Window too small", fmt.Sprintf("Need %dx%d", minW, minH)
	if dst.Width() < len(notice) {
		notice = "Too small"
	}
	if dst.Width() < len(need) {
		need = fmt.Sprintf("%dx%d", minW, minH)
	}
	dst.DrawTextCentered(dst.Height()/2-1, notice)
	dst.DrawTextCentered(dst.Height()/2+1, need)
}

func renderOverlay(dst *core.Screen, snap Snapshot, y int) {
	dst.DrawTextCentered(y-1, " "+snap.Outcome.Message()+" ")
	if snap.Outcome == OutcomeWon {
		dst.DrawTextCentered(y, fmt.Sprintf(" Score: %d ", snap.Score))
	}
	dst.DrawTextCentered(y+1, " R restart  Q quit ")
}
