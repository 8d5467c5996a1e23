package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
)

// Terrain is the static content of a board cell.
type Terrain uint8

const (
	TerrainGrass Terrain = iota
	TerrainRoad
	TerrainObstacle
)

// terrainFromRune maps a grid character to terrain. Unknown characters are grass.
func terrainFromRune(r rune) Terrain {
	switch r {
	case 'R':
		return TerrainRoad
	case 'O':
		return TerrainObstacle
	default:
		return TerrainGrass
	}
}

// Board is the immutable terrain grid. Coordinates passed to its methods are
// 1-based playfield positions: x in [1,width], y in [1,height].
type Board struct {
	width  int
	height int
	cells  [][]Terrain // [row][col], 0-based
}

// NewBoard builds a board from the configured grid.
// Rows and columns beyond the declared size are ignored.
func NewBoard(cfg config.BoardConfig) (*Board, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, config.Errorf("board size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	if len(cfg.Grid) < cfg.Height {
		return nil, config.Errorf("grid has %d rows, board height is %d", len(cfg.Grid), cfg.Height)
	}

	b := &Board{
		width:  cfg.Width,
		height: cfg.Height,
		cells:  make([][]Terrain, cfg.Height),
	}
	for row := range cfg.Height {
		line := []rune(cfg.Grid[row])
		if len(line) < cfg.Width {
			return nil, config.Errorf("grid row %d has %d columns, board width is %d", row+1, len(line), cfg.Width)
		}
		b.cells[row] = make([]Terrain, cfg.Width)
		for col := range cfg.Width {
			b.cells[row][col] = terrainFromRune(line[col])
		}
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// InBounds reports whether (x, y) is on the playfield.
func (b *Board) InBounds(x, y int) bool {
	return x >= 1 && x <= b.width && y >= 1 && y <= b.height
}

// At returns the terrain at (x, y). Off-board positions read as grass.
func (b *Board) At(x, y int) Terrain {
	if !b.InBounds(x, y) {
		return TerrainGrass
	}
	return b.cells[y-1][x-1]
}

// Walkable reports whether the frog may stand on (x, y).
func (b *Board) Walkable(x, y int) bool {
	return b.InBounds(x, y) && b.cells[y-1][x-1] != TerrainObstacle
}

// RoadBands returns the anchor row of every two-row road band, top to bottom.
// A row whose first column is road starts a band and the row below it
// belongs to the same band. A band whose second row is off the board is ignored.
func (b *Board) RoadBands() []int {
	var rows []int
	for row := 0; row < b.height; row++ {
		if b.cells[row][0] != TerrainRoad {
			continue
		}
		if row+1 >= b.height {
			break
		}
		rows = append(rows, row+1)
		row++
	}
	return rows
}
