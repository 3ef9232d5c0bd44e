package mino

import (
	"github.com/s-shin/mino/grid"
	"github.com/s-shin/mino/piece"
)

// Cell is the playfield's element type, shared with piece masks so grid
// overlay operations work uniformly across both.
type Cell = piece.Cell

const (
	CellEmpty   = piece.CellEmpty
	CellBlock   = piece.CellBlock
	CellGhost   = piece.CellGhost
	CellGarbage = piece.CellGarbage
)

// Default playfield dimensions: 10x40 with the bottom 20 rows visible, the
// upper half reserved as spawn/buffer space.
const (
	DefaultCols        = 10
	DefaultRows        = 40
	DefaultVisibleRows = 20
)

// Playfield is a dense cell grid plus the count of rows visible to the
// player; rows above VisibleRows are spawn/buffer space.
type Playfield struct {
	Grid        *grid.Grid[Cell]
	VisibleRows int
}

// NewPlayfield builds an empty playfield of the given dimensions.
func NewPlayfield(cols, rows, visibleRows int) *Playfield {
	return &Playfield{Grid: grid.New[Cell](cols, rows), VisibleRows: visibleRows}
}
