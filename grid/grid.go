// Package grid implements the dense rectangular cell matrix shared by piece
// masks and the playfield: a single overlay/collision/sweep primitive used
// uniformly for placement, gravity, ghost projection, and line clearing.
package grid

// Elem is the constraint satisfied by values a Grid can hold. The zero
// value of an Elem must represent an empty cell.
type Elem interface {
	comparable
	IsEmpty() bool
}

// Grid is a num_cols x num_rows dense matrix. Coordinates place (0,0) at
// the bottom-left; row index increases upward.
type Grid[C Elem] struct {
	cols, rows int
	cells      []C
}

// New returns a grid of the given size filled with the zero value of C.
func New[C Elem](cols, rows int) *Grid[C] {
	return &Grid[C]{cols: cols, rows: rows, cells: make([]C, cols*rows)}
}

// NewFromCells returns a grid of the given size, copying as much of cells
// as fits in row-major (x + y*cols) order.
func NewFromCells[C Elem](cols, rows int, cells []C) *Grid[C] {
	g := New[C](cols, rows)
	n := len(cells)
	if n > len(g.cells) {
		n = len(g.cells)
	}
	copy(g.cells, cells[:n])
	return g
}

func (g *Grid[C]) Cols() int { return g.cols }
func (g *Grid[C]) Rows() int { return g.rows }

// InBounds reports whether (x,y) addresses a real cell.
func (g *Grid[C]) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

func (g *Grid[C]) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic("grid: index out of bounds")
	}
	return x + y*g.cols
}

func (g *Grid[C]) Cell(x, y int) C {
	return g.cells[g.index(x, y)]
}

func (g *Grid[C]) SetCell(x, y int, c C) {
	g.cells[g.index(x, y)] = c
}

func (g *Grid[C]) FillRow(y int, c C) {
	for x := 0; x < g.cols; x++ {
		g.SetCell(x, y, c)
	}
}

// FillRows fills rows in [yStart, yEnd).
func (g *Grid[C]) FillRows(yStart, yEnd int, c C) {
	for y := yStart; y < yEnd; y++ {
		g.FillRow(y, c)
	}
}

// ReverseRows flips the grid top-to-bottom in place.
func (g *Grid[C]) ReverseRows() {
	for y := 0; y < g.rows/2; y++ {
		yy := g.rows - 1 - y
		for x := 0; x < g.cols; x++ {
			a, b := g.Cell(x, y), g.Cell(x, yy)
			g.SetCell(x, y, b)
			g.SetCell(x, yy, a)
		}
	}
}

// Rotate1 returns the grid rotated 90 degrees clockwise.
func (g *Grid[C]) Rotate1() *Grid[C] {
	out := New[C](g.rows, g.cols)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			out.SetCell(y, g.cols-1-x, g.Cell(x, y))
		}
	}
	return out
}

// Rotate2 returns the grid rotated 180 degrees.
func (g *Grid[C]) Rotate2() *Grid[C] {
	out := New[C](g.cols, g.rows)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			out.SetCell(g.cols-1-x, g.rows-1-y, g.Cell(x, y))
		}
	}
	return out
}

// Rotate3 returns the grid rotated 270 degrees clockwise (90 CCW).
func (g *Grid[C]) Rotate3() *Grid[C] {
	out := New[C](g.rows, g.cols)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			out.SetCell(g.rows-1-y, x, g.Cell(x, y))
		}
	}
	return out
}

// MoveRow copies row srcY into row dstY. If placeholder is non-nil, srcY is
// then overwritten with *placeholder.
func (g *Grid[C]) MoveRow(srcY, dstY int, placeholder *C) {
	for x := 0; x < g.cols; x++ {
		g.SetCell(x, dstY, g.Cell(x, srcY))
		if placeholder != nil {
			g.SetCell(x, srcY, *placeholder)
		}
	}
}

func (g *Grid[C]) Map(fn func(C) C) {
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			g.SetCell(x, y, fn(g.Cell(x, y)))
		}
	}
}

func (g *Grid[C]) Equal(other *Grid[C]) bool {
	if g.cols != other.cols || g.rows != other.rows {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

func (g *Grid[C]) IsRowFilled(y int) bool {
	for x := 0; x < g.cols; x++ {
		if g.Cell(x, y).IsEmpty() {
			return false
		}
	}
	return true
}

func (g *Grid[C]) isRowEmpty(y int) bool {
	for x := 0; x < g.cols; x++ {
		if !g.Cell(x, y).IsEmpty() {
			return false
		}
	}
	return true
}

func (g *Grid[C]) NumFilledRows() int {
	n := 0
	for y := 0; y < g.rows; y++ {
		if g.IsRowFilled(y) {
			n++
		}
	}
	return n
}

// PluckFilledRows sweeps out every fully-filled row, compacts the remainder
// downward, and fills the vacated top rows with *placeholder if non-nil.
// Returns the number of rows removed.
func (g *Grid[C]) PluckFilledRows(placeholder *C) int {
	n := 0
	for y := 0; y < g.rows; y++ {
		if g.IsRowFilled(y) {
			n++
			continue
		}
		if n > 0 {
			g.MoveRow(y, y-n, nil)
		}
		if y == g.rows-n {
			break
		}
	}
	if placeholder != nil {
		g.FillRows(g.rows-n, g.rows, *placeholder)
	}
	return n
}

// BottomPadding counts fully-empty rows from the bottom up to the first
// non-empty row.
func (g *Grid[C]) BottomPadding() int {
	for y := 0; y < g.rows; y++ {
		if !g.isRowEmpty(y) {
			return y
		}
	}
	return g.rows
}

// TopPadding counts fully-empty rows from the top down to the first
// non-empty row.
func (g *Grid[C]) TopPadding() int {
	for n := 0; n < g.rows; n++ {
		if !g.isRowEmpty(g.rows - 1 - n) {
			return n
		}
	}
	return g.rows
}

// OverlayFlags reports the outcome of attempting to place a sub-grid.
type OverlayFlags uint8

const (
	Overflow OverlayFlags = 1 << iota
	Overlap
)

func (f OverlayFlags) Empty() bool           { return f == 0 }
func (f OverlayFlags) Has(flag OverlayFlags) bool { return f&flag != 0 }

// CheckOverlay reports, without mutating g, whether placing sub at (x,y)
// would overflow the grid bounds and/or overlap a non-empty cell.
func (g *Grid[C]) CheckOverlay(x, y int, sub *Grid[C]) OverlayFlags {
	var result OverlayFlags
	for sy := 0; sy < sub.rows; sy++ {
		for sx := 0; sx < sub.cols; sx++ {
			subCell := sub.Cell(sx, sy)
			if subCell.IsEmpty() {
				continue
			}
			tx, ty := x+sx, y+sy
			if !g.InBounds(tx, ty) {
				result |= Overflow
				continue
			}
			if !g.Cell(tx, ty).IsEmpty() {
				result |= Overlap
			}
		}
	}
	return result
}

// Overlay performs the same scan as CheckOverlay, writing every
// non-colliding source cell into g. Cells that would overflow or overlap
// are not written.
func (g *Grid[C]) Overlay(x, y int, sub *Grid[C]) OverlayFlags {
	var result OverlayFlags
	for sy := 0; sy < sub.rows; sy++ {
		for sx := 0; sx < sub.cols; sx++ {
			subCell := sub.Cell(sx, sy)
			if subCell.IsEmpty() {
				continue
			}
			tx, ty := x+sx, y+sy
			if !g.InBounds(tx, ty) {
				result |= Overflow
				continue
			}
			if !g.Cell(tx, ty).IsEmpty() {
				result |= Overlap
			} else {
				g.SetCell(tx, ty, subCell)
			}
		}
	}
	return result
}

// CheckOverlayToward repeatedly tests (x+k*dx, y+k*dy) for k = 0, 1, ...
// and returns the first k at which the overlay is non-empty, along with
// that collision's flags. dx and dy must not both be zero.
func (g *Grid[C]) CheckOverlayToward(x, y int, sub *Grid[C], dx, dy int) (int, OverlayFlags) {
	if dx == 0 && dy == 0 {
		panic("grid: CheckOverlayToward requires a nonzero direction")
	}
	n := 0
	tx, ty := x, y
	for {
		r := g.CheckOverlay(tx, ty, sub)
		if !r.Empty() {
			return n, r
		}
		tx += dx
		ty += dy
		n++
	}
}
