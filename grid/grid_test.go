package grid

import "testing"

type intCell int

func (c intCell) IsEmpty() bool { return c == 0 }

func fourByFour(t *testing.T) *Grid[intCell] {
	t.Helper()
	g := New[intCell](4, 4)
	n := 1
	for y := g.Rows() - 1; y >= 0; y-- {
		for x := 0; x < g.Cols(); x++ {
			g.SetCell(x, y, intCell(n))
			n++
		}
	}
	return g
}

func TestSetCellAndCell(t *testing.T) {
	g := New[intCell](3, 2)
	g.SetCell(1, 0, 7)
	if got := g.Cell(1, 0); got != 7 {
		t.Errorf("Cell(1,0) = %d, want 7", got)
	}
	if got := g.Cell(0, 0); got != 0 {
		t.Errorf("Cell(0,0) = %d, want 0 (default empty)", got)
	}
}

func TestReverseRows(t *testing.T) {
	g := New[intCell](2, 2)
	g.SetCell(0, 0, 1)
	g.SetCell(1, 0, 2)
	g.SetCell(0, 1, 3)
	g.SetCell(1, 1, 4)
	g.ReverseRows()
	want := map[[2]int]intCell{{0, 0}: 3, {1, 0}: 4, {0, 1}: 1, {1, 1}: 2}
	for pos, w := range want {
		if got := g.Cell(pos[0], pos[1]); got != w {
			t.Errorf("Cell%v = %d, want %d", pos, got, w)
		}
	}
}

func TestRotate(t *testing.T) {
	// 3x2 grid (cols=3, rows=2):
	// row1: 4 5 6
	// row0: 1 2 3
	g := New[intCell](3, 2)
	g.SetCell(0, 0, 1)
	g.SetCell(1, 0, 2)
	g.SetCell(2, 0, 3)
	g.SetCell(0, 1, 4)
	g.SetCell(1, 1, 5)
	g.SetCell(2, 1, 6)

	r1 := g.Rotate1()
	if r1.Cols() != 2 || r1.Rows() != 3 {
		t.Fatalf("Rotate1 dims = %dx%d, want 2x3", r1.Cols(), r1.Rows())
	}

	r2 := g.Rotate2()
	if r2.Cols() != 3 || r2.Rows() != 2 {
		t.Fatalf("Rotate2 dims = %dx%d, want 3x2", r2.Cols(), r2.Rows())
	}
	// 180 degree rotation of the grid above:
	// row1: 3 2 1
	// row0: 6 5 4
	if got := r2.Cell(0, 1); got != 3 {
		t.Errorf("Rotate2 Cell(0,1) = %d, want 3", got)
	}
	if got := r2.Cell(2, 0); got != 4 {
		t.Errorf("Rotate2 Cell(2,0) = %d, want 4", got)
	}

	r3 := g.Rotate3()
	if r3.Cols() != 2 || r3.Rows() != 3 {
		t.Fatalf("Rotate3 dims = %dx%d, want 2x3", r3.Cols(), r3.Rows())
	}

	// Four quarter-turns clockwise must return to the original grid.
	back := g.Rotate1().Rotate1().Rotate1().Rotate1()
	if !back.Equal(g) {
		t.Errorf("four Rotate1 calls did not return to the original grid")
	}
}

func TestPadding(t *testing.T) {
	g := New[intCell](3, 5)
	g.SetCell(1, 2, 9)
	if got := g.BottomPadding(); got != 2 {
		t.Errorf("BottomPadding() = %d, want 2", got)
	}
	if got := g.TopPadding(); got != 2 {
		t.Errorf("TopPadding() = %d, want 2", got)
	}

	empty := New[intCell](2, 2)
	if got := empty.BottomPadding(); got != 2 {
		t.Errorf("BottomPadding() on empty grid = %d, want rows (2)", got)
	}
	if got := empty.TopPadding(); got != 2 {
		t.Errorf("TopPadding() on empty grid = %d, want rows (2)", got)
	}
}

func TestCheckOverlayAndOverlay(t *testing.T) {
	base := New[intCell](4, 4)
	base.SetCell(2, 2, 1)

	sub := New[intCell](2, 2)
	sub.SetCell(0, 0, 1)
	sub.SetCell(1, 1, 1)

	// Placed fully inside bounds, not touching the occupied cell.
	if r := base.CheckOverlay(0, 0, sub); !r.Empty() {
		t.Errorf("CheckOverlay(0,0) = %v, want empty", r)
	}

	// Placed so it overlaps base's (2,2).
	if r := base.CheckOverlay(1, 1, sub); !r.Has(Overlap) {
		t.Errorf("CheckOverlay(1,1) = %v, want Overlap set", r)
	}

	// Placed so it overflows the top-right.
	if r := base.CheckOverlay(3, 3, sub); !r.Has(Overflow) {
		t.Errorf("CheckOverlay(3,3) = %v, want Overflow set", r)
	}

	// Overlay writes through when the check was clean.
	if r := base.Overlay(0, 0, sub); !r.Empty() {
		t.Fatalf("Overlay(0,0) = %v, want empty", r)
	}
	if got := base.Cell(0, 0); got != 1 {
		t.Errorf("after Overlay, Cell(0,0) = %d, want 1", got)
	}
	if got := base.Cell(1, 1); got != 1 {
		t.Errorf("after Overlay, Cell(1,1) = %d, want 1", got)
	}

	// Re-checking the same region now reports overlap: the piece is present.
	if r := base.CheckOverlay(0, 0, sub); !r.Has(Overlap) {
		t.Errorf("CheckOverlay after Overlay = %v, want Overlap set", r)
	}
}

func TestCheckOverlayToward(t *testing.T) {
	g := New[intCell](4, 10)
	g.SetCell(0, 2, 1)

	sub := New[intCell](1, 1)
	sub.SetCell(0, 0, 1)

	n, flags := g.CheckOverlayToward(0, 9, sub, 0, -1)
	if n != 7 {
		t.Errorf("CheckOverlayToward n = %d, want 7", n)
	}
	if !flags.Has(Overlap) {
		t.Errorf("CheckOverlayToward flags = %v, want Overlap set", flags)
	}
	droppable := n - 1
	if droppable != 6 {
		t.Errorf("droppable rows = %d, want 6", droppable)
	}
}

func TestPluckFilledRows(t *testing.T) {
	g := New[intCell](2, 4)
	g.FillRow(0, 1)
	g.SetCell(0, 1, 1) // row 1 not full
	g.FillRow(2, 1)
	// row 3 empty

	placeholder := intCell(0)
	n := g.PluckFilledRows(&placeholder)
	if n != 2 {
		t.Fatalf("PluckFilledRows returned %d, want 2", n)
	}
	// After removing rows 0 and 2, row 1's partial content should have
	// compacted down to row 0, and rows [2,4) should be placeholder-filled.
	if got := g.Cell(0, 0); got != 1 {
		t.Errorf("Cell(0,0) after pluck = %d, want 1", got)
	}
	if got := g.Cell(1, 0); got != 0 {
		t.Errorf("Cell(1,0) after pluck = %d, want 0", got)
	}
	for y := g.Rows() - n; y < g.Rows(); y++ {
		if !g.isRowEmpty(y) {
			t.Errorf("row %d should be empty after pluck, found non-empty cell", y)
		}
	}
}

func TestPluckFilledRowsConservation(t *testing.T) {
	g := fourByFour(t)
	g.FillRow(1, 0)
	before := 0
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if !g.Cell(x, y).IsEmpty() {
				before++
			}
		}
	}
	placeholder := intCell(0)
	n := g.PluckFilledRows(&placeholder)
	after := 0
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if !g.Cell(x, y).IsEmpty() {
				after++
			}
		}
	}
	if want := before - n*g.Cols(); after != want {
		t.Errorf("non-empty cells after pluck = %d, want %d", after, want)
	}
}

func TestEqual(t *testing.T) {
	a := New[intCell](2, 2)
	b := New[intCell](2, 2)
	a.SetCell(0, 0, 5)
	if a.Equal(b) {
		t.Errorf("grids with different contents compared equal")
	}
	b.SetCell(0, 0, 5)
	if !a.Equal(b) {
		t.Errorf("grids with identical contents compared unequal")
	}
}
