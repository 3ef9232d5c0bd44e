package piece

import "testing"

func TestCatalogDimensions(t *testing.T) {
	for _, k := range All() {
		for r := Cw0; r <= Cw270; r++ {
			m := MaskFor(k, r)
			wantSide := 3
			if k == I {
				wantSide = 5
			}
			if m.Cols() != wantSide || m.Rows() != wantSide {
				t.Errorf("%s rotation %d mask dims = %dx%d, want %dx%d", k, r, m.Cols(), m.Rows(), wantSide, wantSide)
			}
		}
	}
}

func TestCatalogCellCount(t *testing.T) {
	for _, k := range All() {
		for r := Cw0; r <= Cw270; r++ {
			m := MaskFor(k, r)
			n := 0
			for y := 0; y < m.Rows(); y++ {
				for x := 0; x < m.Cols(); x++ {
					if !m.Cell(x, y).IsEmpty() {
						n++
					}
				}
			}
			if n != 4 {
				t.Errorf("%s rotation %d has %d filled cells, want 4", k, r, n)
			}
		}
	}
}

func TestRotationFourTurnsIsIdentity(t *testing.T) {
	for _, k := range All() {
		r := Cw0
		for i := 0; i < 4; i++ {
			r = r.CW()
		}
		if r != Cw0 {
			t.Errorf("%s: four CW turns landed on %d, want Cw0", k, r)
		}
	}
}

func TestKickOffsetsLength(t *testing.T) {
	if got := len(KickOffsets(O, Cw0)); got != 1 {
		t.Errorf("O kick table length = %d, want 1", got)
	}
	for _, k := range []Kind{T, S, Z, J, L, I} {
		if got := len(KickOffsets(k, Cw0)); got != 5 {
			t.Errorf("%s kick table length = %d, want 5", k, got)
		}
	}
}

func TestClassifyTSpinNone(t *testing.T) {
	// Fewer than 3 corners filled.
	solid := func(x, y int) bool { return false }
	if got := ClassifyTSpin(Cw0, 5, 5, solid); got != TSpinNone {
		t.Errorf("ClassifyTSpin = %v, want None", got)
	}
}

func TestClassifyTSpinNormalAllFour(t *testing.T) {
	solid := func(x, y int) bool { return true }
	if got := ClassifyTSpin(Cw0, 5, 5, solid); got != TSpinNormal {
		t.Errorf("ClassifyTSpin = %v, want Normal (4 corners filled)", got)
	}
}

func TestClassifyTSpinMini(t *testing.T) {
	// Cw0 points up: back corners are the two bottom corners. Fill both
	// back corners and one front corner, leave the other front corner
	// open: 3 filled, back filled -> Mini.
	filled := map[[2]int]bool{
		{4, 6}: true, // top-left (front)
		{4, 4}: true, // bottom-left (back)
		{6, 4}: true, // bottom-right (back)
	}
	solid := func(x, y int) bool { return filled[[2]int{x, y}] }
	if got := ClassifyTSpin(Cw0, 5, 5, solid); got != TSpinMini {
		t.Errorf("ClassifyTSpin = %v, want Mini", got)
	}
}

func TestClassifyTSpinNormalPointingCorners(t *testing.T) {
	// Cw0 points up: fill both front (top) corners and only one back
	// (bottom) corner: 3 filled, back not fully filled -> Normal by the
	// pointing-corners rule.
	filled := map[[2]int]bool{
		{4, 6}: true, // top-left (front)
		{6, 6}: true, // top-right (front)
		{4, 4}: true, // bottom-left (back)
	}
	solid := func(x, y int) bool { return filled[[2]int{x, y}] }
	if got := ClassifyTSpin(Cw0, 5, 5, solid); got != TSpinNormal {
		t.Errorf("ClassifyTSpin = %v, want Normal (pointing corners)", got)
	}
}
