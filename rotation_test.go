package mino

import (
	"testing"

	"github.com/s-shin/mino/piece"
)

func TestAttemptRotationReversibilityOpenField(t *testing.T) {
	pf := NewPlayfield(DefaultCols, DefaultRows, DefaultVisibleRows)
	for _, k := range piece.All() {
		orig := FallingPiece{Kind: k, X: 4, Y: 20, Rotation: piece.Cw0}
		cw, ok := attemptRotation(orig, true, pf)
		if !ok {
			t.Fatalf("%s: CW rotation in open space should always succeed", k)
		}
		back, ok := attemptRotation(cw, false, pf)
		if !ok {
			t.Fatalf("%s: CCW rotation in open space should always succeed", k)
		}
		if back != orig {
			t.Errorf("%s: CW then CCW = %+v, want original %+v", k, back, orig)
		}
	}
}

func TestAttemptRotationORotationIsStationary(t *testing.T) {
	pf := NewPlayfield(DefaultCols, DefaultRows, DefaultVisibleRows)
	orig := FallingPiece{Kind: piece.O, X: 4, Y: 4, Rotation: piece.Cw0}
	before := map[[2]int]bool{}
	m := orig.Mask()
	for y := 0; y < m.Rows(); y++ {
		for x := 0; x < m.Cols(); x++ {
			if !m.Cell(x, y).IsEmpty() {
				before[[2]int{orig.X + x, orig.Y + y}] = true
			}
		}
	}
	cand, ok := attemptRotation(orig, true, pf)
	if !ok {
		t.Fatal("O rotation in open space should always succeed")
	}
	after := map[[2]int]bool{}
	cm := cand.Mask()
	for y := 0; y < cm.Rows(); y++ {
		for x := 0; x < cm.Cols(); x++ {
			if !cm.Cell(x, y).IsEmpty() {
				after[[2]int{cand.X + x, cand.Y + y}] = true
			}
		}
	}
	if len(before) != len(after) {
		t.Fatalf("O occupies %d absolute cells before, %d after", len(before), len(after))
	}
	for pos := range before {
		if !after[pos] {
			t.Errorf("O's absolute footprint moved: %v occupied before, not after", pos)
		}
	}
}

func TestClassifyTSpinForIgnoresNonT(t *testing.T) {
	pf := NewPlayfield(DefaultCols, DefaultRows, DefaultVisibleRows)
	fp := FallingPiece{Kind: piece.O, X: 4, Y: 4, Rotation: piece.Cw0}
	if got := classifyTSpinFor(fp, pf); got != piece.TSpinNone {
		t.Errorf("classifyTSpinFor(O) = %v, want None", got)
	}
}
