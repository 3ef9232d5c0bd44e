package mino

import "github.com/s-shin/mino/piece"

// attemptRotation tries to rotate fp in the given direction under the SRS
// kick sequence, returning the first candidate that fits and true, or fp
// unchanged and false if every candidate collides.
func attemptRotation(fp FallingPiece, cw bool, pf *Playfield) (FallingPiece, bool) {
	to := fp.Rotation.CCW()
	if cw {
		to = fp.Rotation.CW()
	}
	fromOffsets := piece.KickOffsets(fp.Kind, fp.Rotation)
	toOffsets := piece.KickOffsets(fp.Kind, to)
	n := len(fromOffsets)
	if len(toOffsets) < n {
		n = len(toOffsets)
	}
	for k := 0; k < n; k++ {
		dx := fromOffsets[k].X - toOffsets[k].X
		dy := fromOffsets[k].Y - toOffsets[k].Y
		cand := FallingPiece{Kind: fp.Kind, X: fp.X + dx, Y: fp.Y + dy, Rotation: to}
		if cand.CanPutOnto(pf) {
			return cand, true
		}
	}
	return fp, false
}

// classifyTSpinFor runs the T-Spin corner test against pf for fp,
// returning TSpinNone immediately for any piece other than T.
func classifyTSpinFor(fp FallingPiece, pf *Playfield) piece.TSpin {
	if fp.Kind != piece.T {
		return piece.TSpinNone
	}
	m := fp.Mask()
	cx := fp.X + m.Cols()/2
	cy := fp.Y + m.Rows()/2
	solid := func(x, y int) bool {
		if x < 0 || y < 0 || x >= pf.Grid.Cols() || y >= pf.Grid.Rows() {
			return true
		}
		return !pf.Grid.Cell(x, y).IsEmpty()
	}
	return piece.ClassifyTSpin(fp.Rotation, cx, cy, solid)
}
