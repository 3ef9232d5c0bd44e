package mino

import "github.com/s-shin/mino/piece"

// Rules supplies the one policy point the engine leaves pluggable: where a
// piece spawns. A future garbage-aware or multiplayer rule set can
// implement Rules without touching the state machine.
type Rules interface {
	SpawnPosition(k piece.Kind, pf *Playfield) FallingPiece
}

// WorldRules is the default, Guideline-style rule set: a spawned piece is
// centered horizontally and placed so it sits at the top of the visible
// region, with one extra row of buffer allowed upward if that initial
// position collides.
type WorldRules struct{}

func (WorldRules) SpawnPosition(k piece.Kind, pf *Playfield) FallingPiece {
	m := piece.MaskFor(k, piece.Cw0)
	x := (pf.Grid.Cols() - m.Cols()) / 2
	y := pf.VisibleRows - m.Rows()
	fp := FallingPiece{Kind: k, X: x, Y: y, Rotation: piece.Cw0}
	if !fp.CanPutOnto(pf) {
		fp.Y++
	}
	return fp
}
