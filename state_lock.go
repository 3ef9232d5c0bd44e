package mino

import (
	"fmt"

	"github.com/s-shin/mino/piece"
)

// lockState tests top-out, freezes the falling piece into the playfield,
// and decides whether a line clear or a fresh spawn follows.
type lockState struct{}

func (lockState) ID() StateID { return StateLock }

func (lockState) Enter(g *Game) (State, error) { return nil, nil }

func (lockState) Update(g *Game, in Input) (State, error) {
	d := g.data
	p := g.params
	fp := d.FallingPiece
	if fp == nil {
		return nil, fmt.Errorf("lock: no falling piece")
	}

	if p.TopOutCondition.Has(TopOutLockOut) && fp.IsLockOut(d.Playfield) {
		d.GameOverReason = GameOverLockOut
		return &gameOverState{}, nil
	}
	if p.TopOutCondition.Has(TopOutPartialLockOut) && fp.IsPartialLockOut(d.Playfield) {
		d.GameOverReason = GameOverPartialLockOut
		return &gameOverState{}, nil
	}

	flags := d.Playfield.Grid.Overlay(fp.X, fp.Y, fp.Mask())
	if !flags.Empty() {
		return nil, fmt.Errorf("lock: falling piece collided while overlaying the playfield")
	}
	d.FallingPiece = nil
	d.LockCounter = 0
	d.GravityCounter = 0

	hasFullRow := false
	for y := 0; y < d.Playfield.VisibleRows; y++ {
		if d.Playfield.Grid.IsRowFilled(y) {
			hasFullRow = true
			break
		}
	}
	if hasFullRow {
		return &lineClearState{}, nil
	}

	if d.TSpin == piece.TSpinMini {
		d.pushEvent(Event{Kind: EventLineCleared, NumLines: 0, TSpin: piece.TSpinMini})
	}
	d.TSpin = piece.TSpinNone
	return &spawnPieceState{}, nil
}
