package mino

import (
	"fmt"
	"math"

	"github.com/s-shin/mino/input"
	"github.com/s-shin/mino/piece"
)

// playState runs gravity, lock-delay accumulation, hold, drop variants,
// horizontal movement and rotation for the active falling piece.
type playState struct{}

func (playState) ID() StateID { return StatePlay }

func (playState) Enter(g *Game) (State, error) { return nil, nil }

func (playState) Update(g *Game, in Input) (State, error) {
	d := g.data
	p := g.params
	fp := d.FallingPiece
	if fp == nil {
		return nil, fmt.Errorf("play: no falling piece")
	}

	numDroppable := fp.DroppableRows(d.Playfield)

	if d.Debouncer.Handle(input.KeyHardDrop) {
		landed := *fp
		landed.Y -= numDroppable
		d.FallingPiece = &landed
		return &lockState{}, nil
	}

	if !d.AlreadyHeld && d.Debouncer.Handle(input.KeyHold) {
		// Hold consumes the entire frame: the replacement piece's droppable
		// rows haven't been computed yet, so applying the move, rotation and
		// gravity steps below to it this same frame would act on stale
		// geometry.
		return handleHold(g)
	}

	grounded := numDroppable == 0
	if grounded {
		d.GravityCounter = 0
		d.LockCounter++
		softDropFresh := p.LockDelayCancel && d.Debouncer.Handle(input.KeySoftDrop)
		if d.LockCounter > p.LockDelay || softDropFresh {
			return &lockState{}, nil
		}
	} else if d.Debouncer.Handle(input.KeyFirmDrop) {
		moved := *d.FallingPiece
		moved.Y -= numDroppable
		d.FallingPiece = &moved
		d.TSpin = piece.TSpinNone
		d.LockCounter = 0
		d.GravityCounter = 0
	} else {
		d.GravityCounter += p.Gravity
		if d.Debouncer.Handle(input.KeySoftDrop) {
			d.GravityCounter += p.SoftDropGravity
		}
	}

	// Horizontal move: left takes precedence when both are handled.
	left := d.Debouncer.Handle(input.KeyMoveLeft)
	right := !left && d.Debouncer.Handle(input.KeyMoveRight)
	dx := 0
	if left {
		dx = -1
	} else if right {
		dx = 1
	}
	if dx != 0 {
		cand := *d.FallingPiece
		cand.X += dx
		if cand.CanPutOnto(d.Playfield) {
			d.FallingPiece = &cand
			d.TSpin = piece.TSpinNone
		}
	}

	// Rotation: CW takes precedence when both are handled.
	cw := d.Debouncer.Handle(input.KeyRotateCW)
	ccw := !cw && d.Debouncer.Handle(input.KeyRotateCCW)
	if cw || ccw {
		if cand, ok := attemptRotation(*d.FallingPiece, cw, d.Playfield); ok {
			d.FallingPiece = &cand
			d.TSpin = classifyTSpinFor(cand, d.Playfield)
		}
	}

	// Gravity drop.
	fp = d.FallingPiece
	droppableNow := fp.DroppableRows(d.Playfield)
	if droppableNow > 0 && d.GravityCounter >= 1.0 {
		n := int(math.Floor(d.GravityCounter))
		if n > droppableNow {
			n = droppableNow
		}
		moved := *fp
		moved.Y -= n
		d.FallingPiece = &moved
		d.TSpin = piece.TSpinNone
		d.GravityCounter = 0
		d.LockCounter = 0
	}

	return nil, nil
}

// handleHold swaps the falling piece with the hold slot (or the next
// queued piece, if nothing was held yet), spawning the replacement in
// place of the current piece.
func handleHold(g *Game) (State, error) {
	d := g.data
	var next piece.Kind
	if d.HoldPiece != nil {
		next = *d.HoldPiece
	} else {
		k, ok := d.popNextPiece()
		if !ok {
			return nil, fmt.Errorf("hold: next piece queue is empty")
		}
		next = k
	}
	cur := d.FallingPiece.Kind
	d.HoldPiece = &cur

	fp := g.params.Rules.SpawnPosition(next, d.Playfield)
	if !fp.CanPutOnto(d.Playfield) {
		d.GameOverReason = GameOverBlockOut
		return &gameOverState{}, nil
	}
	d.FallingPiece = &fp
	d.AlreadyHeld = true
	d.TSpin = piece.TSpinNone
	d.GravityCounter = 0
	d.LockCounter = 0
	return nil, nil
}
