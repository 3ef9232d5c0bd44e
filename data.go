package mino

import (
	"github.com/s-shin/mino/input"
	"github.com/s-shin/mino/piece"
)

// GameData is the mutable runtime state a Game owns and passes by
// reference into whichever State is current. It is never cloned on the
// hot path.
type GameData struct {
	Playfield    *Playfield
	FallingPiece *FallingPiece
	HoldPiece    *piece.Kind
	AlreadyHeld  bool
	NextPieces   []piece.Kind
	Debouncer    *input.Manager

	// TSpin is carried from the rotate that produced it until the next
	// non-rotating action clears it or Lock consumes it.
	TSpin piece.TSpin

	GravityCounter   float64
	LockCounter      uint32
	LineClearCounter uint32

	GameOverReason GameOverReason
	ErrorReason    string

	Events []Event
}

// NewGameData builds the initial mutable state for a new game: an empty
// falling piece and hold slot, the given upcoming-piece queue, and a
// debouncer (typically from input.HumanPreset or input.AutomationPreset).
func NewGameData(pf *Playfield, nextPieces []piece.Kind, debouncer *input.Manager) *GameData {
	return &GameData{
		Playfield:  pf,
		NextPieces: nextPieces,
		Debouncer:  debouncer,
	}
}

func (d *GameData) pushEvent(e Event) { d.Events = append(d.Events, e) }

func (d *GameData) clearEvents() { d.Events = d.Events[:0] }

// popNextPiece pops the front of the upcoming-piece queue.
func (d *GameData) popNextPiece() (piece.Kind, bool) {
	if len(d.NextPieces) == 0 {
		return 0, false
	}
	k := d.NextPieces[0]
	d.NextPieces = d.NextPieces[1:]
	return k, true
}
