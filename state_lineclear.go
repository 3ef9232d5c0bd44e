package mino

import (
	"fmt"

	"github.com/s-shin/mino/piece"
)

// lineClearState plucks the filled rows on entry, emits LineCleared, and
// dwells for LineClearDelay frames before handing off to SpawnPiece.
type lineClearState struct {
	frame uint32
}

func (*lineClearState) ID() StateID { return StateLineClear }

func (s *lineClearState) Enter(g *Game) (State, error) {
	d := g.data
	placeholder := piece.Cell{}
	n := d.Playfield.Grid.PluckFilledRows(&placeholder)
	if n == 0 {
		return nil, fmt.Errorf("line clear: entered with no filled rows")
	}
	d.pushEvent(Event{Kind: EventLineCleared, NumLines: n, TSpin: d.TSpin})
	d.TSpin = piece.TSpinNone
	s.frame = 0
	return nil, nil
}

func (s *lineClearState) Update(g *Game, in Input) (State, error) {
	s.frame++
	if s.frame >= g.params.LineClearDelay {
		return &spawnPieceState{}, nil
	}
	return nil, nil
}
