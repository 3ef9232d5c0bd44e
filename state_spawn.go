package mino

import "fmt"

// spawnPieceState pops the next piece and places it on entry, then
// dwells for ARE frames before handing off to Play.
type spawnPieceState struct {
	frame uint32
}

func (*spawnPieceState) ID() StateID { return StateSpawnPiece }

func (s *spawnPieceState) Enter(g *Game) (State, error) {
	s.frame = 0
	d := g.data
	k, ok := d.popNextPiece()
	if !ok {
		return nil, fmt.Errorf("spawn piece: next piece queue is empty")
	}
	fp := g.params.Rules.SpawnPosition(k, d.Playfield)
	if !fp.CanPutOnto(d.Playfield) {
		d.GameOverReason = GameOverLockOut
		return &gameOverState{}, nil
	}
	d.FallingPiece = &fp
	d.AlreadyHeld = false
	return nil, nil
}

func (s *spawnPieceState) Update(g *Game, in Input) (State, error) {
	s.frame++
	if s.frame >= g.params.ARE {
		return &playState{}, nil
	}
	return nil, nil
}
