package mino

// initState is only ever entered once, by NewGame, and transitions purely
// on entry: it never receives an Update call in practice, since its Enter
// always produces a successor.
type initState struct{}

func (initState) ID() StateID { return StateInit }

func (initState) Enter(g *Game) (State, error) {
	if g.data.FallingPiece != nil {
		return &playState{}, nil
	}
	return &spawnPieceState{}, nil
}

func (initState) Update(g *Game, in Input) (State, error) {
	return nil, nil
}
