package mino

// errorState is terminal: it marks an invariant violation, a bug in the
// engine or its caller rather than an expected game outcome. Update never
// moves it on.
type errorState struct {
	reason string
}

func (*errorState) ID() StateID { return StateError }

func (s *errorState) Enter(g *Game) (State, error) {
	g.data.ErrorReason = s.reason
	return nil, nil
}

func (*errorState) Update(g *Game, in Input) (State, error) { return nil, nil }
