package mino

// gameOverState is terminal: the game reached an expected ending (a
// top-out), not a fault. Update never moves it on.
type gameOverState struct{}

func (gameOverState) ID() StateID { return StateGameOver }

func (gameOverState) Enter(g *Game) (State, error) { return nil, nil }

func (gameOverState) Update(g *Game, in Input) (State, error) { return nil, nil }
