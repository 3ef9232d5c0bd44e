package mino

import "github.com/s-shin/mino/piece"

// Game wraps the current state, tuning params, mutable data, and frame
// counter, and exposes the single Update entry point plus the per-frame
// event stream.
type Game struct {
	params   GameParams
	data     *GameData
	state    State
	frameNum uint64
}

// NewGame constructs a Game and immediately resolves the Init state's
// transition (to SpawnPiece, or to Play if data already carries a falling
// piece), chaining through any further Enter-driven transitions.
func NewGame(params GameParams, data *GameData) *Game {
	g := &Game{params: params, data: data}
	g.advance(&initState{}, nil)
	return g
}

// Update advances the game by one frame: it clears and reseeds the event
// buffer, pumps the debouncer if the current state opts in, runs the
// current state's Update, and chains any resulting transitions.
func (g *Game) Update(in Input) {
	d := g.data
	d.clearEvents()
	d.pushEvent(Event{Kind: EventUpdate, Input: in})
	g.frameNum++

	if g.state.ID().PumpsInput() {
		d.Debouncer.Update(in)
	}

	next, err := g.state.Update(g, in)
	g.advance(next, err)
}

// advance applies a state transition (or an invariant-violation error,
// which itself becomes a transition to Error), recursing through any
// further transitions produced by the new state's Enter.
func (g *Game) advance(next State, err error) {
	if err != nil {
		es := &errorState{reason: err.Error()}
		g.state = es
		g.data.pushEvent(Event{Kind: EventEnterState, State: StateError})
		n2, err2 := es.Enter(g)
		g.advance(n2, err2)
		return
	}
	if next == nil {
		return
	}
	g.state = next
	g.data.pushEvent(Event{Kind: EventEnterState, State: next.ID()})
	n2, err2 := next.Enter(g)
	g.advance(n2, err2)
}

// Config returns the game's fixed tuning params.
func (g *Game) Config() GameParams { return g.params }

// Data returns the mutable runtime state.
func (g *Game) Data() *GameData { return g.data }

// FrameNum returns how many Update calls have been processed.
func (g *Game) FrameNum() uint64 { return g.frameNum }

// StateID returns the current state's identity.
func (g *Game) StateID() StateID { return g.state.ID() }

// AppendNextPieces appends to the upcoming-piece queue.
func (g *Game) AppendNextPieces(ks ...piece.Kind) {
	g.data.NextPieces = append(g.data.NextPieces, ks...)
}

// SetNextPieces replaces the upcoming-piece queue wholesale.
func (g *Game) SetNextPieces(ks []piece.Kind) {
	g.data.NextPieces = ks
}
