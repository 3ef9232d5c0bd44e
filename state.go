package mino

// StateID names one of the Play state machine's states, including the two
// terminal ones.
type StateID uint8

const (
	StateInit StateID = iota
	StateSpawnPiece
	StatePlay
	StateLock
	StateLineClear
	StateGameOver
	StateError
)

func (id StateID) String() string {
	switch id {
	case StateInit:
		return "Init"
	case StateSpawnPiece:
		return "SpawnPiece"
	case StatePlay:
		return "Play"
	case StateLock:
		return "Lock"
	case StateLineClear:
		return "LineClear"
	case StateGameOver:
		return "GameOver"
	case StateError:
		return "Error"
	default:
		return "?"
	}
}

// PumpsInput reports whether the state named by id advances the input
// debouncer on Update. Lock and LineClear freeze input state so held keys
// neither decay nor repeat across the intermission.
func (id StateID) PumpsInput() bool {
	return id == StatePlay || id == StateSpawnPiece
}

// GameOverReason records which top-out condition ended the game.
type GameOverReason uint8

const (
	GameOverNone GameOverReason = iota
	GameOverLockOut
	GameOverPartialLockOut
	GameOverBlockOut
	GameOverGarbageOut
)

func (r GameOverReason) String() string {
	switch r {
	case GameOverLockOut:
		return "LockOut"
	case GameOverPartialLockOut:
		return "PartialLockOut"
	case GameOverBlockOut:
		return "BlockOut"
	case GameOverGarbageOut:
		return "GarbageOut"
	default:
		return "None"
	}
}

// State is one state of the Play state machine, implemented as a closed
// tagged variant dispatched by the concrete type rather than a vtable: no
// state's Enter or Update ever returns itself as the successor, so the
// engine's recursive advance always terminates.
//
// Enter and Update both return (nil, nil) to mean "stay in the current
// state", a non-nil State to mean "transition", and a non-nil error to
// mean an invariant was violated (the engine transitions to Error).
type State interface {
	ID() StateID
	Enter(g *Game) (State, error)
	Update(g *Game, in Input) (State, error)
}
