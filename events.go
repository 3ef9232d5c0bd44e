package mino

import "github.com/s-shin/mino/piece"

// EventKind distinguishes the events a frame's update can produce.
type EventKind uint8

const (
	EventUpdate EventKind = iota
	EventLineCleared
	EventEnterState
)

func (k EventKind) String() string {
	switch k {
	case EventUpdate:
		return "Update"
	case EventLineCleared:
		return "LineCleared"
	case EventEnterState:
		return "EnterState"
	default:
		return "?"
	}
}

// Event is one entry in a frame's flushed event buffer. Only the fields
// relevant to Kind are meaningful.
type Event struct {
	Kind EventKind

	// EventUpdate
	Input Input

	// EventLineCleared
	NumLines int
	TSpin    piece.TSpin

	// EventEnterState
	State StateID
}
