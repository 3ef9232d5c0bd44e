package mino

import "github.com/s-shin/mino/input"

// Input is the 8-bit per-frame held-key bitmask the engine consumes.
// Multiple bits may be set in the same frame; Play arbitrates.
type Input uint8

const (
	InputHardDrop Input = 1 << iota
	InputSoftDrop
	InputFirmDrop
	InputMoveLeft
	InputMoveRight
	InputRotateCW
	InputRotateCCW
	InputHold
)

// Has implements input.Source, so an Input value can drive an
// input.Manager directly.
func (in Input) Has(k input.Key) bool {
	switch k {
	case input.KeyHardDrop:
		return in&InputHardDrop != 0
	case input.KeySoftDrop:
		return in&InputSoftDrop != 0
	case input.KeyFirmDrop:
		return in&InputFirmDrop != 0
	case input.KeyMoveLeft:
		return in&InputMoveLeft != 0
	case input.KeyMoveRight:
		return in&InputMoveRight != 0
	case input.KeyRotateCW:
		return in&InputRotateCW != 0
	case input.KeyRotateCCW:
		return in&InputRotateCCW != 0
	case input.KeyHold:
		return in&InputHold != 0
	default:
		return false
	}
}
