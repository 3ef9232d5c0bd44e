package piece

// TSpin classifies the outcome of a rotation that placed a T piece.
type TSpin uint8

const (
	TSpinNone TSpin = iota
	TSpinMini
	TSpinNormal
)

func (t TSpin) String() string {
	switch t {
	case TSpinMini:
		return "Mini"
	case TSpinNormal:
		return "Normal"
	default:
		return "None"
	}
}

// ClassifyTSpin inspects the four diagonal corners of the T piece's 3x3
// bounding box, centered on (centerX, centerY). solid must report true for
// occupied cells and for any position outside the playfield.
//
// Fewer than 3 filled corners is never a T-Spin. With 3 or more filled,
// the two corners behind the piece's pointing direction decide the tag:
// if both are filled, 4 filled corners is Normal and 3 is Mini; if either
// is empty, the rotation lands as Normal regardless (the piece must then
// be resting on its two front corners -- the "pointing corners" rule).
func ClassifyTSpin(r Rotation, centerX, centerY int, solid func(x, y int) bool) TSpin {
	topLeft := solid(centerX-1, centerY+1)
	topRight := solid(centerX+1, centerY+1)
	bottomLeft := solid(centerX-1, centerY-1)
	bottomRight := solid(centerX+1, centerY-1)

	filled := 0
	for _, v := range [4]bool{topLeft, topRight, bottomLeft, bottomRight} {
		if v {
			filled++
		}
	}
	if filled < 3 {
		return TSpinNone
	}

	var backFilled bool
	switch r {
	case Cw0: // points up, back is below
		backFilled = bottomLeft && bottomRight
	case Cw90: // points right, back is left
		backFilled = topLeft && bottomLeft
	case Cw180: // points down, back is above
		backFilled = topLeft && topRight
	case Cw270: // points left, back is right
		backFilled = topRight && bottomRight
	}

	if !backFilled {
		return TSpinNormal
	}
	if filled == 4 {
		return TSpinNormal
	}
	return TSpinMini
}
