package piece

// Offset is a single candidate translation tried during a rotation
// attempt.
type Offset struct{ X, Y int }

// jlstzOffsets and iOffsets are the standard five-entry SRS offset tables,
// indexed per rotation state (not per transition): the kick candidates for
// a rotation from A to B are derived as offsets[A][k] - offsets[B][k].
var jlstzOffsets = [4][5]Offset{
	Cw0:   {{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	Cw90:  {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	Cw180: {{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	Cw270: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
}

var iOffsets = [4][5]Offset{
	Cw0:   {{0, 0}, {-1, 0}, {2, 0}, {-1, 0}, {2, 0}},
	Cw90:  {{-1, 0}, {0, 0}, {0, 0}, {0, 1}, {0, -2}},
	Cw180: {{-1, 1}, {1, 1}, {-2, 1}, {1, 0}, {-2, 0}},
	Cw270: {{0, 1}, {0, 1}, {0, 1}, {0, -1}, {0, 2}},
}

// oOffsets is the one-entry degenerate table: O never kicks, but still
// needs a per-state correction so that rotating it in an odd-sized
// bounding box does not visually translate the piece.
var oOffsets = [4][1]Offset{
	Cw0:   {{0, 0}},
	Cw90:  {{0, -1}},
	Cw180: {{-1, -1}},
	Cw270: {{-1, 0}},
}

// KickOffsets returns the per-rotation-state offset table used to derive
// wall-kick candidates for k at rotation r.
func KickOffsets(k Kind, r Rotation) []Offset {
	switch k {
	case O:
		return oOffsets[r][:]
	case I:
		return iOffsets[r][:]
	default:
		return jlstzOffsets[r][:]
	}
}
