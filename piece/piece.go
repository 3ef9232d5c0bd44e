// Package piece is the catalog of the seven tetromino kinds: their
// rotation masks, padding caches, wall-kick offset tables, and the T-Spin
// corner test. Masks are built once at init and never mutated afterward.
package piece

import "github.com/s-shin/mino/grid"

// Kind identifies one of the seven tetromino identities.
type Kind uint8

const (
	I Kind = iota
	T
	O
	S
	Z
	J
	L
	numKinds
)

func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case T:
		return "T"
	case O:
		return "O"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	default:
		return "?"
	}
}

// All returns the seven kinds in a stable order, suitable as the basis of
// a 7-bag generator.
func All() []Kind {
	return []Kind{I, T, O, S, Z, J, L}
}

// Num is the number of distinct piece kinds.
func Num() int { return int(numKinds) }

// Rotation is one of the four SRS rotation states.
type Rotation uint8

const (
	Cw0 Rotation = iota
	Cw90
	Cw180
	Cw270
)

func (r Rotation) add(n int) Rotation {
	return Rotation((int(r) + n + 4) % 4)
}

// CW returns the next rotation state clockwise.
func (r Rotation) CW() Rotation { return r.add(1) }

// CCW returns the next rotation state counter-clockwise.
func (r Rotation) CCW() Rotation { return r.add(-1) }

// CellTag distinguishes the roles a Cell can play on a mask or a playfield.
type CellTag uint8

const (
	CellEmpty CellTag = iota
	CellBlock
	CellGhost
	CellGarbage
)

// Cell is the element type shared by every piece mask and by the
// playfield grid, so the same grid.Grid overlay operations serve both.
// Ghost and Empty are both empty for collision purposes.
type Cell struct {
	Tag  CellTag
	Kind Kind
}

func (c Cell) IsEmpty() bool { return c.Tag == CellEmpty || c.Tag == CellGhost }

// Mask is an immutable grid of Cells describing one rotation state of one
// piece kind.
type Mask = grid.Grid[Cell]

type definition struct {
	masks     [4]*Mask
	topPad    [4]int
	bottomPad [4]int
}

var definitions [int(numKinds)]definition

func visualMask(k Kind, side int, visual []bool) *Mask {
	m := grid.New[Cell](side, side)
	for row := 0; row < side; row++ {
		y := side - 1 - row
		for col := 0; col < side; col++ {
			if visual[row*side+col] {
				m.SetCell(col, y, Cell{Tag: CellBlock, Kind: k})
			}
		}
	}
	return m
}

func build3x3(k Kind, visual [9]bool) *Mask { return visualMask(k, 3, visual[:]) }
func build5x5(k Kind, visual [25]bool) *Mask { return visualMask(k, 5, visual[:]) }

func init() {
	const f, t = false, true

	bases := map[Kind]*Mask{
		// I occupies a 5x5 box (not the usual 4x4) so its kick table is
		// symmetric, per spec.
		I: build5x5(I, [25]bool{
			f, f, f, f, f,
			f, f, f, f, f,
			f, t, t, t, t,
			f, f, f, f, f,
			f, f, f, f, f,
		}),
		T: build3x3(T, [9]bool{
			f, t, f,
			t, t, t,
			f, f, f,
		}),
		O: build3x3(O, [9]bool{
			f, t, t,
			f, t, t,
			f, f, f,
		}),
		S: build3x3(S, [9]bool{
			f, t, t,
			t, t, f,
			f, f, f,
		}),
		Z: build3x3(Z, [9]bool{
			t, t, f,
			f, t, t,
			f, f, f,
		}),
		J: build3x3(J, [9]bool{
			t, f, f,
			t, t, t,
			f, f, f,
		}),
		L: build3x3(L, [9]bool{
			f, f, t,
			t, t, t,
			f, f, f,
		}),
	}

	for _, k := range All() {
		base := bases[k]
		var d definition
		d.masks[Cw0] = base
		d.masks[Cw90] = base.Rotate1()
		d.masks[Cw180] = base.Rotate2()
		d.masks[Cw270] = base.Rotate3()
		for r := 0; r < 4; r++ {
			d.topPad[r] = d.masks[r].TopPadding()
			d.bottomPad[r] = d.masks[r].BottomPadding()
		}
		definitions[k] = d
	}
}

// MaskFor returns the cached mask for kind k at rotation r.
func MaskFor(k Kind, r Rotation) *Mask { return definitions[k].masks[r] }

// TopPadding returns the cached count of fully-empty rows at the top of
// kind k's mask at rotation r.
func TopPadding(k Kind, r Rotation) int { return definitions[k].topPad[r] }

// BottomPadding returns the cached count of fully-empty rows at the
// bottom of kind k's mask at rotation r.
func BottomPadding(k Kind, r Rotation) int { return definitions[k].bottomPad[r] }
