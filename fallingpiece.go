package mino

import (
	"github.com/s-shin/mino/grid"
	"github.com/s-shin/mino/piece"
)

// FallingPiece is the active piece: its kind, rotation, and the
// playfield-space coordinates of its mask's bottom-left origin.
type FallingPiece struct {
	Kind     piece.Kind
	X, Y     int
	Rotation piece.Rotation
}

// Mask returns the cached rotation mask for fp's current kind/rotation.
func (fp FallingPiece) Mask() *piece.Mask { return piece.MaskFor(fp.Kind, fp.Rotation) }

// CanPutOnto reports whether fp can be placed onto pf without overflow or
// overlap.
func (fp FallingPiece) CanPutOnto(pf *Playfield) bool {
	return pf.Grid.CheckOverlay(fp.X, fp.Y, fp.Mask()).Empty()
}

// DroppableRows returns how many rows fp can descend before the first
// collision. Zero means the piece is grounded.
func (fp FallingPiece) DroppableRows(pf *Playfield) int {
	n, _ := pf.Grid.CheckOverlayToward(fp.X, fp.Y, fp.Mask(), 0, -1)
	return n - 1
}

// IsLockOut reports whether fp's lowest occupied row sits at or above the
// visible region -- the piece never showed any part inside play.
func (fp FallingPiece) IsLockOut(pf *Playfield) bool {
	bottomPad := piece.BottomPadding(fp.Kind, fp.Rotation)
	return fp.Y+bottomPad >= pf.VisibleRows
}

// IsPartialLockOut reports whether fp's topmost occupied row sits at or
// above the visible region -- part of the piece locked out of view.
func (fp FallingPiece) IsPartialLockOut(pf *Playfield) bool {
	m := fp.Mask()
	topPad := piece.TopPadding(fp.Kind, fp.Rotation)
	return fp.Y+(m.Rows()-topPad-1) >= pf.VisibleRows
}

// GhostPosition returns the (x,y) fp would occupy if dropped immediately.
func (fp FallingPiece) GhostPosition(pf *Playfield) (int, int) {
	return fp.X, fp.Y - fp.DroppableRows(pf)
}

// GhostMask returns fp's mask with its cells tagged as ghost rather than
// block, for rendering the drop preview.
func (fp FallingPiece) GhostMask() *piece.Mask {
	src := fp.Mask()
	out := grid.New[piece.Cell](src.Cols(), src.Rows())
	for y := 0; y < src.Rows(); y++ {
		for x := 0; x < src.Cols(); x++ {
			c := src.Cell(x, y)
			if !c.IsEmpty() {
				out.SetCell(x, y, piece.Cell{Tag: piece.CellGhost, Kind: c.Kind})
			}
		}
	}
	return out
}
