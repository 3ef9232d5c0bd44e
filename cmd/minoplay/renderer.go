package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/s-shin/mino"
	"github.com/s-shin/mino/piece"
)

const cellWidth = 2

// renderer draws one Game onto a tcell.Screen. It owns no state of its
// own beyond the origin it was given and the current flash message;
// everything else it needs comes out of the Game's accessors each frame.
type renderer struct {
	screen   tcell.Screen
	originX  int
	originY  int
	flashMsg string
	flashTTL int
}

func newRenderer(screen tcell.Screen) *renderer {
	return &renderer{screen: screen, originX: 2, originY: 1}
}

func (r *renderer) setFlash(msg string, frames int) {
	r.flashMsg = msg
	r.flashTTL = frames
}

func (r *renderer) putCell(x, y int, ch rune, style tcell.Style) {
	r.screen.SetContent(x, y, ch, nil, style)
	r.screen.SetContent(x+1, y, ch, nil, style)
}

func (r *renderer) boardRow(y int, pf *mino.Playfield) int {
	return r.originY + (pf.VisibleRows - 1 - y)
}

func (r *renderer) drawBorder(x, y, w, h int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i := 0; i < w; i++ {
		r.screen.SetContent(x+i, y-1, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x+i, y+h, tcell.RuneHLine, nil, style)
	}
	for i := 0; i < h; i++ {
		r.screen.SetContent(x-1, y+i, tcell.RuneVLine, nil, style)
		r.screen.SetContent(x+w, y+i, tcell.RuneVLine, nil, style)
	}
}

func (r *renderer) drawCellKind(x, y int, k piece.Kind, tag piece.CellTag) {
	base, ok := kindColors[k]
	if !ok {
		base = garbageColor
	}
	style := tcell.StyleDefault.Foreground(base).Background(base)
	ch := rune(' ')
	if tag == piece.CellGhost {
		style = tcell.StyleDefault.Foreground(ghostColor(base))
		ch = '▒'
	}
	r.putCell(x, y, ch, style)
}

func (r *renderer) drawPlayfield(g *mino.Game) {
	d := g.Data()
	pf := d.Playfield
	boardX := r.originX
	r.drawBorder(boardX, r.originY, pf.Grid.Cols()*cellWidth, pf.VisibleRows)

	for y := 0; y < pf.VisibleRows; y++ {
		row := r.boardRow(y, pf)
		for x := 0; x < pf.Grid.Cols(); x++ {
			screenX := boardX + x*cellWidth
			c := pf.Grid.Cell(x, y)
			if c.IsEmpty() {
				r.screen.SetContent(screenX, row, ' ', nil, tcell.StyleDefault)
				r.screen.SetContent(screenX+1, row, ' ', nil, tcell.StyleDefault)
				continue
			}
			r.drawCellKind(screenX, row, c.Kind, c.Tag)
		}
	}

	if fp := d.FallingPiece; fp != nil {
		r.drawFallingPiece(pf, *fp, boardX, piece.CellGhost, true)
		r.drawFallingPiece(pf, *fp, boardX, piece.CellBlock, false)
	}
}

func (r *renderer) drawFallingPiece(pf *mino.Playfield, fp mino.FallingPiece, boardX int, tag piece.CellTag, ghost bool) {
	px, py := fp.X, fp.Y
	m := fp.Mask()
	if ghost {
		px, py = fp.GhostPosition(pf)
		m = fp.GhostMask()
	}
	for y := 0; y < m.Rows(); y++ {
		for x := 0; x < m.Cols(); x++ {
			cell := m.Cell(x, y)
			if cell.IsEmpty() {
				continue
			}
			boardY := py + y
			if boardY < 0 || boardY >= pf.VisibleRows {
				continue
			}
			screenX := boardX + (px+x)*cellWidth
			row := r.boardRow(boardY, pf)
			r.drawCellKind(screenX, row, cell.Kind, tag)
		}
	}
}

func (r *renderer) drawMaskBox(x, y int, k *piece.Kind) {
	r.drawBorder(x, y, 4*cellWidth, 2)
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 4; dx++ {
			r.screen.SetContent(x+dx*cellWidth, y+dy, ' ', nil, tcell.StyleDefault)
			r.screen.SetContent(x+dx*cellWidth+1, y+dy, ' ', nil, tcell.StyleDefault)
		}
	}
	if k == nil {
		return
	}
	m := piece.MaskFor(*k, piece.Cw0)
	minX, minY := m.Cols(), m.Rows()
	maxX, maxY := -1, -1
	for my := 0; my < m.Rows(); my++ {
		for mx := 0; mx < m.Cols(); mx++ {
			if m.Cell(mx, my).IsEmpty() {
				continue
			}
			if mx < minX {
				minX = mx
			}
			if mx > maxX {
				maxX = mx
			}
			if my < minY {
				minY = my
			}
			if my > maxY {
				maxY = my
			}
		}
	}
	if maxX < 0 {
		return
	}
	for my := minY; my <= maxY; my++ {
		for mx := minX; mx <= maxX; mx++ {
			cell := m.Cell(mx, my)
			if cell.IsEmpty() {
				continue
			}
			// Grid rows run bottom-up; the box is drawn top-down.
			r.drawCellKind(x+(mx-minX)*cellWidth, y+(maxY-my), cell.Kind, piece.CellBlock)
		}
	}
}

func (r *renderer) drawSidebar(g *mino.Game) {
	d := g.Data()
	sideX := r.originX + d.Playfield.Grid.Cols()*cellWidth + 4

	r.drawText(sideX, r.originY, "HOLD")
	r.drawMaskBox(sideX, r.originY+1, d.HoldPiece)

	r.drawText(sideX, r.originY+5, "NEXT")
	for i := 0; i < 5 && i < len(d.NextPieces); i++ {
		k := d.NextPieces[i]
		r.drawMaskBox(sideX, r.originY+6+i*3, &k)
	}

	status := fmt.Sprintf("state %-10s frame %d", g.StateID(), g.FrameNum())
	r.drawText(sideX, r.originY+28, status)
	if d.ErrorReason != "" {
		r.drawText(sideX, r.originY+29, "error: "+d.ErrorReason)
	}
	if r.flashTTL > 0 {
		r.drawText(sideX, r.originY+30, r.flashMsg)
		r.flashTTL--
	}
	r.drawText(sideX, r.originY+32, "arrows move, z/x rotate, s firm, c/space hold, up hard, q quit")
}

func (r *renderer) drawText(x, y int, s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *renderer) draw(g *mino.Game) {
	r.screen.Clear()
	r.drawPlayfield(g)
	r.drawSidebar(g)
	r.screen.Show()
}

func tspinLabel(t piece.TSpin) string {
	switch t {
	case piece.TSpinMini:
		return "T-Spin Mini"
	case piece.TSpinNormal:
		return "T-Spin"
	default:
		return ""
	}
}
