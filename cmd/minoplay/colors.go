package main

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/s-shin/mino/piece"
)

var kindColors = map[piece.Kind]tcell.Color{
	piece.I: tcell.NewRGBColor(0, 200, 200),
	piece.T: tcell.NewRGBColor(180, 60, 220),
	piece.O: tcell.NewRGBColor(230, 200, 0),
	piece.S: tcell.NewRGBColor(60, 200, 60),
	piece.Z: tcell.NewRGBColor(220, 60, 60),
	piece.J: tcell.NewRGBColor(60, 100, 230),
	piece.L: tcell.NewRGBColor(230, 140, 40),
}

var garbageColor = tcell.NewRGBColor(120, 120, 120)

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ghostColor dims a piece's color toward the background in perceptual Lab
// space, so the ghost outline reads as a faded version of the same hue
// rather than a washed-out gray.
func ghostColor(base tcell.Color) tcell.Color {
	bg := colorful.Color{R: 0.07, G: 0.07, B: 0.1}
	return fromColorful(toColorful(base).BlendLab(bg, 0.7))
}
