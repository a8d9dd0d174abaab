package ghelper

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderTile pre-renders a solid square tile.
func RenderTile(size int, fill color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.Fill(fill)
	return img
}

// RenderOverlayTile pre-renders a translucent rounded overlay slightly
// inset from the cell, anti-aliased via gg.
func RenderOverlayTile(size int, fill color.RGBA) *ebiten.Image {
	dc := gg.NewContext(size, size)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	inset := float64(size) * 0.04
	dc.DrawRoundedRectangle(inset, inset, float64(size)-2*inset, float64(size)-2*inset, float64(size)*0.12)
	dc.Fill()
	return ebiten.NewImageFromImage(dc.Image())
}
