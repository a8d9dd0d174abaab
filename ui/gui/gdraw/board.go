// Package gdraw renders a control.Snapshot. It is a pure consumer:
// nothing here feeds back into the interaction state.
package gdraw

import (
	"fmt"

	"tapchess/src/base"
	"tapchess/src/control"
	"tapchess/src/coords"
	"tapchess/ui/gui/gbase"
	"tapchess/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type BoardDrawer struct {
	cell   int
	theme  gbase.Palette
	assets *ghelper.GUIAssetsWorker

	// pre-rendered once; tiles never change within a theme
	lightTile   *ebiten.Image
	darkTile    *ebiten.Image
	selectedOv  *ebiten.Image
	highlightOv *ebiten.Image
}

func NewBoardDrawer(cell int, theme gbase.Palette, assets *ghelper.GUIAssetsWorker) *BoardDrawer {
	return &BoardDrawer{
		cell:        cell,
		theme:       theme,
		assets:      assets,
		lightTile:   ghelper.RenderTile(cell, theme.LightSq),
		darkTile:    ghelper.RenderTile(cell, theme.DarkSq),
		selectedOv:  ghelper.RenderOverlayTile(cell, theme.Selected),
		highlightOv: ghelper.RenderOverlayTile(cell, theme.Highlight),
	}
}

func (bd *BoardDrawer) Draw(screen *ebiten.Image, snap control.Snapshot, debugFEN string) {
	screen.Fill(bd.theme.Bg)

	// tiles
	for rank := 0; rank < gbase.GridSize; rank++ {
		for file := 0; file < gbase.GridSize; file++ {
			tile := bd.darkTile
			if (rank+file)%2 == 0 {
				tile = bd.lightTile
			}
			bd.drawAt(screen, tile, base.Square{Rank: rank, File: file}, 1)
		}
	}

	// pieces
	for idx := 0; idx < 64; idx++ {
		sq := base.ConvIndexToSquare(idx)
		piece := base.GetPieceAt(&snap.Board, sq)
		if piece == base.EmptyPiece || piece == base.InvalidPiece {
			continue
		}
		img := bd.assets.Piece(piece)
		if img == nil {
			continue
		}
		scale := float64(bd.cell) / float64(img.Bounds().Dx())
		bd.drawAt(screen, img, sq, scale)
	}

	// selection on top of the pieces
	if snap.Selected != nil {
		bd.drawAt(screen, bd.selectedOv, *snap.Selected, 1)
	}
	for _, sq := range snap.Highlights {
		bd.drawAt(screen, bd.highlightOv, sq, 1)
	}

	// status line
	side := "White"
	if !snap.WhiteToMove {
		side = "Black"
	}
	status := fmt.Sprintf("%s to move", side)
	if snap.Status != base.InProgress {
		status = snap.Status.String()
	}
	text.Draw(screen, status, bd.assets.Fonts().Normal, 8, bd.cell*gbase.GridSize-8, bd.theme.StatusText)

	if debugFEN != "" {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f\n%s", ebiten.ActualTPS(), debugFEN))
	}
}

func (bd *BoardDrawer) drawAt(screen *ebiten.Image, img *ebiten.Image, sq base.Square, scale float64) {
	px, py, err := coords.PixelFromSquare(sq, bd.cell, bd.cell)
	if err != nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if scale != 1 {
		op.GeoM.Scale(scale, scale)
		op.Filter = ebiten.FilterLinear
	}
	op.GeoM.Translate(float64(px), float64(py))
	screen.DrawImage(img, op)
}
