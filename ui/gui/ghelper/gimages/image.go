package gimages

import (
	"tapchess/src/base"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadImageAssets resolves all twelve piece sprites into a map keyed
// by piece identity. Any missing file fails the whole load; the caller
// treats that as fatal before the event loop starts.
func LoadImageAssets(workdir string) (map[base.Piece]*ebiten.Image, error) {
	files := map[base.Piece]string{
		base.WKing:   workdir + "/white_king.png",
		base.WQueen:  workdir + "/white_queen.png",
		base.WRook:   workdir + "/white_rook.png",
		base.WBishop: workdir + "/white_bishop.png",
		base.WKnight: workdir + "/white_knight.png",
		base.WPawn:   workdir + "/white_pawn.png",
		base.BKing:   workdir + "/black_king.png",
		base.BQueen:  workdir + "/black_queen.png",
		base.BRook:   workdir + "/black_rook.png",
		base.BBishop: workdir + "/black_bishop.png",
		base.BKnight: workdir + "/black_knight.png",
		base.BPawn:   workdir + "/black_pawn.png",
	}
	pieceImages := make(map[base.Piece]*ebiten.Image, len(files))
	for piece, file := range files {
		img, _, err := ebitenutil.NewImageFromFile(file)
		if err != nil {
			return nil, err
		}
		pieceImages[piece] = img
	}
	return pieceImages, nil
}
