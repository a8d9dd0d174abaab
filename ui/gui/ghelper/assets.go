package ghelper

import (
	"tapchess/src/base"
	"tapchess/ui/gui/ghelper/gfont"
	"tapchess/ui/gui/ghelper/gimages"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIAssetsWorker struct {
	pieceImages map[base.Piece]*ebiten.Image
	fonts       *gfont.Fonts
}

func NewGUIAssetsWorker(rootDirAssets string) (*GUIAssetsWorker, error) {
	imgs, err := gimages.LoadImageAssets(rootDirAssets + "/images")
	if err != nil {
		return nil, err
	}
	fonts, err := gfont.LoadFonts(rootDirAssets + "/fonts")
	if err != nil {
		return nil, err
	}
	return &GUIAssetsWorker{pieceImages: imgs, fonts: fonts}, nil
}

func (aw *GUIAssetsWorker) Piece(p base.Piece) *ebiten.Image {
	return aw.pieceImages[p]
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}
