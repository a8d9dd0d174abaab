package gfont

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Normal font.Face
	Small  font.Face
}

func LoadFonts(workdir string) (*Fonts, error) {
	nsd, err := os.ReadFile(workdir + "/NotoSansDisplay-Regular.ttf")
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(nsd)
	if err != nil {
		return nil, err
	}

	fonts := &Fonts{}
	fonts.Normal, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}

	fonts.Small, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    11,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}

	return fonts, nil
}
