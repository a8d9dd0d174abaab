package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	GridSize        = 8
	DefaultCellSize = 90
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg         color.RGBA
	LightSq    color.RGBA
	DarkSq     color.RGBA
	Selected   color.RGBA // solid overlay on the anchor square
	Highlight  color.RGBA // translucent overlay on legal targets
	StatusText color.RGBA
}

func (p Palette) String() string {
	switch p {
	case ClassicPalette:
		return "classic"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "classic":
		return ClassicPalette
	case "dark":
		return DarkPalette
	default:
	}
	return Palette{}
}

var ClassicPalette = Palette{
	Bg:         color.RGBA{0x80, 0x80, 0x80, 0xff},
	LightSq:    color.RGBA{0xbc, 0x8c, 0x4c, 0xff},
	DarkSq:     color.RGBA{0xe4, 0xc4, 0x6c, 0xff},
	Selected:   color.RGBA{0x00, 0x8c, 0x0a, 0xcc},
	Highlight:  color.RGBA{0x00, 0x8c, 0x0a, 0x4d},
	StatusText: color.RGBA{0x22, 0x22, 0x22, 0xff},
}

var DarkPalette = Palette{
	Bg:         color.RGBA{0x12, 0x12, 0x12, 0xff},
	LightSq:    color.RGBA{0x8c, 0x9a, 0xa6, 0xff},
	DarkSq:     color.RGBA{0x3c, 0x46, 0x50, 0xff},
	Selected:   color.RGBA{0x2a, 0xa1, 0xd1, 0xcc},
	Highlight:  color.RGBA{0x2a, 0xa1, 0xd1, 0x4d},
	StatusText: color.RGBA{0xee, 0xee, 0xee, 0xff},
}
