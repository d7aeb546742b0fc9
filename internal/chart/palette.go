package chart

import (
	"image/color"

	"weather-dashboard/internal/types"
)

// Palette is the set of colors a chart is drawn with
type Palette struct {
	Background color.Color
	Axis       color.Color
	Line       color.Color
	Point      color.Color
	Text       color.Color
}

var (
	lightPalette = Palette{
		Background: color.RGBA{0xff, 0xff, 0xff, 0xff},
		Axis:       color.RGBA{0x44, 0x44, 0x44, 0xff},
		Line:       color.RGBA{0x25, 0x63, 0xeb, 0xff},
		Point:      color.RGBA{0x3b, 0x82, 0xf6, 0xff},
		Text:       color.RGBA{0x33, 0x33, 0x33, 0xff},
	}
	darkPalette = Palette{
		Background: color.RGBA{0x0f, 0x17, 0x2a, 0xff},
		Axis:       color.RGBA{0xcb, 0xd5, 0xe1, 0xff},
		Line:       color.RGBA{0x38, 0xbd, 0xf8, 0xff},
		Point:      color.RGBA{0x0e, 0xa5, 0xe9, 0xff},
		Text:       color.RGBA{0xf1, 0xf5, 0xf9, 0xff},
	}
)

// PaletteFor returns the dark palette for ThemeDark and the light one otherwise
func PaletteFor(theme types.Theme) Palette {
	if theme == types.ThemeDark {
		return darkPalette
	}
	return lightPalette
}
