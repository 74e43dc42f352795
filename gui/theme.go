package gui

import (
	"image/color"

	"github.com/lixenwraith/worldmap/catalog"
)

// Theme holds the chrome colors of the desktop window
type Theme struct {
	PageBg     color.RGBA
	Fg         color.RGBA
	Dim        color.RGBA
	HeaderBg   color.RGBA
	HeaderFg   color.RGBA
	SubtitleFg color.RGBA
	SurfaceBg  color.RGBA
	Border     color.RGBA
	Accent     color.RGBA
	ButtonBg   color.RGBA
	ButtonFg   color.RGBA
}

// DefaultTheme is a light scheme with a blue header
var DefaultTheme = Theme{
	PageBg:     color.RGBA{248, 250, 252, 255},
	Fg:         color.RGBA{30, 41, 59, 255},
	Dim:        color.RGBA{100, 116, 139, 255},
	HeaderBg:   color.RGBA{37, 99, 235, 255},
	HeaderFg:   color.RGBA{255, 255, 255, 255},
	SubtitleFg: color.RGBA{219, 234, 254, 255},
	SurfaceBg:  color.RGBA{255, 255, 255, 255},
	Border:     color.RGBA{203, 213, 225, 255},
	Accent:     color.RGBA{59, 130, 246, 255},
	ButtonBg:   color.RGBA{239, 68, 68, 255},
	ButtonFg:   color.RGBA{255, 255, 255, 255},
}

func hexColor(s string) color.RGBA {
	r, g, b := catalog.RGB(s)
	return color.RGBA{r, g, b, 255}
}
