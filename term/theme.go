package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/worldmap/catalog"
)

// Theme provides the chrome colors; region colors come from the catalog
type Theme struct {
	PageBg     tcell.Color // Screen background outside boxes
	Fg         tcell.Color // Primary text
	Dim        tcell.Color // Secondary text and hints
	HeaderBg   tcell.Color // Title band
	HeaderFg   tcell.Color // Title text
	SubtitleFg tcell.Color // Subtitle text
	SurfaceBg  tcell.Color // Panel and card fill
	Border     tcell.Color // Box borders
	Accent     tcell.Color // Panel edge, active card, status text
	ButtonBg   tcell.Color // Clear All fill
	ButtonFg   tcell.Color // Clear All label
}

// DefaultTheme is a dark slate scheme with a blue header
var DefaultTheme = Theme{
	PageBg:     tcell.NewRGBColor(15, 23, 42),
	Fg:         tcell.NewRGBColor(226, 232, 240),
	Dim:        tcell.NewRGBColor(148, 163, 184),
	HeaderBg:   tcell.NewRGBColor(37, 99, 235),
	HeaderFg:   tcell.NewRGBColor(255, 255, 255),
	SubtitleFg: tcell.NewRGBColor(219, 234, 254),
	SurfaceBg:  tcell.NewRGBColor(30, 41, 59),
	Border:     tcell.NewRGBColor(100, 116, 139),
	Accent:     tcell.NewRGBColor(59, 130, 246),
	ButtonBg:   tcell.NewRGBColor(239, 68, 68),
	ButtonFg:   tcell.NewRGBColor(255, 255, 255),
}

// hexColor converts a #rrggbb catalog color
func hexColor(s string) tcell.Color {
	r, g, b := catalog.RGB(s)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
