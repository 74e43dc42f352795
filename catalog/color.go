package catalog

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a #rrggbb (or #rgb) color value
func ParseColor(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return c, nil
}

// RGB returns the 8-bit channels of a color value, black if unparseable
func RGB(s string) (r, g, b uint8) {
	c, err := ParseColor(s)
	if err != nil {
		return 0, 0, 0
	}
	return c.RGB255()
}

// Blend mixes from toward to by t in [0,1] and returns a #rrggbb value.
// Unparseable input returns from unchanged.
func Blend(from, to string, t float64) string {
	a, err := ParseColor(from)
	if err != nil {
		return from
	}
	b, err := ParseColor(to)
	if err != nil {
		return from
	}
	return a.BlendRgb(b, t).Clamped().Hex()
}
