package lattice

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// RGB represents an opaque color with components in the range [0, 1].
type RGB struct {
	R, G, B float64
}

// Color converts RGB to the standard color.Color interface.
func (c RGB) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: 255,
	}
}

// FromColor converts a standard color.Color to RGB, discarding alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
	}
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Palette is an ordered list of zone colors indexed by place-value power,
// starting at the ones place. Powers beyond the list saturate to the last
// entry, so any palette with at least one color covers every zone.
type Palette []RGB

// At returns the color for the given place-value power.
func (p Palette) At(power int) RGB {
	if len(p) == 0 {
		return RGB{}
	}
	if power < 0 {
		power = 0
	}
	if power >= len(p) {
		power = len(p) - 1
	}
	return p[power]
}

// DefaultPalette returns the stock zone palette: warm colors for low powers
// shading to cool colors for high ones.
func DefaultPalette() Palette {
	return Palette{
		FromColor(colornames.Crimson),    // ones
		FromColor(colornames.Darkorange), // tens
		FromColor(colornames.Gold),       // hundreds
		FromColor(colornames.Limegreen),
		FromColor(colornames.Deepskyblue),
		FromColor(colornames.Royalblue),
		FromColor(colornames.Blueviolet),
	}
}
