// Package terrain turns a colored terrain image into a slope grid.
//
// Each pixel is matched to the nearest color of a small slope palette
// (squared Euclidean distance in RGB space) and takes that entry's slope
// percentage. The package also loads, resizes and synthesizes terrain images.
package terrain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/wildfire/internal/core"
)

// Re-exported so callers only need this package for errors.Is checks.
var (
	ErrInvalidParameter = core.ErrInvalidParameter
	ErrEmptyInput       = core.ErrEmptyInput
)

// RGB is a single 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// String returns the color as #rrggbb.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// dist2 returns the squared Euclidean distance between two colors.
func (c RGB) dist2(o RGB) int {
	dr := int(c.R) - int(o.R)
	dg := int(c.G) - int(o.G)
	db := int(c.B) - int(o.B)
	return dr*dr + dg*dg + db*db
}

// ParseRGB parses "#rrggbb", "rrggbb" or "r,g,b".
func ParseRGB(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if parts := strings.Split(s, ","); len(parts) == 3 {
		var out [3]uint8
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return RGB{}, fmt.Errorf("terrain: bad color component %q in %q: %w: %w", p, s, ErrInvalidParameter, err)
			}
			out[i] = uint8(v)
		}
		return RGB{R: out[0], G: out[1], B: out[2]}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("terrain: color %q is not #rrggbb: %w", s, ErrInvalidParameter)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("terrain: color %q is not #rrggbb: %w: %w", s, ErrInvalidParameter, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// PaletteEntry maps a reference color to a slope percentage.
type PaletteEntry struct {
	Color RGB
	Slope float64
}

// Palette is an ordered list of slope classes. Order matters: on equal
// distance the earlier entry wins.
type Palette []PaletteEntry

// DefaultPalette returns the reference five-class slope legend.
func DefaultPalette() Palette {
	return Palette{
		{Color: RGB{144, 238, 144}, Slope: 5},  // light green, 0-5%
		{Color: RGB{255, 218, 185}, Slope: 15}, // peach, 5.1-15%
		{Color: RGB{255, 160, 122}, Slope: 25}, // light salmon, 15.1-25%
		{Color: RGB{255, 99, 71}, Slope: 35},   // tomato, 25.1-35%
		{Color: RGB{178, 34, 34}, Slope: 100},  // firebrick, 35.1-100%
	}
}

// Validate checks that the palette is non-empty and every slope is in (0, 100].
func (p Palette) Validate() error {
	if len(p) == 0 {
		return core.Invalidf("slope palette is empty")
	}
	for i, e := range p {
		if !(e.Slope > 0 && e.Slope <= 100) {
			return core.Invalidf("palette entry %d (%s) has slope %v outside (0,100]", i, e.Color, e.Slope)
		}
	}
	return nil
}

// Nearest returns the index of the entry closest to c.
// Ties go to the first entry in declaration order. The palette must be non-empty.
func (p Palette) Nearest(c RGB) int {
	best := 0
	bestDist := c.dist2(p[0].Color)
	for i := 1; i < len(p); i++ {
		if d := c.dist2(p[i].Color); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Slopes returns the declared slope values in palette order.
func (p Palette) Slopes() []float64 {
	out := make([]float64, len(p))
	for i, e := range p {
		out[i] = e.Slope
	}
	return out
}
