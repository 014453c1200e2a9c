package terrain

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
)

// ylgn is a light-yellow to dark-green ramp, low slope first.
var ylgn = []color.NRGBA{
	{255, 255, 229, 255},
	{217, 240, 163, 255},
	{120, 198, 121, 255},
	{35, 132, 67, 255},
	{0, 69, 41, 255},
}

// RampColor returns the slope-map color for a slope percentage in [0, 100].
func RampColor(slope float64) color.NRGBA {
	t := slope / 100
	if t <= 0 {
		return ylgn[0]
	}
	if t >= 1 {
		return ylgn[len(ylgn)-1]
	}
	pos := t * float64(len(ylgn)-1)
	i := int(pos)
	f := pos - float64(i)
	a, b := ylgn[i], ylgn[i+1]
	lerp := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*f + 0.5) }
	return color.NRGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), 255}
}

// Render draws the slope grid with cell×cell pixels per cell.
func (g *SlopeGrid) Render(cell int) *image.NRGBA {
	if cell < 1 {
		cell = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, g.W*cell, g.H*cell))
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			c := RampColor(g.At(row, col))
			for dy := 0; dy < cell; dy++ {
				for dx := 0; dx < cell; dx++ {
					img.SetNRGBA(col*cell+dx, row*cell+dy, c)
				}
			}
		}
	}
	return img
}

// SaveMap writes the slope map as PNG.
func (g *SlopeGrid) SaveMap(path string, cell int) error {
	if err := imgio.Save(path, g.Render(cell), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("terrain: cannot save slope map %s: %w", path, err)
	}
	return nil
}
