package terrain

import "github.com/vovakirdan/wildfire/internal/core"

// SlopeGrid holds one slope percentage per terrain pixel, row-major.
// It is never modified after Classify returns it.
type SlopeGrid struct {
	W, H   int
	Values []float64
}

// NewSlopeGrid creates a W×H grid with every cell set to value.
func NewSlopeGrid(w, h int, value float64) *SlopeGrid {
	g := &SlopeGrid{W: w, H: h, Values: make([]float64, w*h)}
	if value != 0 {
		for i := range g.Values {
			g.Values[i] = value
		}
	}
	return g
}

// At returns the slope at (row, col).
func (g *SlopeGrid) At(row, col int) float64 {
	return g.Values[row*g.W+col]
}

// Len returns the number of cells.
func (g *SlopeGrid) Len() int {
	return g.W * g.H
}

// Histogram counts how many cells carry each palette slope, in palette order.
// Values not present in the palette are ignored.
func (g *SlopeGrid) Histogram(p Palette) []int {
	counts := make([]int, len(p))
	for _, v := range g.Values {
		for i, e := range p {
			if e.Slope == v {
				counts[i]++
				break
			}
		}
	}
	return counts
}

// Classify maps every pixel of img to the slope of its nearest palette color.
//
// A zero-pixel image yields an empty grid together with ErrEmptyInput; the
// grid is still usable.
func Classify(img Image, p Palette) (*SlopeGrid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !img.valid() {
		return nil, core.Invalidf("terrain image %dx%d has %d bytes, want %d", img.W, img.H, len(img.Pix), img.W*img.H*3)
	}

	grid := NewSlopeGrid(img.W, img.H, 0)
	if img.Len() == 0 {
		return grid, core.ValidationError{Code: core.CodeEmptyInput, Message: "terrain image has no pixels"}
	}

	memo := make(map[RGB]int, len(p))
	for i := range grid.Values {
		c := img.pixel(i)
		idx, ok := memo[c]
		if !ok {
			idx = p.Nearest(c)
			memo[c] = idx
		}
		grid.Values[i] = p[idx].Slope
	}
	return grid, nil
}
