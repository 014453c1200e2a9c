package fire

import (
	"math"

	"github.com/vovakirdan/wildfire/internal/core"
)

// Initialize builds a size×size forest. Each cell, in row-major order, is a
// Tree with probability treeDensity using one draw from rng. The centre cell
// (size/2, size/2) is then set Burning.
func Initialize(size int, treeDensity float64, rng Source) (*Grid, error) {
	if size < 3 {
		return nil, core.Invalidf("grid size %d is below 3", size)
	}
	if math.IsNaN(treeDensity) || treeDensity < 0 || treeDensity > 1 {
		return nil, core.Invalidf("tree density %v outside [0,1]", treeDensity)
	}
	if rng == nil {
		return nil, core.Invalidf("random source is nil")
	}

	g := NewGrid(size, size)
	for i := range g.Cells {
		if rng.Float64() < treeDensity {
			g.Cells[i] = Tree
		}
	}
	g.Set(size/2, size/2, Burning)
	return g, nil
}
