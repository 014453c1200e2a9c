package fire

import (
	"math"

	"github.com/vovakirdan/wildfire/internal/core"
	"github.com/vovakirdan/wildfire/internal/terrain"
)

// IgnitionProbability is the chance that a burning cell ignites a Tree
// neighbour: burnProb * (1 + slope/30) * (1 + windEffect/10).
// The result is not clamped; values above 1 mean certain ignition.
func IgnitionProbability(burnProb, slope, windEffect float64) float64 {
	return burnProb * (1 + slope/30) * (1 + windEffect/10)
}

// Step advances the fire by one tick and returns a new grid; grid is not
// modified. A nil slope grid is treated as flat terrain.
//
// Interior Burning cells are visited in row-major order. Each becomes Empty,
// and each neighbour that is a Tree in the input grid, taken in N, S, E, W,
// NE, NW, SE, SW order, consumes one draw from rng and ignites when the draw
// is below IgnitionProbability. Border cells are never visited but may be
// ignited as neighbours.
func Step(grid *Grid, slope *terrain.SlopeGrid, wind Wind, burnProb float64, rng Source) (*Grid, error) {
	if err := checkStep(grid, slope, wind, burnProb); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, core.Invalidf("random source is nil")
	}

	out := grid.Clone()
	sp := newSpreader(grid, slope, wind, burnProb)
	for row := 1; row < grid.H-1; row++ {
		for col := 1; col < grid.W-1; col++ {
			if grid.At(row, col) != Burning {
				continue
			}
			out.Set(row, col, Empty)
			sp.spread(row, col, rng, func(i int) { out.Cells[i] = Burning })
		}
	}
	return out, nil
}

func checkStep(grid *Grid, slope *terrain.SlopeGrid, wind Wind, burnProb float64) error {
	if grid == nil {
		return core.Invalidf("grid is nil")
	}
	if grid.W < 0 || grid.H < 0 || len(grid.Cells) != grid.W*grid.H {
		return core.Invalidf("grid %dx%d has %d cells", grid.W, grid.H, len(grid.Cells))
	}
	if slope != nil && (slope.W != grid.W || slope.H != grid.H || len(slope.Values) != grid.W*grid.H) {
		return core.ValidationError{
			Code:    core.CodeDimensionMismatch,
			Message: "slope grid does not match fire grid dimensions",
		}
	}
	if !core.InUnit(burnProb) {
		return core.Invalidf("burn probability %v outside [0,1]", burnProb)
	}
	if math.IsNaN(wind.Speed) || wind.Speed < 0 {
		return core.Invalidf("wind speed %v is negative", wind.Speed)
	}
	if wind.Direction > SouthWest {
		return core.Invalidf("unknown wind direction %d", wind.Direction)
	}
	return nil
}

// spreader holds the per-step constants shared by the serial and parallel engines.
type spreader struct {
	in       *Grid
	slope    *terrain.SlopeGrid
	burnProb float64
	effect   [8]float64
}

func newSpreader(in *Grid, slope *terrain.SlopeGrid, wind Wind, burnProb float64) *spreader {
	sp := &spreader{in: in, slope: slope, burnProb: burnProb}
	for k, off := range neighbors {
		sp.effect[k] = wind.Effect(off)
	}
	return sp
}

// spread evaluates every Tree neighbour of the burning cell (row, col),
// drawing once per neighbour, and calls ignite with the cell index of each
// neighbour that catches fire.
func (sp *spreader) spread(row, col int, rng Source, ignite func(i int)) {
	w := sp.in.W
	for k, off := range neighbors {
		i := (row+off.DR)*w + col + off.DC
		if sp.in.Cells[i] != Tree {
			continue
		}
		var s float64
		if sp.slope != nil {
			s = sp.slope.Values[i]
		}
		if rng.Float64() < IgnitionProbability(sp.burnProb, s, sp.effect[k]) {
			ignite(i)
		}
	}
}
