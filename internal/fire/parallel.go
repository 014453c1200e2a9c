package fire

import (
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/wildfire/internal/core"
	"github.com/vovakirdan/wildfire/internal/terrain"
)

// band is a contiguous run of interior rows handled by one worker.
type band struct {
	from, to  int // rows [from, to)
	rng       *rand.Rand
	burnedOut []int
	ignited   []int
}

// StepParallel computes the same transition as Step with interior rows split
// into at most workers bands evaluated concurrently.
//
// Each band draws from its own PCG stream, seeded from rng in band order
// before any worker starts, so the result depends only on the input grid,
// rng and workers. The draw sequence differs from Step, so a parallel trace
// and a serial trace of the same seed are not identical; every per-step
// invariant still holds. workers <= 1 falls back to Step.
func StepParallel(grid *Grid, slope *terrain.SlopeGrid, wind Wind, burnProb float64, rng Source, workers int) (*Grid, error) {
	if workers <= 1 {
		return Step(grid, slope, wind, burnProb, rng)
	}
	if err := checkStep(grid, slope, wind, burnProb); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, core.Invalidf("random source is nil")
	}

	bands := splitRows(grid.H, workers)
	for _, b := range bands {
		b.rng = rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))
	}

	sp := newSpreader(grid, slope, wind, burnProb)
	var g errgroup.Group
	for _, b := range bands {
		g.Go(func() error {
			for row := b.from; row < b.to; row++ {
				for col := 1; col < grid.W-1; col++ {
					if grid.At(row, col) != Burning {
						continue
					}
					b.burnedOut = append(b.burnedOut, row*grid.W+col)
					sp.spread(row, col, b.rng, func(i int) { b.ignited = append(b.ignited, i) })
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Burn-outs only touch input-Burning cells and ignitions only input-Tree
	// cells, so applying bands in order reproduces the serial write order.
	out := grid.Clone()
	for _, b := range bands {
		for _, i := range b.burnedOut {
			out.Cells[i] = Empty
		}
		for _, i := range b.ignited {
			out.Cells[i] = Burning
		}
	}
	return out, nil
}

// splitRows divides interior rows 1..h-2 into at most n contiguous bands of
// near-equal height.
func splitRows(h, n int) []*band {
	rows := h - 2
	if rows <= 0 {
		return nil
	}
	n = min(n, rows)
	bands := make([]*band, 0, n)
	start := 1
	for k := 0; k < n; k++ {
		size := rows / n
		if k < rows%n {
			size++
		}
		bands = append(bands, &band{from: start, to: start + size})
		start += size
	}
	return bands
}
