package fire

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wildfire/internal/core"
	"github.com/vovakirdan/wildfire/internal/terrain"
)

// Params are the per-step settings held constant across a simulation.
type Params struct {
	Wind     Wind
	BurnProb float64

	// Workers > 1 selects StepParallel with that many bands.
	Workers int

	// Logger receives a debug line per step and an info summary. Nil disables logging.
	Logger *log.Logger
}

// Simulate runs steps transitions from initial and returns steps+1 snapshots,
// the first being a copy of initial. rng is threaded through every step.
// The run never stops early, even once the fire is out.
//
// ctx is checked between steps; on cancellation the partial trace is dropped
// and ctx.Err() returned.
func Simulate(ctx context.Context, initial *Grid, slope *terrain.SlopeGrid, steps int, params Params, rng Source) (*Trace, error) {
	if steps < 0 {
		return nil, core.Invalidf("steps %d is negative", steps)
	}
	if err := checkStep(initial, slope, params.Wind, params.BurnProb); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, core.Invalidf("random source is nil")
	}

	logger := params.Logger
	started := time.Now()
	trace := &Trace{Snapshots: make([]*Grid, 0, steps+1)}
	trace.Snapshots = append(trace.Snapshots, initial.Clone())

	cur := initial
	for k := 1; k <= steps; k++ {
		if err := ctx.Err(); err != nil {
			if logger != nil {
				logger.Warn("simulation cancelled", "step", k-1, "of", steps)
			}
			return nil, err
		}
		next, err := StepParallel(cur, slope, params.Wind, params.BurnProb, rng, params.Workers)
		if err != nil {
			return nil, err
		}
		trace.Snapshots = append(trace.Snapshots, next)
		cur = next

		if logger != nil {
			c := next.Census()
			logger.Debug("step", "n", k, "trees", c.Tree, "burning", c.Burning, "empty", c.Empty)
		}
	}

	if logger != nil {
		s := trace.Summary()
		logger.Info("simulation done",
			"size", initial.W,
			"steps", steps,
			"wind", params.Wind,
			"peak_burning", s.PeakBurning,
			"peak_step", s.PeakStep,
			"burned", s.BurnedFraction,
			"took", time.Since(started).Round(time.Millisecond),
		)
	}
	return trace, nil
}
