package fire

import (
	"gonum.org/v1/gonum/floats"
)

// Trace is the ordered list of snapshots produced by Simulate.
// Snapshots never share storage with each other or with the initial grid.
type Trace struct {
	Snapshots []*Grid
}

// Len returns the number of snapshots.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Snapshots)
}

// At returns snapshot i.
func (t *Trace) At(i int) *Grid {
	return t.Snapshots[i]
}

// Frames returns the snapshots.
func (t *Trace) Frames() []*Grid {
	return t.Snapshots
}

// Last returns the final snapshot, or nil for an empty trace.
func (t *Trace) Last() *Grid {
	if t.Len() == 0 {
		return nil
	}
	return t.Snapshots[len(t.Snapshots)-1]
}

// Census returns the per-snapshot state counts.
func (t *Trace) Census() []Census {
	out := make([]Census, t.Len())
	for i, g := range t.Snapshots {
		out[i] = g.Census()
	}
	return out
}

// Series is the census split into one float series per state, indexed by step.
type Series struct {
	Step, Empty, Tree, Burning []float64
}

// Series returns the census as float series for charting and statistics.
func (t *Trace) Series() Series {
	n := t.Len()
	s := Series{
		Step:    make([]float64, n),
		Empty:   make([]float64, n),
		Tree:    make([]float64, n),
		Burning: make([]float64, n),
	}
	for i, c := range t.Census() {
		s.Step[i] = float64(i)
		s.Empty[i] = float64(c.Empty)
		s.Tree[i] = float64(c.Tree)
		s.Burning[i] = float64(c.Burning)
	}
	return s
}

// Summary condenses a trace into a few numbers.
type Summary struct {
	Steps          int
	InitialTrees   int
	FinalTrees     int
	PeakBurning    int
	PeakStep       int
	MeanBurning    float64
	BurnedFraction float64 // share of the initial trees gone by the last step
	BurntOutStep   int     // first step with no burning cells, -1 if never
}

// Summary computes the trace summary. An empty trace yields a zero Summary.
func (t *Trace) Summary() Summary {
	if t.Len() == 0 {
		return Summary{BurntOutStep: -1}
	}
	s := t.Series()
	sum := Summary{
		Steps:        t.Len() - 1,
		InitialTrees: int(s.Tree[0]),
		FinalTrees:   int(s.Tree[len(s.Tree)-1]),
		BurntOutStep: -1,
	}

	peak := floats.MaxIdx(s.Burning)
	sum.PeakStep = peak
	sum.PeakBurning = int(s.Burning[peak])
	sum.MeanBurning = floats.Sum(s.Burning) / float64(len(s.Burning))
	if sum.InitialTrees > 0 {
		sum.BurnedFraction = float64(sum.InitialTrees-sum.FinalTrees) / float64(sum.InitialTrees)
	}
	for i, b := range s.Burning {
		if b == 0 {
			sum.BurntOutStep = i
			break
		}
	}
	return sum
}
