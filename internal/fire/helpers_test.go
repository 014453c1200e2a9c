package fire

import (
	"testing"

	"github.com/vovakirdan/wildfire/internal/terrain"
)

// scripted replays fixed draws and counts how many were consumed.
type scripted struct {
	draws []float64
	used  int
}

func (s *scripted) Float64() float64 {
	if s.used >= len(s.draws) {
		panic("scripted source exhausted")
	}
	v := s.draws[s.used]
	s.used++
	return v
}

func (s *scripted) Uint64() uint64 {
	s.used++
	return uint64(s.used)
}

// constant always returns the same draw.
type constant float64

func (c constant) Float64() float64 { return float64(c) }
func (c constant) Uint64() uint64   { return 1 }

func mustParse(t *testing.T, s string) *Grid {
	t.Helper()
	g, err := ParseGrid(s)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	return g
}

func flatSlope(g *Grid, v float64) *terrain.SlopeGrid {
	return terrain.NewSlopeGrid(g.W, g.H, v)
}

func assertGrid(t *testing.T, got *Grid, want string) {
	t.Helper()
	if got.String() != mustParse(t, want).String() {
		t.Fatalf("grid mismatch\ngot:\n%swant:\n%s", got, mustParse(t, want))
	}
}
