// Package fire implements the wildfire cellular automaton: forest
// initialization, the stochastic spread step and the multi-step driver.
package fire

import (
	"strings"

	"github.com/vovakirdan/wildfire/internal/core"
)

// ErrInvalidParameter is returned (wrapped) for any rejected argument.
var ErrInvalidParameter = core.ErrInvalidParameter

// Cell is the state of one forest cell.
type Cell uint8

const (
	Empty Cell = iota
	Tree
	Burning
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Tree:
		return "tree"
	case Burning:
		return "burning"
	default:
		return "unknown"
	}
}

// Rune returns the single-character glyph used in text dumps.
func (c Cell) Rune() rune {
	switch c {
	case Tree:
		return 'T'
	case Burning:
		return '*'
	default:
		return '.'
	}
}

// Grid is a W×H forest stored row-major.
type Grid struct {
	W, H  int
	Cells []Cell
}

// NewGrid returns an all-Empty grid.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, Cells: make([]Cell, w*h)}
}

// At returns the cell at (row, col).
func (g *Grid) At(row, col int) Cell {
	return g.Cells[row*g.W+col]
}

// Set writes the cell at (row, col).
func (g *Grid) Set(row, col int, c Cell) {
	g.Cells[row*g.W+col] = c
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, Cells: make([]Cell, len(g.Cells))}
	copy(out.Cells, g.Cells)
	return out
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.W != o.W || g.H != o.H || len(g.Cells) != len(o.Cells) {
		return false
	}
	for i := range g.Cells {
		if g.Cells[i] != o.Cells[i] {
			return false
		}
	}
	return true
}

// Count returns how many cells are in state c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.Cells {
		if v == c {
			n++
		}
	}
	return n
}

// Census tallies cells by state.
type Census struct {
	Empty, Tree, Burning int
}

// Total returns the number of cells counted.
func (c Census) Total() int {
	return c.Empty + c.Tree + c.Burning
}

// Census counts every state in one pass.
func (g *Grid) Census() Census {
	var c Census
	for _, v := range g.Cells {
		switch v {
		case Tree:
			c.Tree++
		case Burning:
			c.Burning++
		default:
			c.Empty++
		}
	}
	return c
}

// String renders the grid one row per line using Cell.Rune.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			b.WriteRune(g.At(row, col).Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseGrid reads the format produced by String. Blank lines are skipped.
func ParseGrid(s string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, core.Invalidf("grid text is empty")
	}

	g := NewGrid(len(rows[0]), len(rows))
	for r, line := range rows {
		if len(line) != g.W {
			return nil, core.Invalidf("grid row %d has %d cells, want %d", r, len(line), g.W)
		}
		for c, ch := range line {
			switch ch {
			case 'T':
				g.Set(r, c, Tree)
			case '*':
				g.Set(r, c, Burning)
			case '.':
			default:
				return nil, core.Invalidf("grid row %d: unknown cell %q", r, ch)
			}
		}
	}
	return g, nil
}
