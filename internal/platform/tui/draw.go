package tui

import (
	"fmt"

	"github.com/vovakirdan/wildfire/internal/core"
	"github.com/vovakirdan/wildfire/internal/fire"
)

const (
	glyphFull  = '█'
	glyphEmpty = '·'
)

// blockScale returns how many grid cells one character covers per side so
// that a w×h grid fits into area.
func blockScale(gridW, gridH int, area core.Rect) int {
	if area.W <= 0 || area.H <= 0 {
		return 1
	}
	s := max((gridW+area.W-1)/area.W, (gridH+area.H-1)/area.H)
	return max(s, 1)
}

// sampleBlock summarizes the s×s block whose top-left cell is (row, col).
// Any fire wins; otherwise trees win when they cover at least half the block.
func sampleBlock(g *fire.Grid, row, col, s int) (fire.Cell, bool) {
	trees, cells := 0, 0
	ember := false
	for r := row; r < min(row+s, g.H); r++ {
		for c := col; c < min(col+s, g.W); c++ {
			cells++
			switch g.At(r, c) {
			case fire.Burning:
				onBorder := r == 0 || c == 0 || r == g.H-1 || c == g.W-1
				if !onBorder {
					return fire.Burning, false
				}
				ember = true
			case fire.Tree:
				trees++
			}
		}
	}
	if ember {
		return fire.Burning, true
	}
	if cells > 0 && trees*2 >= cells {
		return fire.Tree, false
	}
	return fire.Empty, false
}

// DrawGrid renders the grid into area, downsampling when it does not fit,
// and returns the block scale used.
func DrawGrid(dst *core.Screen, g *fire.Grid, area core.Rect) int {
	s := blockScale(g.W, g.H, area)
	view := area.Centered((g.W+s-1)/s, (g.H+s-1)/s)

	for by := 0; by < view.H; by++ {
		for bx := 0; bx < view.W; bx++ {
			cell, ember := sampleBlock(g, by*s, bx*s, s)
			x, y := view.X+bx, view.Y+by
			switch {
			case cell == fire.Burning && ember:
				dst.SetCell(x, y, glyphFull, core.ColorEmber)
			case cell == fire.Burning:
				dst.SetCell(x, y, glyphFull, core.ColorFlame)
			case cell == fire.Tree:
				dst.SetCell(x, y, glyphFull, core.ColorForest)
			default:
				dst.SetCell(x, y, glyphEmpty, core.ColorAsh)
			}
		}
	}
	return s
}

// DrawHUD writes the status line for snapshot frame of total.
func DrawHUD(dst *core.Screen, y, frame, total int, c fire.Census, cfg core.RuntimeConfig, paused bool) {
	x := 0
	put := func(label, value string) {
		dst.DrawTextColor(x, y, label, core.ColorHUD)
		x += len(label)
		dst.DrawTextColor(x, y, value, core.ColorHUDValue)
		x += len(value) + 2
	}
	put("step ", fmt.Sprintf("%d/%d", frame, total-1))
	put("trees ", fmt.Sprint(c.Tree))
	put("burning ", fmt.Sprint(c.Burning))
	put("empty ", fmt.Sprint(c.Empty))
	put("fps ", fmt.Sprint(cfg.FrameRate))
	put("seed ", fmt.Sprint(cfg.Seed))
	if paused {
		dst.DrawTextColor(x, y, "[paused]", core.ColorDim)
	}
}
