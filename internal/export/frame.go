// Package export writes simulation traces as video, images, charts and text.
// Each format is an exporter registered with internal/registry.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/wildfire/internal/fire"
)

// Heat-style cell colors.
var (
	ColorEmpty   = color.RGBA{0, 0, 0, 255}
	ColorTree    = color.RGBA{34, 139, 34, 255}
	ColorBurning = color.RGBA{255, 69, 0, 255}
)

// CellColor returns the display color for a cell state.
func CellColor(c fire.Cell) color.RGBA {
	switch c {
	case fire.Tree:
		return ColorTree
	case fire.Burning:
		return ColorBurning
	default:
		return ColorEmpty
	}
}

// RenderFrame draws a grid with cell×cell pixels per cell. A non-empty label
// is printed in the top-left corner.
func RenderFrame(g *fire.Grid, cell int, label string) *image.RGBA {
	if cell < 1 {
		cell = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, g.W*cell, g.H*cell))
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			c := CellColor(g.At(row, col))
			if cell == 1 {
				img.SetRGBA(col, row, c)
				continue
			}
			r := image.Rect(col*cell, row*cell, (col+1)*cell, (row+1)*cell)
			draw.Draw(img, r, &image.Uniform{c}, image.Point{}, draw.Src)
		}
	}
	if label != "" {
		drawLabel(img, 4, 4, label)
	}
	return img
}

// drawLabel prints text on a dark box with the 7x13 bitmap font.
func drawLabel(img *image.RGBA, x, y int, label string) {
	const textHeight = 13
	textWidth := len(label) * 7

	bg := image.Rect(x-2, y-2, x+textWidth+2, y+textHeight+2)
	draw.Draw(img, bg, &image.Uniform{color.RGBA{0, 0, 0, 160}}, image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y + textHeight - 2)},
	}
	d.DrawString(label)
}

// StepLabel is the caption used for snapshot i.
func StepLabel(i int) string {
	return fmt.Sprintf("Step %d", i)
}

func ensureDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: cannot create %s: %w", dir, err)
	}
	return nil
}

func cellSize(opts int) int {
	if opts < 1 {
		return 1
	}
	return opts
}

func label(opts bool, i int) string {
	if !opts {
		return ""
	}
	return StepLabel(i)
}

func join(dir, name string) string {
	return filepath.Join(dir, name)
}
