// Package core provides fundamental types shared by the wildfire packages:
// validation errors, the rune screen buffer used by terminal renderers, and
// small geometry helpers. It has no external dependencies so simulation code
// stays pure and testable.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Centered returns a w×h rectangle centered in r. It may overhang r when
// larger; the screen clips it.
func (r Rect) Centered(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// InUnit reports whether p lies in the closed interval [0, 1].
// NaN is never in range.
func InUnit(p float64) bool {
	return p >= 0 && p <= 1
}
