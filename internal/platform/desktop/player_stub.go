//go:build !ebiten

package desktop

import "github.com/vovakirdan/wildfire/internal/fire"

// Options configures the desktop window.
type Options struct {
	Scale int
	FPS   int
	Title string
}

// Run reports ErrUnavailable in headless builds.
func Run(*fire.Trace, Options) error {
	return ErrUnavailable
}
