// Package desktop plays a recorded trace in an ebiten window.
//
// The window itself needs the "ebiten" build tag; without it Run reports
// ErrUnavailable so headless builds stay free of cgo and GL.
package desktop

import "errors"

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("desktop viewer requires building with the 'ebiten' tag")

// ticksPerSecond matches ebiten's default update rate.
const ticksPerSecond = 60

// playback is the frame clock shared by the window and its tests.
type playback struct {
	frame  int
	last   int
	paused bool
	fps    int
	ticks  int
}

func newPlayback(frames, fps int) *playback {
	return &playback{last: max(frames-1, 0), fps: max(fps, 1)}
}

// tick advances one update. It returns true when the frame changed.
func (p *playback) tick() bool {
	if p.paused {
		return false
	}
	p.ticks++
	if p.ticks < ticksPerSecond/min(p.fps, ticksPerSecond) {
		return false
	}
	p.ticks = 0
	if p.frame == p.last {
		p.paused = true
		return false
	}
	p.frame++
	return true
}

func (p *playback) toggle() {
	if p.paused && p.frame == p.last {
		p.frame = 0
	}
	p.paused = !p.paused
	p.ticks = 0
}

func (p *playback) step(delta int) {
	p.paused = true
	p.frame = min(max(p.frame+delta, 0), p.last)
}

func (p *playback) restart() {
	p.frame, p.ticks, p.paused = 0, 0, false
}

func (p *playback) faster() { p.fps = min(p.fps*2, ticksPerSecond) }
func (p *playback) slower() { p.fps = max(p.fps/2, 1) }
