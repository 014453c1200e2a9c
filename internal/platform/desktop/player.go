//go:build ebiten

package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/wildfire/internal/core"
	"github.com/vovakirdan/wildfire/internal/export"
	"github.com/vovakirdan/wildfire/internal/fire"
)

const hudHeight = 18

// Options configures the desktop window.
type Options struct {
	Scale int
	FPS   int
	Title string
}

// player adapts a trace to the ebiten.Game interface.
type player struct {
	trace *fire.Trace
	clock *playback
	scale int
	title string

	canvas *ebiten.Image
	drawn  int
}

func newPlayer(tr *fire.Trace, opts Options) *player {
	g := tr.At(0)
	return &player{
		trace:  tr,
		clock:  newPlayback(tr.Len(), opts.FPS),
		scale:  max(opts.Scale, 1),
		title:  opts.Title,
		canvas: ebiten.NewImage(g.W, g.H),
		drawn:  -1,
	}
}

// Update handles input and advances the clock.
func (p *player) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		p.clock.toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		p.clock.step(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		p.clock.step(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		p.clock.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		p.clock.faster()
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		p.clock.slower()
	}
	p.clock.tick()
	return nil
}

// Draw renders the current snapshot and the status line.
func (p *player) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if p.drawn != p.clock.frame {
		frame := export.RenderFrame(p.trace.At(p.clock.frame), 1, "")
		p.canvas.WritePixels(frame.Pix)
		p.drawn = p.clock.frame
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(p.scale), float64(p.scale))
	op.GeoM.Translate(0, hudHeight)
	screen.DrawImage(p.canvas, op)

	c := p.trace.At(p.clock.frame).Census()
	status := fmt.Sprintf("step %d/%d  trees %d  burning %d  fps %d",
		p.clock.frame, p.clock.last, c.Tree, c.Burning, p.clock.fps)
	if p.clock.paused {
		status += "  [paused]"
	}
	text.Draw(screen, status, basicfont.Face7x13, 4, 13, color.White)
}

// Layout returns the logical screen size.
func (p *player) Layout(int, int) (int, int) {
	g := p.trace.At(0)
	return g.W * p.scale, g.H*p.scale + hudHeight
}

// Run opens a window and plays tr until it is closed.
func Run(tr *fire.Trace, opts Options) error {
	if tr.Len() == 0 {
		return core.Invalidf("trace has no snapshots")
	}
	p := newPlayer(tr, opts)
	w, h := p.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	if opts.Title == "" {
		opts.Title = "wildfire"
	}
	ebiten.SetWindowTitle(opts.Title)
	return ebiten.RunGame(p)
}
