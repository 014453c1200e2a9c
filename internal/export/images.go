package export

import (
	"context"
	"fmt"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/vovakirdan/wildfire/internal/fire"
	"github.com/vovakirdan/wildfire/internal/registry"
)

func init() {
	registry.Register("frames", func() registry.Exporter { return Frames{} })
	registry.Register("final", func() registry.Exporter { return Final{} })
}

// Frames writes one PNG per snapshot (step_0000.png, ...).
type Frames struct{}

func (Frames) ID() string    { return "frames" }
func (Frames) Title() string { return "One PNG per step (step_NNNN.png)" }

// Export implements registry.Exporter.
func (Frames) Export(ctx context.Context, tr *fire.Trace, dir string, opts registry.Options) ([]string, error) {
	if err := ensureDir(dir); err != nil {
		return nil, err
	}
	cell := cellSize(opts.CellSize)
	paths := make([]string, 0, tr.Len())
	for i, g := range tr.Frames() {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		path := join(dir, fmt.Sprintf("step_%04d.png", i))
		if err := imgio.Save(path, RenderFrame(g, cell, label(opts.Label, i)), imgio.PNGEncoder()); err != nil {
			return paths, fmt.Errorf("export: frames: %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Final writes only the last snapshot.
type Final struct{}

func (Final) ID() string    { return "final" }
func (Final) Title() string { return "PNG of the final step (final.png)" }

// Export implements registry.Exporter.
func (Final) Export(ctx context.Context, tr *fire.Trace, dir string, opts registry.Options) ([]string, error) {
	last := tr.Last()
	if last == nil {
		return nil, fmt.Errorf("export: final: trace is empty")
	}
	if err := ensureDir(dir); err != nil {
		return nil, err
	}
	path := join(dir, "final.png")
	img := RenderFrame(last, cellSize(opts.CellSize), label(opts.Label, tr.Len()-1))
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return nil, fmt.Errorf("export: final: %s: %w", path, err)
	}
	return []string{path}, nil
}
