package export

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"github.com/vovakirdan/wildfire/internal/fire"
	"github.com/vovakirdan/wildfire/internal/registry"
)

func init() {
	registry.Register("video", func() registry.Exporter { return Video{} })
}

// Video writes the trace as a Motion-JPEG AVI, one frame per snapshot.
type Video struct{}

func (Video) ID() string    { return "video" }
func (Video) Title() string { return "Motion-JPEG AVI of every step (fire_simulation.avi)" }

// Export implements registry.Exporter.
func (Video) Export(ctx context.Context, tr *fire.Trace, dir string, opts registry.Options) ([]string, error) {
	if tr.Len() == 0 {
		return nil, fmt.Errorf("export: video: trace is empty")
	}
	if err := ensureDir(dir); err != nil {
		return nil, err
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = 5
	}
	cell := cellSize(opts.CellSize)
	first := tr.At(0)
	path := join(dir, "fire_simulation.avi")

	aw, err := mjpeg.New(path, int32(first.W*cell), int32(first.H*cell), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("export: video: cannot create %s: %w", path, err)
	}

	var buf bytes.Buffer
	for i, g := range tr.Frames() {
		if err := ctx.Err(); err != nil {
			aw.Close()
			return nil, err
		}
		buf.Reset()
		if err := jpeg.Encode(&buf, RenderFrame(g, cell, label(opts.Label, i)), &jpeg.Options{Quality: 90}); err != nil {
			aw.Close()
			return nil, fmt.Errorf("export: video: encode frame %d: %w", i, err)
		}
		if err := aw.AddFrame(buf.Bytes()); err != nil {
			aw.Close()
			return nil, fmt.Errorf("export: video: add frame %d: %w", i, err)
		}
	}
	if err := aw.Close(); err != nil {
		return nil, fmt.Errorf("export: video: finalize %s: %w", path, err)
	}
	return []string{path}, nil
}
