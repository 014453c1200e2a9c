package export

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/vovakirdan/wildfire/internal/fire"
	"github.com/vovakirdan/wildfire/internal/registry"
)

func init() {
	registry.Register("text", func() registry.Exporter { return Text{} })
}

// Text dumps every snapshot as ASCII ('.' empty, 'T' tree, '*' burning)
// with a census header per step.
type Text struct{}

func (Text) ID() string    { return "text" }
func (Text) Title() string { return "ASCII dump of every step (trace.txt)" }

// Export implements registry.Exporter.
func (Text) Export(ctx context.Context, tr *fire.Trace, dir string, _ registry.Options) ([]string, error) {
	if err := ensureDir(dir); err != nil {
		return nil, err
	}
	path := join(dir, "trace.txt")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("export: text: %w", err)
	}
	w := bufio.NewWriter(f)
	for i, g := range tr.Frames() {
		if err := ctx.Err(); err != nil {
			f.Close()
			return nil, err
		}
		c := g.Census()
		fmt.Fprintf(w, "# %s trees=%d burning=%d empty=%d\n", StepLabel(i), c.Tree, c.Burning, c.Empty)
		w.WriteString(g.String())
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return nil, fmt.Errorf("export: text: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("export: text: %w", err)
	}
	return []string{path}, nil
}
