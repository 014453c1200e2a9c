package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/vovakirdan/wildfire/internal/fire"
	"github.com/vovakirdan/wildfire/internal/registry"
)

func testTrace(t *testing.T, steps int) *fire.Trace {
	t.Helper()
	rng := fire.NewSource(7)
	g, err := fire.Initialize(24, 0.8, rng)
	if err != nil {
		t.Fatal(err)
	}
	tr, err := fire.Simulate(context.Background(), g, nil, steps, fire.Params{
		Wind:     fire.Wind{Direction: fire.North, Speed: 30},
		BurnProb: 0.6,
	}, rng)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestRenderFrameColors(t *testing.T) {
	g, err := fire.ParseGrid(".T\n*.\n")
	if err != nil {
		t.Fatal(err)
	}
	img := RenderFrame(g, 3, "")
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("bounds %v", b)
	}
	checks := []struct {
		x, y int
		want fire.Cell
	}{
		{1, 1, fire.Empty},
		{4, 2, fire.Tree},
		{0, 5, fire.Burning},
		{5, 5, fire.Empty},
	}
	for _, c := range checks {
		if got := img.RGBAAt(c.x, c.y); got != CellColor(c.want) {
			t.Errorf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, CellColor(c.want))
		}
	}
}

func TestRenderFrameLabelDrawsText(t *testing.T) {
	g := fire.NewGrid(40, 20)
	plain := RenderFrame(g, 2, "")
	labelled := RenderFrame(g, 2, StepLabel(3))
	if bytes.Equal(plain.Pix, labelled.Pix) {
		t.Error("label did not change any pixel")
	}
}

func TestExportersRegistered(t *testing.T) {
	for _, id := range []string{"video", "frames", "final", "chart", "text"} {
		if !registry.Exists(id) {
			t.Errorf("exporter %q not registered", id)
		}
	}
}

func TestFramesExport(t *testing.T) {
	tr := testTrace(t, 3)
	dir := filepath.Join(t.TempDir(), "frames")
	paths, err := Frames{}.Export(context.Background(), tr, dir, registry.Options{CellSize: 2, Label: true})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(paths) != 4 {
		t.Fatalf("%d files, want 4", len(paths))
	}
	img, err := imgio.Open(paths[3])
	if err != nil {
		t.Fatalf("open %s: %v", paths[3], err)
	}
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 48 {
		t.Errorf("bounds %v", b)
	}
}

func TestFinalExport(t *testing.T) {
	tr := testTrace(t, 2)
	paths, err := Final{}.Export(context.Background(), tr, t.TempDir(), registry.Options{CellSize: 1})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	img, err := imgio.Open(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	want := CellColor(tr.Last().At(0, 0))
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
		t.Errorf("pixel (0,0) = %v, want %v", img.At(0, 0), want)
	}

	if _, err := (Final{}).Export(context.Background(), &fire.Trace{}, t.TempDir(), registry.Options{}); err == nil {
		t.Error("empty trace: expected error")
	}
}

func TestTextExport(t *testing.T) {
	tr := testTrace(t, 2)
	paths, err := Text{}.Export(context.Background(), tr, t.TempDir(), registry.Options{})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	data, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for i := 0; i < tr.Len(); i++ {
		if !strings.Contains(out, "# "+StepLabel(i)+" ") {
			t.Errorf("missing header for step %d", i)
		}
		if !strings.Contains(out, tr.At(i).String()) {
			t.Errorf("missing grid for step %d", i)
		}
	}
}

func TestChartExport(t *testing.T) {
	tr := testTrace(t, 10)
	paths, err := Chart{}.Export(context.Background(), tr, t.TempDir(), registry.Options{})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	img, err := imgio.Open(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 400 {
		t.Errorf("bounds %v", b)
	}

	if _, err := (Chart{}).Export(context.Background(), testTrace(t, 0), t.TempDir(), registry.Options{}); err == nil {
		t.Error("single snapshot: expected error")
	}
}

func TestVideoExport(t *testing.T) {
	tr := testTrace(t, 4)
	paths, err := Video{}.Export(context.Background(), tr, t.TempDir(), registry.Options{FPS: 5, CellSize: 4, Label: true})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	data, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 12 || string(data[:4]) != "RIFF" || string(data[8:12]) != "AVI " {
		t.Errorf("not an AVI file (%d bytes)", len(data))
	}
}

func TestExportCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tr := testTrace(t, 2)
	if _, err := (Frames{}).Export(ctx, tr, t.TempDir(), registry.Options{}); err == nil {
		t.Error("frames: expected cancellation error")
	}
	if _, err := (Video{}).Export(ctx, tr, t.TempDir(), registry.Options{}); err == nil {
		t.Error("video: expected cancellation error")
	}
}
