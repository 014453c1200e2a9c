package terrain

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestGenerateUsesPaletteColors(t *testing.T) {
	p := DefaultPalette()
	img, err := Generate(GenerateOptions{Width: 64, Height: 48, Scale: 0.05, Octaves: 3, Seed: 42}, p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	seen := map[RGB]int{}
	for i := 0; i < img.Len(); i++ {
		seen[img.pixel(i)]++
	}
	for c := range seen {
		found := false
		for _, e := range p {
			if e.Color == c {
				found = true
			}
		}
		if !found {
			t.Errorf("color %v not in palette", c)
		}
	}
	if len(seen) < 2 {
		t.Errorf("expected several slope bands, got %d", len(seen))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	opts := DefaultGenerateOptions(32)
	a, _ := Generate(opts, DefaultPalette())
	b, _ := Generate(opts, DefaultPalette())
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("byte %d differs", i)
		}
	}
}

func TestGenerateInvalid(t *testing.T) {
	tests := []struct {
		name string
		opts GenerateOptions
	}{
		{"zero width", GenerateOptions{Width: 0, Height: 4, Scale: 0.1, Octaves: 1}},
		{"no octaves", GenerateOptions{Width: 4, Height: 4, Scale: 0.1}},
		{"zero scale", GenerateOptions{Width: 4, Height: 4, Octaves: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(tt.opts, DefaultPalette()); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("err = %v", err)
			}
		})
	}
}

func TestRampColorEnds(t *testing.T) {
	if RampColor(0) != ylgn[0] || RampColor(-5) != ylgn[0] {
		t.Error("low end should be the first ramp color")
	}
	if RampColor(100) != ylgn[len(ylgn)-1] {
		t.Error("high end should be the last ramp color")
	}
	if mid := RampColor(50); mid != ylgn[2] {
		t.Errorf("RampColor(50) = %v, want %v", mid, ylgn[2])
	}
}

func TestSaveMap(t *testing.T) {
	grid := NewSlopeGrid(4, 3, 25)
	path := filepath.Join(t.TempDir(), "slope.png")
	if err := grid.SaveMap(path, 2); err != nil {
		t.Fatalf("SaveMap: %v", err)
	}
	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.W != 8 || img.H != 6 {
		t.Errorf("size %dx%d, want 8x6", img.W, img.H)
	}
}
