package terrain

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestFromImageDropsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 255})
	src.SetNRGBA(1, 0, color.NRGBA{40, 50, 60, 128})

	img := FromImage(src)
	if img.W != 2 || img.H != 1 {
		t.Fatalf("size %dx%d", img.W, img.H)
	}
	if got := img.At(0, 1); got != (RGB{40, 50, 60}) {
		t.Errorf("At(0,1) = %v", got)
	}
}

func TestFromImageGeneric(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 2))
	src.Set(0, 1, color.RGBA{255, 99, 71, 255})
	img := FromImage(src)
	if got := img.At(1, 0); got != (RGB{255, 99, 71}) {
		t.Errorf("At(1,0) = %v", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p := DefaultPalette()
	img := imageOf(3, 2, p[0].Color, p[1].Color, p[2].Color, p[3].Color, p[4].Color, p[0].Color)
	path := filepath.Join(t.TempDir(), "terrain.png")

	if err := img.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.W != 3 || loaded.H != 2 {
		t.Fatalf("size %dx%d", loaded.W, loaded.H)
	}
	for i := range img.Pix {
		if img.Pix[i] != loaded.Pix[i] {
			t.Fatalf("byte %d: %d vs %d", i, img.Pix[i], loaded.Pix[i])
		}
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("expected error")
	}
}

func TestResizeKeepsPaletteColors(t *testing.T) {
	p := DefaultPalette()
	img := imageOf(2, 2, p[0].Color, p[4].Color, p[2].Color, p[3].Color)
	big := img.Resize(8, 8)
	if big.W != 8 || big.H != 8 {
		t.Fatalf("size %dx%d", big.W, big.H)
	}

	allowed := map[RGB]bool{}
	for _, e := range p {
		allowed[e.Color] = true
	}
	for i := 0; i < big.Len(); i++ {
		if c := big.pixel(i); !allowed[c] {
			t.Fatalf("pixel %d = %v is not a palette color", i, c)
		}
	}
}

func TestResizeSameSize(t *testing.T) {
	img := NewImage(3, 3, RGB{1, 2, 3})
	if got := img.Resize(3, 3); got.W != 3 || &got.Pix[0] != &img.Pix[0] {
		t.Error("same-size resize should return the image unchanged")
	}
}
