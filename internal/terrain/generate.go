package terrain

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/wildfire/internal/core"
)

// GenerateOptions controls synthetic terrain.
type GenerateOptions struct {
	Width, Height int
	Scale         float64 // noise units per pixel; smaller gives broader features
	Octaves       int
	Seed          int64
}

// DefaultGenerateOptions returns the settings used when no terrain image is given.
func DefaultGenerateOptions(size int) GenerateOptions {
	return GenerateOptions{Width: size, Height: size, Scale: 0.02, Octaves: 3, Seed: 1}
}

// Generate paints a palette-colored terrain image from Perlin noise.
// Noise values are normalized over the image and split into len(p) equal
// bands, lowest band taking the first palette color.
func Generate(opts GenerateOptions, p Palette) (Image, error) {
	if err := p.Validate(); err != nil {
		return Image{}, err
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return Image{}, core.Invalidf("terrain size %dx%d must be positive", opts.Width, opts.Height)
	}
	if opts.Octaves <= 0 {
		return Image{}, core.Invalidf("octaves must be positive, got %d", opts.Octaves)
	}
	if !(opts.Scale > 0) {
		return Image{}, core.Invalidf("scale must be positive, got %v", opts.Scale)
	}

	noise := perlin.NewPerlin(2, 2, int32(opts.Octaves), opts.Seed)
	values := make([]float64, opts.Width*opts.Height)
	lo, hi := math.Inf(1), math.Inf(-1)
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			v := noise.Noise2D(float64(x)*opts.Scale, float64(y)*opts.Scale)
			values[y*opts.Width+x] = v
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}

	img := NewImage(opts.Width, opts.Height, p[0].Color)
	span := hi - lo
	if span == 0 {
		return img, nil
	}
	for i, v := range values {
		band := int((v - lo) / span * float64(len(p)))
		if band >= len(p) {
			band = len(p) - 1
		}
		c := p[band].Color
		o := i * 3
		img.Pix[o], img.Pix[o+1], img.Pix[o+2] = c.R, c.G, c.B
	}
	return img, nil
}
