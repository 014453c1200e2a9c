package terrain

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// Image is an immutable H×W grid of RGB pixels stored row-major,
// three bytes per pixel.
type Image struct {
	W, H int
	Pix  []uint8
}

// NewImage creates a W×H image filled with a single color.
func NewImage(w, h int, fill RGB) Image {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	pix := make([]uint8, w*h*3)
	for i := 0; i < len(pix); i += 3 {
		pix[i], pix[i+1], pix[i+2] = fill.R, fill.G, fill.B
	}
	return Image{W: w, H: h, Pix: pix}
}

// Len returns the number of pixels.
func (m Image) Len() int {
	return m.W * m.H
}

// At returns the pixel at (row, col).
func (m Image) At(row, col int) RGB {
	return m.pixel(row*m.W + col)
}

func (m Image) pixel(i int) RGB {
	o := i * 3
	return RGB{R: m.Pix[o], G: m.Pix[o+1], B: m.Pix[o+2]}
}

func (m Image) valid() bool {
	return m.W >= 0 && m.H >= 0 && len(m.Pix) == m.W*m.H*3
}

// FromImage copies the RGB channels of any decoded image.
// Colors are taken non-premultiplied and the alpha channel is dropped.
func FromImage(src image.Image) Image {
	b := src.Bounds()
	out := Image{W: b.Dx(), H: b.Dy(), Pix: make([]uint8, b.Dx()*b.Dy()*3)}

	if nrgba, ok := src.(*image.NRGBA); ok {
		o := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := nrgba.Pix[nrgba.PixOffset(b.Min.X, y):]
			for x := 0; x < b.Dx(); x++ {
				out.Pix[o], out.Pix[o+1], out.Pix[o+2] = row[x*4], row[x*4+1], row[x*4+2]
				o += 3
			}
		}
		return out
	}

	o := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			out.Pix[o], out.Pix[o+1], out.Pix[o+2] = c.R, c.G, c.B
			o += 3
		}
	}
	return out
}

// ToNRGBA converts the image to an opaque standard library image.
func (m Image) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, m.W, m.H))
	for i := 0; i < m.Len(); i++ {
		c := m.pixel(i)
		o := i * 4
		img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3] = c.R, c.G, c.B, 0xff
	}
	return img
}

// Load opens a PNG or JPEG terrain image.
func Load(path string) (Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return Image{}, fmt.Errorf("terrain: cannot open image %s: %w", path, err)
	}
	return FromImage(img), nil
}

// Save writes the image as PNG.
func (m Image) Save(path string) error {
	if err := imgio.Save(path, m.ToNRGBA(), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("terrain: cannot save image %s: %w", path, err)
	}
	return nil
}

// Resize scales the image to w×h with nearest-neighbour sampling, which keeps
// every output pixel equal to some input color so palette matches stay exact.
func (m Image) Resize(w, h int) Image {
	if w == m.W && h == m.H {
		return m
	}
	if m.Len() == 0 || w <= 0 || h <= 0 {
		return NewImage(max(w, 0), max(h, 0), RGB{})
	}
	return FromImage(transform.Resize(m.ToNRGBA(), w, h, transform.NearestNeighbor))
}
