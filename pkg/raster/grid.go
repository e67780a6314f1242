package raster

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// ErrBufferLength is returned when a pixel buffer does not hold exactly
// width*height pixels.
var ErrBufferLength = errors.New("pixel buffer length mismatch")

// Pixel is one 8-bit RGBA sample with straight (non-premultiplied) alpha.
type Pixel struct {
	R, G, B, A uint8
}

// Transparent reports whether the pixel is fully transparent.
func (p Pixel) Transparent() bool {
	return p.A == 0
}

// Source is a random-access pixel grid with its origin at 0,0.
type Source interface {
	Size() (width, height int)
	At(x, y int) Pixel
}

// NewGrid wraps an NRGBA ordered pixel buffer. The buffer must hold
// exactly 4*width*height bytes.
func NewGrid(width, height int, pixels []byte) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, errors.Errorf("invalid grid size %dx%d", width, height)
	}
	if want := 4 * width * height; len(pixels) != want {
		return nil, errors.Wrapf(ErrBufferLength, "got %d bytes, want %d for %dx%d", len(pixels), want, width, height)
	}

	return &Grid{
		pixels: pixels,
		stride: 4 * width,
		bounds: image.Rect(0, 0, width, height),
	}, nil
}

// FromImage copies any decoded image into a Grid. Colors are converted to
// non-premultiplied 8-bit channels, so a partially transparent pixel keeps
// the RGB value it was drawn with.
func FromImage(src image.Image) (*Grid, error) {
	if src == nil {
		return nil, errors.New("nil image")
	}

	dst := imaging.Clone(src)
	b := dst.Bounds()
	if dst.Stride != 4*b.Dx() {
		return nil, errors.Wrapf(ErrBufferLength, "unexpected stride %d for width %d", dst.Stride, b.Dx())
	}

	return NewGrid(b.Dx(), b.Dy(), dst.Pix)
}

// Grid is an in-memory NRGBA pixel buffer. It implements Source.
type Grid struct {
	pixels []byte
	stride int
	bounds image.Rectangle
}

// Size implements the Source interface.
func (g *Grid) Size() (int, int) {
	return g.bounds.Dx(), g.bounds.Dy()
}

// Bounds returns the grid rectangle, always anchored at 0,0.
func (g *Grid) Bounds() image.Rectangle {
	return g.bounds
}

// At implements the Source interface. Coordinates outside the grid read as
// a transparent pixel.
func (g *Grid) At(x, y int) Pixel {
	if !(image.Point{X: x, Y: y}).In(g.bounds) {
		return Pixel{}
	}
	i := y*g.stride + 4*x
	s := g.pixels[i : i+4 : i+4]
	return Pixel{R: s[0], G: s[1], B: s[2], A: s[3]}
}
