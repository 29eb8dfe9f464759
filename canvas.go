package polarstrip

import (
	"image"

	"golang.org/x/image/vector"
)

// Canvas is a square pixel buffer with straight-alpha RGBA pixels.
//
// A Canvas is not safe for concurrent use. It is owned by one mapping
// operation at a time and handed to the output stage afterwards.
type Canvas struct {
	size int
	img  *image.NRGBA

	// raster is reused across StrokeArc calls.
	raster *vector.Rasterizer
}

// NewCanvas creates a size×size canvas filled with background.
// Sizes below 1 are clamped to 1.
func NewCanvas(size int, background Color) *Canvas {
	if size < 1 {
		size = 1
	}
	c := &Canvas{
		size: size,
		img:  image.NewNRGBA(image.Rect(0, 0, size, size)),
	}
	c.Clear(background)
	return c
}

// Size returns the width (and height) of the canvas.
func (c *Canvas) Size() int {
	return c.size
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// SetPixel overwrites the pixel at (x, y). Coordinates outside the canvas
// are ignored. No blending takes place.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if x < 0 || x >= c.size || y < 0 || y >= c.size {
		return
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	p[0] = col.R
	p[1] = col.G
	p[2] = col.B
	p[3] = col.A
}

// At returns the pixel at (x, y), or the zero Color outside the canvas.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.size || y < 0 || y >= c.size {
		return Color{}
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col Color) {
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = col.A
	}
}

// CountNot returns how many pixels differ from col.
func (c *Canvas) CountNot(col Color) int {
	n := 0
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != col.R || pix[i+1] != col.G || pix[i+2] != col.B || pix[i+3] != col.A {
			n++
		}
	}
	return n
}

// Image returns the backing pixel grid. The canvas keeps no other copy, so
// writes through the returned image are visible to the canvas.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	img := image.NewNRGBA(c.img.Rect)
	copy(img.Pix, c.img.Pix)
	return &Canvas{size: c.size, img: img}
}
