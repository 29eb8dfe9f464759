package polarstrip

import (
	"fmt"
	"image"
)

// Strip is a read-only pattern strip: an ordered sequence of colors that
// repeats indefinitely in both directions.
type Strip struct {
	colors []Color
}

// NewStrip creates a strip from the given colors. The slice is copied.
func NewStrip(colors ...Color) (*Strip, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyStrip
	}
	c := make([]Color, len(colors))
	copy(c, colors)
	return &Strip{colors: c}, nil
}

// StripFromImage reads the first row of img as a strip.
func StripFromImage(img image.Image) (*Strip, error) {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("polarstrip: strip from %dx%d image: %w",
			bounds.Dx(), bounds.Dy(), ErrEmptyStrip)
	}

	colors := make([]Color, bounds.Dx())
	y := bounds.Min.Y

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for i := range colors {
			c := nrgba.NRGBAAt(bounds.Min.X+i, y)
			colors[i] = Color{R: c.R, G: c.G, B: c.B, A: c.A}
		}
		return &Strip{colors: colors}, nil
	}

	for i := range colors {
		colors[i] = FromColor(img.At(bounds.Min.X+i, y))
	}
	return &Strip{colors: colors}, nil
}

// Width returns the number of colors in one traversal of the strip.
func (s *Strip) Width() int {
	if s == nil {
		return 0
	}
	return len(s.colors)
}

// ColorAt returns the color at index i mod Width. Negative indices wrap.
func (s *Strip) ColorAt(i int) Color {
	w := len(s.colors)
	i %= w
	if i < 0 {
		i += w
	}
	return s.colors[i]
}

// Colors returns a copy of the strip's colors.
func (s *Strip) Colors() []Color {
	c := make([]Color, len(s.colors))
	copy(c, s.colors)
	return c
}

// Image returns the strip as a 1×W image.
func (s *Strip) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(s.colors), 1))
	for i, c := range s.colors {
		img.SetNRGBA(i, 0, c.NRGBA())
	}
	return img
}
