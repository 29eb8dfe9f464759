package polarstrip

import (
	"math"
	"testing"
)

// Test helper functions shared across polarstrip tests.

// mustStrip builds a strip or fails the test.
func mustStrip(t *testing.T, colors ...Color) *Strip {
	t.Helper()
	s, err := NewStrip(colors...)
	if err != nil {
		t.Fatalf("NewStrip() = %v", err)
	}
	return s
}

// colorApproxEqual compares two colors channel by channel with tolerance.
func colorApproxEqual(a, b Color, tolerance int) bool {
	return absDiff(a.R, b.R) <= tolerance &&
		absDiff(a.G, b.G) <= tolerance &&
		absDiff(a.B, b.B) <= tolerance &&
		absDiff(a.A, b.A) <= tolerance
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// polarPixel returns the pixel containing the point at radius r and angle
// deg (clockwise from +x) around (cx, cy).
func polarPixel(cx, cy, r, deg float64) (int, int) {
	a := deg * math.Pi / 180
	return int(math.Floor(cx + r*math.Cos(a))), int(math.Floor(cy + r*math.Sin(a)))
}

// assertNoBlackWrites fails if any pixel with non-zero alpha has RGB (0,0,0).
// Only meaningful on canvases that started fully transparent.
func assertNoBlackWrites(t *testing.T, c *Canvas) {
	t.Helper()
	for y := 0; y < c.Size(); y++ {
		for x := 0; x < c.Size(); x++ {
			p := c.At(x, y)
			if p.A != 0 && p.IsSkip() {
				t.Fatalf("pixel (%d,%d) = %v: skip color was drawn", x, y, p)
			}
		}
	}
}
