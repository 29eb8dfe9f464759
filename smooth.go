package polarstrip

import "github.com/gogpu/polarstrip/internal/filter"

// SmoothRadius is the Gaussian sigma, in pixels, used by Smooth.
const SmoothRadius = 2.0

// Smooth applies the fixed-radius Gaussian blur to the whole canvas in
// place. Applying it again blurs further; it is not idempotent.
func Smooth(c *Canvas) {
	Blur(c, SmoothRadius)
}

// Blur applies a Gaussian blur of the given radius to the whole canvas in
// place. A radius <= 0 does nothing.
func Blur(c *Canvas, radius float64) {
	filter.Gaussian(c.img, radius)
}
