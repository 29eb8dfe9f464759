package polarstrip

import "math"

// RingMapper strokes concentric rings, each made of arc segments Segment
// degrees wide. Ring 0 is the outermost ring; every following ring sits
// Thickness+Gap pixels further in. Segment k takes strip color k mod W, and
// the first segment starts at the top of the circle. Every segment is its own
// arc, so equal neighbours show the anti-aliasing seam StrokeArc describes.
type RingMapper struct {
	Layout Layout
	Policy DegeneratePolicy
}

// originOffset rotates angle 0 from 3 o'clock to 12 o'clock.
const originOffset = -90.0

// Radii returns the inner and outer radius of the given ring before any
// degenerate-ring policy is applied.
func (m *RingMapper) Radii(ring int) (inner, outer float64) {
	l := m.Layout
	inner = l.Radius - float64(l.Thickness) - float64(ring*(l.Thickness+l.Gap))
	return inner, inner + float64(l.Thickness)
}

// segmentEpsilon absorbs the rounding in 360/W so that a derived segment
// width always yields exactly W segments.
const segmentEpsilon = 1e-9

// Segments returns the number of arc segments in one full ring: the
// smallest n with n*Segment covering 360 degrees.
func (m *RingMapper) Segments() int {
	seg := m.Layout.Segment
	if seg <= 0 {
		return 0
	}
	return int(math.Ceil(360/seg - segmentEpsilon))
}

// Map implements Mapper.
func (m *RingMapper) Map(strip *Strip, c *Canvas) Stats {
	l := m.Layout
	segments := m.Segments()

	var stats Stats
	for ring := 0; ring < l.Rings; ring++ {
		inner, outer := m.Radii(ring)
		width := float64(l.Thickness)
		if inner <= 0 {
			stats.DegenerateRings++
			if m.Policy == SkipDegenerate || outer <= 0 {
				Logger().Debug("polarstrip: skipping degenerate ring",
					"ring", ring, "inner", inner, "outer", outer)
				continue
			}
			width = outer
		}
		box := SquareAround(l.CenterX, l.CenterY, outer)

		for k := 0; k < segments; k++ {
			col := strip.ColorAt(k)
			if col.IsSkip() {
				stats.Skipped++
				continue
			}
			start := float64(k)*l.Segment + originOffset
			c.StrokeArc(box, start, start+l.Segment, col, width)
			stats.Writes++
		}
	}

	return stats
}
