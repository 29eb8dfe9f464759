package polarstrip

import "math"

// PointMapper wraps the strip around the circle as discrete dots. The strip
// is repeated as many whole times as fits into the circumference; each sample
// is plotted Thickness times, moving one pixel inward per step.
type PointMapper struct {
	Layout Layout
}

// Circumference returns the rounded circumference in pixels.
func (m *PointMapper) Circumference() int {
	return int(math.Round(2 * math.Pi * m.Layout.Radius))
}

// Repeats returns the number of whole strip traversals that fit on the
// circle for a strip of the given width. Zero means nothing is drawn.
func (m *PointMapper) Repeats(width int) int {
	circ := m.Circumference()
	if width <= 0 || circ <= 0 {
		return 0
	}
	return circ / width
}

// Map implements Mapper.
func (m *PointMapper) Map(strip *Strip, c *Canvas) Stats {
	l := m.Layout
	w := strip.Width()
	circ := m.Circumference()
	repeats := m.Repeats(w)

	stats := Stats{Repeats: repeats}
	for n := 0; n < repeats; n++ {
		for i := 0; i < w; i++ {
			col := strip.ColorAt(i)
			if col.IsSkip() {
				stats.Skipped++
				continue
			}
			angle := 2 * math.Pi * float64(i+n*w) / float64(circ)
			cos, sin := math.Cos(angle), math.Sin(angle)
			for t := 0; t < l.Thickness; t++ {
				r := l.Radius - float64(t)
				if r <= 0 {
					break
				}
				x := l.CenterX + r*cos
				y := l.CenterY + r*sin
				c.SetPixel(int(math.Round(x)), int(math.Round(y)), col)
				stats.Writes++
			}
		}
	}

	return stats
}
