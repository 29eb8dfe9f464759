package polarstrip

import "fmt"

// Params is the fully resolved configuration of a Render call.
type Params struct {
	Strategy   Strategy
	Size       int
	Background Color
	Layout     Layout
	Smooth     bool
	Degenerate DegeneratePolicy
}

// Resolve applies opts to the defaults derived from strip and returns the
// resulting parameters without drawing anything. A nil or empty strip
// resolves as if it were one pixel wide.
func Resolve(strip *Strip, opts ...Option) Params {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}

	w := max(strip.Width(), 1)
	p := Params{
		Strategy:   o.strategy,
		Size:       o.size,
		Smooth:     o.smooth,
		Degenerate: o.degenerate,
	}

	if p.Size <= 0 {
		p.Size = int(float64(w) * canvasScale)
	}
	if p.Size < 1 {
		p.Size = 1
	}

	switch {
	case o.background != nil:
		p.Background = *o.background
	case p.Strategy == StrategyRings:
		p.Background = Transparent
	default:
		p.Background = Black
	}

	l := Layout{
		Radius:    o.radius,
		Thickness: o.thickness,
		Rings:     o.rings,
		Gap:       o.gap,
		Segment:   o.segment,
	}
	if o.center != nil {
		l.CenterX, l.CenterY = o.center[0], o.center[1]
	} else {
		l.CenterX = float64(p.Size / 2)
		l.CenterY = float64(p.Size / 2)
	}
	if l.Radius <= 0 {
		l.Radius = float64(p.Size / 3)
	}
	if l.Thickness <= 0 {
		l.Thickness = DefaultThickness
	}
	if l.Rings <= 0 {
		l.Rings = DefaultRings
	}
	if l.Segment <= 0 {
		l.Segment = 360 / float64(w)
	}
	p.Layout = l

	return p
}

// Render maps strip onto a new canvas. It is the whole pipeline: resolve
// parameters, create the canvas, run the mapper and optionally smooth.
//
// The only errors come from an invalid layout; sparse or empty output is not
// an error.
func Render(strip *Strip, opts ...Option) (*Canvas, Stats, error) {
	if strip == nil || strip.Width() == 0 {
		return nil, Stats{}, fmt.Errorf("polarstrip: render: %w", ErrEmptyStrip)
	}
	p := Resolve(strip, opts...)
	return RenderParams(strip, p)
}

// RenderParams is Render with already resolved parameters.
func RenderParams(strip *Strip, p Params) (*Canvas, Stats, error) {
	m, err := NewMapper(p.Strategy, p.Layout, p.Degenerate)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("polarstrip: render: %w", err)
	}

	log := Logger()
	log.Debug("polarstrip: canvas prepared",
		"strategy", p.Strategy,
		"size", p.Size,
		"center_x", p.Layout.CenterX,
		"center_y", p.Layout.CenterY,
		"radius", p.Layout.Radius,
		"thickness", p.Layout.Thickness)

	c := NewCanvas(p.Size, p.Background)
	stats := m.Map(strip, c)

	if pm, ok := m.(*PointMapper); ok {
		log.Debug("polarstrip: mapped pattern to circle",
			"circumference", pm.Circumference(),
			"repeats", stats.Repeats,
			"writes", stats.Writes)
	} else {
		log.Debug("polarstrip: mapped pattern to rings",
			"rings", p.Layout.Rings,
			"segment", p.Layout.Segment,
			"arcs", stats.Writes,
			"degenerate_rings", stats.DegenerateRings)
	}

	if p.Smooth {
		Smooth(c)
	}
	return c, stats, nil
}
