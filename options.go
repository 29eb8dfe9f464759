package polarstrip

// Option configures a Render call.
// Use functional options to override the derived defaults.
//
// Example:
//
//	// Defaults derived from the strip width
//	canvas, _, err := polarstrip.Render(strip)
//
//	// Three rings with 2px gaps on a transparent 512px canvas
//	canvas, _, err := polarstrip.Render(strip,
//	    polarstrip.WithStrategy(polarstrip.StrategyRings),
//	    polarstrip.WithCanvasSize(512),
//	    polarstrip.WithRings(3),
//	    polarstrip.WithGap(2),
//	)
type Option func(*renderOptions)

// renderOptions holds optional configuration for Render. Pointer and
// zero-valued fields mean "derive from the strip and canvas".
type renderOptions struct {
	strategy   Strategy
	size       int
	background *Color
	center     *[2]float64
	radius     float64
	thickness  int
	rings      int
	gap        int
	segment    float64
	smooth     bool
	degenerate DegeneratePolicy
}

// Defaults used when an option is not given.
const (
	// DefaultThickness is the band thickness in pixels.
	DefaultThickness = 10

	// DefaultRings is the number of rings drawn by StrategyRings.
	DefaultRings = 1

	// canvasScale sizes the canvas from the strip width (about 2π).
	canvasScale = 6.28
)

// WithStrategy selects the mapping algorithm. Default: StrategyPoints.
func WithStrategy(s Strategy) Option {
	return func(o *renderOptions) {
		o.strategy = s
	}
}

// WithCanvasSize sets the canvas edge length in pixels.
// Default: int(width × 6.28).
func WithCanvasSize(size int) Option {
	return func(o *renderOptions) {
		o.size = size
	}
}

// WithBackground sets the initial canvas color.
// Default: opaque black for StrategyPoints, transparent for StrategyRings.
func WithBackground(c Color) Option {
	return func(o *renderOptions) {
		o.background = &c
	}
}

// WithCenter sets the circle center. Default: (size/2, size/2).
func WithCenter(x, y float64) Option {
	return func(o *renderOptions) {
		o.center = &[2]float64{x, y}
	}
}

// WithRadius sets the outer radius. Default: size/3.
func WithRadius(r float64) Option {
	return func(o *renderOptions) {
		o.radius = r
	}
}

// WithThickness sets the band thickness. Default: DefaultThickness.
func WithThickness(t int) Option {
	return func(o *renderOptions) {
		o.thickness = t
	}
}

// WithRings sets the ring count for StrategyRings. Default: DefaultRings.
func WithRings(n int) Option {
	return func(o *renderOptions) {
		o.rings = n
	}
}

// WithGap sets the spacing between rings. Default: 0.
func WithGap(g int) Option {
	return func(o *renderOptions) {
		o.gap = g
	}
}

// WithSegment sets the arc segment width in degrees for StrategyRings.
// Default: 360/width, so the strip wraps exactly once per ring.
func WithSegment(deg float64) Option {
	return func(o *renderOptions) {
		o.segment = deg
	}
}

// WithSmoothing enables the Gaussian smoothing pass. Default: off.
func WithSmoothing(enabled bool) Option {
	return func(o *renderOptions) {
		o.smooth = enabled
	}
}

// WithDegeneratePolicy sets how rings with a non-positive inner radius are
// handled. Default: ClampDegenerate.
func WithDegeneratePolicy(p DegeneratePolicy) Option {
	return func(o *renderOptions) {
		o.degenerate = p
	}
}
