package polarstrip

import (
	"fmt"
	"strings"
)

// Mapper wraps a strip around a circle on a canvas.
type Mapper interface {
	// Map draws strip onto c and reports what it did. It never fails: writes
	// outside the canvas and degenerate geometry are dropped silently.
	Map(strip *Strip, c *Canvas) Stats
}

// Stats summarizes one mapping pass.
type Stats struct {
	// Writes counts drawing calls: pixels for PointMapper, arcs for RingMapper.
	Writes int

	// Skipped counts samples that were not drawn because their color is the
	// skip sentinel.
	Skipped int

	// Repeats is the number of full strip traversals (PointMapper only).
	Repeats int

	// DegenerateRings counts rings whose inner radius was not positive
	// (RingMapper only).
	DegenerateRings int
}

// Strategy selects a mapping algorithm.
type Strategy int

const (
	// StrategyPoints plots the strip as discrete dots around the circle.
	StrategyPoints Strategy = iota

	// StrategyRings strokes concentric rings of arc segments.
	StrategyRings
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyPoints:
		return "points"
	case StrategyRings:
		return "rings"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy parses "points" or "rings", ignoring case and surrounding
// space. The singular forms "point" and "ring" are accepted too, as is "arcs"
// for rings.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "points", "point":
		return StrategyPoints, nil
	case "rings", "ring", "arcs":
		return StrategyRings, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// DegeneratePolicy decides what RingMapper does with a ring whose inner
// radius is zero or negative.
type DegeneratePolicy int

const (
	// ClampDegenerate clamps the inner radius to zero, turning the band into
	// a filled disc of the remaining outer radius. Rings whose outer radius
	// is not positive are skipped.
	ClampDegenerate DegeneratePolicy = iota

	// SkipDegenerate skips the whole ring.
	SkipDegenerate
)

// String returns the policy name.
func (p DegeneratePolicy) String() string {
	switch p {
	case ClampDegenerate:
		return "clamp"
	case SkipDegenerate:
		return "skip"
	default:
		return fmt.Sprintf("DegeneratePolicy(%d)", int(p))
	}
}

// ParseDegeneratePolicy parses "clamp" or "skip".
func ParseDegeneratePolicy(s string) (DegeneratePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clamp", "":
		return ClampDegenerate, nil
	case "skip":
		return SkipDegenerate, nil
	default:
		return 0, fmt.Errorf("%w: degenerate policy %q", ErrInvalidLayout, s)
	}
}

// Layout holds the geometry shared by both mappers.
type Layout struct {
	// CenterX and CenterY locate the circle center in canvas pixels.
	CenterX, CenterY float64

	// Radius is the outer radius of the pattern.
	Radius float64

	// Thickness is the radial width of the band (of each ring for RingMapper).
	Thickness int

	// Rings is the number of concentric rings (RingMapper only).
	Rings int

	// Gap is the radial spacing between rings (RingMapper only).
	Gap int

	// Segment is the angular width of one arc, in degrees (RingMapper only).
	Segment float64
}

// Validate checks the layout for values the mapper for s cannot work with.
// Ring fields are only checked for StrategyRings.
func (l Layout) Validate(s Strategy) error {
	switch {
	case l.Radius <= 0:
		return fmt.Errorf("%w: radius %v must be positive", ErrInvalidLayout, l.Radius)
	case l.Thickness < 1:
		return fmt.Errorf("%w: thickness %d must be at least 1", ErrInvalidLayout, l.Thickness)
	case s != StrategyRings:
		return nil
	case l.Rings < 1:
		return fmt.Errorf("%w: rings %d must be at least 1", ErrInvalidLayout, l.Rings)
	case l.Gap < 0:
		return fmt.Errorf("%w: gap %d must not be negative", ErrInvalidLayout, l.Gap)
	case l.Segment <= 0 || l.Segment > 360:
		return fmt.Errorf("%w: segment %v must be in (0, 360]", ErrInvalidLayout, l.Segment)
	}
	return nil
}

// NewMapper returns the mapper for s. The layout is validated first.
func NewMapper(s Strategy, l Layout, policy DegeneratePolicy) (Mapper, error) {
	if err := l.Validate(s); err != nil {
		return nil, err
	}
	switch s {
	case StrategyPoints:
		return &PointMapper{Layout: l}, nil
	case StrategyRings:
		return &RingMapper{Layout: l, Policy: policy}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
}
