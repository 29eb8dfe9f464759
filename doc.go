// Package polarstrip wraps one-dimensional color strips around circles.
//
// # Overview
//
// A pattern strip is a 1×W image treated as an ordered, endlessly repeating
// sequence of colors. polarstrip maps each strip sample to a polar
// coordinate on a square canvas and paints it, producing a circular image of
// the pattern.
//
// # Quick Start
//
//	strip, err := polarstrip.LoadStrip("pattern.bmp")
//	if err != nil {
//	    return err
//	}
//
//	canvas, _, err := polarstrip.Render(strip)
//	if err != nil {
//	    return err
//	}
//	return canvas.SavePNG("pattern.png")
//
// # Strategies
//
// StrategyPoints (PointMapper) repeats the strip as many whole times as fit
// into the rounded circumference and plots every sample as a dot, Thickness
// times, moving one pixel inward per step.
//
// StrategyRings (RingMapper) strokes concentric rings of anti-aliased arc
// segments. Segment k takes strip color k mod W; the first segment starts at
// 12 o'clock.
//
// Both strategies treat colors whose RGB is (0,0,0) as transparent and never
// draw them.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees for StrokeArc, 0 is right, increases clockwise
//
// # Errors
//
// Decoding and encoding failures match ErrDecode and ErrEncode under
// errors.Is. Pixels falling outside the canvas, degenerate rings, and strips
// wider than the circumference are not errors: they draw less, or nothing.
package polarstrip
