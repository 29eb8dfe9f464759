package polarstrip

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Rect is an axis-aligned rectangle in canvas coordinates.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// SquareAround returns the square of half-size r centered on (cx, cy).
func SquareAround(cx, cy, r float64) Rect {
	return Rect{MinX: cx - r, MinY: cy - r, MaxX: cx + r, MaxY: cy + r}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.MaxX <= r.MinX || r.MaxY <= r.MinY }

// StrokeArc draws an arc inscribed in box, spanning startDeg to endDeg with a
// line of the given width measured inward from the box edge.
//
// Angles are in degrees: 0 points along +x and angles grow clockwise on
// screen. A span of 360 or more draws a full ring. If width reaches the
// center the arc becomes a pie slice. Coverage is anti-aliased and
// composited over the existing pixels.
//
// Two arcs that share an edge each contribute partial coverage to the pixels
// the edge crosses, so adjacent segments of the same color leave a faint
// seam along the boundary. Draw a run of equal colors as one wider arc when
// the seam matters.
func (c *Canvas) StrokeArc(box Rect, startDeg, endDeg float64, col Color, width float64) {
	if width <= 0 || box.Empty() {
		return
	}
	for endDeg < startDeg {
		endDeg += 360
	}
	span := endDeg - startDeg
	if span == 0 {
		return
	}

	area := image.Rect(
		int(math.Floor(box.MinX)), int(math.Floor(box.MinY)),
		int(math.Ceil(box.MaxX)), int(math.Ceil(box.MaxY)),
	).Intersect(c.img.Rect)
	if area.Empty() {
		return
	}

	if c.raster == nil {
		c.raster = vector.NewRasterizer(area.Dx(), area.Dy())
	} else {
		c.raster.Reset(area.Dx(), area.Dy())
	}
	p := arcPath{
		z:  c.raster,
		ox: float64(area.Min.X),
		oy: float64(area.Min.Y),
	}

	rx, ry := box.Width()/2, box.Height()/2
	cx, cy := box.MinX+rx, box.MinY+ry
	irx, iry := math.Max(rx-width, 0), math.Max(ry-width, 0)
	hollow := irx > 0 && iry > 0

	if span >= 360 {
		p.moveTo(cx+rx, cy)
		p.arc(cx, cy, rx, ry, 0, 2*math.Pi)
		p.close()
		if hollow {
			// Reverse winding cuts the hole.
			p.moveTo(cx+irx, cy)
			p.arc(cx, cy, irx, iry, 2*math.Pi, 0)
			p.close()
		}
	} else {
		a1 := startDeg * math.Pi / 180
		a2 := endDeg * math.Pi / 180
		p.moveTo(cx+rx*math.Cos(a1), cy+ry*math.Sin(a1))
		p.arc(cx, cy, rx, ry, a1, a2)
		if hollow {
			p.lineTo(cx+irx*math.Cos(a2), cy+iry*math.Sin(a2))
			p.arc(cx, cy, irx, iry, a2, a1)
		} else {
			p.lineTo(cx, cy)
		}
		p.close()
	}

	c.raster.DrawOp = draw.Over
	c.raster.Draw(c.img, area, image.NewUniform(col.NRGBA()), image.Point{})
}

// arcPath feeds canvas-space path commands to a rasterizer whose origin
// sits at (ox, oy).
type arcPath struct {
	z      *vector.Rasterizer
	ox, oy float64
}

func (p arcPath) moveTo(x, y float64) {
	p.z.MoveTo(float32(x-p.ox), float32(y-p.oy))
}

func (p arcPath) lineTo(x, y float64) {
	p.z.LineTo(float32(x-p.ox), float32(y-p.oy))
}

func (p arcPath) close() {
	p.z.ClosePath()
}

// arc continues the path along an elliptical arc from angle a1 to a2
// (radians). a2 may be less than a1 to run counter-clockwise. The current
// point must already be at angle a1.
func (p arcPath) arc(cx, cy, rx, ry, a1, a2 float64) {
	// Maximum 90 degrees per cubic segment
	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil(math.Abs(a2-a1) / maxAngle))
	if numSegments == 0 {
		return
	}
	angleStep := (a2 - a1) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		s1 := a1 + float64(i)*angleStep
		p.arcSegment(cx, cy, rx, ry, s1, s1+angleStep)
	}
}

// arcSegment adds a single cubic Bézier approximating an arc of at most 90
// degrees.
func (p arcPath) arcSegment(cx, cy, rx, ry, a1, a2 float64) {
	tan := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*tan*tan) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + rx*cos1
	y1 := cy + ry*sin1
	x2 := cx + rx*cos2
	y2 := cy + ry*sin2

	c1x := x1 - alpha*rx*sin1
	c1y := y1 + alpha*ry*cos1
	c2x := x2 + alpha*rx*sin2
	c2y := y2 - alpha*ry*cos2

	p.z.CubeTo(
		float32(c1x-p.ox), float32(c1y-p.oy),
		float32(c2x-p.ox), float32(c2y-p.oy),
		float32(x2-p.ox), float32(y2-p.oy),
	)
}
