// Package path models a planar path as a set of figures built from linear,
// quadratic/cubic Bezier, and elliptical-arc segments, and flattens it into
// polylines within a flatness tolerance. Segments are a tagged variant
// rather than an interface hierarchy: nothing needs dynamic dispatch past
// the point of flattening.
package path

import (
	"math"

	"github.com/rasterx-go/scanline/geom"
)

// DefaultFlatness is the chord-error tolerance, in path units, used when a
// caller does not specify one.
const DefaultFlatness = 0.25

// SegmentKind discriminates the LineSegment variant.
type SegmentKind uint8

const (
	// KindLinear is a polyline given verbatim.
	KindLinear SegmentKind = iota
	// KindCubicBezier is a cubic Bezier curve p0,c1,c2,p3.
	KindCubicBezier
	// KindEllipticalArc is an elliptical arc segment.
	KindEllipticalArc
)

// LineSegment is a tagged union over the three segment kinds. Only the
// fields relevant to Kind are populated.
type LineSegment struct {
	Kind SegmentKind

	// KindLinear
	Points []geom.Point

	// KindCubicBezier
	P0, C1, C2, P3 geom.Point

	// KindEllipticalArc
	Center             geom.Point
	RadiusX, RadiusY   float32
	RotationDeg        float32
	StartDeg, SweepDeg float32
}

// Linear constructs a linear segment from an ordered point sequence. The
// sequence must have at least two points to be meaningful; shorter
// sequences flatten to themselves (a degenerate/empty contribution).
func Linear(points ...geom.Point) LineSegment {
	return LineSegment{Kind: KindLinear, Points: points}
}

// Cubic constructs a cubic Bezier segment.
func Cubic(p0, c1, c2, p3 geom.Point) LineSegment {
	return LineSegment{Kind: KindCubicBezier, P0: p0, C1: c1, C2: c2, P3: p3}
}

// Quadratic constructs a cubic Bezier segment equivalent to the quadratic
// Bezier p0,c,p3: c1 = p0 + 2/3(c-p0), c2 = p3 + 2/3(c-p3).
func Quadratic(p0, c, p3 geom.Point) LineSegment {
	c1, c2 := QuadraticToCubic(p0, c, p3)
	return Cubic(p0, c1, c2, p3)
}

// QuadraticToCubic elevates a quadratic Bezier's single control point into
// the two cubic control points that reproduce the same curve exactly.
func QuadraticToCubic(p0, c, p3 geom.Point) (c1, c2 geom.Point) {
	c1 = p0.Add(c.Sub(p0).Mul(2.0 / 3.0))
	c2 = p3.Add(c.Sub(p3).Mul(2.0 / 3.0))
	return c1, c2
}

// EllipticalArc constructs an elliptical arc segment. rotationDeg rotates
// the ellipse's axes; startDeg/sweepDeg parameterize the arc in the
// ellipse's own (unrotated) parameter space.
func EllipticalArc(center geom.Point, rx, ry, rotationDeg, startDeg, sweepDeg float32) LineSegment {
	return LineSegment{
		Kind:        KindEllipticalArc,
		Center:      center,
		RadiusX:     rx,
		RadiusY:     ry,
		RotationDeg: rotationDeg,
		StartDeg:    startDeg,
		SweepDeg:    sweepDeg,
	}
}

// Endpoints returns the segment's start and end points in path space,
// before any transform is applied.
func (s LineSegment) Endpoints() (start, end geom.Point) {
	switch s.Kind {
	case KindLinear:
		if len(s.Points) == 0 {
			return geom.Point{}, geom.Point{}
		}
		return s.Points[0], s.Points[len(s.Points)-1]
	case KindCubicBezier:
		return s.P0, s.P3
	case KindEllipticalArc:
		return s.arcPoint(s.StartDeg), s.arcPoint(s.StartDeg + s.SweepDeg)
	default:
		return geom.Point{}, geom.Point{}
	}
}

// Flatten converts the segment to a polyline within tolerance tol, applying
// xf to every evaluated point. The returned slice always starts and ends at
// the segment's exact (transformed) endpoints.
func (s LineSegment) Flatten(tol float32, xf geom.Transform) []geom.Point {
	if tol <= 0 {
		tol = DefaultFlatness
	}
	switch s.Kind {
	case KindLinear:
		out := make([]geom.Point, len(s.Points))
		for i, p := range s.Points {
			out[i] = xf.Apply(p)
		}
		return out
	case KindCubicBezier:
		var out []geom.Point
		out = append(out, xf.Apply(s.P0))
		flattenCubic(s.P0, s.C1, s.C2, s.P3, tol, 0, &out, xf)
		return out
	case KindEllipticalArc:
		return s.flattenArc(tol, xf)
	default:
		return nil
	}
}

// maxSubdivisionDepth bounds the cubic flattener's recursion so a
// pathological (near-degenerate control polygon) curve cannot recurse
// forever in the presence of floating point rounding.
const maxSubdivisionDepth = 24

// flattenCubic performs recursive De Casteljau subdivision, terminating a
// branch when the control polygon is within tol of its chord:
// max(‖c1-lerp(p0,p3,1/3)‖, ‖c2-lerp(p0,p3,2/3)‖) < tol. Only the
// deepest-level endpoint is appended per branch; p0 is assumed already
// emitted by the caller so interior joins are shared, not duplicated.
func flattenCubic(p0, c1, c2, p3 geom.Point, tol float32, depth int, out *[]geom.Point, xf geom.Transform) {
	third := p0.Lerp(p3, 1.0/3.0)
	twoThirds := p0.Lerp(p3, 2.0/3.0)
	flat := c1.Distance(third) < tol && c2.Distance(twoThirds) < tol

	if flat || depth >= maxSubdivisionDepth {
		*out = append(*out, xf.Apply(p3))
		return
	}

	// De Casteljau subdivision at t=0.5.
	p01 := p0.Lerp(c1, 0.5)
	p12 := c1.Lerp(c2, 0.5)
	p23 := c2.Lerp(p3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	flattenCubic(p0, p01, p012, mid, tol, depth+1, out, xf)
	flattenCubic(mid, p123, p23, p3, tol, depth+1, out, xf)
}

// arcPoint evaluates P(theta) = center + R(rotation)*(rx*cos(theta), ry*sin(theta))
// in path space, before the transform is applied.
func (s LineSegment) arcPoint(thetaDeg float32) geom.Point {
	theta := float64(thetaDeg) * math.Pi / 180
	rot := float64(s.RotationDeg) * math.Pi / 180
	x := float64(s.RadiusX) * math.Cos(theta)
	y := float64(s.RadiusY) * math.Sin(theta)
	cosR, sinR := math.Cos(rot), math.Sin(rot)
	rx := x*cosR - y*sinR
	ry := x*sinR + y*cosR
	return geom.Point{
		X: s.Center.X + float32(rx),
		Y: s.Center.Y + float32(ry),
	}
}

// flattenArc steps theta with a step count chosen so the chord error stays
// below tol for the larger radius.
func (s LineSegment) flattenArc(tol float32, xf geom.Transform) []geom.Point {
	sweep := s.SweepDeg
	if sweep == 0 {
		return []geom.Point{xf.Apply(s.arcPoint(s.StartDeg))}
	}

	maxR := s.RadiusX
	if s.RadiusY > maxR {
		maxR = s.RadiusY
	}
	if maxR <= 0 {
		return []geom.Point{xf.Apply(s.arcPoint(s.StartDeg)), xf.Apply(s.arcPoint(s.StartDeg + sweep))}
	}

	// Chord error for a step of thetaStep radians on a circle of radius
	// maxR is maxR*(1-cos(thetaStep/2)); solve for thetaStep such that
	// this stays under tol.
	ratio := 1.0 - float64(tol)/float64(maxR)
	if ratio < -1 {
		ratio = -1
	}
	if ratio > 1 {
		ratio = 1
	}
	thetaStep := 2 * math.Acos(ratio)
	if thetaStep <= 0 || math.IsNaN(thetaStep) {
		thetaStep = math.Pi / 180 // 1 degree floor
	}
	thetaStepDeg := float32(thetaStep * 180 / math.Pi)

	n := int(math.Ceil(math.Abs(float64(sweep)) / float64(thetaStepDeg)))
	if n < 1 {
		n = 1
	}

	out := make([]geom.Point, 0, n+1)
	out = append(out, xf.Apply(s.arcPoint(s.StartDeg)))
	for i := 1; i <= n; i++ {
		t := s.StartDeg + sweep*float32(i)/float32(n)
		out = append(out, xf.Apply(s.arcPoint(t)))
	}
	return out
}
