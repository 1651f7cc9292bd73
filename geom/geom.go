// Package geom provides the 2D point and affine-transform primitives shared
// by every layer of the scanline engine.
package geom

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Point is a 2D coordinate in path space. All geometry in this module is
// expressed in this space using 32-bit floats, matching the precision the
// scanner's sweep operates at.
type Point struct {
	X, Y float32
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{p.X * s, p.Y * s}
}

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Length returns the Euclidean norm of p treated as a vector.
func (p Point) Length() float32 {
	return float32(math.Sqrt(float64(p.X)*float64(p.X) + float64(p.Y)*float64(p.Y)))
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float32 {
	return p.Sub(q).Length()
}

// Equal reports whether p and q are exactly equal (no fuzz).
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// IsFinite reports whether neither coordinate is NaN or infinite; the
// scanner rejects non-finite geometry at construction time.
func (p Point) IsFinite() bool {
	return !math.IsNaN(float64(p.X)) && !math.IsInf(float64(p.X), 0) &&
		!math.IsNaN(float64(p.Y)) && !math.IsInf(float64(p.Y), 0)
}

// Vec2 returns p as an x/image f32 vector, for interchange with consumers
// of golang.org/x/image.
func (p Point) Vec2() f32.Vec2 {
	return f32.Vec2{p.X, p.Y}
}

// PointFromVec2 converts an x/image f32 vector to a Point.
func PointFromVec2(v f32.Vec2) Point {
	return Point{v[0], v[1]}
}

// Transform is a 3x2 affine matrix:
//
//	| A  B  0 |
//	| C  D  0 |
//	| Tx Ty 1 |
//
// applied to a point as x' = A*x + C*y + Tx, y' = B*x + D*y + Ty.
type Transform struct {
	A, B, C, D float32
	Tx, Ty     float32
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Apply transforms p by t.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.C*p.Y + t.Tx,
		Y: t.B*p.X + t.D*p.Y + t.Ty,
	}
}

// Translation returns the transform's translation component.
func (t Transform) Translation() Point {
	return Point{t.Tx, t.Ty}
}

// SetTranslation returns a copy of t with its translation component replaced.
func (t Transform) SetTranslation(p Point) Transform {
	t.Tx, t.Ty = p.X, p.Y
	return t
}

// Aff3 returns t in x/image row-major affine form, where the implicit
// bottom row is [0 0 1].
func (t Transform) Aff3() f32.Aff3 {
	return f32.Aff3{
		t.A, t.C, t.Tx,
		t.B, t.D, t.Ty,
	}
}

// TransformFromAff3 converts an x/image row-major affine matrix to a
// Transform.
func TransformFromAff3(m f32.Aff3) Transform {
	return Transform{A: m[0], C: m[1], Tx: m[2], B: m[3], D: m[4], Ty: m[5]}
}

// Then composes t followed by next (i.e. applying the result to a point p
// is equivalent to next.Apply(t.Apply(p))).
func (t Transform) Then(next Transform) Transform {
	return Transform{
		A:  t.A*next.A + t.B*next.C,
		B:  t.A*next.B + t.B*next.D,
		C:  t.C*next.A + t.D*next.C,
		D:  t.C*next.B + t.D*next.D,
		Tx: t.Tx*next.A + t.Ty*next.C + next.Tx,
		Ty: t.Tx*next.B + t.Ty*next.D + next.Ty,
	}
}
