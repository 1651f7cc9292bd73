package path

import "github.com/rasterx-go/scanline/geom"

// Figure is an ordered list of segments plus whether the figure is closed
// (its last vertex implicitly joins back to its first at ring-construction
// time). A figure is empty iff it has zero segments.
type Figure struct {
	Segments []LineSegment
	Closed   bool
}

// IsEmpty reports whether the figure has no segments.
func (f Figure) IsEmpty() bool {
	return len(f.Segments) == 0
}

// Flatten flattens every segment of the figure into a single polyline,
// sharing joins between consecutive segments (each segment's first point is
// dropped except for the figure's very first segment, since it must equal
// the previous segment's last point exactly).
func (f Figure) Flatten(tol float32, xf geom.Transform) []geom.Point {
	var out []geom.Point
	for i, seg := range f.Segments {
		pts := seg.Flatten(tol, xf)
		if len(pts) == 0 {
			continue
		}
		if i > 0 && len(out) > 0 {
			pts = pts[1:]
		}
		out = append(out, pts...)
	}
	return out
}

// Path is a set of figures, the unit of input the tessellator consumes.
type Path struct {
	Figures []Figure
}

// ComplexPolygon wraps a Path whose Build produced more than one non-empty
// figure.
type ComplexPolygon struct {
	Figures []Figure
}

// BuildResult is the result of Path.Build: exactly one of Single/Complex
// is populated. A path with exactly one non-empty figure builds to a
// single polygon, anything else to a ComplexPolygon.
type BuildResult struct {
	Single  *Figure
	Complex *ComplexPolygon
}

// Build strips empty figures and returns either a single-figure result or a
// ComplexPolygon wrapping the (non-empty) remainder.
func (p Path) Build() BuildResult {
	var nonEmpty []Figure
	for _, f := range p.Figures {
		if !f.IsEmpty() {
			nonEmpty = append(nonEmpty, f)
		}
	}
	if len(nonEmpty) == 1 {
		fig := nonEmpty[0]
		return BuildResult{Single: &fig}
	}
	return BuildResult{Complex: &ComplexPolygon{Figures: nonEmpty}}
}

// AllFigures returns the flattened list of figures in the build result,
// regardless of whether it was a single figure or a complex polygon. This
// is the shape the tessellator (component B) consumes.
func (r BuildResult) AllFigures() []Figure {
	if r.Single != nil {
		return []Figure{*r.Single}
	}
	if r.Complex != nil {
		return r.Complex.Figures
	}
	return nil
}
