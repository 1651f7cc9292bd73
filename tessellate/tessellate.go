// Package tessellate turns a path's figures into a multipolygon: an
// ordered sequence of oriented rings with consistent outer/hole semantics.
package tessellate

import (
	"github.com/rasterx-go/scanline/geom"
	"github.com/rasterx-go/scanline/path"
)

// OrientationHandling selects how ring orientations are normalized once
// flattened.
type OrientationHandling uint8

const (
	// FirstRingIsContourFollowedByHoles forces ring 0 to positive
	// (counter-clockwise, y-down) area and rings 1..N to negative area.
	// This is the default.
	FirstRingIsContourFollowedByHoles OrientationHandling = iota
	// KeepOriginal leaves ring orientations exactly as authored.
	KeepOriginal
)

// Ring is an ordered, implicitly-closed cycle of points with its signed
// area precomputed (positive = counter-clockwise in y-down space = outer
// contour; negative = hole).
type Ring struct {
	Points []geom.Point
	Area   float64
}

// Multipolygon is an ordered sequence of rings; ring 0 is the outer
// contour unless OrientationHandling is KeepOriginal.
type Multipolygon struct {
	Rings []Ring
}

// TotalVertexCount sums the vertex counts of all rings; it bounds the
// maximum number of crossings per scanline at 2*TotalVertexCount.
func (m Multipolygon) TotalVertexCount() int {
	n := 0
	for _, r := range m.Rings {
		n += len(r.Points)
	}
	return n
}

// signedArea computes the signed area of a closed polygon using the
// shoelace formula; positive = counter-clockwise in a y-down space.
func signedArea(pts []geom.Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	n := len(pts)
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		sum += float64(a.X)*float64(b.Y) - float64(b.X)*float64(a.Y)
	}
	return sum / 2
}

// dropConsecutiveDuplicates removes a point if it is identical to its
// immediate predecessor.
func dropConsecutiveDuplicates(pts []geom.Point) []geom.Point {
	if len(pts) == 0 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if !p.Equal(out[len(out)-1]) {
			out = append(out, p)
		}
	}
	// A closed ring's flattener may reproduce the start point at the end;
	// trim it so area/vertex-count math treats the ring as implicitly
	// closed rather than doubly-counting the seam.
	if len(out) > 1 && out[0].Equal(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

// Build flattens every closed figure into a ring, computes its
// orientation, applies the orientation policy, and drops degenerate rings.
// Open figures are ignored: they exist for stroking, which the fill-path
// scanner never sees.
func Build(figures []path.Figure, tol float32, xf geom.Transform, policy OrientationHandling) Multipolygon {
	var rings []Ring
	for _, f := range figures {
		if !f.Closed {
			continue
		}
		pts := dropConsecutiveDuplicates(f.Flatten(tol, xf))
		if len(pts) < 3 {
			continue
		}
		area := signedArea(pts)
		// A zero signed area drops the ring only when it is truly flat: a
		// self-intersecting ring can enclose equal and opposite areas and
		// still produce crossings.
		if area == 0 && collinear(pts) {
			continue
		}
		rings = append(rings, Ring{Points: pts, Area: area})
	}

	switch policy {
	case FirstRingIsContourFollowedByHoles:
		for i := range rings {
			if rings[i].Area == 0 {
				continue // no orientation to force
			}
			wantPositive := i == 0
			if wantPositive != (rings[i].Area > 0) {
				reverse(rings[i].Points)
				rings[i].Area = -rings[i].Area
			}
		}
	case KeepOriginal:
		// leave as authored
	}

	return Multipolygon{Rings: rings}
}

// collinear reports whether every point lies on the line through the first
// two distinct points.
func collinear(pts []geom.Point) bool {
	if len(pts) < 3 {
		return true
	}
	a := pts[0]
	var b geom.Point
	found := false
	for _, p := range pts[1:] {
		if !p.Equal(a) {
			b, found = p, true
			break
		}
	}
	if !found {
		return true
	}
	dx := float64(b.X) - float64(a.X)
	dy := float64(b.Y) - float64(a.Y)
	for _, p := range pts {
		cross := dx*(float64(p.Y)-float64(a.Y)) - dy*(float64(p.X)-float64(a.X))
		if cross != 0 {
			return false
		}
	}
	return true
}

func reverse(pts []geom.Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
