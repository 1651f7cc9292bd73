// Package scanedge compiles a tessellated multipolygon into the flat array
// of monotonic scan edges the sweep consumes. Each edge is annotated at
// compile time with the endpoint-emit counts and crossing types that encode
// the ring's vertex topology, so the scanner's inner loop never has to look
// at neighboring edges again.
package scanedge

import (
	"sort"

	"github.com/rasterx-go/scanline/geom"
	"github.com/rasterx-go/scanline/tessellate"
)

// NonZeroIntersectionType classifies an emitted crossing for the non-zero
// rule's winding fold and its tie-breaking at equal x.
type NonZeroIntersectionType uint8

const (
	// Corner marks a crossing pair emitted by one edge at the end of a
	// horizontal run; the pair's net winding contribution is zero.
	Corner NonZeroIntersectionType = iota
	// Up marks a crossing of an edge traversed toward smaller y in ring
	// order (winding contribution +1).
	Up
	// Down marks a crossing of an edge traversed toward larger y in ring
	// order (winding contribution -1).
	Down
)

// ScanEdge is a compiled monotonic edge: a non-horizontal segment between
// two ring vertices annotated with everything the sweep needs to classify
// crossings under either fill rule without recomputing ring topology at
// scan time.
type ScanEdge struct {
	Y0, Y1   float32 // Y0 < Y1 strictly; horizontal edges are never compiled.
	X0, X1   float32 // exact vertex x at Y0 resp. Y1.
	SlopeInv float32 // (X1 - X0) / (Y1 - Y0).
	EdgeUp   bool    // true iff, in ring order, the edge runs from Y1 up to Y0.
	Emit0    uint8   // crossings to emit when the sweep sits exactly at Y0 (0, 1 or 2).
	Emit1    uint8   // crossings to emit when the sweep sits exactly at Y1.
	Type0    NonZeroIntersectionType
	Type1    NonZeroIntersectionType
}

// XAt returns the edge's x-coordinate at y, assuming Y0 <= y <= Y1.
func (e ScanEdge) XAt(y float32) float32 {
	return e.X0 + e.SlopeInv*(y-e.Y0)
}

// Dir returns the edge's crossing type for a sweep line strictly between
// its endpoints.
func (e ScanEdge) Dir() NonZeroIntersectionType {
	if e.EdgeUp {
		return Up
	}
	return Down
}

// ScanEdgeCollection is a compiled, contiguous array of edges plus the two
// index permutations the sweep iterates to enter and leave edges in sorted
// y order.
type ScanEdgeCollection struct {
	Edges      []ScanEdge
	SortedByY0 []int32
	SortedByY1 []int32
}

// MaxCrossingsPerLine bounds the crossing count of any single scan line:
// every active edge emits at most two crossings.
func (c ScanEdgeCollection) MaxCrossingsPerLine() int {
	return 2 * len(c.Edges)
}

// Snap rounds y to the nearest 1/s grid line. Edge endpoints and the
// scanner's sweep coordinate are both produced by this formula, so endpoint
// comparisons during the sweep are exact float equality, and near-horizontal
// edges classify consistently with their neighbors' endpoints.
func Snap(y float32, s int32) float32 {
	fs := float32(s)
	return roundf(y*fs) / fs
}

func roundf(v float32) float32 {
	if v >= 0 {
		return float32(int64(v + 0.5))
	}
	return -float32(int64(-v + 0.5))
}

// Compile compiles a multipolygon into a ScanEdgeCollection at the given
// subsampling factor.
func Compile(mp tessellate.Multipolygon, subsampling int32) ScanEdgeCollection {
	var edges []ScanEdge
	for _, ring := range mp.Rings {
		edges = compileRing(edges, ring.Points, subsampling)
	}

	coll := ScanEdgeCollection{Edges: edges}
	coll.SortedByY0 = sortedIndices(edges, func(e *ScanEdge) float32 { return e.Y0 })
	coll.SortedByY1 = sortedIndices(edges, func(e *ScanEdge) float32 { return e.Y1 })
	return coll
}

func sortedIndices(edges []ScanEdge, key func(*ScanEdge) float32) []int32 {
	idx := make([]int32, len(edges))
	for i := range idx {
		idx[i] = int32(i)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return key(&edges[idx[a]]) < key(&edges[idx[b]])
	})
	return idx
}

// segDir is the ring-order direction of one vertex-to-vertex segment after
// y-snapping. Horizontal segments carry their x direction because it decides
// whether the run is a top or a bottom boundary of the filled region.
type segDir uint8

const (
	dirDown segDir = iota // y increasing
	dirUp                 // y decreasing
	dirHorizontalRight
	dirHorizontalLeft
)

type ringSeg struct {
	dir  segDir
	edge int // index into the ring's edge run, -1 for horizontal segments
}

// compileRing appends the ring's scan edges to dst. Horizontal segments are
// dropped from the edge array but still participate in the vertex categories
// that set their neighbors' emit counters.
func compileRing(dst []ScanEdge, pts []geom.Point, s int32) []ScanEdge {
	n := len(pts)
	if n < 3 {
		return dst
	}

	ys := make([]float32, n)
	for i, p := range pts {
		ys[i] = Snap(p.Y, s)
	}

	base := len(dst)
	segs := make([]ringSeg, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if ys[i] == ys[j] {
			if pts[i].X == pts[j].X {
				continue // snapped to a single point, merge the vertices
			}
			d := dirHorizontalRight
			if pts[j].X < pts[i].X {
				d = dirHorizontalLeft
			}
			segs = append(segs, ringSeg{dir: d, edge: -1})
			continue
		}
		var e ScanEdge
		var d segDir
		if ys[i] < ys[j] {
			d = dirDown
			e = ScanEdge{Y0: ys[i], Y1: ys[j], X0: pts[i].X, X1: pts[j].X}
		} else {
			d = dirUp
			e = ScanEdge{Y0: ys[j], Y1: ys[i], X0: pts[j].X, X1: pts[i].X, EdgeUp: true}
		}
		e.SlopeInv = (e.X1 - e.X0) / (e.Y1 - e.Y0)
		segs = append(segs, ringSeg{dir: d, edge: len(dst)})
		dst = append(dst, e)
	}

	if len(dst) == base {
		// Fully horizontal after snapping; the ring is degenerate and
		// contributes nothing.
		return dst
	}

	m := len(segs)
	for i := 0; i < m; i++ {
		from := segs[i]
		to := segs[(i+1)%m]
		applyVertexCategory(dst, from, to)
	}
	return dst
}

// applyVertexCategory sets the emit counters at the vertex shared by the
// ring-order segments from and to. The counts are chosen so a scan line
// passing exactly through the vertex sees one crossing where the boundary
// pierces monotonically and two where it touches and turns back; at the ends
// of a horizontal run each bordering edge emits once or twice depending on
// the turn direction. Emission counts of two are tagged Corner: their net
// winding contribution is zero.
func applyVertexCategory(edges []ScanEdge, from, to ringSeg) {
	switch {
	case from.dir == dirUp && to.dir == dirUp:
		setToEmit(edges, to, 1)
	case from.dir == dirDown && to.dir == dirDown:
		setToEmit(edges, to, 1)
	case from.dir == dirUp && to.dir == dirDown,
		from.dir == dirDown && to.dir == dirUp:
		setFromEmit(edges, from, 1)
		setToEmit(edges, to, 1)
	case from.dir == dirUp && to.dir == dirHorizontalRight:
		setFromEmit(edges, from, 1)
	case from.dir == dirUp && to.dir == dirHorizontalLeft:
		setFromEmit(edges, from, 2)
	case from.dir == dirDown && to.dir == dirHorizontalRight:
		setFromEmit(edges, from, 2)
	case from.dir == dirDown && to.dir == dirHorizontalLeft:
		setFromEmit(edges, from, 1)
	case from.dir == dirHorizontalRight && to.dir == dirUp:
		setToEmit(edges, to, 2)
	case from.dir == dirHorizontalRight && to.dir == dirDown:
		setToEmit(edges, to, 1)
	case from.dir == dirHorizontalLeft && to.dir == dirUp:
		setToEmit(edges, to, 1)
	case from.dir == dirHorizontalLeft && to.dir == dirDown:
		setToEmit(edges, to, 2)
	default:
		// horizontal meeting horizontal: no real edge at this vertex
	}
}

// setFromEmit sets the emit counter of the from-segment's edge at its
// ring-order end vertex: the low end (Y0) for an up edge, the high end (Y1)
// for a down edge.
func setFromEmit(edges []ScanEdge, s ringSeg, count uint8) {
	e := &edges[s.edge]
	if s.dir == dirUp {
		e.Emit0 = count
		e.Type0 = emitType(e, count)
	} else {
		e.Emit1 = count
		e.Type1 = emitType(e, count)
	}
}

// setToEmit sets the emit counter of the to-segment's edge at its ring-order
// start vertex: the high end (Y1) for an up edge, the low end (Y0) for a
// down edge.
func setToEmit(edges []ScanEdge, s ringSeg, count uint8) {
	e := &edges[s.edge]
	if s.dir == dirUp {
		e.Emit1 = count
		e.Type1 = emitType(e, count)
	} else {
		e.Emit0 = count
		e.Type0 = emitType(e, count)
	}
}

func emitType(e *ScanEdge, count uint8) NonZeroIntersectionType {
	if count == 2 {
		return Corner
	}
	return e.Dir()
}
