// Package active maintains the sweep's active edge list: the compact,
// unordered set of edge indices currently intersecting the scan line. Edges
// enter at their minimal y, are marked when the sweep passes their maximal
// y, and are compacted out at the next line boundary so their final
// endpoint emission is still observed.
package active

import (
	"github.com/rasterx-go/scanline/fillrule"
	"github.com/rasterx-go/scanline/scanedge"
)

// EdgeList is backed by a caller-provided int32 buffer of edge indices. A
// marked (leaving) entry is stored bit-complemented, so the mark costs no
// side table and compaction is a single filtering pass.
type EdgeList struct {
	buf   []int32
	count int
}

// NewEdgeList wraps backing as an empty edge list. The backing slice must
// be at least as long as the total edge count.
func NewEdgeList(backing []int32) EdgeList {
	return EdgeList{buf: backing}
}

// Count returns the number of entries, including ones marked for leaving.
func (l *EdgeList) Count() int {
	return l.count
}

// Enter appends edge index i to the list.
func (l *EdgeList) Enter(i int32) {
	l.buf[l.count] = i
	l.count++
}

// LeaveMark marks edge index i as leaving. The entry stays in place, and is
// still scanned, until the next Compact. Edge counts are small in practice,
// so a linear scan locates i.
func (l *EdgeList) LeaveMark(i int32) {
	for k := 0; k < l.count; k++ {
		if l.buf[k] == i {
			l.buf[k] = ^i
			return
		}
	}
}

// Compact removes entries marked by LeaveMark, preserving the order of the
// remainder.
func (l *EdgeList) Compact() {
	w := 0
	for k := 0; k < l.count; k++ {
		if l.buf[k] >= 0 {
			l.buf[w] = l.buf[k]
			w++
		}
	}
	l.count = w
}

// ComputeCrossings computes the sorted, rule-filtered x-crossings of the
// active edges with the scan line at y, into the caller-provided buffers.
// outX must have room for two crossings per active edge; outTypes may be
// nil under the odd-even rule. The returned slice aliases outX.
//
// A sweep sitting exactly on an edge endpoint emits that endpoint's
// precomputed count of copies of the exact vertex x; anywhere between, the
// edge contributes a single interpolated crossing.
func (l *EdgeList) ComputeCrossings(y float32, edges []scanedge.ScanEdge, rule fillrule.Rule, outX []float32, outTypes []scanedge.NonZeroIntersectionType) []float32 {
	n := 0
	for k := 0; k < l.count; k++ {
		idx := l.buf[k]
		if idx < 0 {
			idx = ^idx
		}
		e := &edges[idx]
		switch {
		case y <= e.Y0:
			n = emit(outX, outTypes, n, e.X0, e.Type0, e.Emit0)
		case y >= e.Y1:
			n = emit(outX, outTypes, n, e.X1, e.Type1, e.Emit1)
		default:
			n = emit(outX, outTypes, n, e.XAt(y), e.Dir(), 1)
		}
	}

	sortCrossings(outX[:n], outTypes)
	if rule == fillrule.NonZero {
		return fillrule.FoldNonZero(outX[:n], outTypes[:n])
	}
	return fillrule.FoldOddEven(outX[:n])
}

func emit(outX []float32, outTypes []scanedge.NonZeroIntersectionType, n int, x float32, t scanedge.NonZeroIntersectionType, count uint8) int {
	for c := uint8(0); c < count; c++ {
		outX[n] = x
		if outTypes != nil {
			outTypes[n] = t
		}
		n++
	}
	return n
}

// sortCrossings insertion-sorts xs ascending, carrying types along when
// present. Equal-x ties order by type so the two halves of a Corner pair
// stay adjacent for the non-zero fold. Crossing counts per line are small,
// so insertion sort beats an allocation-free heap here.
func sortCrossings(xs []float32, types []scanedge.NonZeroIntersectionType) {
	if types == nil {
		for i := 1; i < len(xs); i++ {
			x := xs[i]
			j := i - 1
			for j >= 0 && xs[j] > x {
				xs[j+1] = xs[j]
				j--
			}
			xs[j+1] = x
		}
		return
	}
	for i := 1; i < len(xs); i++ {
		x, t := xs[i], types[i]
		j := i - 1
		for j >= 0 && (xs[j] > x || (xs[j] == x && types[j] > t)) {
			xs[j+1] = xs[j]
			types[j+1] = types[j]
			j--
		}
		xs[j+1] = x
		types[j+1] = t
	}
}
