// Package fillrule classifies a scan line's raw sorted crossings into the
// inside/outside transitions a fill consumes, under either the odd-even or
// the non-zero winding rule.
package fillrule

import "github.com/rasterx-go/scanline/scanedge"

// Rule selects how crossings delimit the filled interior.
type Rule uint8

const (
	// OddEven fills where an arbitrary ray crosses the boundary an odd
	// number of times.
	OddEven Rule = iota
	// NonZero fills where the signed sum of boundary crossings is non-zero.
	NonZero
)

// Valid reports whether r is a defined fill rule.
func (r Rule) Valid() bool {
	return r <= NonZero
}

func (r Rule) String() string {
	switch r {
	case OddEven:
		return "odd-even"
	case NonZero:
		return "non-zero"
	default:
		return "unknown"
	}
}

// FoldOddEven returns the crossings unchanged: under odd-even every pair
// (even, odd) of the sorted list already delimits an inside run.
func FoldOddEven(xs []float32) []float32 {
	return xs
}

// FoldNonZero folds sorted, typed crossings in place by running winding
// count and returns the prefix holding the x-coordinates where the winding
// transitions through zero. Corner crossings carry a +1/-1 pair: outside
// the wound region each emits its x (a zero-width touch), inside they
// vanish. Up/Down crossings at equal x cancel exactly when their winding
// contributions sum to zero.
//
// Corner entries are produced in pairs by the edge compiler and the joint
// sort keeps equal-x ties grouped by type, so both halves of a pair observe
// the same winding count.
func FoldNonZero(xs []float32, types []scanedge.NonZeroIntersectionType) []float32 {
	w := 0
	n := 0
	for i, x := range xs {
		switch types[i] {
		case scanedge.Corner:
			if w == 0 {
				xs[n] = x
				n++
			}
		case scanedge.Up:
			if w == 0 {
				xs[n] = x
				n++
			}
			w++
			if w == 0 {
				xs[n] = x
				n++
			}
		case scanedge.Down:
			if w == 0 {
				xs[n] = x
				n++
			}
			w--
			if w == 0 {
				xs[n] = x
				n++
			}
		}
	}
	return xs[:n]
}
