// Package scanline implements the scanline intersection engine of a 2D
// polygon rasterizer: given an arbitrary planar path (multi-contour,
// possibly self-intersecting, possibly curved), it produces for each
// horizontal subpixel scan line the sorted x-coordinates where the path
// crosses that line. A fill layer consumes those crossings to emit
// antialiased coverage.
//
// # Overview
//
// The engine is layered leaves-first:
//   - geom: points and 3x2 affine transforms
//   - path: figures, line/Bezier/arc segments, and the flattener
//   - tessellate: oriented vertex rings with outer/hole semantics
//   - scanedge: compiled monotonic edges with vertex-topology emit counters
//   - active: the active edge list of the sweep
//   - fillrule: odd-even and non-zero crossing classification
//
// PolygonScanner in this package drives the sweep over pixel rows and the
// subpixel lines within each row.
//
// # Error Handling
//
// Construction validates its input and returns an error as the last return
// value. Common errors include:
//   - ErrInvalidPath: nil path or non-finite geometry
//   - ErrInvalidSubsampling: subsampling factor below 1
//   - ErrInvalidScanRange: min y not below max y
//   - ErrInvalidFillRule: fill rule out of valid range
//   - ErrAllocation: scratch buffers could not be obtained
//
// Degenerate input (rings with fewer than three distinct vertices, fully
// horizontal rings) is dropped silently; a path producing zero edges yields
// a scanner that reports no crossings on every line. Out-of-order drive
// calls are a caller bug and panic with ErrPrecondition.
//
// # Coordinate System
//
// All geometry uses 32-bit floats with y growing downward (screen
// coordinates). Edge endpoints are snapped to the subpixel grid so the
// sweep's endpoint comparisons are exact.
package scanline

import (
	"github.com/rasterx-go/scanline/fillrule"
	"github.com/rasterx-go/scanline/tessellate"
)

// FillRule selects how crossings delimit the filled interior.
type FillRule = fillrule.Rule

const (
	// OddEven fills where a ray crosses the boundary an odd number of times.
	OddEven = fillrule.OddEven
	// NonZero fills where the signed sum of boundary crossings is non-zero.
	NonZero = fillrule.NonZero
)

// OrientationHandling selects how ring orientations are normalized.
type OrientationHandling = tessellate.OrientationHandling

const (
	// FirstRingIsContourFollowedByHoles forces ring 0 to be the outer
	// contour and every later ring a hole. This is the default.
	FirstRingIsContourFollowedByHoles = tessellate.FirstRingIsContourFollowedByHoles
	// KeepOriginal leaves ring orientations exactly as authored.
	KeepOriginal = tessellate.KeepOriginal
)
