package scanline

import (
	"fmt"

	"github.com/rasterx-go/scanline/active"
	"github.com/rasterx-go/scanline/geom"
	"github.com/rasterx-go/scanline/path"
	"github.com/rasterx-go/scanline/scanedge"
	"github.com/rasterx-go/scanline/tessellate"
)

// driveState tracks the scanner's position in the mandatory
// pixel-line / subpixel-line / scan call order.
type driveState uint8

const (
	stateCreated driveState = iota
	stateRow
	stateLine
	stateDisposed
)

// PolygonScanner is the transient sweep state of one fill operation. It is
// single-owner: one instance must not be shared between goroutines, though
// independent scanners over the same immutable path may run in parallel.
// Construct with New, drive with MoveToNextPixelLine /
// MoveToNextSubpixelScanLine / ScanCurrentLine, and release with Dispose.
type PolygonScanner struct {
	edges scanedge.ScanEdgeCollection
	alloc Allocator
	rule  FillRule

	minY, maxY  int32
	subsampling int32

	act  active.EdgeList
	xbuf []float32
	tbuf []scanedge.NonZeroIntersectionType

	idx0, idx1 int // cursors into SortedByY0 / SortedByY1

	pixelY int32
	subIdx int32
	state  driveState
}

// New builds a scanner for p over pixel rows minY..maxY at the given
// subsampling factor. A nil alloc uses the heap. The path is flattened,
// tessellated and edge-compiled up front; the only memory retained is the
// compiled edges and the scratch buffers obtained from alloc.
func New(p *path.Path, minY, maxY int32, subsampling int32, rule FillRule, alloc Allocator, orientation OrientationHandling) (*PolygonScanner, error) {
	return NewTransformed(p, geom.Identity(), minY, maxY, subsampling, rule, alloc, orientation)
}

// NewTransformed is New with an affine transform applied to every flattened
// point before tessellation.
func NewTransformed(p *path.Path, xf geom.Transform, minY, maxY int32, subsampling int32, rule FillRule, alloc Allocator, orientation OrientationHandling) (*PolygonScanner, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil path", ErrInvalidPath)
	}
	if subsampling < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSubsampling, subsampling)
	}
	if minY >= maxY {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidScanRange, minY, maxY)
	}
	if !rule.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFillRule, rule)
	}
	if alloc == nil {
		alloc = heapAllocator{}
	}

	mp := tessellate.Build(p.Build().AllFigures(), path.DefaultFlatness, xf, orientation)
	for _, ring := range mp.Rings {
		for _, pt := range ring.Points {
			if !pt.IsFinite() {
				return nil, fmt.Errorf("%w: non-finite vertex", ErrInvalidPath)
			}
		}
	}

	coll := scanedge.Compile(mp, subsampling)

	s := &PolygonScanner{
		edges:       coll,
		alloc:       alloc,
		rule:        rule,
		minY:        minY,
		maxY:        maxY,
		subsampling: subsampling,
		pixelY:      minY - 1,
	}

	n := len(coll.Edges)
	maxX := coll.MaxCrossingsPerLine()
	activeBuf := alloc.Int32s(n)
	s.xbuf = alloc.Float32s(maxX)
	if len(activeBuf) < n || len(s.xbuf) < maxX {
		alloc.Release()
		return nil, fmt.Errorf("%w: active/crossing buffers", ErrAllocation)
	}
	if rule == NonZero {
		s.tbuf = alloc.Types(maxX)
		if len(s.tbuf) < maxX {
			alloc.Release()
			return nil, fmt.Errorf("%w: crossing type buffer", ErrAllocation)
		}
	}
	s.act = active.NewEdgeList(activeBuf)

	s.prewarm()
	return s, nil
}

// prewarm advances the enter/leave cursors over every edge event below
// minY so the active list is already correct when the first scan line is
// produced. No output is generated here.
func (s *PolygonScanner) prewarm() {
	edges := s.edges.Edges
	if len(edges) == 0 {
		return
	}
	minYf := float32(s.minY)
	y := edges[s.edges.SortedByY0[0]].Y0
	for y < minYf {
		s.enterEdges(y)
		s.leaveEdges(y)
		s.act.Compact()

		next, ok := s.nextEventY()
		if !ok || next >= minYf {
			break
		}
		y = next
	}
}

// nextEventY returns the smaller of the next enter and leave y values.
func (s *PolygonScanner) nextEventY() (float32, bool) {
	edges := s.edges.Edges
	have := false
	var next float32
	if s.idx0 < len(s.edges.SortedByY0) {
		next = edges[s.edges.SortedByY0[s.idx0]].Y0
		have = true
	}
	if s.idx1 < len(s.edges.SortedByY1) {
		y1 := edges[s.edges.SortedByY1[s.idx1]].Y1
		if !have || y1 < next {
			next = y1
			have = true
		}
	}
	return next, have
}

func (s *PolygonScanner) enterEdges(y float32) {
	for s.idx0 < len(s.edges.SortedByY0) {
		i := s.edges.SortedByY0[s.idx0]
		if s.edges.Edges[i].Y0 > y {
			break
		}
		s.act.Enter(i)
		debugLogEdge("enter", i, y)
		s.idx0++
	}
}

func (s *PolygonScanner) leaveEdges(y float32) {
	for s.idx1 < len(s.edges.SortedByY1) {
		i := s.edges.SortedByY1[s.idx1]
		if s.edges.Edges[i].Y1 > y {
			break
		}
		s.act.LeaveMark(i)
		debugLogEdge("leave", i, y)
		s.idx1++
	}
}

// MoveToNextPixelLine advances the scanner to the next pixel row and
// reports whether that row is still inside the scan range. The range's
// upper bound maxY is scanned as one final boundary line, so a caller
// draining rows and sublines observes exactly (maxY-minY)*subsampling + 1
// scan lines.
func (s *PolygonScanner) MoveToNextPixelLine() bool {
	if s.state == stateDisposed {
		panic(fmt.Errorf("%w: scanner disposed", ErrPrecondition))
	}
	s.pixelY++
	s.subIdx = -1
	s.state = stateRow
	return s.pixelY <= s.maxY
}

// MoveToNextSubpixelScanLine advances to the next subpixel line of the
// current pixel row, updating the active edge list, and reports whether
// the line is still inside the row.
func (s *PolygonScanner) MoveToNextSubpixelScanLine() bool {
	if s.state != stateRow && s.state != stateLine {
		panic(fmt.Errorf("%w: MoveToNextPixelLine not called", ErrPrecondition))
	}
	s.act.Compact()
	s.subIdx++
	if s.subIdx >= s.subsampling || (s.pixelY == s.maxY && s.subIdx > 0) {
		s.state = stateRow
		return false
	}
	y := s.SubPixelY()
	s.enterEdges(y)
	s.leaveEdges(y)
	s.state = stateLine
	return true
}

// ScanCurrentLine returns the current line's sorted crossings. The slice is
// read-only, valid until the next drive call, and always of even length for
// well-formed input. Calling it again for the same line recomputes the same
// result.
func (s *PolygonScanner) ScanCurrentLine() []float32 {
	if s.state != stateLine {
		panic(fmt.Errorf("%w: MoveToNextSubpixelScanLine not called", ErrPrecondition))
	}
	xs := s.act.ComputeCrossings(s.SubPixelY(), s.edges.Edges, s.rule, s.xbuf, s.tbuf)
	debugLogLine(s.SubPixelY(), xs)
	return xs
}

// PixelLineY returns the current pixel row.
func (s *PolygonScanner) PixelLineY() int32 {
	return s.pixelY
}

// SubPixelY returns the current subpixel scan line's y-coordinate. It is
// computed by the same grid formula the edge compiler snaps with, so
// endpoint comparisons during the sweep are exact.
func (s *PolygonScanner) SubPixelY() float32 {
	return float32(int64(s.pixelY)*int64(s.subsampling)+int64(s.subIdx)) / float32(s.subsampling)
}

// SubpixelFraction returns the y distance between adjacent subpixel lines.
func (s *PolygonScanner) SubpixelFraction() float32 {
	return 1 / float32(s.subsampling)
}

// Dispose releases the scratch buffers. The scanner must not be used
// afterwards. Dispose is idempotent.
func (s *PolygonScanner) Dispose() {
	if s.state == stateDisposed {
		return
	}
	s.alloc.Release()
	s.xbuf = nil
	s.tbuf = nil
	s.act = active.EdgeList{}
	s.state = stateDisposed
}
