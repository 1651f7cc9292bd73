package active

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasterx-go/scanline/fillrule"
	"github.com/rasterx-go/scanline/scanedge"
)

// two crossing edges forming an X between y=0 and y=4
var xEdges = []scanedge.ScanEdge{
	{Y0: 0, Y1: 4, X0: 0, X1: 4, SlopeInv: 1, Emit0: 1, Emit1: 1, Type0: scanedge.Down, Type1: scanedge.Down},
	{Y0: 0, Y1: 4, X0: 4, X1: 0, SlopeInv: -1, EdgeUp: true, Emit0: 1, Emit1: 1, Type0: scanedge.Up, Type1: scanedge.Up},
}

func newList(n int) EdgeList {
	return NewEdgeList(make([]int32, n))
}

func TestEnterLeaveCompact(t *testing.T) {
	l := newList(4)
	l.Enter(0)
	l.Enter(1)
	l.Enter(2)
	require.Equal(t, 3, l.Count())

	l.LeaveMark(1)
	assert.Equal(t, 3, l.Count(), "marked entries stay until Compact")

	l.Compact()
	assert.Equal(t, 2, l.Count())

	// index 0 survives the sign-bit encoding
	l.LeaveMark(0)
	l.Compact()
	assert.Equal(t, 1, l.Count())
}

func TestComputeCrossingsInterior(t *testing.T) {
	l := newList(2)
	l.Enter(0)
	l.Enter(1)

	out := make([]float32, 4)
	xs := l.ComputeCrossings(1, xEdges, fillrule.OddEven, out, nil)
	assert.Equal(t, []float32{1, 3}, xs)

	xs = l.ComputeCrossings(2, xEdges, fillrule.OddEven, out, nil)
	assert.Equal(t, []float32{2, 2}, xs)
}

func TestComputeCrossingsEndpointEmit(t *testing.T) {
	l := newList(2)
	l.Enter(0)
	l.Enter(1)

	out := make([]float32, 4)
	xs := l.ComputeCrossings(0, xEdges, fillrule.OddEven, out, nil)
	assert.Equal(t, []float32{0, 4}, xs, "endpoint emits use the exact vertex x")

	xs = l.ComputeCrossings(4, xEdges, fillrule.OddEven, out, nil)
	assert.Equal(t, []float32{0, 4}, xs)
}

func TestComputeCrossingsMarkedStillScan(t *testing.T) {
	l := newList(2)
	l.Enter(0)
	l.Enter(1)
	l.LeaveMark(0)
	l.LeaveMark(1)

	out := make([]float32, 4)
	xs := l.ComputeCrossings(4, xEdges, fillrule.OddEven, out, nil)
	assert.Equal(t, []float32{0, 4}, xs, "edges marked this line still emit their end crossing")

	l.Compact()
	xs = l.ComputeCrossings(4, xEdges, fillrule.OddEven, out, nil)
	assert.Empty(t, xs)
}

func TestComputeCrossingsZeroEmitEndpoint(t *testing.T) {
	edges := []scanedge.ScanEdge{
		{Y0: 0, Y1: 4, X0: 2, X1: 2, Emit0: 0, Emit1: 1},
	}
	l := newList(1)
	l.Enter(0)

	out := make([]float32, 2)
	xs := l.ComputeCrossings(0, edges, fillrule.OddEven, out, nil)
	assert.Empty(t, xs, "a zero emit counter silences the endpoint")
}

func TestComputeCrossingsNonZero(t *testing.T) {
	// Doubly wound pair of edges: non-zero melts the inner boundary.
	edges := []scanedge.ScanEdge{
		{Y0: 0, Y1: 4, X0: 0, X1: 0},                // down at x=0
		{Y0: 0, Y1: 4, X0: 2, X1: 2},                // down at x=2
		{Y0: 0, Y1: 4, X0: 8, X1: 8, EdgeUp: true},  // up at x=8
		{Y0: 0, Y1: 4, X0: 10, X1: 10, EdgeUp: true}, // up at x=10
	}
	l := newList(4)
	for i := int32(0); i < 4; i++ {
		l.Enter(i)
	}

	outX := make([]float32, 8)
	outT := make([]scanedge.NonZeroIntersectionType, 8)
	xs := l.ComputeCrossings(2, edges, fillrule.NonZero, outX, outT)
	assert.Equal(t, []float32{0, 10}, xs)

	xs = l.ComputeCrossings(2, edges, fillrule.OddEven, outX, nil)
	assert.Equal(t, []float32{0, 2, 8, 10}, xs)
}

func TestCrossingsSortedUnderReversedEntry(t *testing.T) {
	l := newList(2)
	l.Enter(1) // rightmost-at-bottom first
	l.Enter(0)

	out := make([]float32, 4)
	xs := l.ComputeCrossings(1, xEdges, fillrule.OddEven, out, nil)
	assert.Equal(t, []float32{1, 3}, xs)
}
