package scanline

import "github.com/rasterx-go/scanline/scanedge"

// Allocator provides the scanner's scratch storage. The scanner requests
// its buffers once at construction and calls Release exactly once: at
// Dispose, or during construction if a buffer comes back too short. No
// per-scanline allocation ever happens. An arena-style
// implementation can hand out views of one block and reclaim it wholesale
// on Release.
type Allocator interface {
	Int32s(n int) []int32
	Float32s(n int) []float32
	Types(n int) []scanedge.NonZeroIntersectionType
	Release()
}

// heapAllocator is the default Allocator: plain make, garbage-collected
// release.
type heapAllocator struct{}

func (heapAllocator) Int32s(n int) []int32 { return make([]int32, n) }

func (heapAllocator) Float32s(n int) []float32 { return make([]float32, n) }

func (heapAllocator) Types(n int) []scanedge.NonZeroIntersectionType {
	return make([]scanedge.NonZeroIntersectionType, n)
}

func (heapAllocator) Release() {}
