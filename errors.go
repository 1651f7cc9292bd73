package scanline

import "errors"

var (
	// ErrInvalidPath indicates a nil path or one containing non-finite geometry
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidSubsampling indicates a subsampling factor below 1
	ErrInvalidSubsampling = errors.New("invalid subsampling: must be >= 1")

	// ErrInvalidScanRange indicates minY >= maxY
	ErrInvalidScanRange = errors.New("invalid scan range: min y must be below max y")

	// ErrInvalidFillRule indicates a fill rule out of the valid range
	ErrInvalidFillRule = errors.New("invalid fill rule")

	// ErrAllocation indicates the scratch buffers could not be obtained
	ErrAllocation = errors.New("scratch allocation failed")

	// ErrPrecondition indicates drive-API calls made out of order
	ErrPrecondition = errors.New("scanner drive calls out of order")
)
