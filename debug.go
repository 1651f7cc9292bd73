package scanline

import (
	"os"

	"github.com/rs/zerolog"
)

// Debug logging infrastructure for the sweep
var (
	// ScanDebug enables per-scanline trace logging when true
	ScanDebug = false

	scanLogger = zerolog.New(os.Stdout).Level(zerolog.TraceLevel)
)

// SetLogger replaces the logger used when ScanDebug is enabled.
func SetLogger(l zerolog.Logger) {
	scanLogger = l
}

// debugLogLine traces one computed scan line if ScanDebug is enabled
func debugLogLine(y float32, crossings []float32) {
	if ScanDebug {
		scanLogger.Trace().
			Float32("y", y).
			Int("crossings", len(crossings)).
			Msg("scanline")
	}
}

// debugLogEdge traces an edge entering or leaving the active list
func debugLogEdge(event string, idx int32, y float32) {
	if ScanDebug {
		scanLogger.Trace().
			Str("event", event).
			Int32("edge", idx).
			Float32("y", y).
			Msg("active list")
	}
}
