// Command rasterxdump loads a YAML path description, runs the scanline
// engine over it, and prints the crossing spans of every subpixel scan
// line. It is the engine's runnable end-to-end surface.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	scanline "github.com/rasterx-go/scanline"
	"github.com/rasterx-go/scanline/geom"
	"github.com/rasterx-go/scanline/path"
	"github.com/rasterx-go/scanline/tessellate"
)

var (
	minYVal, maxYVal int32
	autoRangeVal     bool
	subsamplingVal   int32
	ruleVal          string
	orientationVal   string
	traceVal         bool
)

// rootCmd represents the dump command
var rootCmd = &cobra.Command{
	Use:   "rasterxdump PATHFILE",
	Short: "dump per-scanline crossings for a path description",
	Long: `Load a YAML path description (figures of line, Bezier and arc
segments), build a polygon scanner over it, and print the sorted
x-crossings of every subpixel scan line. The output is what a fill
layer would consume to emit coverage.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.Flags().Int32Var(&minYVal, "min-y", 0, "first pixel row to scan")
	rootCmd.Flags().Int32Var(&maxYVal, "max-y", 0, "last pixel row to scan")
	rootCmd.Flags().BoolVar(&autoRangeVal, "auto-range", true, "derive the scan range from the path bounds (ignores min-y/max-y)")
	rootCmd.Flags().Int32Var(&subsamplingVal, "subsampling", 1, "subpixel scan lines per pixel row")
	rootCmd.Flags().StringVar(&ruleVal, "rule", "oddeven", "fill rule, 'oddeven' or 'nonzero'")
	rootCmd.Flags().StringVar(&orientationVal, "orientation", "contour-holes", "ring orientation policy, 'contour-holes' or 'keep'")
	rootCmd.Flags().BoolVar(&traceVal, "trace", false, "log every sweep event to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDump(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if traceVal {
		scanline.ScanDebug = true
		scanline.SetLogger(logger.Level(zerolog.TraceLevel))
	}

	rule, err := parseRule(ruleVal)
	if err != nil {
		return err
	}
	orientation, err := parseOrientation(orientationVal)
	if err != nil {
		return err
	}

	pf, err := LoadPathFile(args[0])
	if err != nil {
		return err
	}
	p, xf, err := pf.BuildPath()
	if err != nil {
		return err
	}

	minY, maxY := minYVal, maxYVal
	if autoRangeVal {
		minY, maxY, err = scanRange(p, xf, orientation)
		if err != nil {
			return err
		}
	}
	logger.Info().
		Int32("min_y", minY).
		Int32("max_y", maxY).
		Int32("subsampling", subsamplingVal).
		Str("rule", rule.String()).
		Msg("scanning")

	sc, err := scanline.NewTransformed(p, xf, minY, maxY, subsamplingVal, rule, nil, orientation)
	if err != nil {
		return err
	}
	defer sc.Dispose()

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for sc.MoveToNextPixelLine() {
		for sc.MoveToNextSubpixelScanLine() {
			xs := sc.ScanCurrentLine()
			fmt.Fprintf(w, "y=%g:", sc.SubPixelY())
			for _, x := range xs {
				fmt.Fprintf(w, " %g", x)
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}

func parseRule(s string) (scanline.FillRule, error) {
	switch strings.ToLower(s) {
	case "oddeven", "odd-even", "evenodd":
		return scanline.OddEven, nil
	case "nonzero", "non-zero":
		return scanline.NonZero, nil
	default:
		return 0, fmt.Errorf("unknown fill rule %q", s)
	}
}

func parseOrientation(s string) (scanline.OrientationHandling, error) {
	switch strings.ToLower(s) {
	case "contour-holes":
		return scanline.FirstRingIsContourFollowedByHoles, nil
	case "keep", "keep-original":
		return scanline.KeepOriginal, nil
	default:
		return 0, fmt.Errorf("unknown orientation policy %q", s)
	}
}

// scanRange derives the pixel-row range covering the tessellated path.
func scanRange(p *path.Path, xf geom.Transform, orientation scanline.OrientationHandling) (int32, int32, error) {
	mp := tessellate.Build(p.Build().AllFigures(), path.DefaultFlatness, xf, orientation)
	first := true
	var lo, hi float32
	for _, ring := range mp.Rings {
		for _, pt := range ring.Points {
			if first {
				lo, hi = pt.Y, pt.Y
				first = false
				continue
			}
			if pt.Y < lo {
				lo = pt.Y
			}
			if pt.Y > hi {
				hi = pt.Y
			}
		}
	}
	if first {
		return 0, 0, fmt.Errorf("path tessellates to nothing")
	}
	minY := int32(floor32(lo))
	maxY := int32(ceil32(hi))
	if minY >= maxY {
		maxY = minY + 1
	}
	return minY, maxY, nil
}

func floor32(v float32) float32 {
	f := float32(int64(v))
	if f > v {
		f--
	}
	return f
}

func ceil32(v float32) float32 {
	f := float32(int64(v))
	if f < v {
		f++
	}
	return f
}
