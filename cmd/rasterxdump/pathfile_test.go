package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scanline "github.com/rasterx-go/scanline"
	"github.com/rasterx-go/scanline/path"
)

const sampleDoc = `
figures:
  - closed: true
    segments:
      - line: [[2, 2], [5, 3], [5, 6], [8, 6], [8, 9], [5, 11], [2, 7]]
transform:
  translate: [0, 0]
`

func TestParsePathFile(t *testing.T) {
	pf, err := ParsePathFile([]byte(sampleDoc))
	require.NoError(t, err)
	require.Len(t, pf.Figures, 1)
	assert.True(t, pf.Figures[0].Closed)
	require.Len(t, pf.Figures[0].Segments, 1)
	assert.Len(t, pf.Figures[0].Segments[0].Line, 7)
}

func TestParsePathFileRejectsEmpty(t *testing.T) {
	_, err := ParsePathFile([]byte("figures: []"))
	assert.Error(t, err)
}

func TestParsePathFileRejectsUnknownKeys(t *testing.T) {
	_, err := ParsePathFile([]byte("figures:\n  - closed: true\n    shenanigans: true\n"))
	assert.Error(t, err)
}

func TestBuildPathSegments(t *testing.T) {
	doc := `
figures:
  - closed: true
    segments:
      - line: [[0, 0], [4, 0]]
      - quad: {p0: [4, 0], c: [6, 2], p3: [4, 4]}
      - cubic: {p0: [4, 4], c1: [3, 5], c2: [1, 5], p3: [0, 4]}
      - arc: {center: [0, 2], rx: 2, ry: 2, rotation: 0, start: 90, sweep: 180}
`
	pf, err := ParsePathFile([]byte(doc))
	require.NoError(t, err)

	p, xf, err := pf.BuildPath()
	require.NoError(t, err)
	require.Len(t, p.Figures, 1)
	require.Len(t, p.Figures[0].Segments, 4)
	assert.Equal(t, path.KindLinear, p.Figures[0].Segments[0].Kind)
	assert.Equal(t, path.KindCubicBezier, p.Figures[0].Segments[1].Kind)
	assert.Equal(t, path.KindCubicBezier, p.Figures[0].Segments[2].Kind)
	assert.Equal(t, path.KindEllipticalArc, p.Figures[0].Segments[3].Kind)
	assert.Equal(t, float32(0), xf.Tx)
}

func TestBuildPathRejectsAmbiguousSegment(t *testing.T) {
	doc := `
figures:
  - closed: true
    segments:
      - line: [[0, 0], [4, 0]]
        quad: {p0: [4, 0], c: [6, 2], p3: [4, 4]}
`
	pf, err := ParsePathFile([]byte(doc))
	require.NoError(t, err)
	_, _, err = pf.BuildPath()
	assert.Error(t, err)
}

func TestBuildPathMatrixTransform(t *testing.T) {
	doc := `
figures:
  - closed: true
    segments:
      - line: [[0, 0], [4, 0], [4, 4]]
transform:
  matrix: [2, 0, 10, 0, 2, 20]
`
	pf, err := ParsePathFile([]byte(doc))
	require.NoError(t, err)
	_, xf, err := pf.BuildPath()
	require.NoError(t, err)
	assert.Equal(t, float32(2), xf.A)
	assert.Equal(t, float32(10), xf.Tx)
	assert.Equal(t, float32(20), xf.Ty)
}

func TestEndToEndScan(t *testing.T) {
	pf, err := ParsePathFile([]byte(sampleDoc))
	require.NoError(t, err)
	p, xf, err := pf.BuildPath()
	require.NoError(t, err)

	minY, maxY, err := scanRange(p, xf, scanline.FirstRingIsContourFollowedByHoles)
	require.NoError(t, err)
	assert.Equal(t, int32(2), minY)
	assert.Equal(t, int32(11), maxY)

	sc, err := scanline.NewTransformed(p, xf, minY, maxY, 1, scanline.OddEven, nil, scanline.FirstRingIsContourFollowedByHoles)
	require.NoError(t, err)
	defer sc.Dispose()

	var lines int
	for sc.MoveToNextPixelLine() {
		for sc.MoveToNextSubpixelScanLine() {
			xs := sc.ScanCurrentLine()
			assert.Zero(t, len(xs)%2)
			lines++
		}
	}
	assert.Equal(t, 10, lines)
}

func TestParseRuleAndOrientation(t *testing.T) {
	r, err := parseRule("nonzero")
	require.NoError(t, err)
	assert.Equal(t, scanline.NonZero, r)
	_, err = parseRule("bogus")
	assert.Error(t, err)

	o, err := parseOrientation("keep")
	require.NoError(t, err)
	assert.Equal(t, scanline.KeepOriginal, o)
	_, err = parseOrientation("bogus")
	assert.Error(t, err)
}
