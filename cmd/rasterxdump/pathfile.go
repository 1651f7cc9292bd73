package main

import (
	"fmt"
	"os"

	"golang.org/x/image/math/f32"
	"gopkg.in/yaml.v2"

	"github.com/rasterx-go/scanline/geom"
	"github.com/rasterx-go/scanline/path"
)

// PathFile is the on-disk YAML description of a path: a list of figures
// built from line, quadratic/cubic Bezier and elliptical-arc segments, plus
// an optional affine transform.
type PathFile struct {
	Figures   []FigureSpec   `yaml:"figures"`
	Transform *TransformSpec `yaml:"transform,omitempty"`
}

// FigureSpec describes one figure.
type FigureSpec struct {
	Closed   bool          `yaml:"closed"`
	Segments []SegmentSpec `yaml:"segments"`
}

// SegmentSpec holds exactly one of the segment kinds.
type SegmentSpec struct {
	Line  [][2]float32 `yaml:"line,omitempty"`
	Quad  *QuadSpec    `yaml:"quad,omitempty"`
	Cubic *CubicSpec   `yaml:"cubic,omitempty"`
	Arc   *ArcSpec     `yaml:"arc,omitempty"`
}

// QuadSpec is a quadratic Bezier, elevated to cubic on build.
type QuadSpec struct {
	P0 [2]float32 `yaml:"p0"`
	C  [2]float32 `yaml:"c"`
	P3 [2]float32 `yaml:"p3"`
}

// CubicSpec is a cubic Bezier.
type CubicSpec struct {
	P0 [2]float32 `yaml:"p0"`
	C1 [2]float32 `yaml:"c1"`
	C2 [2]float32 `yaml:"c2"`
	P3 [2]float32 `yaml:"p3"`
}

// ArcSpec is an elliptical arc in degrees.
type ArcSpec struct {
	Center   [2]float32 `yaml:"center"`
	Rx       float32    `yaml:"rx"`
	Ry       float32    `yaml:"ry"`
	Rotation float32    `yaml:"rotation"`
	Start    float32    `yaml:"start"`
	Sweep    float32    `yaml:"sweep"`
}

// TransformSpec is either a translation or a full row-major affine matrix.
type TransformSpec struct {
	Translate *[2]float32 `yaml:"translate,omitempty"`
	Matrix    *[6]float32 `yaml:"matrix,omitempty"`
}

// LoadPathFile reads and parses a YAML path description.
func LoadPathFile(name string) (*PathFile, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return ParsePathFile(data)
}

// ParsePathFile parses a YAML path description.
func ParsePathFile(data []byte) (*PathFile, error) {
	var pf PathFile
	if err := yaml.UnmarshalStrict(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing path file: %w", err)
	}
	if len(pf.Figures) == 0 {
		return nil, fmt.Errorf("path file has no figures")
	}
	return &pf, nil
}

func pt(v [2]float32) geom.Point {
	return geom.PointFromVec2(f32.Vec2{v[0], v[1]})
}

// BuildPath converts the description into a path and its transform.
func (pf *PathFile) BuildPath() (*path.Path, geom.Transform, error) {
	p := &path.Path{}
	for fi, fs := range pf.Figures {
		fig := path.Figure{Closed: fs.Closed}
		for si, ss := range fs.Segments {
			seg, err := ss.build()
			if err != nil {
				return nil, geom.Transform{}, fmt.Errorf("figure %d segment %d: %w", fi, si, err)
			}
			fig.Segments = append(fig.Segments, seg)
		}
		p.Figures = append(p.Figures, fig)
	}

	xf := geom.Identity()
	if t := pf.Transform; t != nil {
		switch {
		case t.Matrix != nil:
			xf = geom.TransformFromAff3(f32.Aff3(*t.Matrix))
		case t.Translate != nil:
			xf = xf.SetTranslation(pt(*t.Translate))
		}
	}
	return p, xf, nil
}

func (ss SegmentSpec) build() (path.LineSegment, error) {
	set := 0
	if len(ss.Line) > 0 {
		set++
	}
	if ss.Quad != nil {
		set++
	}
	if ss.Cubic != nil {
		set++
	}
	if ss.Arc != nil {
		set++
	}
	if set != 1 {
		return path.LineSegment{}, fmt.Errorf("exactly one of line/quad/cubic/arc must be set")
	}

	switch {
	case len(ss.Line) > 0:
		if len(ss.Line) < 2 {
			return path.LineSegment{}, fmt.Errorf("line needs at least 2 points")
		}
		pts := make([]geom.Point, len(ss.Line))
		for i, v := range ss.Line {
			pts[i] = pt(v)
		}
		return path.Linear(pts...), nil
	case ss.Quad != nil:
		return path.Quadratic(pt(ss.Quad.P0), pt(ss.Quad.C), pt(ss.Quad.P3)), nil
	case ss.Cubic != nil:
		return path.Cubic(pt(ss.Cubic.P0), pt(ss.Cubic.C1), pt(ss.Cubic.C2), pt(ss.Cubic.P3)), nil
	default:
		a := ss.Arc
		if a.Rx <= 0 || a.Ry <= 0 {
			return path.LineSegment{}, fmt.Errorf("arc radii must be positive")
		}
		return path.EllipticalArc(pt(a.Center), a.Rx, a.Ry, a.Rotation, a.Start, a.Sweep), nil
	}
}
