package tessellate

import (
	"testing"

	"github.com/rasterx-go/scanline/geom"
	"github.com/rasterx-go/scanline/path"
)

func ring(coords ...float32) path.Figure {
	pts := make([]geom.Point, len(coords)/2)
	for i := range pts {
		pts[i] = geom.Point{X: coords[2*i], Y: coords[2*i+1]}
	}
	return path.Figure{Segments: []path.LineSegment{path.Linear(pts...)}, Closed: true}
}

func TestBuildForcesOuterPositive(t *testing.T) {
	// Clockwise square: negative area in y-down space.
	cw := ring(0, 0, 0, 4, 4, 4, 4, 0)
	mp := Build([]path.Figure{cw}, path.DefaultFlatness, geom.Identity(), FirstRingIsContourFollowedByHoles)

	if len(mp.Rings) != 1 {
		t.Fatalf("got %d rings", len(mp.Rings))
	}
	if mp.Rings[0].Area <= 0 {
		t.Errorf("outer ring area = %v, want positive", mp.Rings[0].Area)
	}
}

func TestBuildForcesHolesNegative(t *testing.T) {
	outer := ring(0, 0, 10, 0, 10, 10, 0, 10)
	hole := ring(2, 2, 8, 2, 8, 8, 2, 8) // same winding as outer
	mp := Build([]path.Figure{outer, hole}, path.DefaultFlatness, geom.Identity(), FirstRingIsContourFollowedByHoles)

	if len(mp.Rings) != 2 {
		t.Fatalf("got %d rings", len(mp.Rings))
	}
	if mp.Rings[0].Area <= 0 {
		t.Errorf("ring 0 area = %v, want positive", mp.Rings[0].Area)
	}
	if mp.Rings[1].Area >= 0 {
		t.Errorf("ring 1 area = %v, want negative", mp.Rings[1].Area)
	}
}

func TestBuildKeepOriginal(t *testing.T) {
	cw := ring(0, 0, 0, 4, 4, 4, 4, 0)
	mp := Build([]path.Figure{cw}, path.DefaultFlatness, geom.Identity(), KeepOriginal)

	if len(mp.Rings) != 1 {
		t.Fatalf("got %d rings", len(mp.Rings))
	}
	if mp.Rings[0].Area >= 0 {
		t.Errorf("KeepOriginal flipped the authored orientation: area %v", mp.Rings[0].Area)
	}
}

func TestBuildIgnoresOpenFigures(t *testing.T) {
	open := path.Figure{Segments: []path.LineSegment{path.Linear(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, geom.Point{X: 4, Y: 4},
	)}, Closed: false}
	mp := Build([]path.Figure{open}, path.DefaultFlatness, geom.Identity(), FirstRingIsContourFollowedByHoles)
	if len(mp.Rings) != 0 {
		t.Errorf("open figure produced %d rings", len(mp.Rings))
	}
}

func TestBuildDropsDegenerateRings(t *testing.T) {
	cases := map[string]path.Figure{
		"two vertices":  ring(0, 0, 4, 4),
		"collinear":     ring(0, 0, 2, 2, 4, 4),
		"single vertex": ring(1, 1, 1, 1, 1, 1),
	}
	for name, fig := range cases {
		mp := Build([]path.Figure{fig}, path.DefaultFlatness, geom.Identity(), FirstRingIsContourFollowedByHoles)
		if len(mp.Rings) != 0 {
			t.Errorf("%s: produced %d rings", name, len(mp.Rings))
		}
	}
}

func TestBuildKeepsSelfIntersectingZeroArea(t *testing.T) {
	// The hourglass encloses equal positive and negative areas; it must
	// survive tessellation even though its signed area is zero.
	hourglass := ring(0, 0, 10, 10, 10, 0, 0, 10)
	mp := Build([]path.Figure{hourglass}, path.DefaultFlatness, geom.Identity(), FirstRingIsContourFollowedByHoles)
	if len(mp.Rings) != 1 {
		t.Fatalf("hourglass dropped: %d rings", len(mp.Rings))
	}
	if mp.Rings[0].Area != 0 {
		t.Errorf("hourglass area = %v, want 0", mp.Rings[0].Area)
	}
}

func TestBuildDropsDuplicatesAndSeam(t *testing.T) {
	// Consecutive duplicates and a repeated closing vertex collapse.
	fig := ring(0, 0, 0, 0, 4, 0, 4, 4, 4, 4, 0, 4, 0, 0)
	mp := Build([]path.Figure{fig}, path.DefaultFlatness, geom.Identity(), FirstRingIsContourFollowedByHoles)

	if len(mp.Rings) != 1 {
		t.Fatalf("got %d rings", len(mp.Rings))
	}
	if got := len(mp.Rings[0].Points); got != 4 {
		t.Errorf("ring has %d points, want 4: %v", got, mp.Rings[0].Points)
	}
	if got := mp.TotalVertexCount(); got != 4 {
		t.Errorf("TotalVertexCount = %d", got)
	}
}

func TestBuildAppliesTransform(t *testing.T) {
	sq := ring(0, 0, 4, 0, 4, 4, 0, 4)
	xf := geom.Identity().SetTranslation(geom.Point{X: 10, Y: 20})
	mp := Build([]path.Figure{sq}, path.DefaultFlatness, xf, FirstRingIsContourFollowedByHoles)

	if len(mp.Rings) != 1 {
		t.Fatalf("got %d rings", len(mp.Rings))
	}
	for _, p := range mp.Rings[0].Points {
		if p.X < 10 || p.Y < 20 {
			t.Errorf("transform not applied: %v", p)
		}
	}
}
