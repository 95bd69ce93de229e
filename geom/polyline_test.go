package geom

import (
	"math"
	"testing"
)

func TestArclengthResampleSquare(t *testing.T) {
	square := ClosedPolyline{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 4, Y: 4},
		{X: 0, Y: 4},
	}
	out := ArclengthResample(square, 16)
	if len(out) != 16 {
		t.Fatalf("want 16 points, got %d", len(out))
	}

	perim := square.Perimeter()
	want := perim / 16
	for i := 0; i < len(out); i++ {
		got := Dist(out[i], out[(i+1)%len(out)])
		if math.Abs(got-want) > 0.05*want {
			t.Errorf("gap %d = %v, want ~%v (±5%%)", i, got, want)
		}
	}
}

func TestArclengthResampleTriangle(t *testing.T) {
	tri := ClosedPolyline{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0.5, Y: 1},
	}
	out := ArclengthResample(tri, 400)
	if len(out) != 400 {
		t.Fatalf("want 400 points, got %d", len(out))
	}
}

func TestGridCellSize(t *testing.T) {
	pts := []Point2{{0, 0}, {0.1, 0}, {0.2, 0.1}, {0.3, 0.2}}
	got := GridCellSize(pts)
	if math.Abs(got-0.1) > 1e-9 {
		t.Errorf("GridCellSize = %v, want 0.1", got)
	}
}

func TestPointSegmentDistance(t *testing.T) {
	d := PointSegmentDistance(Point2{0.5, 1}, Point2{0, 0}, Point2{1, 0})
	if math.Abs(d-1) > 1e-9 {
		t.Errorf("PointSegmentDistance = %v, want 1", d)
	}
}

func TestRotatedTo(t *testing.T) {
	p := ClosedPolyline{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	r := p.RotatedTo(2)
	want := ClosedPolyline{{2, 0}, {3, 0}, {0, 0}, {1, 0}}
	for i := range want {
		if r[i] != want[i] {
			t.Errorf("index %d = %v, want %v", i, r[i], want[i])
		}
	}
}
