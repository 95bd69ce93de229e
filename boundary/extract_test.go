package boundary

import (
	"math"
	"testing"

	"github.com/wentasah/ng-trajectory/geom"
)

// squareCluster returns every grid point of a filled n x n square, step 1.
func squareCluster(n int) []geom.Point2 {
	var pts []geom.Point2
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			pts = append(pts, geom.Point2{X: float64(x), Y: float64(y)})
		}
	}
	return pts
}

func TestExtractSquare(t *testing.T) {
	cluster := squareCluster(6)
	poly, err := Extract(cluster, 0)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(poly) < 3 {
		t.Fatalf("expected a closed polyline, got %d points", len(poly))
	}
	// No duplicate consecutive points (spec.md §3 invariant).
	for i := range poly {
		if poly[i] == poly[(i+1)%len(poly)] {
			t.Errorf("duplicate consecutive point at index %d", i)
		}
	}
}

func TestExtractTooSmall(t *testing.T) {
	cluster := []geom.Point2{{X: 0, Y: 0}, {X: 1, Y: 0}}
	if _, err := Extract(cluster, 3); err == nil {
		t.Fatal("expected DegenerateSegmentError for a 2-point cluster")
	}
}

func TestBeautifyTriangle(t *testing.T) {
	// A filled triangle's extracted boundary only has a handful of raw
	// points; beautifying must still produce exactly n equi-spaced points
	// (spec.md §8 boundary case: "exactly 3 boundary points").
	tri := geom.ClosedPolyline{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 1.5, Y: 3}}
	out := Beautify(tri, geom.Point2{X: 1.5, Y: 1}, 400)
	if len(out) != 400 {
		t.Fatalf("want 400 points, got %d", len(out))
	}
	perim := tri.Perimeter()
	want := perim / 400
	for i := range out {
		got := geom.Dist(out[i], out[(i+1)%len(out)])
		if math.Abs(got-want) > 0.05*want+1e-9 {
			t.Errorf("gap %d = %v, want ~%v", i, got, want)
		}
	}
}

func TestBeautifyStartsNearSeed(t *testing.T) {
	square := geom.ClosedPolyline{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	seed := geom.Point2{X: 4, Y: 0.01}
	out := Beautify(square, seed, 40)
	// index 0 must be the closest sample to the seed among all samples.
	best := 0
	bestD := geom.Dist(out[0], seed)
	for i := 1; i < len(out); i++ {
		if d := geom.Dist(out[i], seed); d < bestD {
			bestD = d
			best = i
		}
	}
	if best != 0 {
		t.Errorf("closest sample to seed is index %d, want 0", best)
	}
}
