package matryoshka

import (
	"math"
	"testing"

	"github.com/wentasah/ng-trajectory/geom"
)

func unitCircleBoundary(n int) geom.ClosedPolyline {
	out := make(geom.ClosedPolyline, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		out[i] = geom.Point2{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return out
}

func TestMapBoundaryAtAlphaZero(t *testing.T) {
	b := unitCircleBoundary(400)
	m := Build(b, geom.Point2{}, 3)

	p := m.Map(0, 0)
	if math.Abs(p.X-1) > 1e-9 || math.Abs(p.Y) > 1e-9 {
		t.Errorf("f(0,0) = %v, want boundary[0] = (1,0)", p)
	}
}

func TestMapCentreAtAlphaOne(t *testing.T) {
	b := unitCircleBoundary(400)
	centre := geom.Point2{X: 0, Y: 0}
	m := Build(b, centre, 3)

	for _, beta := range []float64{0, 0.1, 0.37, 0.99} {
		p := m.Map(1, beta)
		if math.Abs(p.X-centre.X) > 1e-12 || math.Abs(p.Y-centre.Y) > 1e-12 {
			t.Errorf("f(1,%v) = %v, want centre %v within 1e-12", beta, p, centre)
		}
	}
}

func TestMapPeriodicInBeta(t *testing.T) {
	b := unitCircleBoundary(400)
	m := Build(b, geom.Point2{}, 5)

	for _, alpha := range []float64{0, 0.25, 0.6} {
		p0 := m.Map(alpha, 0)
		p1 := m.Map(alpha, 1)
		if math.Abs(p0.X-p1.X) > 1e-9 || math.Abs(p0.Y-p1.Y) > 1e-9 {
			t.Errorf("f(%v,0)=%v != f(%v,1)=%v", alpha, p0, alpha, p1)
		}
	}
}

func TestMapMidwayUnitDisc(t *testing.T) {
	// Scenario S1: f(0.5, 0.25) on a unit disc, L=3, should land near
	// (0, 0.5) (half way to centre, at angle pi/2).
	b := unitCircleBoundary(400)
	m := Build(b, geom.Point2{}, 3)

	p := m.Map(0.5, 0.25)
	if math.Abs(p.X-0) > 0.02 || math.Abs(p.Y-0.5) > 0.02 {
		t.Errorf("f(0.5,0.25) = %v, want ~(0, 0.5)", p)
	}
}

func TestBuildLayersTwo(t *testing.T) {
	// Boundary case: L=2 means only boundary and centre; map degenerates
	// to a straight lerp (spec.md §8).
	b := unitCircleBoundary(40)
	centre := geom.Point2{X: 0.1, Y: -0.2}
	m := Build(b, centre, 2)

	for alpha := 0.0; alpha <= 1.0; alpha += 0.2 {
		got := m.Map(alpha, 0.13)
		boundaryPt := m.Map(0, 0.13)
		want := geom.Lerp(boundaryPt, centre, alpha)
		if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
			t.Errorf("alpha=%v: f=%v, want lerp %v", alpha, got, want)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	// R1: rebuilding from identical inputs yields bit-identical tables.
	b := unitCircleBoundary(100)
	centre := geom.Point2{X: 0.2, Y: 0.05}

	m1 := Build(b, centre, 5)
	m2 := Build(b, centre, 5)

	for l := 0; l < m1.Layers(); l++ {
		for k := 0; k < m1.BoundaryPoints(); k++ {
			if m1.At(l, k) != m2.At(l, k) {
				t.Fatalf("table mismatch at (%d,%d): %v != %v", l, k, m1.At(l, k), m2.At(l, k))
			}
		}
	}
}
