package interpolator

import (
	"math"
	"testing"

	"github.com/wentasah/ng-trajectory/geom"
)

func TestInterpolateSampleCount(t *testing.T) {
	pts := []geom.Point2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	out, err := ClosedSpline{Samples: 40}.Interpolate(pts)
	if err != nil {
		t.Fatalf("Interpolate error: %v", err)
	}
	if len(out) != 40 {
		t.Fatalf("len(out) = %d, want 40", len(out))
	}
}

func TestInterpolateRejectsZeroPoints(t *testing.T) {
	if _, err := (ClosedSpline{}).Interpolate(nil); err == nil {
		t.Error("Interpolate with 0 control points: want error")
	}
}

func TestInterpolateSupportsSingleGroup(t *testing.T) {
	// spec.md §8: G=1 must still produce a dense trajectory, since the
	// reference selector now allows a single seed centre.
	out, err := ClosedSpline{Samples: 20}.Interpolate([]geom.Point2{{3, 4}})
	if err != nil {
		t.Fatalf("Interpolate with 1 control point: unexpected error %v", err)
	}
	if len(out) != 20 {
		t.Fatalf("len(out) = %d, want 20", len(out))
	}
	for i, s := range out {
		if s.Point2 != (geom.Point2{X: 3, Y: 4}) {
			t.Errorf("sample %d = %v, want (3,4)", i, s.Point2)
		}
		if math.IsNaN(s.Curvature) || math.IsInf(s.Curvature, 0) {
			t.Errorf("sample %d curvature = %v, want finite", i, s.Curvature)
		}
	}
}

func TestInterpolateSupportsTwoPoints(t *testing.T) {
	out, err := ClosedSpline{Samples: 20}.Interpolate([]geom.Point2{{0, 0}, {1, 0}})
	if err != nil {
		t.Fatalf("Interpolate with 2 control points: unexpected error %v", err)
	}
	if len(out) != 20 {
		t.Fatalf("len(out) = %d, want 20", len(out))
	}
}

func TestInterpolateCircleHasUniformCurvatureSign(t *testing.T) {
	n := 24
	pts := make([]geom.Point2, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = geom.Point2{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	out, err := ClosedSpline{Samples: 200}.Interpolate(pts)
	if err != nil {
		t.Fatalf("Interpolate error: %v", err)
	}
	for i, s := range out {
		if s.Curvature <= 0 {
			t.Fatalf("sample %d curvature = %v, want > 0 for a CCW circle", i, s.Curvature)
		}
	}
}

func TestInterpolateIsDeterministic(t *testing.T) {
	pts := []geom.Point2{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	out1, _ := ClosedSpline{Samples: 60}.Interpolate(pts)
	out2, _ := ClosedSpline{Samples: 60}.Interpolate(pts)
	for i := range out1 {
		if out1[i] != out2[i] {
			t.Fatalf("sample %d differs across runs: %v != %v", i, out1[i], out2[i])
		}
	}
}
