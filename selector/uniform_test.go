package selector

import (
	"math"
	"testing"

	"github.com/wentasah/ng-trajectory/geom"
)

func TestSelectReturnsRequestedCount(t *testing.T) {
	centerline := geom.ClosedPolyline{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	got, err := Uniform{}.Select([]geom.Point2(centerline), 8)
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("Select returned %d points, want 8", len(got))
	}
}

func TestSelectCanonicalizesToCCW(t *testing.T) {
	// This square winds clockwise.
	cw := geom.ClosedPolyline{{0, 0}, {0, 4}, {4, 4}, {4, 0}}
	got, err := Uniform{}.Select([]geom.Point2(cw), 4)
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if signedArea(geom.ClosedPolyline(got)) < 0 {
		t.Errorf("Select result still winds clockwise: %v", got)
	}
}

func TestSelectRejectsTooFewGroups(t *testing.T) {
	centerline := geom.ClosedPolyline{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	if _, err := (Uniform{}).Select([]geom.Point2(centerline), 0); err == nil {
		t.Error("Select with remain=0: want error")
	}
}

func TestSelectSupportsSingleGroup(t *testing.T) {
	// spec.md §8: G=1 is a mandated boundary case; the optimiser then
	// runs over the whole [0,1]^2 square.
	centerline := geom.ClosedPolyline{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	got, err := Uniform{}.Select([]geom.Point2(centerline), 1)
	if err != nil {
		t.Fatalf("Select with remain=1: unexpected error %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Select with remain=1 returned %d points, want 1", len(got))
	}
}

func TestSelectSupportsTwoGroups(t *testing.T) {
	centerline := geom.ClosedPolyline{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	got, err := Uniform{}.Select([]geom.Point2(centerline), 2)
	if err != nil {
		t.Fatalf("Select with remain=2: unexpected error %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Select with remain=2 returned %d points, want 2", len(got))
	}
}

func TestSelectRejectsShortCenterline(t *testing.T) {
	if _, err := (Uniform{}).Select([]geom.Point2{{0, 0}, {1, 0}}, 4); err == nil {
		t.Error("Select with a 2-point centerline: want error")
	}
}

func TestSignedAreaCCWPositive(t *testing.T) {
	ccw := geom.ClosedPolyline{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	if signedArea(ccw) <= 0 {
		t.Errorf("signedArea(ccw square) = %v, want > 0", signedArea(ccw))
	}
}

func TestSelectIsArclengthUniform(t *testing.T) {
	centerline := geom.ClosedPolyline{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	got, err := Uniform{}.Select([]geom.Point2(centerline), 4)
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	closed := geom.ClosedPolyline(got)
	perim := closed.Perimeter()
	want := perim / 4
	for i := 0; i < len(closed); i++ {
		d := geom.Dist(closed[i], closed[(i+1)%len(closed)])
		if math.Abs(d-want) > 1e-6 {
			t.Errorf("edge %d length = %v, want ~%v", i, d, want)
		}
	}
}
