// Package selector implements the seed-centre selection capability
// (spec.md §6, "selector"). The reference implementation is grounded on
// geom.ArclengthResample (spec.md C1), reused here as-is: picking group
// centres equi-spaced in arclength is exactly the resampling operation
// boundary beautification already performs, just with a smaller target
// count and over the input centerline rather than an extracted boundary.
package selector

import (
	"fmt"

	"github.com/wentasah/ng-trajectory/geom"
	"github.com/wentasah/ng-trajectory/ngerror"
)

// Uniform selects `remain` points equi-spaced in arclength along a
// centerline (spec.md §6, D1).
type Uniform struct{}

// Select implements contracts.Selector.
func (Uniform) Select(centerline []geom.Point2, remain int) ([]geom.Point2, error) {
	if remain < 1 {
		return nil, errTooFewGroups(remain)
	}
	if len(centerline) < 3 {
		return nil, errShortCenterline(len(centerline))
	}

	closed := canonicalizeCCW(geom.ClosedPolyline(centerline))
	resampled := geom.ArclengthResample(closed, remain)
	return []geom.Point2(resampled), nil
}

// canonicalizeCCW reverses the polyline if it winds clockwise, so the
// selected group centres always proceed counter-clockwise regardless of
// the centerline's original winding (spec.md §9 Open Question decision,
// see DESIGN.md).
func canonicalizeCCW(c geom.ClosedPolyline) geom.ClosedPolyline {
	if signedArea(c) >= 0 {
		return c
	}
	out := make(geom.ClosedPolyline, len(c))
	for i, p := range c {
		out[len(c)-1-i] = p
	}
	return out
}

func signedArea(c geom.ClosedPolyline) float64 {
	var sum float64
	n := len(c)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return sum / 2
}

func errTooFewGroups(remain int) error {
	return &ngerror.ConfigError{Field: "groups", Msg: fmt.Sprintf("want at least 1 group, got %d", remain)}
}

func errShortCenterline(n int) error {
	return &ngerror.ConfigError{Field: "group_centerline", Msg: fmt.Sprintf("want at least 3 points, got %d", n)}
}
