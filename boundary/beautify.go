package boundary

import "github.com/wentasah/ng-trajectory/geom"

// DefaultBeautifiedLength is the default number of points (B in spec.md
// §3) a beautified boundary is resampled to.
const DefaultBeautifiedLength = 400

// Beautify resamples a closed polyline to n points equi-spaced in
// arclength and rotates it so index 0 is the vertex closest to seedCentre
// (spec.md §4.3, C3). n is typically DefaultBeautifiedLength.
func Beautify(raw geom.ClosedPolyline, seedCentre geom.Point2, n int) geom.ClosedPolyline {
	resampled := geom.ArclengthResample(raw, n)
	start := resampled.ClosestIndex(seedCentre)
	return resampled.RotatedTo(start)
}
