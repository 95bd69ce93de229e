// Package interpolator implements the dense-trajectory interpolation
// capability (spec.md §6, "interpolator"; §4.7). The reference
// implementation, ClosedSpline, fits gonum's Akima spline
// (gonum.org/v1/gonum/interp) independently over each axis, padding the
// control points with a few wrapped neighbours on either side so the fit
// is periodic across the seam, then samples a fixed number of points and
// derives signed curvature from finite differences of the tangent angle.
//
// gonum is pulled in here because it is already a dependency of the
// pack's robotics teacher (daoran-rdk) for exactly this kind of numeric
// work, rather than hand-rolling a spline fit the way the original
// project's own interpolators/utils module would.
package interpolator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/wentasah/ng-trajectory/contracts"
	"github.com/wentasah/ng-trajectory/geom"
)

// DefaultDenseCount is the number of samples produced per interpolation,
// matching the boundary beautifier's default (spec.md §4.3).
const DefaultDenseCount = 400

// padding is how many neighbours are wrapped onto each end of the control
// point sequence before fitting, so the spline sees continuous derivative
// information across the closing seam.
const padding = 2

// ClosedSpline fits a periodic Akima spline through a closed sequence of
// control points (spec.md §6, D3).
type ClosedSpline struct {
	// Samples is the number of dense output points; DefaultDenseCount if 0.
	Samples int
}

// Interpolate implements contracts.Interpolator.
func (c ClosedSpline) Interpolate(points []geom.Point2) ([]contracts.DenseSample, error) {
	n := len(points)
	if n < 1 {
		return nil, fmt.Errorf("interpolator: need at least 1 control point, got %d", n)
	}

	m := c.Samples
	if m == 0 {
		m = DefaultDenseCount
	}

	tExt := make([]float64, n+2*padding)
	xExt := make([]float64, n+2*padding)
	yExt := make([]float64, n+2*padding)
	for i := -padding; i < n+padding; i++ {
		p := points[((i%n)+n)%n]
		idx := i + padding
		tExt[idx] = float64(i)
		xExt[idx] = p.X
		yExt[idx] = p.Y
	}

	var splineX, splineY interp.AkimaSpline
	if err := splineX.Fit(tExt, xExt); err != nil {
		return nil, fmt.Errorf("interpolator: fit x: %w", err)
	}
	if err := splineY.Fit(tExt, yExt); err != nil {
		return nil, fmt.Errorf("interpolator: fit y: %w", err)
	}

	pos := make([]geom.Point2, m)
	for i := 0; i < m; i++ {
		t := float64(n) * float64(i) / float64(m)
		pos[i] = geom.Point2{X: splineX.Predict(t), Y: splineY.Predict(t)}
	}

	return withCurvature(pos), nil
}

// withCurvature computes signed curvature at each sample of a closed
// dense polyline via central finite differences of the tangent angle
// (spec.md §3, "dense samples ... columns >=3 include signed curvature").
func withCurvature(pos []geom.Point2) []contracts.DenseSample {
	n := len(pos)
	out := make([]contracts.DenseSample, n)

	theta := make([]float64, n)
	for i := 0; i < n; i++ {
		prev := pos[(i-1+n)%n]
		next := pos[(i+1)%n]
		theta[i] = math.Atan2(next.Y-prev.Y, next.X-prev.X)
	}

	for i := 0; i < n; i++ {
		prev := pos[(i-1+n)%n]
		next := pos[(i+1)%n]
		ds := geom.Dist(prev, pos[i]) + geom.Dist(pos[i], next)
		dtheta := wrapAngle(theta[(i+1)%n] - theta[(i-1+n)%n])

		var kappa float64
		if ds > 0 {
			kappa = dtheta / ds
		}
		out[i] = contracts.DenseSample{Point2: pos[i], Curvature: kappa}
	}
	return out
}

// wrapAngle normalises an angle difference into (-pi, pi].
func wrapAngle(d float64) float64 {
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
