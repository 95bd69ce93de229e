// Package criterion implements the trajectory-scoring capability
// (spec.md §6, "criterion"; §4.7). The reference implementation, LapTime,
// is a deliberately reduced stand-in for the original project's
// ng_trajectory.criterions.profile module (spec.md D4): it bounds speed
// at each dense sample by the lateral acceleration implied by curvature,
// then integrates arclength over that speed profile. It does not model
// braking/acceleration limits or a drivetrain, unlike the original's
// forward/backward solver — spec.md explicitly scopes criterion internals
// as out of scope, so this stands in honestly rather than attempting a
// full reimplementation.
package criterion

import (
	"math"

	"github.com/wentasah/ng-trajectory/contracts"
	"github.com/wentasah/ng-trajectory/geom"
)

// Defaults matching a small RC-scale vehicle, used when the matching
// LapTime field is zero. The CLI builds LapTime{} and does not read the
// criterion_args settings bag, so it always runs with these defaults.
const (
	DefaultMaxLateralAccel = 9.81 // m/s^2, roughly 1g
	DefaultMaxSpeed        = 10.0 // m/s
)

// LapTime scores a dense trajectory by the time a curvature-bounded speed
// profile takes to traverse it (spec.md §6, D4).
type LapTime struct {
	MaxLateralAccel float64
	MaxSpeed        float64
}

// Compute implements contracts.Criterion.
func (c LapTime) Compute(samples []contracts.DenseSample) (float64, error) {
	n := len(samples)
	if n < 2 {
		return 0, nil
	}

	accel := c.MaxLateralAccel
	if accel == 0 {
		accel = DefaultMaxLateralAccel
	}
	vmax := c.MaxSpeed
	if vmax == 0 {
		vmax = DefaultMaxSpeed
	}

	speed := make([]float64, n)
	for i, s := range samples {
		k := math.Abs(s.Curvature)
		if k == 0 {
			speed[i] = vmax
			continue
		}
		v := math.Sqrt(accel / k)
		if v > vmax {
			v = vmax
		}
		speed[i] = v
	}

	var total float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		ds := geom.Dist(samples[i].Point2, samples[j].Point2)
		vAvg := (speed[i] + speed[j]) / 2
		if vAvg <= 0 {
			continue
		}
		total += ds / vAvg
	}
	return total, nil
}
