// Package penalizer implements the feasibility/curvature penalizer
// contract of spec.md §4.8, grounded on
// _examples/original_source/ng_trajectory/penalizers/curvature/main.py.
//
// The original unconditionally prints the offending curvature values
// from inside penalize() itself; spec.md §9 ("Printing in the
// penalizer") calls that a defect to fix. The per-candidate records the
// original's _opt() prints (pointsA, pointsT, penalty/correct) are
// logged by eval.Evaluate instead, matching _opt()'s own structure; this
// penalizer only logs its own verbosity-3 diagnostics (which points or
// how much curvature were out of bounds), gated and never at verbosity 0.
package penalizer

import (
	"math"

	"github.com/wentasah/ng-trajectory/contracts"
	"github.com/wentasah/ng-trajectory/geom"
	"github.com/wentasah/ng-trajectory/internal/buildctx"
)

// DefaultKMax is the maximum allowed absolute curvature [m^-1]. spec.md §9
// notes the repository carries a legacy fixed-1.5 variant alongside the
// parameterised one; the reimplementation must use the parameterised form,
// with this as its default (spec.md §4.8).
const DefaultKMax = 1.5

// Curvature is the parameterised-threshold feasibility/curvature
// penalizer (spec.md §4.8).
type Curvature struct {
	KMax float64
	Log  *buildctx.Context // optional; nil disables diagnostics entirely

	init    contracts.PenalizerInit
	invalid []contracts.DenseSample
}

// NewCurvature returns a Curvature penalizer with the given k_max. A k_max
// of 0 is replaced with DefaultKMax.
func NewCurvature(kMax float64, log *buildctx.Context) *Curvature {
	if kMax == 0 {
		kMax = DefaultKMax
	}
	return &Curvature{KMax: kMax, Log: log}
}

// Init stores the typed context handed over at construction time (spec.md
// §4.9).
func (c *Curvature) Init(init contracts.PenalizerInit) {
	c.init = init
}

// InvalidPoints returns the points flagged by the most recent Penalize
// call (spec.md §4.8 observer hook). Only ever populated by the driver's
// final, single-threaded recompute (spec.md §5).
func (c *Curvature) InvalidPoints() []contracts.DenseSample {
	return c.invalid
}

// Penalize implements spec.md §4.8.
func (c *Curvature) Penalize(samples []contracts.DenseSample, validPoints []geom.Point2, grid [2]float64, penaltyK float64, candidate []geom.Point2) float64 {
	c.invalid = c.invalid[:0]

	gx, gy := grid[0], grid[1]
	if gx == 0 {
		gx = geom.GridCellSize(validPoints)
	}
	if gy == 0 {
		gy = gx
	}

	invalidCount := 0
	for _, s := range samples {
		if !anyWithin(validPoints, s.Point2, gx, gy) {
			c.invalid = append(c.invalid, s)
			invalidCount++
		}
	}

	if invalidCount > 0 {
		if c.Log != nil {
			c.Log.Logf(3, "invalidCount:%d", invalidCount)
		}
		return float64(invalidCount) * penaltyK * 10
	}

	var excess float64
	for _, s := range samples {
		switch {
		case s.Curvature > c.KMax:
			excess += s.Curvature
			c.invalid = append(c.invalid, s)
		case s.Curvature < -c.KMax:
			excess += -s.Curvature
			c.invalid = append(c.invalid, s)
		}
	}

	penalty := (excess / 100) * penaltyK * 10
	if c.Log != nil && excess > 0 {
		c.Log.Logf(3, "curvatureExcess:%f", excess)
	}
	return penalty
}

func anyWithin(valid []geom.Point2, p geom.Point2, gx, gy float64) bool {
	for _, v := range valid {
		if math.Abs(v.X-p.X) < gx && math.Abs(v.Y-p.Y) < gy {
			return true
		}
	}
	return false
}
