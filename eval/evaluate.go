// Package eval composes a single candidate's evaluation pipeline
// (spec.md §4.7, C7): map each group's normalised coordinates through its
// Matryoshka, interpolate the resulting control points into a dense
// trajectory, penalize infeasible candidates and otherwise score them
// through the criterion.
//
// It is a direct, typed translation of the original's `_opt` function
// (_examples/original_source/ng_trajectory/optimizers/matryoshka/main.py),
// with the free module-level globals replaced by fields on Evaluator so
// that many goroutines can share one immutable Evaluator concurrently
// (spec.md §5). Evaluate is also where `_opt`'s own per-candidate log
// lines live (`pointsA`, `pointsT`, then `penalty` or `correct`) — the
// penalizer only logs its own internal diagnostics, not these records.
package eval

import (
	"fmt"
	"math"

	"github.com/wentasah/ng-trajectory/contracts"
	"github.com/wentasah/ng-trajectory/geom"
	"github.com/wentasah/ng-trajectory/internal/buildctx"
	"github.com/wentasah/ng-trajectory/matryoshka"
	"github.com/wentasah/ng-trajectory/ngerror"
)

// AlphaBeta is one group's normalised (alpha, beta) coordinate pair.
type AlphaBeta [2]float64

// Candidate is one (alpha, beta) pair per segment group, in group order.
type Candidate []AlphaBeta

// Evaluator holds everything needed to score a Candidate. All fields are
// set once at construction and never mutated afterwards, so a single
// Evaluator can be shared read-only across an arbitrary number of worker
// goroutines (spec.md §5, "MapSet is built once and shared read-only").
type Evaluator struct {
	Maps        matryoshka.MapSet
	Interp      contracts.Interpolator
	Penalizer   contracts.Penalizer
	Criterion   contracts.Criterion
	ValidPoints []geom.Point2
	Grid        [2]float64
	PenaltyK    float64
	Log         *buildctx.Context // optional
}

// Result is the outcome of evaluating one Candidate: the mapped points in
// real coordinates, and either a criterion value (Penalty == 0) or a
// penalty (Penalty != 0, Score is meaningless).
type Result struct {
	Points  []geom.Point2
	Penalty float64
	Score   float64
}

// Evaluate runs the full pipeline for one candidate (spec.md §4.7). It
// never returns a fatal error for an infeasible candidate. It returns
// ngerror.EvaluationFailure for a collaborator error, which callers must
// convert to +Inf rather than treat as fatal (spec.md §7), and a plain
// error for a candidate whose group count does not match the MapSet.
func (e *Evaluator) Evaluate(c Candidate) (Result, error) {
	if len(c) != e.Maps.Groups() {
		return Result{}, fmt.Errorf("eval: candidate has %d groups, want %d", len(c), e.Maps.Groups())
	}

	points := make([]geom.Point2, len(c))
	for i, ab := range c {
		points[i] = e.Maps[i].Map(ab[0], ab[1])
	}

	samples, err := e.Interp.Interpolate(points)
	if err != nil {
		return Result{}, &ngerror.EvaluationFailure{Cause: err}
	}
	if s, ok := firstNonFiniteSample(samples); ok {
		err := fmt.Errorf("interpolator returned a non-finite sample: %+v", s)
		if e.Log != nil {
			e.Log.Logf(1, "nonfinite:interpolate %+v", s)
		}
		return Result{}, &ngerror.EvaluationFailure{Cause: err}
	}

	penalty := e.Penalizer.Penalize(samples, e.ValidPoints, e.Grid, e.PenaltyK, points)
	if penalty != 0 {
		if e.Log != nil {
			e.Log.Logf(3, "pointsA:%v", points)
			e.Log.Logf(3, "pointsT:%v", samples)
			e.Log.Logf(2, "penalty:%f", penalty)
		}
		return Result{Points: points, Penalty: penalty}, nil
	}

	score, err := e.Criterion.Compute(samples)
	if err != nil {
		return Result{}, &ngerror.EvaluationFailure{Cause: err}
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		err := fmt.Errorf("criterion returned a non-finite score: %v", score)
		if e.Log != nil {
			e.Log.Logf(1, "nonfinite:criterion %v", score)
		}
		return Result{}, &ngerror.EvaluationFailure{Cause: err}
	}

	if e.Log != nil {
		e.Log.Logf(3, "pointsA:%v", points)
		e.Log.Logf(3, "pointsT:%v", samples)
		e.Log.Logf(2, "correct:%f", score)
	}
	return Result{Points: points, Score: score}, nil
}

// firstNonFiniteSample returns the first sample with a non-finite
// coordinate or curvature (spec.md §7, "interpolator/criterion raises or
// returns non-finite").
func firstNonFiniteSample(samples []contracts.DenseSample) (contracts.DenseSample, bool) {
	for _, s := range samples {
		if math.IsNaN(s.X) || math.IsInf(s.X, 0) ||
			math.IsNaN(s.Y) || math.IsInf(s.Y, 0) ||
			math.IsNaN(s.Curvature) || math.IsInf(s.Curvature, 0) {
			return s, true
		}
	}
	return contracts.DenseSample{}, false
}
