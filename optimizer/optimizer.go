// Package optimizer drives the budgeted, parallel derivative-free search
// over the Matryoshka parameter space (spec.md §4.9, C8). It owns the
// MapSet for the lifetime of a run, submits batches of evaluations to a
// bounded worker pool built from golang.org/x/sync/errgroup (grounded on
// the worker-pool idiom in udisondev-la2go's cmd/gameserver/main.go and
// daoran-rdk's service bring-up), and implements a discrete (1+lambda)
// evolution strategy as the reference derivative-free optimiser (spec.md
// §4.9, "a discrete one-plus-one style GA variant is the reference").
//
// This is a typed replacement for the original's reliance on the
// `nevergrad` package and a process-pool executor
// (_examples/original_source/ng_trajectory/optimizers/matryoshka/main.py,
// optimize()/_opt()); the state machine and concurrency discipline follow
// spec.md §4.9 and §5 exactly, including the single sequential
// recomputation of the best candidate at the end of a run.
package optimizer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wentasah/ng-trajectory/eval"
	"github.com/wentasah/ng-trajectory/internal/buildctx"
	"github.com/wentasah/ng-trajectory/ngerror"
)

// State is a node of the run state machine (spec.md §4.9).
type State int

const (
	Idle State = iota
	Built
	Optimising
	Finalising
	Reported
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Built:
		return "Built"
	case Optimising:
		return "Optimising"
	case Finalising:
		return "Finalising"
	case Reported:
		return "Reported"
	default:
		return "Unknown"
	}
}

// Config configures one optimisation run (spec.md §6).
type Config struct {
	Budget   int // B_gen, total evaluate() calls including the final recompute
	Workers  int // W, defaults to hardware concurrency when <= 0
	Seed     int64
	Deadline time.Time // zero means no deadline
	Sigma    float64   // mutation step size, defaults to 0.1
}

// Report is the outcome of a completed run (spec.md §4.9 "report best").
type Report struct {
	Best        eval.Candidate
	Score       float64
	Result      eval.Result
	Evaluated   int
	DeadlineHit bool
}

// Driver runs a single optimisation over a fixed Evaluator (spec.md C8).
// A Driver is not safe for concurrent Optimise calls; it is meant to be
// used once per Built MapSet, matching the Idle->Built->Optimising->
// Finalising->Reported lifecycle.
type Driver struct {
	Evaluator *eval.Evaluator
	Groups    int
	Log       *buildctx.Context

	mu    sync.Mutex
	state State
}

// NewDriver returns a Driver in the Built state, ready for Optimise.
func NewDriver(evaluator *eval.Evaluator, groups int, log *buildctx.Context) *Driver {
	return &Driver{Evaluator: evaluator, Groups: groups, Log: log, state: Built}
}

// State returns the driver's current state machine node.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *Driver) transition(to State) {
	d.mu.Lock()
	d.state = to
	d.mu.Unlock()
}

// Optimise runs the budgeted search and returns the best candidate found,
// recomputed once sequentially at the end (spec.md §4.9, §5).
//
// The total number of Evaluate calls across a run, including the final
// sequential recompute, is exactly cfg.Budget (clamped to at least 1)
// unless the deadline or ctx ends the search early:
// this is what lets scenario S6 ("budget=10, workers=1 -> exactly 10
// evaluate calls observed") hold regardless of the worker count, since
// the final recompute's cost is carved out of the budget rather than
// added on top of it.
func (d *Driver) Optimise(ctx context.Context, cfg Config) (Report, error) {
	if d.State() != Built {
		return Report{}, fmt.Errorf("optimizer: Optimise called in state %s, want Built", d.State())
	}
	d.transition(Optimising)
	if d.Log != nil {
		d.Log.StartTimer(buildctx.TimerOptimise)
		defer d.Log.StopTimer(buildctx.TimerOptimise)
	}

	budget := cfg.Budget
	if budget < 1 {
		budget = 1
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	sigma := cfg.Sigma
	if sigma == 0 {
		sigma = 0.1
	}

	runCtx := ctx
	var cancel context.CancelFunc
	if !cfg.Deadline.IsZero() {
		runCtx, cancel = context.WithDeadline(ctx, cfg.Deadline)
		defer cancel()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	incumbent := initialCandidate(d.Groups)
	incumbentResult, err := d.Evaluator.Evaluate(incumbent)
	incumbentScore, err := scoreOrFailure(incumbentResult, err, d.Log)
	if err != nil {
		return Report{}, err
	}
	evaluated := 1

	searchBudget := budget - 1
	deadlineHit := false

searchLoop:
	for evaluated < searchBudget {
		lambda := workers
		if remaining := searchBudget - evaluated; lambda > remaining {
			lambda = remaining
		}

		batch := make([]eval.Candidate, lambda)
		for i := range batch {
			batch[i] = mutate(incumbent, rng, sigma)
		}

		select {
		case <-runCtx.Done():
			deadlineHit = true
			break searchLoop
		default:
		}

		results := make([]eval.Result, lambda)
		errs := make([]error, lambda)

		g, gctx := errgroup.WithContext(runCtx)
		g.SetLimit(workers)
		for i := 0; i < lambda; i++ {
			i := i
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				r, err := d.Evaluator.Evaluate(batch[i])
				results[i] = r
				errs[i] = err
				return nil // collaborator errors are reported, never fatal (spec.md §7)
			})
		}
		_ = g.Wait()
		evaluated += lambda

		for i, r := range results {
			if errs[i] != nil {
				if d.Log != nil {
					d.Log.Warningf("evaluation failed: %v", errs[i])
				}
				continue
			}
			s := scoreOf(r)
			if s < incumbentScore {
				incumbentScore = s
				incumbent = batch[i]
			}
		}

		if runCtx.Err() != nil {
			deadlineHit = true
			break
		}
	}

	d.transition(Finalising)

	// With a budget of 1 the initial evaluation already was the single
	// sequential evaluation of the incumbent, so it stands as the final one.
	final, finalScore := incumbentResult, incumbentScore
	if budget > 1 {
		final, err = d.Evaluator.Evaluate(incumbent)
		evaluated++
		finalScore, err = scoreOrFailure(final, err, d.Log)
		if err != nil {
			return Report{}, err
		}
	}

	d.transition(Reported)

	return Report{
		Best:        incumbent,
		Score:       finalScore,
		Result:      final,
		Evaluated:   evaluated,
		DeadlineHit: deadlineHit,
	}, nil
}

// scoreOrFailure resolves one Evaluate call into a score. A collaborator
// evaluation failure (spec.md §7, "interpolator/criterion raises or
// returns non-finite") is never fatal: it is logged at verbosity >= 1 and
// scored as +Inf, same as any other infeasible candidate. Any other error
// (a malformed candidate) is returned as-is and aborts the run.
func scoreOrFailure(r eval.Result, err error, log *buildctx.Context) (float64, error) {
	if err != nil {
		var ef *ngerror.EvaluationFailure
		if errors.As(err, &ef) {
			if log != nil {
				log.Logf(1, "nonfinite:%v", err)
			}
			return math.Inf(1), nil
		}
		return 0, err
	}
	return scoreOf(r), nil
}

// initialCandidate starts every group at the Matryoshka's midpoint, a
// deterministic, config-independent seed for the search.
func initialCandidate(groups int) eval.Candidate {
	c := make(eval.Candidate, groups)
	for i := range c {
		c[i] = eval.AlphaBeta{0.5, 0.5}
	}
	return c
}

// mutate returns a copy of base with each dimension independently
// perturbed with probability 1/dims by Gaussian noise of the given sigma,
// clamped back into [0,1] (spec.md §4.9, "discrete one-plus-one style
// GA"). The mutation draws from rng in a fixed, dimension-major order so
// that two runs with the same seed and batch sizes consume rng calls
// identically regardless of which goroutine later evaluates each
// candidate (spec.md R2).
func mutate(base eval.Candidate, rng *rand.Rand, sigma float64) eval.Candidate {
	dims := 2 * len(base)
	rate := 1.0 / float64(dims)

	out := make(eval.Candidate, len(base))
	copy(out, base)
	for i := range out {
		for axis := 0; axis < 2; axis++ {
			if rng.Float64() >= rate {
				continue
			}
			v := out[i][axis] + rng.NormFloat64()*sigma
			out[i][axis] = clamp01(v)
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// penaltyBase offsets any infeasible candidate's score above every
// realistic feasible one, while keeping it finite so two infeasible
// candidates still order by how infeasible they are.
const penaltyBase = 1e18

// scoreOf maps a Result onto the single scalar the search minimises: a
// nonzero penalty always outranks (is worse than) a feasible score, and
// infeasible candidates are ordered among themselves by penalty (spec.md
// §4.7, §7 "evaluation failures ... reported as infinite penalty"). Both
// branches fall back to +Inf on a non-finite value rather than letting it
// flow into an always-false NaN comparison below (spec.md §7).
func scoreOf(r eval.Result) float64 {
	if r.Penalty != 0 {
		if math.IsNaN(r.Penalty) || math.IsInf(r.Penalty, 0) {
			return math.Inf(1)
		}
		return penaltyBase + r.Penalty
	}
	if math.IsNaN(r.Score) || math.IsInf(r.Score, 0) {
		return math.Inf(1)
	}
	return r.Score
}
