// Package buildctx provides the logging and timing context shared by every
// phase of a Matryoshka run, grounded on the teacher's Context/Contexter
// pair (buildcontext.go, recast/context.go): a single mutex-protected sink,
// named timers per phase, and a verbosity level gating which records are
// emitted (spec.md §6 "logging_verbosity").
//
// Unlike the teacher, which logs through an interface implemented
// separately per concrete use (stdout dump, in-memory ring buffer), this
// Context writes directly to an io.Writer: the spec's log format is a flat
// stream of "key:value" records (spec.md §6 "Persisted state"), not a
// structured message log, so there is nothing a second implementation would
// vary.
package buildctx

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// TimerLabel names one of the phases tracked by a Context.
type TimerLabel int

// Phase timers for the build, optimise and finalise phases of a run
// (spec.md §4.9).
const (
	TimerBuild TimerLabel = iota
	TimerOptimise
	TimerFinalise
	numTimers
)

// Context is the shared logging/timing handle passed to every evaluator
// and to the optimiser driver. Logf and Warningf are safe for concurrent
// use and acquire its mutex only for the duration of a single flushed
// record (spec.md §5); the timers are not synchronised.
type Context struct {
	mu        sync.Mutex
	w         io.Writer
	Verbosity int

	start [numTimers]time.Time
	acc   [numTimers]time.Duration
}

// New returns a Context writing to w at the given verbosity (0..3, spec.md
// §6).
func New(w io.Writer, verbosity int) *Context {
	return &Context{w: w, Verbosity: verbosity}
}

// StartTimer starts the named timer.
func (c *Context) StartTimer(label TimerLabel) {
	c.start[label] = time.Now()
}

// StopTimer accumulates the elapsed time since the matching StartTimer
// call into the named timer's total.
func (c *Context) StopTimer(label TimerLabel) {
	c.acc[label] += time.Since(c.start[label])
}

// AccumulatedTime returns the total time accumulated on the named timer.
func (c *Context) AccumulatedTime(label TimerLabel) time.Duration {
	return c.acc[label]
}

// Logf writes a single record if the Context's verbosity is at least
// minVerbosity, acquiring the sink's mutex only for the write itself.
func (c *Context) Logf(minVerbosity int, format string, args ...interface{}) {
	if c.Verbosity < minVerbosity {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, format+"\n", args...)
}

// Warningf always logs a warning line, regardless of verbosity — build
// failures and dropped-in-final-recompute conditions are not optional
// diagnostics (mirrors the teacher's Context.Warningf having no gate).
func (c *Context) Warningf(format string, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "WARN "+format+"\n", args...)
}
