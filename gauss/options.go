// SPDX-License-Identifier: MIT
// Package gauss provides tunable options for the elimination solver.
package gauss

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"runtime"
)

// DefaultThreshold is the absolute pivot magnitude at or below which a
// system is reported as singular. It is not scaled to the matrix: callers
// with very large or very small entries should pre-scale their input.
const DefaultThreshold = 1e-10

// DefaultRejectNonFinite keeps NaN/Inf checks off, so a solve performs only
// the shape validation by default.
const DefaultRejectNonFinite = false

// discardLogger swallows every record; it is the default Logger.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Option configures the solver via functional arguments.
// If an Option is invalid (e.g. a negative threshold) it is recorded
// internally and surfaced as ErrOptionViolation by the next solve.
type Option func(*Options)

// Options holds parameters and callbacks that customize a solve.
type Options struct {
	// Threshold is the absolute singularity tolerance (|pivot| <= Threshold ⇒ singular).
	Threshold float64

	// RejectNonFinite makes validation fail with ErrNonFinite on NaN/Inf input.
	RejectNonFinite bool

	// OnPivot is called at every elimination step after the row swap and
	// before the singularity check. Receives the step, the row index that was
	// selected as pivot (before the swap) and the pivot value.
	// SolveBatch calls it from several goroutines.
	OnPivot func(step, row int, value float64)

	// Logger receives Debug records for swaps, aborts and completion.
	Logger *slog.Logger

	// Concurrency bounds the number of systems SolveBatch solves at once.
	Concurrency int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Threshold 1e-10 (absolute)
//   - no NaN/Inf rejection
//   - no-op OnPivot hook
//   - a Logger that discards everything
//   - Concurrency = runtime.GOMAXPROCS(0)
func DefaultOptions() Options {
	return Options{
		Threshold:       DefaultThreshold,
		RejectNonFinite: DefaultRejectNonFinite,
		OnPivot:         func(int, int, float64) {},
		Logger:          discardLogger,
		Concurrency:     runtime.GOMAXPROCS(0),
	}
}

// WithThreshold overrides the singularity tolerance.
//
//	t >= 0 and finite: used as-is (t == 0 only rejects exact zero pivots)
//	otherwise:         ErrOptionViolation
func WithThreshold(t float64) Option {
	return func(o *Options) {
		if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
			o.err = fmt.Errorf("%w: threshold must be finite and non-negative (%g)", ErrOptionViolation, t)
			return
		}
		o.Threshold = t
	}
}

// WithRejectNonFinite enables NaN/±Inf rejection during validation.
func WithRejectNonFinite() Option {
	return func(o *Options) {
		o.RejectNonFinite = true
	}
}

// WithOnPivot registers a callback run at every elimination step.
func WithOnPivot(fn func(step, row int, value float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPivot = fn
		}
	}
}

// WithLogger sets the structured logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithConcurrency bounds SolveBatch parallelism; n must be >= 1.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: concurrency must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Concurrency = n
	}
}

// gatherOptions applies setters on top of DefaultOptions in order
// (last-writer-wins). The first recorded violation is kept.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	var firstErr error
	for _, set := range opts {
		if set == nil {
			continue
		}
		set(&o)
		if firstErr == nil && o.err != nil {
			firstErr = o.err
		}
	}
	o.err = firstErr

	return o
}
