// SPDX-License-Identifier: MIT
package gauss

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// SolveBatch solves independent systems concurrently and returns one
// Outcome per Problem, in input order.
//
// Every problem is copied before solving (see SolveCopy), so no goroutine
// touches caller memory and problems may even share row slices. Per-system
// failures (ErrDimensionMismatch, ErrSingularMatrix, ...) are reported in
// Outcome.Err and never stop the batch.
//
// Cancellation: once ctx is done no new system is started; problems that
// were not solved get ctx.Err() as their Outcome.Err and the same error is
// returned as the batch error. A system already running finishes its
// bounded O(n³) work. If every system finished, the batch error is nil.
//
// Errors:
//   - ErrOptionViolation: an Option was invalid (no system is solved).
//   - ctx.Err()         : the context was cancelled or timed out.
func SolveBatch(ctx context.Context, problems []Problem, opts ...Option) ([]Outcome, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}

	out := make([]Outcome, len(problems))
	done := make([]bool, len(problems))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Concurrency)
	for i := range problems {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			x, err := SolveCopy(problems[i].A, problems[i].B, opts...)
			if err != nil {
				o.Logger.Debug("gauss: batch system failed", slog.Int("index", i), slog.Any("err", err))
			}
			out[i] = Outcome{X: x, Err: err}
			done[i] = true

			return nil
		})
	}
	_ = g.Wait() // goroutines only return gctx errors, re-derived from ctx below

	if err := ctx.Err(); err != nil {
		skipped := 0
		for i := range out {
			if !done[i] {
				out[i].Err = err
				skipped++
			}
		}
		if skipped == 0 {
			return out, nil
		}
		o.Logger.Warn("gauss: batch cancelled", slog.Int("skipped", skipped), slog.Any("err", err))

		return out, err
	}

	return out, nil
}
