// SPDX-License-Identifier: MIT
package gauss

import (
	"fmt"
	"log/slog"
)

// System binds one matrix/RHS pair to exactly one solve.
//
// The matrix and RHS are owned by the System for the duration of Solve and
// are mutated in place. Once Solve returns, the System is in a terminal
// state and further Solve calls fail with ErrSystemConsumed, which keeps a
// partially eliminated matrix from being reused by accident.
//
// A System is not safe for concurrent use.
type System struct {
	a    [][]float64
	b    []float64
	opts Options

	state      State
	failedStep int   // step at which the guard fired, -1 otherwise
	pivots     []int // pivot row chosen at each attempted step
	swaps      int   // steps where the pivot row differed from the step index
}

// NewSystem wraps a and b without copying them. Options are resolved here;
// an invalid Option is reported by Solve.
func NewSystem(a [][]float64, b []float64, opts ...Option) *System {
	return &System{
		a:          a,
		b:          b,
		opts:       gatherOptions(opts...),
		state:      StateReady,
		failedStep: -1,
	}
}

// State reports the current lifecycle state.
func (s *System) State() State { return s.state }

// FailedStep returns the elimination step at which the system was found
// singular, or -1.
func (s *System) FailedStep() int { return s.failedStep }

// Pivots returns a copy of the pivot row selected at each attempted step.
// For a singular system the last entry is the rejected pivot.
func (s *System) Pivots() []int {
	return append([]int(nil), s.pivots...)
}

// Swaps returns the number of steps that exchanged two distinct rows.
func (s *System) Swaps() int { return s.swaps }

// Determinant returns det(A) of the original matrix, read off the reduced
// one as (-1)^swaps · Π a[i][i]. Only available after a successful Solve.
func (s *System) Determinant() (float64, error) {
	if s.state != StateDone {
		return 0, fmt.Errorf("determinant in state %s: %w", s.state, ErrNotSolved)
	}
	det := 1.0
	for i := range s.a {
		det *= s.a[i][i]
	}
	if s.swaps%2 == 1 {
		det = -det
	}

	return det, nil
}

// Solve runs validation, forward elimination with partial pivoting and back
// substitution.
//
// Algorithm Outline:
//  1. Validate: a is n×n with n ≥ 1 and len(b) == n (no mutation on failure).
//  2. For i = 0..n-1:
//     p = argmax_{r≥i} |a[r][i]| (first wins ties); swap rows i,p in a and b;
//     fail if |a[i][i]| <= Threshold; zero column i below the pivot.
//  3. Back-substitute from x[n-1] down to x[0].
//
// Returns a freshly allocated solution on success.
//
// Errors:
//   - ErrSystemConsumed   : the System is already terminal.
//   - ErrOptionViolation  : an Option was invalid.
//   - ErrDimensionMismatch: shape check failed; inputs untouched.
//   - ErrNonFinite        : NaN/Inf input with WithRejectNonFinite.
//   - ErrSingularMatrix   : pivot guard fired; inputs partially eliminated.
//
// Complexity: O(n³) time, O(n) extra space.
func (s *System) Solve() ([]float64, error) {
	if s.state != StateReady {
		return nil, fmt.Errorf("solve in state %s: %w", s.state, ErrSystemConsumed)
	}
	if s.opts.err != nil {
		s.state = StateInvalid
		return nil, s.opts.err
	}

	s.state = StateValidating
	if err := validateSystem(s.a, s.b); err != nil {
		s.state = StateInvalid
		return nil, err
	}
	if s.opts.RejectNonFinite {
		if err := validateFinite(s.a, s.b); err != nil {
			s.state = StateInvalid
			return nil, err
		}
	}

	n := len(s.a)
	log := s.opts.Logger
	s.state = StateEliminating
	s.pivots = make([]int, 0, n)
	for i := 0; i < n; i++ {
		p := selectPivot(s.a, i, n)
		s.pivots = append(s.pivots, p)
		if p != i {
			s.swaps++
			log.Debug("gauss: pivot swap", slog.Int("step", i), slog.Int("from", p), slog.Int("to", i))
		}
		swapRows(s.a, s.b, i, p)
		s.opts.OnPivot(i, p, s.a[i][i])

		if err := checkPivot(s.a, i, s.opts.Threshold); err != nil {
			s.state = StateSingular
			s.failedStep = i
			log.Debug("gauss: singular pivot",
				slog.Int("step", i),
				slog.Float64("pivot", s.a[i][i]),
				slog.Float64("threshold", s.opts.Threshold))
			return nil, err
		}
		eliminateBelow(s.a, s.b, i, n)
	}

	s.state = StateBackSubstituting
	x := backSubstitute(s.a, s.b, n)
	s.state = StateDone
	log.Debug("gauss: solved", slog.Int("n", n), slog.Int("swaps", s.swaps))

	return x, nil
}
