// SPDX-License-Identifier: MIT
// Package gauss: sentinel error set.
// All solver failures are surfaced as one of these sentinels, usually wrapped
// with step or shape context. Match them with errors.Is; nothing in this
// package panics on user input.

package gauss

import "errors"

var (
	// ErrDimensionMismatch is returned when the matrix is empty, not square,
	// or its dimension disagrees with the RHS length. Detected before any
	// mutation, so the caller's data is untouched.
	ErrDimensionMismatch = errors.New("gauss: dimension mismatch")

	// ErrSingularMatrix is returned when a pivot magnitude is at or below the
	// singularity threshold. The matrix and RHS are left partially eliminated.
	ErrSingularMatrix = errors.New("gauss: matrix is singular or nearly singular")

	// ErrNonFinite is returned when WithRejectNonFinite is set and the input
	// holds a NaN or ±Inf entry. Detected before any mutation.
	ErrNonFinite = errors.New("gauss: NaN or Inf in input")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gauss: invalid option supplied")

	// ErrSystemConsumed is returned when Solve is called on a System that
	// already reached a terminal state.
	ErrSystemConsumed = errors.New("gauss: system already consumed")

	// ErrNotSolved is returned by diagnostics that need a successful solve.
	ErrNotSolved = errors.New("gauss: system not solved")
)
