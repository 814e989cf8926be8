// SPDX-License-Identifier: MIT

// Package gauss solves dense square linear systems A·x = b by Gaussian
// elimination with partial pivoting.
//
// What
//
//   - Solve / NewSystem(...).Solve: in-place solve on [][]float64 input.
//   - SolveCopy: same, on private copies of the caller's data.
//   - SolveDense: accepts any matrix.Matrix (e.g. *matrix.Dense).
//   - SolveBatch: many independent systems concurrently (errgroup, bounded).
//   - Residual: max |A·x − b| to verify a solution against the original data.
//   - System diagnostics: State, FailedStep, Pivots, Swaps, Determinant.
//
// Pipeline
//
//	Validate → (Pivot → Guard → Eliminate) × n → BackSubstitute
//
//   - Validate: matrix is n×n with n ≥ 1 and len(b) == n. Runs before any
//     mutation, so ErrDimensionMismatch leaves the inputs untouched.
//   - Pivot: the row at or below step i with the largest |a[r][i]|; strict
//     comparison, so the first such row wins ties.
//   - Guard: |a[i][i]| <= Threshold (default 1e-10, absolute) aborts with
//     ErrSingularMatrix. No rollback: the inputs stay partially eliminated.
//   - Eliminate: row swap in a and b, then zero column i below the pivot.
//   - BackSubstitute: x[n-1] first, down to x[0].
//
// Ownership
//
//	Solve mutates both a and b. A System is single-use: after Done, Singular
//	or Invalid, Solve returns ErrSystemConsumed. Never share one matrix
//	between concurrent solves; SolveBatch copies every problem for you.
//
// Determinism
//
//	Fixed loop orders and a fixed tie-break give bit-identical results and
//	pivot sequences for identical inputs.
//
// Options
//
//	WithThreshold, WithRejectNonFinite, WithOnPivot (hook), WithLogger
//	(log/slog, Debug level), WithConcurrency (SolveBatch).
//
// Complexity
//
//   - Time:   O(n³)
//   - Memory: O(n) beyond the inputs (the solution vector)
package gauss
