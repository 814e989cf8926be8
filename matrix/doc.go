// SPDX-License-Identifier: MIT

// Package matrix offers the dense storage and small kernels that the
// linear solvers in this module are built on.
//
// The matrix package provides:
//
//   - Matrix, a minimal mutable 2-D interface (Rows, Cols, At, Set, Clone).
//   - Dense, a row-major flat-buffer implementation with safe accessors and
//     an optional finite-only numeric policy.
//   - Validators (ValidateSquareNonNil, ValidateVecLen, ValidateFinite) that
//     return wrapped sentinels for errors.Is matching.
//   - MatVec (y = A·x) used for residual checks, and ToRows / RowsCopy to hand
//     an independent [][]float64 copy to in-place algorithms.
//
// All public functions are deterministic (fixed loop orders) and never panic
// on user input.
package matrix
