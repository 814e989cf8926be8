// SPDX-License-Identifier: MIT
package gauss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// Operation tags for error wrapping.
const (
	opSolveDense = "SolveDense"
	opResidual   = "Residual"
)

// Solve solves a·x = b in place and returns x.
//
// Both a and b are mutated: rows of a are permuted (as slice headers) and
// reduced to upper-triangular form, b follows the same row operations.
// Callers that need the original values must copy them first, or use
// SolveCopy. On ErrSingularMatrix the inputs are left partially eliminated
// and must not be reused.
//
// Example:
//
//	x, err := gauss.Solve([][]float64{{2, 1}, {5, 7}}, []float64{11, 13})
//	// x ≈ [7.111111 -3.222222]
func Solve(a [][]float64, b []float64, opts ...Option) ([]float64, error) {
	return NewSystem(a, b, opts...).Solve()
}

// SolveCopy is Solve on deep copies of a and b; the caller's data is
// never modified.
func SolveCopy(a [][]float64, b []float64, opts ...Option) ([]float64, error) {
	return Solve(cloneRows(a), cloneVec(b), opts...)
}

// SolveDense solves m·x = b for any matrix.Matrix without mutating m or b.
//
// Shape failures reported by the matrix validators (nil matrix, non-square,
// wrong vector length) match both ErrDimensionMismatch and the underlying
// matrix sentinel.
func SolveDense(m matrix.Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opSolveDense, ErrDimensionMismatch, err)
	}
	if err := matrix.ValidateVecLen(b, m.Rows()); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opSolveDense, ErrDimensionMismatch, err)
	}
	rows, err := matrix.ToRows(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveDense, err)
	}

	return Solve(rows, cloneVec(b), opts...)
}

// Residual returns max_i |(a·x)_i − b_i|, the infinity norm of the residual.
// Use it on the ORIGINAL matrix and RHS to verify a solution.
//
// Errors: matrix.ErrNilMatrix or matrix.ErrDimensionMismatch (wrapped).
func Residual(a matrix.Matrix, x, b []float64) (float64, error) {
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opResidual, err)
	}
	if err = matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return 0, fmt.Errorf("%s: %w", opResidual, err)
	}

	worst := 0.0
	for i := range ax {
		worst = math.Max(worst, math.Abs(ax[i]-b[i]))
	}

	return worst, nil
}

// cloneRows deep-copies a, preserving nil rows and ragged lengths so that
// validation sees exactly what the caller passed.
func cloneRows(a [][]float64) [][]float64 {
	if a == nil {
		return nil
	}
	out := make([][]float64, len(a))
	for i, row := range a {
		out[i] = cloneVec(row)
	}

	return out
}

func cloneVec(v []float64) []float64 {
	if v == nil {
		return nil
	}
	return append(make([]float64, 0, len(v)), v...)
}
