// SPDX-License-Identifier: MIT
package gauss

import (
	"fmt"
	"math"
)

// validateSystem confirms a is a non-empty n×n grid and len(b) == n.
// It only reads its inputs.
func validateSystem(a [][]float64, b []float64) error {
	n := len(a)
	if n == 0 {
		return fmt.Errorf("empty matrix: %w", ErrDimensionMismatch)
	}
	for i, row := range a {
		if len(row) != n {
			return fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), n, ErrDimensionMismatch)
		}
	}
	if len(b) != n {
		return fmt.Errorf("matrix is %dx%d but rhs has %d entries: %w", n, n, len(b), ErrDimensionMismatch)
	}

	return nil
}

// validateFinite rejects NaN/±Inf in a (row-major order first) then b.
// Assumes validateSystem already passed.
func validateFinite(a [][]float64, b []float64) error {
	for i, row := range a {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("matrix[%d][%d] = %g: %w", i, j, v, ErrNonFinite)
			}
		}
	}
	for i, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("rhs[%d] = %g: %w", i, v, ErrNonFinite)
		}
	}

	return nil
}
