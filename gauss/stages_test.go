// SPDX-License-Identifier: MIT
package gauss_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/gauss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateSystem covers every shape failure and the accepted case.
func TestValidateSystem(t *testing.T) {
	tests := []struct {
		name    string
		a       [][]float64
		b       []float64
		wantErr bool
	}{
		{"1x1", [][]float64{{2}}, []float64{10}, false},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, []float64{1, 1}, false},
		{"nil matrix", nil, nil, true},
		{"empty matrix", [][]float64{}, []float64{}, true},
		{"non-square wide", [][]float64{{1, 2, 3}, {4, 5, 6}}, []float64{1, 1}, true},
		{"ragged", [][]float64{{1, 2}, {3}}, []float64{1, 1}, true},
		{"nil row", [][]float64{{1, 2}, nil}, []float64{1, 1}, true},
		{"short rhs", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, []float64{1, 2}, true},
		{"long rhs", [][]float64{{1}}, []float64{1, 2}, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := gauss.ValidateSystem_TestOnly(tc.a, tc.b)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, gauss.ErrDimensionMismatch)
		})
	}
}

// TestValidateFinite reports the first offending coordinate.
func TestValidateFinite(t *testing.T) {
	require.NoError(t, gauss.ValidateFinite_TestOnly([][]float64{{1}}, []float64{2}))

	err := gauss.ValidateFinite_TestOnly([][]float64{{1, math.NaN()}, {math.Inf(1), 1}}, []float64{0, 0})
	require.ErrorIs(t, err, gauss.ErrNonFinite)
	assert.Contains(t, err.Error(), "matrix[0][1]")

	err = gauss.ValidateFinite_TestOnly([][]float64{{1}}, []float64{math.Inf(-1)})
	require.ErrorIs(t, err, gauss.ErrNonFinite)
	assert.Contains(t, err.Error(), "rhs[0]")
}

// TestSelectPivot checks the largest-magnitude rule and the first-wins tie-break.
func TestSelectPivot(t *testing.T) {
	a := [][]float64{
		{1, 0, 0},
		{-4, 2, 0},
		{4, -2, 5},
	}
	assert.Equal(t, 1, gauss.SelectPivot_TestOnly(a, 0, 3), "|-4| and |4| tie: first row wins")
	assert.Equal(t, 1, gauss.SelectPivot_TestOnly(a, 1, 3), "|2| and |-2| tie at step 1")
	assert.Equal(t, 2, gauss.SelectPivot_TestOnly(a, 2, 3), "last step has a single candidate")

	zero := [][]float64{{0, 1}, {0, 3}}
	assert.Equal(t, 0, gauss.SelectPivot_TestOnly(zero, 0, 2), "all-zero column keeps the current row")

	// Rows above col are never considered.
	above := [][]float64{{0, 100}, {0, 1}}
	assert.Equal(t, 1, gauss.SelectPivot_TestOnly(above, 1, 2))
}

// TestCheckPivot exercises the inclusive absolute threshold.
func TestCheckPivot(t *testing.T) {
	tests := []struct {
		name      string
		pivot     float64
		threshold float64
		singular  bool
	}{
		{"exact zero", 0, 1e-10, true},
		{"at threshold", 1e-10, 1e-10, true},
		{"negative at threshold", -1e-10, 1e-10, true},
		{"just above", 2e-10, 1e-10, false},
		{"zero threshold accepts tiny", 1e-300, 0, false},
		{"zero threshold rejects zero", 0, 0, true},
		{"NaN passes", math.NaN(), 1e-10, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := gauss.CheckPivot_TestOnly([][]float64{{tc.pivot}}, 0, tc.threshold)
			if tc.singular {
				assert.ErrorIs(t, err, gauss.ErrSingularMatrix)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestSwapRows moves matrix rows and RHS entries in lockstep.
func TestSwapRows(t *testing.T) {
	a := [][]float64{{1, 2}, {3, 4}}
	b := []float64{5, 6}

	gauss.SwapRows_TestOnly(a, b, 0, 0)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, a, "i == p is a no-op")
	assert.Equal(t, []float64{5, 6}, b)

	gauss.SwapRows_TestOnly(a, b, 0, 1)
	assert.Equal(t, [][]float64{{3, 4}, {1, 2}}, a)
	assert.Equal(t, []float64{6, 5}, b)
}

// TestEliminateBelow zeroes the column under the pivot and updates the RHS.
func TestEliminateBelow(t *testing.T) {
	a := [][]float64{
		{2, 1, -1},
		{-3, -1, 2},
		{-2, 1, 2},
	}
	b := []float64{8, -11, -3}

	gauss.EliminateBelow_TestOnly(a, b, 0, 3)

	assert.Equal(t, []float64{2, 1, -1}, a[0], "pivot row is untouched")
	assert.Equal(t, []float64{0, 0.5, 0.5}, a[1])
	assert.Equal(t, []float64{0, 2, 1}, a[2])
	assert.Equal(t, []float64{8, 1, 5}, b)
}

// TestBackSubstitute solves an upper-triangular system.
func TestBackSubstitute(t *testing.T) {
	a := [][]float64{
		{2, 1, -1},
		{0, 0.5, 0.5},
		{0, 0, -1},
	}
	b := []float64{8, 1, 1}

	x := gauss.BackSubstitute_TestOnly(a, b, 3)
	assert.InDeltaSlice(t, []float64{2, 3, -1}, x, tol)
	assert.Equal(t, []float64{8, 1, 1}, b, "rhs is read-only here")
}
