// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatVec_FastPathMatchesFallback compares *Dense and the hidden generic path.
func TestMatVec_FastPathMatchesFallback(t *testing.T) {
	m := MustDense(t, [][]float64{{2, 1}, {5, 7}, {0, -1}})
	x := []float64{3, -2}

	fast, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 1, 2}, fast)

	slow, err := matrix.MatVec(hide{m}, x)
	require.NoError(t, err)
	assert.Equal(t, fast, slow, "fast-path and fallback must agree bitwise")
}

// TestMatVec_Errors checks nil and length validation.
func TestMatVec_Errors(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 2}})

	_, err := matrix.MatVec(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.MatVec(m, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "MatVec")
}

// TestToRows copies both Dense and generic matrices.
func TestToRows(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 2}, {3, 4}})

	rows, err := matrix.ToRows(m)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, rows)

	rows, err = matrix.ToRows(hide{m})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, rows)

	_, err = matrix.ToRows(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
