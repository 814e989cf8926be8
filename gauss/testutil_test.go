// SPDX-License-Identifier: MIT
package gauss_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the component-wise tolerance used for solution comparisons.
const tol = 1e-6

// copyRows deep-copies a matrix so tests can keep the original.
func copyRows(a [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		out[i] = append([]float64(nil), a[i]...)
	}
	return out
}

// copyVec deep-copies a vector.
func copyVec(v []float64) []float64 { return append([]float64(nil), v...) }

// randomSystem builds a deterministic, diagonally dominant (hence
// non-singular) n×n system from seed.
func randomSystem(n int, seed int64) ([][]float64, []float64) {
	rng := rand.New(rand.NewSource(seed))
	a := make([][]float64, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = make([]float64, n)
		rowSum := 0.0
		for j := 0; j < n; j++ {
			a[i][j] = rng.Float64()*20 - 10
			if a[i][j] < 0 {
				rowSum -= a[i][j]
			} else {
				rowSum += a[i][j]
			}
		}
		a[i][i] += rowSum + 1
		b[i] = rng.Float64()*200 - 100
	}
	return a, b
}

// mustDense wraps rows into a *matrix.Dense or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}
