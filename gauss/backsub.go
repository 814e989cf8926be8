// SPDX-License-Identifier: MIT
package gauss

// backSubstitute solves the upper-triangular system left by elimination,
// last unknown first:
//
//	x[i] = (b[i] - Σ_{j>i} a[i][j]·x[j]) / a[i][i]
//
// Every a[i][i] has already passed the singularity guard.
// The returned slice is freshly allocated.
func backSubstitute(a [][]float64, b []float64, n int) []float64 {
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := 0.0
		row := a[i]
		for j := i + 1; j < n; j++ {
			sum += row[j] * x[j]
		}
		x[i] = (b[i] - sum) / row[i]
	}

	return x
}
