// SPDX-License-Identifier: MIT
package gauss

// swapRows exchanges rows i and p of a together with b[i] and b[p].
// Rows are swapped as slice headers; no element is copied.
func swapRows(a [][]float64, b []float64, i, p int) {
	if i == p {
		return
	}
	a[i], a[p] = a[p], a[i]
	b[i], b[p] = b[p], b[i]
}

// eliminateBelow zeroes column i under the pivot a[i][i] (assumed non-zero)
// and applies the same row operations to b. Columns left of i are already
// zero and are skipped.
//
// Complexity: O((n-i)²).
func eliminateBelow(a [][]float64, b []float64, i, n int) {
	pivotRow := a[i]
	pivot := pivotRow[i]
	for j := i + 1; j < n; j++ {
		row := a[j]
		factor := row[i] / pivot
		for k := i; k < n; k++ {
			row[k] -= factor * pivotRow[k]
		}
		b[j] -= factor * b[i]
	}
}
