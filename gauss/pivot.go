// SPDX-License-Identifier: MIT
package gauss

import "math"

// selectPivot returns the row in [col, n) whose entry in column col has the
// greatest magnitude. Comparison is strict, so the lowest index wins ties.
// Read-only; O(n-col).
func selectPivot(a [][]float64, col, n int) int {
	p := col
	best := math.Abs(a[col][col])
	for r := col + 1; r < n; r++ {
		if v := math.Abs(a[r][col]); v > best {
			p, best = r, v
		}
	}

	return p
}
