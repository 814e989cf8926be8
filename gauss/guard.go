// SPDX-License-Identifier: MIT
package gauss

import (
	"fmt"
	"math"
)

// checkPivot fails with ErrSingularMatrix when |a[i][i]| <= threshold.
// The tolerance is absolute.
func checkPivot(a [][]float64, i int, threshold float64) error {
	if mag := math.Abs(a[i][i]); mag <= threshold {
		return fmt.Errorf("step %d: |pivot| %g <= %g: %w", i, mag, threshold, ErrSingularMatrix)
	}

	return nil
}
