// Package linsolve is an in-memory toolkit for solving dense square linear
// systems A·x = b, with numerically careful defaults and no hidden I/O.
//
// 🚀 What is inside?
//
//	• gauss/ Gaussian elimination with partial pivoting: in-place Solve,
//	            non-destructive SolveCopy / SolveDense, concurrent SolveBatch,
//	            residual checks and a single-use System with diagnostics
//	            (state, pivots, swaps, determinant).
//	• matrix/ row-major Dense storage, validators and the MatVec kernel the
//	            solver uses to verify its answers.
//
// ✨ Guarantees
//
//   - Deterministic: fixed loop orders and a first-row-wins pivot tie-break.
//   - Explicit failures: ErrDimensionMismatch and ErrSingularMatrix are
//     sentinels matched with errors.Is; nothing prints, nothing panics.
//   - Clear ownership: Solve mutates its inputs, SolveCopy never does.
//
// Quick example:
//
//	x, err := gauss.Solve([][]float64{{2, 1}, {5, 7}}, []float64{11, 13})
//	// x ≈ [7.111111 -3.222222]
//
//	go get github.com/katalvlaran/linsolve
package linsolve
