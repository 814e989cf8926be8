// SPDX-License-Identifier: MIT
package gauss

// State is the lifecycle position of a System.
//
//	Ready → Validating → Eliminating → BackSubstituting → Done
//	             ↓              ↓
//	          Invalid        Singular
//
// Done, Invalid and Singular are terminal.
type State int

const (
	// StateReady: constructed, Solve not yet called.
	StateReady State = iota
	// StateValidating: shape (and optional finiteness) checks in progress.
	StateValidating
	// StateEliminating: forward elimination with partial pivoting.
	StateEliminating
	// StateBackSubstituting: recovering unknowns from the upper-triangular system.
	StateBackSubstituting
	// StateDone: a solution was produced.
	StateDone
	// StateSingular: a pivot failed the singularity guard.
	StateSingular
	// StateInvalid: validation or option parsing failed.
	StateInvalid
)

var stateNames = [...]string{
	StateReady:            "ready",
	StateValidating:       "validating",
	StateEliminating:      "eliminating",
	StateBackSubstituting: "back-substituting",
	StateDone:             "done",
	StateSingular:         "singular",
	StateInvalid:          "invalid",
}

// String returns a stable lowercase name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateDone || s == StateSingular || s == StateInvalid
}

// Problem is one independent system for SolveBatch.
// A and B are never mutated; each solve works on a private copy.
type Problem struct {
	A [][]float64
	B []float64
}

// Outcome pairs a solution with its error; exactly one of X and Err is set.
type Outcome struct {
	X   []float64
	Err error
}
