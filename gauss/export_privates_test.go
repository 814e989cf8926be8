// SPDX-License-Identifier: MIT
package gauss

// Test bridge: exposes unexported pipeline stages to gauss_test only.
var (
	ValidateSystem_TestOnly = validateSystem
	ValidateFinite_TestOnly = validateFinite
	SelectPivot_TestOnly    = selectPivot
	CheckPivot_TestOnly     = checkPivot
	SwapRows_TestOnly       = swapRows
	EliminateBelow_TestOnly = eliminateBelow
	BackSubstitute_TestOnly = backSubstitute
	GatherOptions_TestOnly  = gatherOptions
)

// OptionsErr_TestOnly returns the violation recorded while applying options.
func OptionsErr_TestOnly(o Options) error { return o.err }
