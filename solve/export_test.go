// SPDX-License-Identifier: MIT

package solve

// Test-only bridge: expose the resolved options and panic messages to
// solve_test without widening the production API.

// Panic message export to avoid magic strings in tests.
const PanicMaxIterationsInvalid_TestOnly = panicMaxIterationsInvalid

// OptionsSnapshot is a read-only copy of the internal Options fields.
type OptionsSnapshot struct {
	MaxIterations int
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly the way the public
// entry points do and returns a snapshot of the result.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{MaxIterations: o.maxIterations}
}
