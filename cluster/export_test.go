// SPDX-License-Identifier: MIT

package cluster

// Test-only bridge: expose the resolved options and panic messages to
// cluster_test without widening the production API.

// Panic message exports to avoid magic strings in tests.
const (
	PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
	PanicMaxIterInvalid_TestOnly = panicMaxIterInvalid
)

// OptionsSnapshot is a read-only copy of the internal Options fields.
type OptionsSnapshot struct {
	Eps           float64
	Seed          int64
	KMeansMaxIter int
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly the way the public
// entry points do and returns a snapshot of the result.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, Seed: o.seed, KMeansMaxIter: o.kmeansMaxIter}
}
