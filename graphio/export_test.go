// SPDX-License-Identifier: MIT

package graphio

// Test-only bridge into the sort internals.

// SetSortChunkLines_TestOnly overrides the in-memory run length of
// SortEdgelist so tests can force multi-run merges, and returns a restore
// function.
func SetSortChunkLines_TestOnly(n int) (restore func()) {
	old := sortChunkLines
	sortChunkLines = n

	return func() { sortChunkLines = old }
}
