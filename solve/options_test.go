// SPDX-License-Identifier: MIT

package solve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merelind/lapwing/solve"
)

// TestDefaultOptions verifies that gathering with no overrides yields the
// documented default cap.
func TestDefaultOptions(t *testing.T) {
	o := solve.GatherOptionsSnapshot_TestOnly()
	require.Equal(t, solve.DefaultMaxIterations, o.MaxIterations)
}

// TestOptionsLastWriterWins ensures repeated setters override in order.
func TestOptionsLastWriterWins(t *testing.T) {
	o := solve.GatherOptionsSnapshot_TestOnly(
		solve.WithMaxIterations(5),
		solve.WithMaxIterations(9),
	)
	require.Equal(t, 9, o.MaxIterations)
}

// TestOptionPanics validates the parameter guard in WithMaxIterations.
func TestOptionPanics(t *testing.T) {
	for _, n := range []int{0, -2} {
		require.PanicsWithValue(t, solve.PanicMaxIterationsInvalid_TestOnly, func() {
			solve.WithMaxIterations(n)
		}, "maxIterations = %d", n)
	}
}
