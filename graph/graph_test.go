// SPDX-License-Identifier: MIT

package graph_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merelind/lapwing/graph"
	"github.com/merelind/lapwing/sparse"
)

// Compile-time check that Graph satisfies the local access contract.
var _ graph.LocalGraph = (*graph.Graph)(nil)

const tol = 1e-6

// testGraph builds the four-vertex fixture used throughout these tests:
// edges {0,1} w=2, {0,2} w=3.3333, {1,2} w=6, {2,3} w=1.
func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewFromRaw(
		[]int{0, 2, 4, 7, 8},
		[]int{1, 2, 0, 2, 0, 1, 3, 2},
		[]float64{2, 3.3333, 2, 6, 3.3333, 6, 1, 1},
	)
	require.NoError(t, err)

	return g
}

// TestNewRejectsNil verifies that a nil adjacency matrix is refused.
func TestNewRejectsNil(t *testing.T) {
	_, err := graph.New(nil)
	require.ErrorIs(t, err, graph.ErrNilAdjacency)
}

// TestNewRejectsNonSquare verifies that a rectangular matrix fails with
// ErrAsymmetric before any symmetry comparison runs.
func TestNewRejectsNonSquare(t *testing.T) {
	m, err := sparse.NewFromTriplets(2, 3, []sparse.Triplet{{Row: 0, Col: 1, Value: 1}})
	require.NoError(t, err)

	_, err = graph.New(m)
	require.ErrorIs(t, err, graph.ErrAsymmetric)
}

// TestNewRejectsAsymmetric perturbs one mirror entry of the fixture and
// expects construction to fail.
func TestNewRejectsAsymmetric(t *testing.T) {
	_, err := graph.NewFromRaw(
		[]int{0, 2, 4, 7, 8},
		[]int{1, 2, 0, 2, 0, 1, 3, 2},
		[]float64{2, 3.3333, 2, 6, 3, 6, 1, 1},
	)
	require.ErrorIs(t, err, graph.ErrAsymmetric)
}

// TestNewFromRawRejectsMalformed verifies that broken CSR arrays surface
// the sparse layer's storage error.
func TestNewFromRawRejectsMalformed(t *testing.T) {
	_, err := graph.NewFromRaw([]int{0, 2, 1}, []int{0, 1}, []float64{1, 1})
	require.ErrorIs(t, err, sparse.ErrBadStorage)
}

// TestAdjacencyRoundTrip verifies that the adjacency accessor exposes the
// construction arrays unchanged.
func TestAdjacencyRoundTrip(t *testing.T) {
	g := testGraph(t)
	adj := g.Adjacency()

	require.Equal(t, []int{0, 2, 4, 7, 8}, adj.OuterStarts())
	require.Equal(t, []int{1, 2, 0, 2, 0, 1, 3, 2}, adj.InnerIndices())
	require.InDeltaSlice(t, []float64{2, 3.3333, 2, 6, 3.3333, 6, 1, 1}, adj.Values(), tol)
}

// TestDegreeMatrix verifies the diagonal degree matrix, one explicit entry
// per vertex.
func TestDegreeMatrix(t *testing.T) {
	g := testGraph(t)
	d := g.DegreeMatrix()

	require.Equal(t, []int{0, 1, 2, 3, 4}, d.OuterStarts())
	require.Equal(t, []int{0, 1, 2, 3}, d.InnerIndices())
	require.InDeltaSlice(t, []float64{5.3333, 8, 10.3333, 1}, d.Values(), tol)
}

// TestLaplacian verifies L = D - A on the fixture, including the stored
// pattern produced by the union of both operands.
func TestLaplacian(t *testing.T) {
	g := testGraph(t)
	l := g.Laplacian()

	require.Equal(t, []int{0, 3, 6, 10, 12}, l.OuterStarts())
	require.Equal(t, []int{0, 1, 2, 0, 1, 2, 0, 1, 2, 3, 2, 3}, l.InnerIndices())
	require.InDeltaSlice(t, []float64{
		5.3333, -2, -3.3333,
		-2, 8, -6,
		-3.3333, -6, 10.3333, -1,
		-1, 1,
	}, l.Values(), tol)
}

// TestNormalisedLaplacian verifies N = I - D^(-1/2) A D^(-1/2) on the
// fixture: unit diagonal, off-diagonal -w/sqrt(d_i * d_j).
func TestNormalisedLaplacian(t *testing.T) {
	g := testGraph(t)
	nl := g.NormalisedLaplacian()

	d0, d1, d2 := 5.3333, 8.0, 10.3333 // d3 = 1
	require.Equal(t, []int{0, 3, 6, 10, 12}, nl.OuterStarts())
	require.Equal(t, []int{0, 1, 2, 0, 1, 2, 0, 1, 2, 3, 2, 3}, nl.InnerIndices())
	require.InDeltaSlice(t, []float64{
		1, -2 / math.Sqrt(d0*d1), -3.3333 / math.Sqrt(d0*d2),
		-2 / math.Sqrt(d1*d0), 1, -6 / math.Sqrt(d1*d2),
		-3.3333 / math.Sqrt(d2*d0), -6 / math.Sqrt(d2*d1), 1, -1 / math.Sqrt(d2),
		-1 / math.Sqrt(d2), 1,
	}, nl.Values(), tol)
}

// TestIsolatedVertex verifies the degree-0 conventions: an explicit zero in
// the degree matrix, an explicit zero diagonal in the Laplacian, and a row
// entirely absent from the normalised Laplacian.
func TestIsolatedVertex(t *testing.T) {
	g, err := graph.NewFromRaw([]int{0, 1, 2, 2}, []int{1, 0}, []float64{1, 1})
	require.NoError(t, err)

	d := g.DegreeMatrix()
	require.Equal(t, []int{0, 1, 2, 3}, d.OuterStarts())
	require.InDeltaSlice(t, []float64{1, 1, 0}, d.Values(), tol)

	l := g.Laplacian()
	require.Equal(t, []int{0, 2, 4, 5}, l.OuterStarts())
	require.Equal(t, []int{0, 1, 0, 1, 2}, l.InnerIndices())
	require.InDeltaSlice(t, []float64{1, -1, -1, 1, 0}, l.Values(), tol)

	nl := g.NormalisedLaplacian()
	require.Equal(t, []int{0, 2, 4, 4}, nl.OuterStarts())
	require.Equal(t, []int{0, 1, 0, 1}, nl.InnerIndices())
	require.InDeltaSlice(t, []float64{1, -1, -1, 1}, nl.Values(), tol)
}

// TestSelfLoop verifies self-loop conventions on a single looped vertex:
// the loop weight counts once towards the degree, the derived diagonals
// cancel to explicitly stored zeros, and the edge count loses the loop to
// integer division.
func TestSelfLoop(t *testing.T) {
	g, err := graph.NewFromRaw([]int{0, 1}, []int{0}, []float64{2})
	require.NoError(t, err)

	require.InDelta(t, 2, g.Degree(0), tol)
	require.Equal(t, 1, g.DegreeUnweighted(0))
	require.Equal(t, 0, g.NumberOfEdges())
	require.InDelta(t, 2, g.TotalVolume(), tol)

	l := g.Laplacian()
	require.Equal(t, []int{0, 1}, l.OuterStarts())
	require.InDeltaSlice(t, []float64{0}, l.Values(), tol)

	nl := g.NormalisedLaplacian()
	require.Equal(t, []int{0, 1}, nl.OuterStarts())
	require.InDeltaSlice(t, []float64{0}, nl.Values(), tol)
}

// TestCountsAndVolume checks the scalar graph summaries on the fixture.
func TestCountsAndVolume(t *testing.T) {
	g := testGraph(t)

	require.Equal(t, 4, g.NumberOfVertices())
	require.Equal(t, 4, g.NumberOfEdges())
	require.InDelta(t, 24.6666, g.TotalVolume(), tol)
}

// TestDegreeQueries verifies weighted and unweighted degrees, including the
// zero-result contract for out-of-range vertices.
func TestDegreeQueries(t *testing.T) {
	g := testGraph(t)

	require.InDelta(t, 5.3333, g.Degree(0), tol)
	require.InDelta(t, 10.3333, g.Degree(2), tol)
	require.Equal(t, 0.0, g.Degree(-1))
	require.Equal(t, 0.0, g.Degree(4))

	require.Equal(t, 2, g.DegreeUnweighted(0))
	require.Equal(t, 3, g.DegreeUnweighted(2))
	require.Equal(t, 0, g.DegreeUnweighted(-1))
	require.Equal(t, 0, g.DegreeUnweighted(9))
}

// TestNeighborQueries verifies neighbour listings in ascending index order
// and the empty-result contract for out-of-range vertices.
func TestNeighborQueries(t *testing.T) {
	g := testGraph(t)

	require.Equal(t, []graph.Edge{
		{U: 2, V: 0, Weight: 3.3333},
		{U: 2, V: 1, Weight: 6},
		{U: 2, V: 3, Weight: 1},
	}, g.Neighbors(2))
	require.Empty(t, g.Neighbors(-1))
	require.Empty(t, g.Neighbors(4))

	require.Equal(t, []int{1, 2}, g.NeighborsUnweighted(0))
	require.Empty(t, g.NeighborsUnweighted(17))
}

// TestDerivedMatricesCached verifies the compute-once contract: repeated
// accessor calls return the same pointer.
func TestDerivedMatricesCached(t *testing.T) {
	g := testGraph(t)

	require.Same(t, g.DegreeMatrix(), g.DegreeMatrix())
	require.Same(t, g.Laplacian(), g.Laplacian())
	require.Same(t, g.NormalisedLaplacian(), g.NormalisedLaplacian())
}

// TestConcurrentDerivedAccess hammers the lazy accessors from several
// goroutines; every caller must observe the same cached matrix.
func TestConcurrentDerivedAccess(t *testing.T) {
	g := testGraph(t)

	const workers = 8
	laps := make([]*sparse.Matrix, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			g.DegreeMatrix()
			g.NormalisedLaplacian()
			laps[w] = g.Laplacian()
		}(w)
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		require.Same(t, laps[0], laps[w])
	}
}

// TestEqual verifies structural adjacency equality, including that explicit
// zero entries distinguish otherwise equal graphs.
func TestEqual(t *testing.T) {
	a := testGraph(t)
	b := testGraph(t)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(nil))

	cycle, err := graph.CycleGraph(4)
	require.NoError(t, err)
	require.False(t, a.Equal(cycle))

	// Same numeric content, one extra explicitly stored zero pair {0,3}.
	withZero, err := graph.NewFromRaw(
		[]int{0, 3, 5, 8, 10},
		[]int{1, 2, 3, 0, 2, 0, 1, 3, 0, 2},
		[]float64{2, 3.3333, 0, 2, 6, 3.3333, 6, 1, 0, 1},
	)
	require.NoError(t, err)
	require.False(t, a.Equal(withZero))
}
