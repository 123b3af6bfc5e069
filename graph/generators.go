// SPDX-License-Identifier: MIT
// Package graph: canonical graph constructors and seeded random models.

package graph

import (
	"fmt"
	"math/rand"

	"github.com/merelind/lapwing/sparse"
)

// CycleGraph returns the cycle on n vertices: vertex i is adjacent to
// (i+1) mod n and (i-1) mod n with weight 1. Requires n >= 3.
//
// Errors: ErrTooFewVertices.
// Complexity: O(n) time and space.
func CycleGraph(n int) (*Graph, error) {
	if n < 3 {
		return nil, graphErrorf("CycleGraph", ErrTooFewVertices, "n = %d, need n >= 3", n)
	}
	ts := make([]sparse.Triplet, 0, 2*n)
	for i := 0; i < n; i++ {
		ts = append(ts,
			sparse.Triplet{Row: i, Col: (i + n + 1) % n, Value: 1},
			sparse.Triplet{Row: i, Col: (i + n - 1) % n, Value: 1},
		)
	}

	return fromTriplets("CycleGraph", n, ts)
}

// CompleteGraph returns the complete graph on n vertices: every pair of
// distinct vertices is adjacent with weight 1. Requires n >= 1.
//
// Errors: ErrTooFewVertices.
// Complexity: O(n^2) time and space.
func CompleteGraph(n int) (*Graph, error) {
	if n < 1 {
		return nil, graphErrorf("CompleteGraph", ErrTooFewVertices, "n = %d, need n >= 1", n)
	}
	ts := make([]sparse.Triplet, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				ts = append(ts, sparse.Triplet{Row: i, Col: j, Value: 1})
			}
		}
	}

	return fromTriplets("CompleteGraph", n, ts)
}

// BarbellGraph returns two disjoint complete graphs on n vertices each,
// joined by a single unit edge between vertex n-1 and vertex n. The result
// has 2n vertices. Requires n >= 2.
//
// Errors: ErrTooFewVertices.
// Complexity: O(n^2) time and space.
func BarbellGraph(n int) (*Graph, error) {
	if n < 2 {
		return nil, graphErrorf("BarbellGraph", ErrTooFewVertices, "n = %d, need n >= 2", n)
	}
	ts := make([]sparse.Triplet, 0, 2*n*(n-1)+2)
	for off := 0; off <= n; off += n {
		for i := off; i < off+n; i++ {
			for j := off; j < off+n; j++ {
				if i != j {
					ts = append(ts, sparse.Triplet{Row: i, Col: j, Value: 1})
				}
			}
		}
	}
	ts = append(ts,
		sparse.Triplet{Row: n - 1, Col: n, Value: 1},
		sparse.Triplet{Row: n, Col: n - 1, Value: 1},
	)

	return fromTriplets("BarbellGraph", 2*n, ts)
}

// StarGraph returns the star on n vertices: vertex 0 is adjacent to each of
// 1..n-1 with weight 1. Requires n >= 2.
//
// Errors: ErrTooFewVertices.
// Complexity: O(n) time and space.
func StarGraph(n int) (*Graph, error) {
	if n < 2 {
		return nil, graphErrorf("StarGraph", ErrTooFewVertices, "n = %d, need n >= 2", n)
	}
	ts := make([]sparse.Triplet, 0, 2*(n-1))
	for i := 1; i < n; i++ {
		ts = append(ts,
			sparse.Triplet{Row: 0, Col: i, Value: 1},
			sparse.Triplet{Row: i, Col: 0, Value: 1},
		)
	}

	return fromTriplets("StarGraph", n, ts)
}

// IdentityGraph returns the graph on n vertices whose adjacency matrix is
// the identity: a self-loop of weight 1 at every vertex and no other edges.
// Requires n >= 1.
//
// Errors: ErrTooFewVertices.
// Complexity: O(n) time and space.
func IdentityGraph(n int) (*Graph, error) {
	if n < 1 {
		return nil, graphErrorf("IdentityGraph", ErrTooFewVertices, "n = %d, need n >= 1", n)
	}
	ts := make([]sparse.Triplet, n)
	for i := 0; i < n; i++ {
		ts[i] = sparse.Triplet{Row: i, Col: i, Value: 1}
	}

	return fromTriplets("IdentityGraph", n, ts)
}

// ErdosRenyiGraph samples the G(n, p) random graph: each unordered pair of
// distinct vertices is independently present with probability p, weight 1.
// The sample is fully determined by seed; equal inputs produce identical
// graphs. Equivalent to a one-block stochastic block model. Requires
// n >= 1 and p in [0, 1].
//
// Errors: ErrTooFewVertices, ErrInvalidProbability.
// Complexity: O(n^2) time.
func ErdosRenyiGraph(n int, p float64, seed int64) (*Graph, error) {
	if n < 1 {
		return nil, graphErrorf("ErdosRenyiGraph", ErrTooFewVertices, "n = %d, need n >= 1", n)
	}
	if !validProbability(p) {
		return nil, graphErrorf("ErdosRenyiGraph", ErrInvalidProbability, "p = %v", p)
	}

	return sampleBlockModel("ErdosRenyiGraph", 1, n, p, 0, seed)
}

// StochasticBlockModel samples a graph of k blocks of clusterSize vertices
// each: vertex v belongs to block v/clusterSize, within-block pairs are
// present with probability p and cross-block pairs with probability q, all
// edges weight 1. The sample is fully determined by seed. Requires k >= 1,
// clusterSize >= 1 and p, q in [0, 1].
//
// Errors: ErrTooFewVertices, ErrInvalidProbability.
// Complexity: O((k*clusterSize)^2) time.
func StochasticBlockModel(k, clusterSize int, p, q float64, seed int64) (*Graph, error) {
	if k < 1 || clusterSize < 1 {
		return nil, graphErrorf("StochasticBlockModel", ErrTooFewVertices,
			"k = %d, clusterSize = %d, need both >= 1", k, clusterSize)
	}
	if !validProbability(p) || !validProbability(q) {
		return nil, graphErrorf("StochasticBlockModel", ErrInvalidProbability,
			"p = %v, q = %v", p, q)
	}

	return sampleBlockModel("StochasticBlockModel", k, clusterSize, p, q, seed)
}

// validProbability reports whether p lies in [0, 1]. Written to reject NaN.
func validProbability(p float64) bool {
	return p >= 0 && p <= 1
}

// sampleBlockModel draws one Bernoulli sample per unordered vertex pair in
// row-major order, so the output is a pure function of the arguments.
func sampleBlockModel(op string, k, clusterSize int, p, q float64, seed int64) (*Graph, error) {
	n := k * clusterSize
	rng := rand.New(rand.NewSource(seed))
	var ts []sparse.Triplet
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			prob := q
			if i/clusterSize == j/clusterSize {
				prob = p
			}
			if rng.Float64() < prob {
				ts = append(ts,
					sparse.Triplet{Row: i, Col: j, Value: 1},
					sparse.Triplet{Row: j, Col: i, Value: 1},
				)
			}
		}
	}

	return fromTriplets(op, n, ts)
}

// fromTriplets assembles a generator's triplets into a Graph. The triplet
// sets built above are symmetric and in range, so neither step can fail on
// them; errors are still propagated for uniformity.
func fromTriplets(op string, n int, ts []sparse.Triplet) (*Graph, error) {
	adj, err := sparse.NewFromTriplets(n, n, ts)
	if err != nil {
		return nil, fmt.Errorf("graph.%s: %w", op, err)
	}
	g, err := New(adj)
	if err != nil {
		return nil, fmt.Errorf("graph.%s: %w", op, err)
	}

	return g, nil
}
