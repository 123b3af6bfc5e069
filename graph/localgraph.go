// SPDX-License-Identifier: MIT
// Package graph: LocalGraph interface and the local vertex queries.

package graph

// Edge is one endpoint-to-endpoint connection with its weight. Equality is
// structural; an undirected edge appears once per direction in neighbour
// listings.
type Edge struct {
	U, V   int
	Weight float64
}

// LocalGraph is the access contract of the local clustering algorithms: a
// provider of vertex degrees and neighbourhoods, queried one vertex at a
// time. Implementations must tolerate queries for any vertex index,
// returning zero degree and empty neighbour lists outside their known
// range, so a consumer may probe beyond the frontier it has discovered so
// far. Graph implements LocalGraph.
type LocalGraph interface {
	// Degree returns the weighted degree of v, 0 if v is unknown.
	Degree(v int) float64

	// DegreeUnweighted returns the number of neighbours of v, 0 if v is
	// unknown.
	DegreeUnweighted(v int) int

	// Neighbors returns the edges incident to v, empty if v is unknown.
	Neighbors(v int) []Edge

	// NeighborsUnweighted returns the neighbour indices of v, empty if v
	// is unknown.
	NeighborsUnweighted(v int) []int
}

// Degree returns the weighted degree of v: the sum of the weights of v's
// incident edges, with a self-loop counted once. Returns 0 when v is
// outside [0, n).
// Complexity: O(nnz) on the first degree query, O(1) after.
func (g *Graph) Degree(v int) float64 {
	if v < 0 || v >= g.n {
		return 0
	}
	_, vals := g.DegreeMatrix().RawRow(v)

	return vals[0]
}

// DegreeUnweighted returns the number of stored adjacency entries in row v.
// Explicitly stored zero-weight edges count; that is the stored-entry
// convention used throughout the module. Returns 0 when v is outside
// [0, n).
// Complexity: O(1).
func (g *Graph) DegreeUnweighted(v int) int {
	cols, _ := g.adj.RawRow(v)

	return len(cols)
}

// Neighbors returns the edges incident to v, one Edge per stored adjacency
// entry with U = v, in ascending order of V. The slice is freshly
// allocated. Returns an empty slice when v is outside [0, n).
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) []Edge {
	cols, vals := g.adj.RawRow(v)
	edges := make([]Edge, len(cols))
	for k, j := range cols {
		edges[k] = Edge{U: v, V: j, Weight: vals[k]}
	}

	return edges
}

// NeighborsUnweighted returns the neighbour indices of v in ascending
// order. The slice is freshly allocated. Returns an empty slice when v is
// outside [0, n).
// Complexity: O(deg(v)).
func (g *Graph) NeighborsUnweighted(v int) []int {
	cols, _ := g.adj.RawRow(v)
	ns := make([]int, len(cols))
	copy(ns, cols)

	return ns
}
