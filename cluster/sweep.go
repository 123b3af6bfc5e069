// SPDX-License-Identifier: MIT
// Package cluster: sweep sets, volume and conductance.

package cluster

import (
	"math"
	"sort"

	"github.com/merelind/lapwing/graph"
	"github.com/merelind/lapwing/sparse"
)

// SweepSet finds the minimum-conductance prefix of the stored entries of
// vec ordered by value descending (ties by vertex ascending). The scan
// maintains the prefix volume and cut incrementally: adding a vertex adds
// its degree to the volume and reclassifies each incident edge as internal
// or boundary; self-loops are internal mass and never cross the cut. The
// conductance of a prefix S is cut(S)/vol(S); prefixes of zero volume are
// skipped, and an empty support yields an empty set.
//
// The input is used as given: no degree normalisation is applied here.
// LocalClusterACL divides its PageRank estimate by vertex degree before
// sweeping; callers of SweepSet make their own choice. The cut/vol(S) form
// of conductance is meaningful while the support volume stays well below
// half the graph volume, which is the local-clustering regime; for an
// arbitrary vertex set use Conductance.
//
// Errors: ErrSeedFormat when vec is not a single column.
// Complexity: O(s log s + vol(support)) for s stored entries.
func SweepSet(g graph.LocalGraph, vec *sparse.Matrix) ([]int, error) {
	if vec == nil || vec.Cols() != 1 {
		return nil, clusterErrorf("SweepSet", ErrSeedFormat, "vec must be n x 1")
	}

	type scored struct {
		v   int
		val float64
	}
	support := make([]scored, 0, vec.NNZ())
	for i := 0; i < vec.Rows(); i++ {
		_, vals := vec.RawRow(i)
		if len(vals) != 0 {
			support = append(support, scored{v: i, val: vals[0]})
		}
	}
	sort.SliceStable(support, func(i, j int) bool {
		if support[i].val != support[j].val {
			return support[i].val > support[j].val
		}

		return support[i].v < support[j].v
	})

	inSet := make(map[int]bool, len(support))
	var vol, cut float64
	bestLen := 0
	bestCond := math.Inf(1)
	for k, s := range support {
		inSet[s.v] = true
		vol += g.Degree(s.v)
		for _, e := range g.Neighbors(s.v) {
			if e.V == s.v {
				continue
			}
			if inSet[e.V] {
				cut -= e.Weight
			} else {
				cut += e.Weight
			}
		}
		if vol <= 0 {
			continue
		}
		if cond := cut / vol; cond < bestCond {
			bestCond = cond
			bestLen = k + 1
		}
	}

	set := make([]int, bestLen)
	for k := 0; k < bestLen; k++ {
		set[k] = support[k].v
	}

	return set, nil
}

// Volume returns the sum of the weighted degrees of the vertices in set.
// Repeated vertices are summed as given.
// Complexity: O(len(set)) degree queries.
func Volume(g graph.LocalGraph, set []int) float64 {
	var vol float64
	for _, v := range set {
		vol += g.Degree(v)
	}

	return vol
}

// Conductance returns cut(S) / min(vol(S), vol(V minus S)) for the vertex
// set S, the symmetric form that treats a set and its complement alike. By
// convention the result is 0 when the denominator is 0, which covers the
// empty set, the whole graph and degree-0 sets.
// Complexity: O(vol(S)) adjacency reads plus one pass over the graph for
// the total volume.
func Conductance(g *graph.Graph, set []int) float64 {
	inSet := make(map[int]bool, len(set))
	for _, v := range set {
		inSet[v] = true
	}

	// Walk the given slice, not the map, so float accumulation order is
	// stable; repeated vertices are skipped.
	var volS, cut float64
	seen := make(map[int]bool, len(set))
	for _, v := range set {
		if seen[v] {
			continue
		}
		seen[v] = true
		volS += g.Degree(v)
		for _, e := range g.Neighbors(v) {
			if e.V == v {
				continue
			}
			if !inSet[e.V] {
				cut += e.Weight
			}
		}
	}

	denom := math.Min(volS, g.TotalVolume()-volS)
	if denom <= 0 {
		return 0
	}

	return cut / denom
}
