// SPDX-License-Identifier: MIT
// Package cluster: approximate personalised PageRank via the ACL push
// process of Andersen, Chung and Lang (FOCS 2006).

package cluster

import (
	"fmt"
	"sort"

	"github.com/merelind/lapwing/graph"
	"github.com/merelind/lapwing/sparse"
)

// clusterErrorf wraps a sentinel with operation context.
func clusterErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("cluster.%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}

// ApproximatePagerank computes an approximate personalised PageRank vector
// by the ACL push process. It maintains an estimate p and a residual r,
// starting from p = 0, r = seed, and repeatedly pushes any vertex u whose
// residual violates r[u] <= eps*deg(u): the push moves alpha*r[u] onto
// p[u] and spreads the remaining (1-alpha)*r[u] over u's neighbours in
// proportion to edge weight. A degree-0 vertex absorbs its whole residual
// into p, since a random walk cannot leave it.
//
// Throughout the process p + ppr(r, alpha) = ppr(seed, alpha), so on
// return p approximates the personalised PageRank of seed with total
// undistributed mass bounded by eps times the explored volume.
//
// The graph is only accessed through the LocalGraph queries, one vertex at
// a time, and the running time depends on alpha and eps rather than on the
// graph size. Both return vectors are m x 1 columns, m = 1 + the highest
// vertex index touched by the process.
//
// Errors: ErrSeedFormat when seed is not a single column,
// ErrInvalidParameter when alpha is outside (0, 1] or eps <= 0.
func ApproximatePagerank(g graph.LocalGraph, seed *sparse.Matrix, alpha, eps float64, opts ...Option) (p, r *sparse.Matrix, err error) {
	const op = "ApproximatePagerank"
	if seed == nil || seed.Cols() != 1 {
		return nil, nil, clusterErrorf(op, ErrSeedFormat, "seed must be n x 1")
	}
	if !(alpha > 0 && alpha <= 1) {
		return nil, nil, clusterErrorf(op, ErrInvalidParameter, "alpha = %v, want (0, 1]", alpha)
	}
	if !(eps > 0) {
		return nil, nil, clusterErrorf(op, ErrInvalidParameter, "eps = %v, want > 0", eps)
	}
	o := gatherOptions(opts...)

	est := make(map[int]float64)
	res := make(map[int]float64)
	degs := make(map[int]float64)
	degOf := func(u int) float64 {
		d, ok := degs[u]
		if !ok {
			d = g.Degree(u)
			degs[u] = d
		}

		return d
	}
	// violating reports whether u's residual still exceeds the push
	// threshold; degree-0 vertices violate on any positive residual.
	violating := func(u int) bool {
		if d := degOf(u); d > 0 {
			return res[u] > eps*d
		}

		return res[u] > 0
	}

	var queue []int
	queued := make(map[int]bool)
	for i := 0; i < seed.Rows(); i++ {
		_, vals := seed.RawRow(i)
		if len(vals) == 0 {
			continue
		}
		res[i] = vals[0]
		if violating(i) {
			queue = append(queue, i)
			queued[i] = true
		}
	}

	var pushes int
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		delete(queued, u)

		// A self-loop returns mass to res[u], so one dequeue may take
		// several pushes before u satisfies the threshold. Repeating here
		// is equivalent to re-queueing u at the front.
		for {
			ru := res[u]
			delete(res, u)
			pushes++

			du := degOf(u)
			if du <= 0 {
				est[u] += ru

				break
			}
			est[u] += alpha * ru
			spread := (1 - alpha) * ru / du
			for _, e := range g.Neighbors(u) {
				// Skip zero contributions so the touched set only grows
				// where mass actually arrives.
				if c := spread * e.Weight; c != 0 {
					res[e.V] += c
				}
			}
			if !violating(u) {
				break
			}
		}
		for _, v := range g.NeighborsUnweighted(u) {
			if !queued[v] && violating(v) {
				queue = append(queue, v)
				queued[v] = true
			}
		}
	}

	o.logger.Debug().
		Float64("alpha", alpha).
		Float64("eps", eps).
		Int("pushes", pushes).
		Int("estimate_support", len(est)).
		Int("residual_support", len(res)).
		Msg("pagerank push converged")

	m := 1 + maxTouched(est, res)
	pOut, err := columnFromMap(m, est)
	if err != nil {
		return nil, nil, fmt.Errorf("cluster.%s: %w", op, err)
	}
	rOut, err := columnFromMap(m, res)
	if err != nil {
		return nil, nil, fmt.Errorf("cluster.%s: %w", op, err)
	}

	return pOut, rOut, nil
}

// maxTouched returns the highest vertex index present in either map, 0
// when both are empty.
func maxTouched(a, b map[int]float64) int {
	m := 0
	for u := range a {
		if u > m {
			m = u
		}
	}
	for u := range b {
		if u > m {
			m = u
		}
	}

	return m
}

// columnFromMap assembles an m x 1 sparse column from a vertex-to-value
// map, emitting entries in ascending vertex order.
func columnFromMap(m int, entries map[int]float64) (*sparse.Matrix, error) {
	idx := make([]int, 0, len(entries))
	for u := range entries {
		idx = append(idx, u)
	}
	sort.Ints(idx)

	ts := make([]sparse.Triplet, len(idx))
	for k, u := range idx {
		ts[k] = sparse.Triplet{Row: u, Col: 0, Value: entries[u]}
	}

	return sparse.NewFromTriplets(m, 1, ts)
}
