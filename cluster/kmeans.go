// SPDX-License-Identifier: MIT
// Package cluster: seeded k-means for the spectral embedding.

package cluster

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
)

// kMeans clusters the points into k groups with Lloyd's algorithm and
// k-means++ initialisation. All randomness comes from the given seed, ties
// go to the lowest centroid index, and an empty cluster keeps its previous
// centroid, so the labelling is a pure function of the inputs.
func kMeans(points [][]float64, k int, seed int64, maxIter int, logger zerolog.Logger) []int {
	n := len(points)
	rng := rand.New(rand.NewSource(seed))
	centroids := seedCentroids(points, k, rng)

	labels := make([]int, n)
	dim := len(points[0])
	sums := make([][]float64, k)
	counts := make([]int, k)
	for c := range sums {
		sums[c] = make([]float64, dim)
	}

	iters := 0
	for ; iters < maxIter; iters++ {
		changed := false
		for i, pt := range points {
			best, bestDist := 0, math.Inf(1)
			for c, cent := range centroids {
				if d := floats.Distance(pt, cent, 2); d < bestDist {
					bestDist = d
					best = c
				}
			}
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}
		// The initial labels are all zero, which the first assignment may
		// reproduce legitimately, so convergence only counts from the
		// second round.
		if !changed && iters > 0 {
			break
		}

		for c := range sums {
			for d := range sums[c] {
				sums[c][d] = 0
			}
			counts[c] = 0
		}
		for i, pt := range points {
			floats.Add(sums[labels[i]], pt)
			counts[labels[i]]++
		}
		for c := range centroids {
			if counts[c] == 0 {
				continue
			}
			copy(centroids[c], sums[c])
			floats.Scale(1/float64(counts[c]), centroids[c])
		}
	}

	logger.Debug().
		Int("k", k).
		Int("points", n).
		Int("iterations", iters).
		Msg("k-means finished")

	return labels
}

// seedCentroids draws k initial centroids with k-means++: the first
// uniformly, each next with probability proportional to the squared
// distance from the nearest centroid chosen so far. When every remaining
// point coincides with a centroid the next unchosen point is taken, so the
// routine always returns k centroids for k <= len(points).
func seedCentroids(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(points)
	centroids := make([][]float64, 0, k)
	chosen := make([]bool, n)

	pick := func(i int) {
		c := make([]float64, len(points[i]))
		copy(c, points[i])
		centroids = append(centroids, c)
		chosen[i] = true
	}
	pick(rng.Intn(n))

	dist2 := make([]float64, n)
	for len(centroids) < k {
		var total float64
		for i, pt := range points {
			if chosen[i] {
				dist2[i] = 0
				continue
			}
			nearest := math.Inf(1)
			for _, cent := range centroids {
				if d := floats.Distance(pt, cent, 2); d < nearest {
					nearest = d
				}
			}
			dist2[i] = nearest * nearest
			total += dist2[i]
		}

		next := -1
		if total > 0 {
			target := rng.Float64() * total
			var cum float64
			for i := range points {
				cum += dist2[i]
				if cum > target {
					next = i
					break
				}
			}
		}
		if next == -1 {
			for i := range points {
				if !chosen[i] {
					next = i
					break
				}
			}
		}
		pick(next)
	}

	return centroids
}
