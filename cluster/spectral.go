// SPDX-License-Identifier: MIT
// Package cluster: spectral clustering on the normalised Laplacian.

package cluster

import (
	"gonum.org/v1/gonum/mat"

	"github.com/merelind/lapwing/graph"
)

// SpectralCluster partitions the graph into k clusters by the classic
// spectral method: compute the k eigenvectors of smallest eigenvalue of
// the normalised Laplacian, use them as a k-dimensional embedding of the
// vertices, and group the embedded points with k-means.
//
// The eigendecomposition is dense, so the method suits graphs of moderate
// size; for huge graphs use the local algorithms instead. The k-means
// stage is seeded (DefaultKMeansSeed, override with WithSeed) and capped
// at DefaultKMeansMaxIter Lloyd iterations (override with
// WithKMeansMaxIter), so a fixed seed always yields the same labelling.
// The result assigns every vertex a label in [0, k).
//
// Errors: ErrInvalidParameter when k is outside [1, n], ErrEigenFailure
// when the eigendecomposition does not converge.
// Complexity: O(n^3) time, O(n^2) space for the decomposition.
func SpectralCluster(g *graph.Graph, k int, opts ...Option) ([]int, error) {
	const op = "SpectralCluster"
	n := g.NumberOfVertices()
	if k < 1 || k > n {
		return nil, clusterErrorf(op, ErrInvalidParameter, "k = %d, n = %d", k, n)
	}
	o := gatherOptions(opts...)

	nl := g.NormalisedLaplacian()
	dense := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		cols, vals := nl.RawRow(i)
		for t, j := range cols {
			if j >= i {
				dense.SetSym(i, j, vals[t])
			}
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(dense, true) {
		return nil, clusterErrorf(op, ErrEigenFailure, "n = %d", n)
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Eigenvalues come out ascending, so the first k columns span the
	// smallest part of the spectrum.
	points := make([][]float64, n)
	for i := range points {
		row := make([]float64, k)
		for j := 0; j < k; j++ {
			row[j] = vecs.At(i, j)
		}
		points[i] = row
	}

	labels := kMeans(points, k, o.seed, o.kmeansMaxIter, o.logger)
	o.logger.Debug().
		Int("k", k).
		Int("n", n).
		Msg("spectral clustering done")

	return labels, nil
}
