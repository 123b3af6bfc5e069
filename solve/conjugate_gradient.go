// SPDX-License-Identifier: MIT
// Package solve: exact conjugate-direction solver.

package solve

import (
	"gonum.org/v1/gonum/floats"

	"github.com/merelind/lapwing/graph"
	"github.com/merelind/lapwing/sparse"
)

// Curvatures at or below this are treated as zero; for a Laplacian the
// corresponding directions lie in the kernel.
const zeroCurvatureTol = 1e-10

// SolveLaplacianExactConjugateGradient solves L*x = b exactly by conjugate
// directions. The standard basis is turned into an L-conjugate basis
// p_1, ..., p_n by Gram-Schmidt in the L-inner product; any solution then
// decomposes as x = sum_k alpha_k p_k with
//
//	alpha_k = (p_k . b) / (p_k . L p_k),
//
// because multiplying L*x = b by p_k kills every other term of the sum.
//
// Directions of (numerically) zero curvature p.(L p) span the kernel of L
// and are skipped, so consistent singular systems are solved too. For an
// inconsistent b no solution exists; the returned x only satisfies
// p.(L x - b) = 0 for every kept direction, and SolveLaplacian turns the
// leftover residual into ErrConvergence.
//
// The method is exact rather than iterative and is provided for study and
// for small systems; prefer SolveLaplacian elsewhere.
//
// Errors: sparse.ErrDimensionMismatch for a wrong-length b.
// Complexity: O(n^3 + n*nnz) time, O(n^2) space.
func SolveLaplacianExactConjugateGradient(g *graph.Graph, b []float64) ([]float64, error) {
	const op = "SolveLaplacianExactConjugateGradient"
	n := g.NumberOfVertices()
	if len(b) != n {
		return nil, solveErrorf(op, sparse.ErrDimensionMismatch, "len(b) = %d, want %d", len(b), n)
	}
	lap := g.Laplacian()

	x := make([]float64, n)
	basis := make([][]float64, 0, n)
	images := make([][]float64, 0, n) // cached L*p per kept direction
	curvatures := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		p := make([]float64, n)
		p[i] = 1
		// Project e_i off every kept direction. The L-inner product
		// (e_i . L p_j) is entry i of the cached image, so each
		// coefficient costs O(1).
		for j := range basis {
			floats.AddScaled(p, -images[j][i]/curvatures[j], basis[j])
		}

		lp, _ := lap.MulVec(p) // length checked above
		curv := floats.Dot(p, lp)
		if curv <= zeroCurvatureTol {
			continue
		}

		floats.AddScaled(x, floats.Dot(p, b)/curv, p)
		basis = append(basis, p)
		images = append(images, lp)
		curvatures = append(curvatures, curv)
	}

	return x, nil
}
