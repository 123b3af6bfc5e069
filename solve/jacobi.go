// SPDX-License-Identifier: MIT
// Package solve: Jacobi iteration.

package solve

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/merelind/lapwing/graph"
	"github.com/merelind/lapwing/sparse"
)

// Jacobi solves a*x = b by Jacobi iteration with the splitting
// P = diag(a). Each round solves P x_{k+1} = (P-a) x_k + b, which reduces
// entrywise to
//
//	x_{k+1}[i] = x_k[i] + (b[i] - (a x_k)[i]) / a[i][i].
//
// The error e_k = ||a*x_k - b||_2 is checked before every round, so an
// already satisfying x_0 = 0 (in particular b = 0) returns immediately.
// Convergence is guaranteed when a is strictly diagonally dominant and may
// occur in other cases.
//
// Errors: ErrZeroDiagonal when any a[i][i] is zero or absent,
// sparse.ErrDimensionMismatch for a non-square a or a wrong-length b,
// ErrConvergence when the error is still above eps after the iteration cap.
// Complexity: O(iterations * (rows + nnz)) time, O(rows) space.
func Jacobi(a *sparse.Matrix, b []float64, eps float64, opts ...Option) ([]float64, error) {
	const op = "Jacobi"
	o := gatherOptions(opts...)
	if err := checkSystem(op, a, b); err != nil {
		return nil, err
	}
	diag, err := diagonal(op, a)
	if err != nil {
		return nil, err
	}

	x := make([]float64, len(b))
	for k := 0; ; k++ {
		ax, _ := a.MulVec(x) // shape checked above
		e := floats.Distance(ax, b, 2)
		if e <= eps {
			o.logger.Debug().Str("method", "jacobi").Int("iterations", k).Float64("error", e).Msg("converged")

			return x, nil
		}
		if k >= o.maxIterations {
			return nil, solveErrorf(op, ErrConvergence, "error %g > eps %g after %d iterations", e, eps, k)
		}
		if k%progressLogInterval == 0 {
			o.logger.Debug().Str("method", "jacobi").Int("iteration", k).Float64("error", e).Msg("solver progress")
		}

		// All reads go through ax and b, so updating x in place still
		// performs a simultaneous Jacobi step.
		for i := range x {
			x[i] += (b[i] - ax[i]) / diag[i]
		}
	}
}

// SolveLaplacianJacobi solves the Laplacian system L*x = b for the
// Laplacian of g by Jacobi iteration.
//
// The Laplacian is only weakly diagonally dominant, so convergence depends
// on the graph; on bipartite graphs the iteration oscillates and fails.
// Prefer SolveLaplacian unless Jacobi is wanted explicitly.
//
// Errors: as for Jacobi; ErrZeroDiagonal exactly when g has an isolated
// vertex.
func SolveLaplacianJacobi(g *graph.Graph, b []float64, eps float64, opts ...Option) ([]float64, error) {
	x, err := Jacobi(g.Laplacian(), b, eps, opts...)
	if err != nil {
		return nil, fmt.Errorf("solve.SolveLaplacianJacobi: %w", err)
	}

	return x, nil
}
