// SPDX-License-Identifier: MIT
// Package solve: Gauss-Seidel iteration.

package solve

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/merelind/lapwing/graph"
	"github.com/merelind/lapwing/sparse"
)

// GaussSeidel solves a*x = b by the Gauss-Seidel method with the splitting
// P = lower(a), the lower-triangular part of a including the diagonal.
// Each round is one forward substitution
//
//	x[i] = (b[i] - sum_{j != i} a[i][j]*x[j]) / a[i][i],
//
// where the j < i terms come from the current sweep and the j > i terms
// from the previous one. The error e_k = ||a*x_k - b||_2 is checked before
// every round, so an already satisfying x_0 = 0 (in particular b = 0)
// returns immediately. Convergence is guaranteed when a is strictly
// diagonally dominant and may occur in other cases; on graph Laplacians it
// usually outruns Jacobi.
//
// Errors: ErrZeroDiagonal when any a[i][i] is zero or absent,
// sparse.ErrDimensionMismatch for a non-square a or a wrong-length b,
// ErrConvergence when the error is still above eps after the iteration cap.
// Complexity: O(iterations * (rows + nnz)) time, O(rows) space.
func GaussSeidel(a *sparse.Matrix, b []float64, eps float64, opts ...Option) ([]float64, error) {
	const op = "GaussSeidel"
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
			o.logger.Debug().Str("method", "gauss-seidel").Int("iterations", k).Float64("error", e).Msg("converged")

			return x, nil
		}
		if k >= o.maxIterations {
			return nil, solveErrorf(op, ErrConvergence, "error %g > eps %g after %d iterations", e, eps, k)
		}
		if k%progressLogInterval == 0 {
			o.logger.Debug().Str("method", "gauss-seidel").Int("iteration", k).Float64("error", e).Msg("solver progress")
		}

		// Forward substitution in place: x[j] already holds this sweep's
		// value for j < i and last sweep's value for j > i.
		for i := range x {
			sum := 0.0
			cols, vals := a.RawRow(i)
			for t, j := range cols {
				if j != i {
					sum += vals[t] * x[j]
				}
			}
			x[i] = (b[i] - sum) / diag[i]
		}
	}
}

// SolveLaplacianGaussSeidel solves the Laplacian system L*x = b for the
// Laplacian of g by the Gauss-Seidel method.
//
// Errors: as for GaussSeidel; ErrZeroDiagonal exactly when g has an
// isolated vertex.
func SolveLaplacianGaussSeidel(g *graph.Graph, b []float64, eps float64, opts ...Option) ([]float64, error) {
	x, err := GaussSeidel(g.Laplacian(), b, eps, opts...)
	if err != nil {
		return nil, fmt.Errorf("solve.SolveLaplacianGaussSeidel: %w", err)
	}

	return x, nil
}
