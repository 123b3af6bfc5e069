// SPDX-License-Identifier: MIT
// Package solve: system validation and the automatic method chooser.

package solve

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/merelind/lapwing/graph"
	"github.com/merelind/lapwing/sparse"
)

// checkSystem validates the shape of a linear system a*x = b.
func checkSystem(op string, a *sparse.Matrix, b []float64) error {
	if a == nil {
		return solveErrorf(op, sparse.ErrDimensionMismatch, "nil matrix")
	}
	if a.Rows() != a.Cols() {
		return solveErrorf(op, sparse.ErrDimensionMismatch, "%dx%d matrix is not square", a.Rows(), a.Cols())
	}
	if len(b) != a.Rows() {
		return solveErrorf(op, sparse.ErrDimensionMismatch, "len(b) = %d, want %d", len(b), a.Rows())
	}

	return nil
}

// diagonal extracts diag(a) for the splitting methods. Column indices are
// ascending within a row, so the scan stops at the first index past i.
func diagonal(op string, a *sparse.Matrix) ([]float64, error) {
	n := a.Rows()
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		cols, vals := a.RawRow(i)
		for k, j := range cols {
			if j > i {
				break
			}
			if j == i {
				d[i] = vals[k]
				break
			}
		}
		if d[i] == 0 {
			return nil, solveErrorf(op, ErrZeroDiagonal, "row %d", i)
		}
	}

	return d, nil
}

// SolveLaplacian solves the Laplacian system L*x = b for the Laplacian of
// g, choosing the method automatically: Gauss-Seidel first, since it
// converges on the systems arising from connected graphs, with the exact
// conjugate-direction method as a fallback when Gauss-Seidel runs out of
// iterations. The fallback result is verified against eps before it is
// returned, so an inconsistent b still fails with ErrConvergence.
//
// Errors: ErrConvergence when no method reaches ||L*x - b||_2 <= eps,
// ErrZeroDiagonal for graphs with isolated vertices,
// sparse.ErrDimensionMismatch for a wrong-length b.
func SolveLaplacian(g *graph.Graph, b []float64, eps float64, opts ...Option) ([]float64, error) {
	const op = "SolveLaplacian"
	o := gatherOptions(opts...)

	x, err := GaussSeidel(g.Laplacian(), b, eps, opts...)
	if err == nil {
		return x, nil
	}
	if !errors.Is(err, ErrConvergence) {
		return nil, fmt.Errorf("solve.%s: %w", op, err)
	}

	o.logger.Debug().Msg("gauss-seidel stalled, re-solving by exact conjugate directions")
	x, err = SolveLaplacianExactConjugateGradient(g, b)
	if err != nil {
		return nil, fmt.Errorf("solve.%s: %w", op, err)
	}
	lx, _ := g.Laplacian().MulVec(x) // shape checked by the exact method
	if e := floats.Distance(lx, b, 2); e > eps {
		return nil, solveErrorf(op, ErrConvergence, "residual %g > eps %g after exact fallback", e, eps)
	}

	return x, nil
}
