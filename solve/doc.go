// SPDX-License-Identifier: MIT

// Package solve provides solvers for Laplacian linear systems L*x = b and
// for general sparse systems with a usable diagonal.
//
// The solve package provides:
//
//   - Jacobi and GaussSeidel, classical splitting iterations over any
//     square sparse matrix, and the SolveLaplacianJacobi /
//     SolveLaplacianGaussSeidel entry points that run them on a graph's
//     Laplacian.
//   - SolveLaplacianExactConjugateGradient, an exact conjugate-direction
//     method that also handles the singular but consistent systems every
//     Laplacian produces.
//   - SolveLaplacian, the automatic chooser: Gauss-Seidel first, exact
//     conjugate directions as the fallback, with the fallback result
//     verified against eps.
//
// Both iterative methods measure the error as e_k = ||A*x_k - b||_2 and
// check it before each round, so a satisfying start vector (in particular
// b = 0) returns without iterating. The iteration cap defaults to
// DefaultMaxIterations and is set with WithMaxIterations; progress is
// reported at Debug level through an optional WithLogger logger.
//
// # Errors
//
//	ErrConvergence             - iteration cap reached with error above eps.
//	ErrZeroDiagonal            - splitting method hit a zero or absent diagonal entry.
//	sparse.ErrDimensionMismatch - non-square matrix or wrong-length b.
//
// All errors are package-level sentinels; branch with errors.Is.
// ErrConvergence is deliberately distinct from the validation errors so
// that callers can react by relaxing eps or raising the cap.
//
// # Determinism
//
// Every solver is a pure function of its inputs: floating-point work
// happens in a fixed order, so equal inputs give bitwise-equal solutions.
package solve
