// SPDX-License-Identifier: MIT
// Package graph: sentinel error set.
// This file defines ONLY package-level sentinel errors. Constructors return
// these sentinels (wrapped with call context via %w) and callers branch with
// errors.Is. Vertex queries never error: out-of-range access is defined as
// zero degree / no neighbours, not a failure.

package graph

import "errors"

var (
	// ErrAsymmetric is returned when a Graph is constructed from an
	// adjacency matrix that is not square and symmetric. The check runs
	// exactly once, at construction; no partially constructed Graph is
	// ever observable.
	ErrAsymmetric = errors.New("graph: adjacency matrix must be symmetric")

	// ErrNilAdjacency is returned when a Graph is constructed from a nil
	// adjacency matrix.
	ErrNilAdjacency = errors.New("graph: adjacency matrix is nil")

	// ErrTooFewVertices is returned by the canonical constructors when the
	// requested vertex count is below the minimum for the graph family
	// (e.g. a cycle needs at least 3 vertices).
	ErrTooFewVertices = errors.New("graph: too few vertices")

	// ErrInvalidProbability is returned by the random graph models when an
	// edge probability lies outside [0, 1].
	ErrInvalidProbability = errors.New("graph: probability outside [0, 1]")
)
