// SPDX-License-Identifier: MIT

// Package graph provides the undirected weighted Graph type at the centre
// of lapwing, together with the canonical graph families used throughout
// the tests and examples.
//
// The graph package provides:
//
//   - Graph, an immutable adjacency matrix in compressed sparse row form
//     with lazily computed, cached degree, Laplacian and normalised
//     Laplacian matrices.
//   - The LocalGraph interface: degree and neighbourhood queries one
//     vertex at a time, the only access path the local clustering
//     algorithms use.
//   - Canonical constructors (cycle, complete, barbell, star, identity)
//     and seeded random models (Erdos-Renyi, stochastic block model).
//
// # Conventions
//
// An undirected edge {u, v} is stored twice in the adjacency matrix, once
// per direction; a self-loop is stored once. NumberOfEdges counts stored
// entries divided by two, so an unpaired self-loop is lost to the integer
// division. Explicitly stored zero-weight entries are legal and survive
// every derived computation.
//
// Derived matrices are computed on first demand under a mutex and shared
// by pointer afterwards; callers must not modify them. A Graph is safe for
// concurrent use.
//
// # Errors
//
//	ErrNilAdjacency       - constructor given a nil matrix.
//	ErrAsymmetric         - adjacency matrix not square and symmetric.
//	ErrTooFewVertices     - generator parameter below the family minimum.
//	ErrInvalidProbability - random model probability outside [0, 1].
//
// All errors are package-level sentinels; branch with errors.Is. Vertex
// queries (Degree, Neighbors, ...) never fail: out-of-range indices yield
// zero degree and empty neighbour lists so that callers may probe freely.
//
// # Determinism
//
// Every constructor, including the seeded random models, is a pure
// function of its arguments: equal inputs produce graphs with
// byte-identical adjacency storage.
package graph
