// SPDX-License-Identifier: MIT

// Package lapwing is a local graph clustering toolkit: compressed sparse
// matrices, personalised PageRank, spectral methods and Laplacian solvers,
// built to work one neighbourhood at a time on graphs too large to touch
// in full.
//
// Everything is organized under five subpackages and two commands:
//
//	sparse/  — compressed sparse row matrices: assembly, arithmetic, matvec
//	graph/   — the Graph type, cached derived Laplacians, canonical graph
//	           families and seeded random models
//	cluster/ — approximate personalised PageRank, sweep sets, conductance,
//	           local and spectral clustering
//	solve/   — Laplacian systems: Jacobi, Gauss-Seidel and an exact
//	           conjugate-gradient fallback behind one chooser
//	graphio/ — edgelist and adjacencylist files, plus streaming conversions
//	           that never materialise the graph
//	cmd/     — edge2adj and adj2edge, thin CLIs over graphio
//
// The packages are layered in that order: each depends only on the ones
// before it, and everything speaks sparse.Matrix.
//
// Quick example:
//
//	g, err := graph.BarbellGraph(5) // two 5-cliques joined by one edge
//	if err != nil {
//		...
//	}
//	members, err := cluster.LocalClusterACL(g, 0, 0.5)
//	// members == [0 1 2 3 4]: the seed vertex's clique, found without
//	// ever looking at the far half of the graph.
//
// Determinism is a design rule throughout: every stochastic path takes an
// explicit seed, so equal inputs produce identical outputs, files included.
//
//	go get github.com/merelind/lapwing
package lapwing
