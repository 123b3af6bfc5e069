// SPDX-License-Identifier: MIT

// Package cluster implements graph clustering: approximate personalised
// PageRank and sweep-set local clustering after Andersen, Chung and Lang
// (FOCS 2006), plus dense spectral clustering on the normalised Laplacian.
//
// The cluster package provides:
//
//   - ApproximatePagerank: the ACL push process over any
//     graph.LocalGraph, returning the estimate and residual vectors.
//   - SweepSet, Volume, Conductance: the sweep-set engine and the set
//     quality measures it optimises.
//   - LocalClusterACL and LocalCluster: one-call local clustering from a
//     seed vertex, with fixed or automatically chosen locality.
//   - SpectralCluster: k-way partitioning via the bottom eigenvectors of
//     the normalised Laplacian and seeded k-means.
//
// The local algorithms touch the graph only through the four LocalGraph
// queries, so their running time scales with the cluster they find, not
// with the graph: they are the tool of choice when the graph is large and
// only one neighbourhood matters. SpectralCluster decomposes a dense copy
// of the normalised Laplacian and is meant for graphs of moderate size.
//
// Configuration is by functional options resolved against documented
// Default* constants: WithEpsilon, WithSeed, WithKMeansMaxIter,
// WithLogger. Option constructors panic on nonsensical arguments; all
// runtime failures are returned as errors.
//
// # Errors
//
//	ErrSeedFormat       - seed/score vector not a single column.
//	ErrInvalidParameter - alpha, eps, seed vertex, target volume or k
//	                      outside the documented range.
//	ErrEigenFailure     - eigendecomposition did not converge.
//
// All errors are package-level sentinels; branch with errors.Is.
//
// # Determinism
//
// Every algorithm in this package is deterministic: the push process and
// sweeps use fixed orderings, and all k-means randomness derives from the
// WithSeed value (DefaultKMeansSeed when unset). Equal inputs and options
// produce identical clusterings.
package cluster
