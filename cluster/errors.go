// SPDX-License-Identifier: MIT
// Package cluster: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations
// return these sentinels (wrapped with call context via %w) and callers
// branch with errors.Is.

package cluster

import "errors"

var (
	// ErrSeedFormat is returned when a seed or score vector is not a
	// single-column sparse matrix.
	ErrSeedFormat = errors.New("cluster: vector must be a single column")

	// ErrInvalidParameter is returned when a numeric argument lies outside
	// its documented range: alpha outside (0, 1], eps <= 0, a negative seed
	// vertex, targetVolume <= 0, or a cluster count outside [1, n].
	ErrInvalidParameter = errors.New("cluster: parameter outside valid range")

	// ErrEigenFailure is returned when the eigendecomposition of the
	// normalised Laplacian does not converge.
	ErrEigenFailure = errors.New("cluster: eigendecomposition failed")
)
