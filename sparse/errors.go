// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations
// return these sentinels (optionally wrapped with call context via %w) and
// callers branch with errors.Is. No operation panics on user input.

package sparse

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows <= 0 or
	// cols <= 0). Constructors validate the shape before any allocation.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside the
	// matrix bounds. Note that an absent entry inside the bounds is not an
	// error; At reports it as 0.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions, e.g.
	// Add/Sub with different shapes or MulVec with a wrong-length vector.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrBadStorage indicates that raw CSR arrays do not form a valid
	// compressed matrix: wrong array lengths, non-monotone outer starts,
	// column indices out of bounds or not ascending within a row.
	ErrBadStorage = errors.New("sparse: malformed compressed storage")

	// ErrNaNInf signals a NaN or +/-Inf value where finite values are
	// required (triplet ingestion).
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")
)
