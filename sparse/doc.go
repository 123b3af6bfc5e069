// SPDX-License-Identifier: MIT

// Package sparse provides the compressed sparse row (CSR) matrix type used
// throughout lapwing. It is deliberately small: triplet assembly, raw-array
// construction, element access, the handful of arithmetic operations the
// graph and solver layers need, and a symmetry test. It is not a
// general-purpose linear algebra library.
//
// # Storage contract
//
// A Matrix stores three parallel arrays, and this layout is part of the
// public contract of the whole module (graph accessors export it verbatim):
//
//   - outer starts:  len rows+1, outerStarts[i] is the offset of row i's
//     first entry; outerStarts[rows] == NNZ.
//   - inner indices: the column of each stored entry, strictly ascending
//     within every row.
//   - values:        the entry values, parallel to the inner indices.
//
// Explicitly stored zeros are legal. Arithmetic operates on the union of the
// operand patterns and never prunes entries that happen to become zero, so
// the stored structure of results is predictable.
//
// # Errors
//
//	ErrBadShape          - non-positive dimensions requested.
//	ErrOutOfRange        - row/column index outside the matrix bounds.
//	ErrDimensionMismatch - operand shapes incompatible.
//	ErrBadStorage        - raw CSR arrays malformed (lengths, ordering, bounds).
//	ErrNaNInf            - NaN or Inf encountered at ingestion.
//
// All errors are package-level sentinels; branch with errors.Is. Methods
// never panic on user input.
//
// # Determinism
//
// Assembly and arithmetic are fully deterministic: triplets with equal
// coordinates are summed and rows are emitted in ascending column order, so
// equal inputs always produce byte-identical storage arrays.
package sparse
