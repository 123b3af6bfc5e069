// SPDX-License-Identifier: MIT
// Package sparse: arithmetic and structural predicates over Matrix.

package sparse

import (
	"math"
	"sort"
)

// Add returns a + b. The result's pattern is the union of the operand
// patterns; entries that cancel to zero stay stored.
//
// Errors: ErrDimensionMismatch when shapes differ.
// Complexity: O(rows + nnz(a) + nnz(b)) time and space.
func Add(a, b *Matrix) (*Matrix, error) {
	return combine("Add", a, b, 1)
}

// Sub returns a - b under the same pattern-union rules as Add.
//
// Errors: ErrDimensionMismatch when shapes differ.
// Complexity: O(rows + nnz(a) + nnz(b)) time and space.
func Sub(a, b *Matrix) (*Matrix, error) {
	return combine("Sub", a, b, -1)
}

// combine merges two matrices row by row as a + sign*b.
func combine(op string, a, b *Matrix, sign float64) (*Matrix, error) {
	if a.rows != b.rows || a.cols != b.cols {
		return nil, sparseErrorf(op, ErrDimensionMismatch, "%dx%d vs %dx%d", a.rows, a.cols, b.rows, b.cols)
	}

	out := &Matrix{
		rows:         a.rows,
		cols:         a.cols,
		outerStarts:  make([]int, a.rows+1),
		innerIndices: make([]int, 0, len(a.values)+len(b.values)),
		values:       make([]float64, 0, len(a.values)+len(b.values)),
	}

	// Two-pointer merge of the sorted rows.
	for i := 0; i < a.rows; i++ {
		ac, av := a.RawRow(i)
		bc, bv := b.RawRow(i)
		var p, q int
		for p < len(ac) || q < len(bc) {
			switch {
			case q >= len(bc) || (p < len(ac) && ac[p] < bc[q]):
				out.innerIndices = append(out.innerIndices, ac[p])
				out.values = append(out.values, av[p])
				p++
			case p >= len(ac) || bc[q] < ac[p]:
				out.innerIndices = append(out.innerIndices, bc[q])
				out.values = append(out.values, sign*bv[q])
				q++
			default: // same column in both rows
				out.innerIndices = append(out.innerIndices, ac[p])
				out.values = append(out.values, av[p]+sign*bv[q])
				p++
				q++
			}
		}
		out.outerStarts[i+1] = len(out.values)
	}

	return out, nil
}

// Scale returns s*m as a new matrix with the same pattern.
// Complexity: O(nnz) time and space.
func (m *Matrix) Scale(s float64) *Matrix {
	out := &Matrix{
		rows:         m.rows,
		cols:         m.cols,
		outerStarts:  make([]int, len(m.outerStarts)),
		innerIndices: make([]int, len(m.innerIndices)),
		values:       make([]float64, len(m.values)),
	}
	copy(out.outerStarts, m.outerStarts)
	copy(out.innerIndices, m.innerIndices)
	for k, v := range m.values {
		out.values[k] = s * v
	}

	return out
}

// MulVec returns m*x for a vector x of length Cols().
//
// Errors: ErrDimensionMismatch when len(x) != Cols().
// Complexity: O(rows + nnz) time, O(rows) space.
func (m *Matrix) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.cols {
		return nil, sparseErrorf("MulVec", ErrDimensionMismatch, "vector length %d, want %d", len(x), m.cols)
	}

	y := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		cols, vals := m.RawRow(i)
		acc := 0.0
		for k := range cols {
			acc += vals[k] * x[cols[k]]
		}
		y[i] = acc
	}

	return y, nil
}

// IsSymmetric reports whether |m[i][j] - m[j][i]| <= eps for every stored
// entry. Non-square matrices are never symmetric. The check walks each
// stored entry and binary-searches its mirror; the matrix is never
// densified.
// Complexity: O(nnz log k) for maximum row length k.
func (m *Matrix) IsSymmetric(eps float64) bool {
	if m.rows != m.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		cols, vals := m.RawRow(i)
		for k := range cols {
			j := cols[k]
			if j == i {
				continue
			}
			mirror := m.at(j, i)
			if math.Abs(vals[k]-mirror) > eps {
				return false
			}
		}
	}

	return true
}

// at is the unchecked counterpart of At for internal loops.
func (m *Matrix) at(row, col int) float64 {
	start, end := m.outerStarts[row], m.outerStarts[row+1]
	k := start + sort.SearchInts(m.innerIndices[start:end], col)
	if k < end && m.innerIndices[k] == col {
		return m.values[k]
	}

	return 0
}

// Equal reports whether the two matrices have identical shape and identical
// storage arrays, explicit zeros included.
// Complexity: O(rows + nnz).
func (m *Matrix) Equal(b *Matrix) bool {
	if m.rows != b.rows || m.cols != b.cols || len(m.values) != len(b.values) {
		return false
	}
	for i := range m.outerStarts {
		if m.outerStarts[i] != b.outerStarts[i] {
			return false
		}
	}
	for k := range m.values {
		if m.innerIndices[k] != b.innerIndices[k] || m.values[k] != b.values[k] {
			return false
		}
	}

	return true
}

// AllClose reports whether the two matrices have identical shape and
// pattern, with every stored value within eps of its counterpart.
// Complexity: O(rows + nnz).
func (m *Matrix) AllClose(b *Matrix, eps float64) bool {
	if m.rows != b.rows || m.cols != b.cols || len(m.values) != len(b.values) {
		return false
	}
	for i := range m.outerStarts {
		if m.outerStarts[i] != b.outerStarts[i] {
			return false
		}
	}
	for k := range m.values {
		if m.innerIndices[k] != b.innerIndices[k] || math.Abs(m.values[k]-b.values[k]) > eps {
			return false
		}
	}

	return true
}
