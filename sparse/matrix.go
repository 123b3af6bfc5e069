// SPDX-License-Identifier: MIT
// Package sparse: Matrix type, triplet assembly and raw CSR construction.

package sparse

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Triplet is a single (row, col, value) coordinate entry used to assemble a
// Matrix. Triplets with equal coordinates are summed during assembly.
type Triplet struct {
	Row, Col int
	Value    float64
}

// Matrix is an immutable compressed sparse row matrix of float64 values.
//
// outerStarts has length rows+1; the entries of row i live at positions
// outerStarts[i] to outerStarts[i+1] of innerIndices/values, with inner
// indices strictly ascending inside each row. Explicitly stored zeros are
// preserved.
type Matrix struct {
	rows, cols   int
	outerStarts  []int
	innerIndices []int
	values       []float64
}

// sparseErrorf wraps a sentinel with operation context.
func sparseErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("sparse.%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}

// NewFromTriplets assembles a rows x cols Matrix from coordinate entries.
// Duplicate coordinates are summed; rows are emitted with ascending column
// indices. Entries that sum to zero remain stored.
//
// Errors: ErrBadShape for non-positive dimensions, ErrOutOfRange for a
// triplet outside the shape, ErrNaNInf for a non-finite value.
// Complexity: O(t log t) time for t triplets, O(t) space.
func NewFromTriplets(rows, cols int, ts []Triplet) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf("NewFromTriplets", ErrBadShape, "%dx%d", rows, cols)
	}
	for _, t := range ts {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, sparseErrorf("NewFromTriplets", ErrOutOfRange, "entry (%d,%d)", t.Row, t.Col)
		}
		if math.IsNaN(t.Value) || math.IsInf(t.Value, 0) {
			return nil, sparseErrorf("NewFromTriplets", ErrNaNInf, "entry (%d,%d)", t.Row, t.Col)
		}
	}

	// Sort a copy by (row, col) so the input slice stays untouched.
	sorted := make([]Triplet, len(ts))
	copy(sorted, ts)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Row != sorted[b].Row {
			return sorted[a].Row < sorted[b].Row
		}
		return sorted[a].Col < sorted[b].Col
	})

	m := &Matrix{
		rows:         rows,
		cols:         cols,
		outerStarts:  make([]int, rows+1),
		innerIndices: make([]int, 0, len(sorted)),
		values:       make([]float64, 0, len(sorted)),
	}

	// Merge runs of equal coordinates, accumulating row offsets as we go.
	for k := 0; k < len(sorted); {
		r, c := sorted[k].Row, sorted[k].Col
		sum := 0.0
		for k < len(sorted) && sorted[k].Row == r && sorted[k].Col == c {
			sum += sorted[k].Value
			k++
		}
		m.innerIndices = append(m.innerIndices, c)
		m.values = append(m.values, sum)
		m.outerStarts[r+1]++
	}
	for i := 0; i < rows; i++ {
		m.outerStarts[i+1] += m.outerStarts[i]
	}

	return m, nil
}

// NewFromCSR builds a Matrix directly from raw compressed storage arrays.
// The arrays are validated and copied; the caller keeps ownership of the
// inputs.
//
// Validation: len(outerStarts) == rows+1, outerStarts[0] == 0, outer starts
// monotone non-decreasing with final value len(values) == len(innerIndices),
// and every row's column indices inside [0, cols) and strictly ascending.
// Violations return ErrBadStorage (shape errors return ErrBadShape).
// Complexity: O(rows + nnz) time and space.
func NewFromCSR(rows, cols int, outerStarts, innerIndices []int, values []float64) (*Matrix, error) {
	const op = "NewFromCSR"
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf(op, ErrBadShape, "%dx%d", rows, cols)
	}
	if len(outerStarts) != rows+1 {
		return nil, sparseErrorf(op, ErrBadStorage, "outer starts length %d, want %d", len(outerStarts), rows+1)
	}
	if outerStarts[0] != 0 {
		return nil, sparseErrorf(op, ErrBadStorage, "outer starts must begin at 0, got %d", outerStarts[0])
	}
	if len(innerIndices) != len(values) {
		return nil, sparseErrorf(op, ErrBadStorage, "inner indices length %d, values length %d", len(innerIndices), len(values))
	}
	if outerStarts[rows] != len(values) {
		return nil, sparseErrorf(op, ErrBadStorage, "final outer start %d, want nnz %d", outerStarts[rows], len(values))
	}
	for i := 0; i < rows; i++ {
		start, end := outerStarts[i], outerStarts[i+1]
		if start > end {
			return nil, sparseErrorf(op, ErrBadStorage, "outer starts decrease at row %d", i)
		}
		if end > len(values) {
			return nil, sparseErrorf(op, ErrBadStorage, "outer start %d exceeds nnz %d at row %d", end, len(values), i)
		}
		for k := start; k < end; k++ {
			if innerIndices[k] < 0 || innerIndices[k] >= cols {
				return nil, sparseErrorf(op, ErrBadStorage, "column %d out of bounds in row %d", innerIndices[k], i)
			}
			if k > start && innerIndices[k] <= innerIndices[k-1] {
				return nil, sparseErrorf(op, ErrBadStorage, "columns not ascending in row %d", i)
			}
		}
	}

	m := &Matrix{
		rows:         rows,
		cols:         cols,
		outerStarts:  make([]int, len(outerStarts)),
		innerIndices: make([]int, len(innerIndices)),
		values:       make([]float64, len(values)),
	}
	copy(m.outerStarts, outerStarts)
	copy(m.innerIndices, innerIndices)
	copy(m.values, values)

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of stored entries, explicit zeros included.
// Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.values) }

// At returns the entry at (row, col). Indices outside the matrix bounds are
// an error; an absent entry inside the bounds is 0.
// Complexity: O(log k) for k entries in the row.
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, sparseErrorf("At", ErrOutOfRange, "(%d,%d) in %dx%d", row, col, m.rows, m.cols)
	}
	start, end := m.outerStarts[row], m.outerStarts[row+1]
	k := start + sort.SearchInts(m.innerIndices[start:end], col)
	if k < end && m.innerIndices[k] == col {
		return m.values[k], nil
	}

	return 0, nil
}

// RawRow returns zero-copy views of row i's column indices and values. The
// returned slices alias internal storage and must not be mutated. An
// out-of-range i yields (nil, nil).
// Complexity: O(1).
func (m *Matrix) RawRow(i int) (cols []int, vals []float64) {
	if i < 0 || i >= m.rows {
		return nil, nil
	}
	start, end := m.outerStarts[i], m.outerStarts[i+1]

	return m.innerIndices[start:end], m.values[start:end]
}

// OuterStarts returns a copy of the row offset array (length Rows()+1).
// Complexity: O(rows).
func (m *Matrix) OuterStarts() []int {
	out := make([]int, len(m.outerStarts))
	copy(out, m.outerStarts)

	return out
}

// InnerIndices returns a copy of the column index array (length NNZ()).
// Complexity: O(nnz).
func (m *Matrix) InnerIndices() []int {
	out := make([]int, len(m.innerIndices))
	copy(out, m.innerIndices)

	return out
}

// Values returns a copy of the stored values (length NNZ()).
// Complexity: O(nnz).
func (m *Matrix) Values() []float64 {
	out := make([]float64, len(m.values))
	copy(out, m.values)

	return out
}

// String implements fmt.Stringer with a compact entry listing for debugging.
func (m *Matrix) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "sparse.Matrix %dx%d nnz=%d", m.rows, m.cols, len(m.values))
	for i := 0; i < m.rows; i++ {
		cols, vals := m.RawRow(i)
		for k := range cols {
			fmt.Fprintf(&b, "\n(%d,%d)=%g", i, cols[k], vals[k])
		}
	}

	return b.String()
}
