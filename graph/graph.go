// SPDX-License-Identifier: MIT
// Package graph: Graph type, constructors and derived matrices.

package graph

import (
	"fmt"
	"math"
	"sync"

	"github.com/merelind/lapwing/sparse"
)

// symmetryEpsilon bounds |a(i,j) - a(j,i)| when validating adjacency
// symmetry at construction.
const symmetryEpsilon = 1e-9

// Graph is an undirected weighted graph backed by a compressed sparse row
// adjacency matrix. The adjacency matrix is immutable after construction;
// self-loops and explicitly stored zero weights are permitted.
//
// The degree matrix, Laplacian and normalised Laplacian are computed on
// first demand, cached forever and shared by pointer. A mutex guards the
// lazy initialisation, so a Graph is safe for concurrent use.
type Graph struct {
	adj *sparse.Matrix
	n   int

	mu            sync.Mutex
	degree        *sparse.Matrix
	laplacian     *sparse.Matrix
	normLaplacian *sparse.Matrix
}

// graphErrorf wraps a sentinel with operation context.
func graphErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("graph.%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}

// New constructs a Graph from an adjacency matrix. The matrix must be
// square and symmetric up to a small absolute tolerance; validation runs
// exactly once, here, so no partially constructed Graph is ever observable.
//
// Errors: ErrNilAdjacency for a nil matrix, ErrAsymmetric for a non-square
// or asymmetric one.
// Complexity: O(nnz log nnz) time for the symmetry check, O(1) space.
func New(adjacency *sparse.Matrix) (*Graph, error) {
	if adjacency == nil {
		return nil, fmt.Errorf("graph.New: %w", ErrNilAdjacency)
	}
	if adjacency.Rows() != adjacency.Cols() {
		return nil, graphErrorf("New", ErrAsymmetric, "%dx%d matrix is not square",
			adjacency.Rows(), adjacency.Cols())
	}
	if !adjacency.IsSymmetric(symmetryEpsilon) {
		return nil, graphErrorf("New", ErrAsymmetric, "%dx%d matrix",
			adjacency.Rows(), adjacency.Cols())
	}

	return &Graph{adj: adjacency, n: adjacency.Rows()}, nil
}

// NewFromRaw constructs a Graph directly from raw CSR adjacency arrays.
// The vertex count is len(outerStarts)-1 and the matrix is taken to be
// square. The arrays are validated by the sparse layer and the result is
// then subject to the same symmetry validation as New.
//
// Errors: sparse.ErrBadStorage / sparse.ErrBadShape for malformed arrays,
// ErrAsymmetric for an asymmetric matrix.
func NewFromRaw(outerStarts, innerIndices []int, values []float64) (*Graph, error) {
	n := len(outerStarts) - 1
	adj, err := sparse.NewFromCSR(n, n, outerStarts, innerIndices, values)
	if err != nil {
		return nil, fmt.Errorf("graph.NewFromRaw: %w", err)
	}
	if !adj.IsSymmetric(symmetryEpsilon) {
		return nil, graphErrorf("NewFromRaw", ErrAsymmetric, "%dx%d matrix", n, n)
	}

	return &Graph{adj: adj, n: n}, nil
}

// Adjacency returns the graph's adjacency matrix. The returned matrix is
// shared, not copied; it is read-only by contract.
// Complexity: O(1).
func (g *Graph) Adjacency() *sparse.Matrix { return g.adj }

// DegreeMatrix returns the diagonal matrix of weighted vertex degrees.
// An entry is stored explicitly for every vertex, including degree-0
// vertices, so the returned matrix always has exactly n stored entries.
//
// The matrix is computed on first call and cached; the same pointer is
// returned thereafter. Read-only by contract.
// Complexity: O(nnz) on first call, O(1) after.
func (g *Graph) DegreeMatrix() *sparse.Matrix {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.initDegreeLocked()

	return g.degree
}

// Laplacian returns the graph Laplacian L = D - A, where D is the degree
// matrix and A the adjacency matrix. The stored pattern is the union of
// both operands, so entries that cancel to zero remain stored.
//
// Computed on first call and cached. Read-only by contract.
// Complexity: O(nnz) on first call, O(1) after.
func (g *Graph) Laplacian() *sparse.Matrix {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.initLaplacianLocked()

	return g.laplacian
}

// NormalisedLaplacian returns N = I - D^(-1/2) A D^(-1/2). For a vertex of
// degree 0 the inverse square root is undefined; such vertices contribute
// nothing, so their rows and columns are entirely absent from the stored
// pattern, including the diagonal.
//
// Computed on first call and cached. Read-only by contract.
// Complexity: O(nnz) on first call, O(1) after.
func (g *Graph) NormalisedLaplacian() *sparse.Matrix {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.initNormLaplacianLocked()

	return g.normLaplacian
}

// initDegreeLocked computes the degree matrix. Callers must hold g.mu.
func (g *Graph) initDegreeLocked() {
	if g.degree != nil {
		return
	}
	ts := make([]sparse.Triplet, g.n)
	for i := 0; i < g.n; i++ {
		_, vals := g.adj.RawRow(i)
		var d float64
		for _, w := range vals {
			d += w
		}
		ts[i] = sparse.Triplet{Row: i, Col: i, Value: d}
	}
	// Triplets are in range and finite by construction; assembly cannot fail.
	g.degree, _ = sparse.NewFromTriplets(g.n, g.n, ts)
}

// initLaplacianLocked computes L = D - A. Callers must hold g.mu.
func (g *Graph) initLaplacianLocked() {
	if g.laplacian != nil {
		return
	}
	g.initDegreeLocked()
	// Shapes match by construction; Sub cannot fail.
	g.laplacian, _ = sparse.Sub(g.degree, g.adj)
}

// initNormLaplacianLocked computes N = I - D^(-1/2) A D^(-1/2). Callers
// must hold g.mu.
func (g *Graph) initNormLaplacianLocked() {
	if g.normLaplacian != nil {
		return
	}
	g.initDegreeLocked()

	invSqrt := make([]float64, g.n)
	for i := 0; i < g.n; i++ {
		_, vals := g.degree.RawRow(i)
		if d := vals[0]; d > 0 {
			invSqrt[i] = 1 / math.Sqrt(d)
		}
	}

	ts := make([]sparse.Triplet, 0, g.adj.NNZ()+g.n)
	for i := 0; i < g.n; i++ {
		if invSqrt[i] == 0 {
			continue
		}
		ts = append(ts, sparse.Triplet{Row: i, Col: i, Value: 1})
		cols, vals := g.adj.RawRow(i)
		for k, j := range cols {
			if invSqrt[j] == 0 {
				continue
			}
			// A self-loop entry merges into the unit diagonal here.
			ts = append(ts, sparse.Triplet{
				Row: i, Col: j, Value: -vals[k] * invSqrt[i] * invSqrt[j],
			})
		}
	}
	// Triplets are in range and finite by construction; assembly cannot fail.
	g.normLaplacian, _ = sparse.NewFromTriplets(g.n, g.n, ts)
}

// NumberOfVertices returns the number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) NumberOfVertices() int { return g.n }

// NumberOfEdges returns the number of stored adjacency entries divided by
// two. Under this convention a self-loop, which is stored once, counts as
// half an edge and is lost to the integer division when unpaired.
// Complexity: O(1).
func (g *Graph) NumberOfEdges() int { return g.adj.NNZ() / 2 }

// TotalVolume returns the sum of the weighted degrees of all vertices,
// which equals the sum of all stored adjacency entries.
// Complexity: O(nnz).
func (g *Graph) TotalVolume() float64 {
	var vol float64
	for i := 0; i < g.n; i++ {
		_, vals := g.adj.RawRow(i)
		for _, w := range vals {
			vol += w
		}
	}

	return vol
}

// Equal reports whether two graphs have byte-identical adjacency storage:
// same shape, same stored pattern, same values. Entries differing only in
// explicit-zero structure compare unequal.
// Complexity: O(nnz).
func (g *Graph) Equal(other *Graph) bool {
	if other == nil {
		return false
	}

	return g.adj.Equal(other.adj)
}
