// SPDX-License-Identifier: MIT

// Package graph_test provides benchmarks for graph construction and the
// lazily derived matrices, using the deterministic canonical families.
package graph_test

import (
	"fmt"
	"testing"

	"github.com/merelind/lapwing/graph"
	"github.com/merelind/lapwing/sparse"
)

// benchSizes are the vertex counts to benchmark.
var benchSizes = []int{128, 512, 2048}

// sinks to defeat dead-code elimination
var (
	sinkG *graph.Graph
	sinkM *sparse.Matrix
	sinkF float64
)

func BenchmarkCycleGraph(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				g, err := graph.CycleGraph(n)
				if err != nil {
					b.Fatal(err)
				}
				sinkG = g
			}
		})
	}
}

func BenchmarkNewSymmetryCheck(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			base, err := graph.ErdosRenyiGraph(n, 8/float64(n), 1)
			if err != nil {
				b.Fatal(err)
			}
			adj := base.Adjacency()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g, err := graph.New(adj)
				if err != nil {
					b.Fatal(err)
				}
				sinkG = g
			}
		})
	}
}

func BenchmarkLaplacian(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			base, err := graph.ErdosRenyiGraph(n, 8/float64(n), 1)
			if err != nil {
				b.Fatal(err)
			}
			adj := base.Adjacency()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				// Fresh graph each round; the cache makes repeats free.
				g, _ := graph.New(adj)
				sinkM = g.Laplacian()
			}
		})
	}
}

func BenchmarkNormalisedLaplacian(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			base, err := graph.ErdosRenyiGraph(n, 8/float64(n), 1)
			if err != nil {
				b.Fatal(err)
			}
			adj := base.Adjacency()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g, _ := graph.New(adj)
				sinkM = g.NormalisedLaplacian()
			}
		})
	}
}

func BenchmarkDegreeQuery(b *testing.B) {
	b.ReportAllocs()
	g, err := graph.ErdosRenyiGraph(2048, 8/2048.0, 1)
	if err != nil {
		b.Fatal(err)
	}
	g.DegreeMatrix() // warm the cache
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = g.Degree(i % 2048)
	}
}
