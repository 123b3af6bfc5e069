// SPDX-License-Identifier: MIT

package graphio_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/merelind/lapwing/graphio"
)

func ExampleLoadEdgelist() {
	dir, err := os.MkdirTemp("", "lapwing-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "triangle.edgelist")
	content := "# a weighted triangle\n0 1 1\n1 2 0.5\n2 0 0.5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}

	g, err := graphio.LoadEdgelist(path)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("vertices:", g.NumberOfVertices())
	fmt.Println("edges:", g.NumberOfEdges())
	fmt.Println("degree of 0:", g.Degree(0))
	// Output:
	// vertices: 3
	// edges: 3
	// degree of 0: 1.5
}

func ExampleEdgelistToAdjacencylist() {
	dir, err := os.MkdirTemp("", "lapwing-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "path.edgelist")
	if err := os.WriteFile(in, []byte("0 1 1\n1 2 1\n"), 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}

	out := filepath.Join(dir, "path.adjacencylist")
	if err := graphio.EdgelistToAdjacencylist(in, out); err != nil {
		fmt.Println("error:", err)
		return
	}

	data, err := os.ReadFile(out)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(string(data))
	// Output:
	// 0: 1 1
	// 1: 0 1 2 1
	// 2: 1 1
}
