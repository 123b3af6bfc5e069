// SPDX-License-Identifier: MIT
// Package graphio: adjacencylist reading and writing.

package graphio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/merelind/lapwing/graph"
	"github.com/merelind/lapwing/sparse"
)

// parseAdjacencyLine parses one adjacencylist content line of the form
// "u: v1 w1 v2 w2 ...". The neighbour list may be empty, which declares an
// isolated vertex.
func parseAdjacencyLine(op, filename string, lineno int, line string) (int, []graph.Edge, error) {
	head, rest, found := strings.Cut(line, ":")
	if !found {
		return 0, nil, graphioErrorf(op, ErrBadFormat, "%s:%d: missing ':'", filename, lineno)
	}

	u, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil || u < 0 {
		return 0, nil, graphioErrorf(op, ErrBadFormat, "%s:%d: bad vertex %q", filename, lineno, strings.TrimSpace(head))
	}

	fields := strings.Fields(rest)
	if len(fields)%2 != 0 {
		return 0, nil, graphioErrorf(op, ErrBadFormat, "%s:%d: odd neighbour/weight list", filename, lineno)
	}

	edges := make([]graph.Edge, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		v, err := strconv.Atoi(fields[i])
		if err != nil || v < 0 {
			return 0, nil, graphioErrorf(op, ErrBadFormat, "%s:%d: bad neighbour %q", filename, lineno, fields[i])
		}
		w, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return 0, nil, graphioErrorf(op, ErrBadFormat, "%s:%d: bad weight %q", filename, lineno, fields[i+1])
		}
		edges = append(edges, graph.Edge{U: u, V: v, Weight: w})
	}

	return u, edges, nil
}

// LoadAdjacencylist reads an adjacencylist file into a Graph.
//
// Each content line fills one row of the adjacency matrix, so a
// well-formed file lists every edge in the line of both endpoints
// (self-loops once, in their own line). A one-sided edge produces an
// asymmetric matrix and fails with graph.ErrAsymmetric. Unlike the
// edgelist format, isolated vertices survive a round trip: a bare "u:"
// line declares vertex u with no neighbours.
//
// Errors: ErrBadFormat (with file and line context) for unparseable
// content, graph.ErrAsymmetric for one-sided edges, sparse.ErrNaNInf for
// non-finite weights, and the underlying os error when the file cannot be
// opened. A file with no content lines fails with ErrBadFormat.
// Complexity: O(lines + nnz log nnz).
func LoadAdjacencylist(filename string) (*graph.Graph, error) {
	const op = "LoadAdjacencylist"
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("graphio.%s: %w", op, err)
	}
	defer f.Close()

	var ts []sparse.Triplet
	n := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineno := 0
	for sc.Scan() {
		lineno++
		if !isContentLine(sc.Text()) {
			continue
		}
		u, edges, err := parseAdjacencyLine(op, filename, lineno, sc.Text())
		if err != nil {
			return nil, err
		}
		if u >= n {
			n = u + 1
		}
		for _, e := range edges {
			if e.V >= n {
				n = e.V + 1
			}
			ts = append(ts, sparse.Triplet{Row: e.U, Col: e.V, Value: e.Weight})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio.%s: %w", op, err)
	}
	if n == 0 {
		return nil, graphioErrorf(op, ErrBadFormat, "%s: no content lines", filename)
	}

	adj, err := sparse.NewFromTriplets(n, n, ts)
	if err != nil {
		return nil, fmt.Errorf("graphio.%s: %w", op, err)
	}
	g, err := graph.New(adj)
	if err != nil {
		return nil, fmt.Errorf("graphio.%s: %w", op, err)
	}

	return g, nil
}

// SaveAdjacencylist writes g as an adjacencylist file: line u holds every
// stored entry of row u as "u: v1 w1 v2 w2 ...", so each edge appears in
// the lines of both endpoints and self-loops once. Isolated vertices get a
// bare "u:" line, which makes this format round-trip exact.
// Complexity: O(rows + nnz).
func SaveAdjacencylist(g *graph.Graph, filename string) error {
	const op = "SaveAdjacencylist"
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("graphio.%s: %w", op, err)
	}

	w := bufio.NewWriter(f)
	adj := g.Adjacency()
	for u := 0; u < g.NumberOfVertices(); u++ {
		fmt.Fprintf(w, "%d:", u)
		cols, vals := adj.RawRow(u)
		for k, v := range cols {
			fmt.Fprintf(w, " %d %g", v, vals[k])
		}
		fmt.Fprintln(w)
	}

	if err := w.Flush(); err != nil {
		f.Close()

		return fmt.Errorf("graphio.%s: %w", op, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("graphio.%s: %w", op, err)
	}

	return nil
}
