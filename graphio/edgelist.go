// SPDX-License-Identifier: MIT
// Package graphio: edgelist reading and writing.

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

// maxLineBytes bounds a single line of any graph file; adjacency lines of
// hub vertices are the longest customers.
const maxLineBytes = 1 << 20

// isContentLine reports whether a scanned line carries data. Blank lines
// and lines beginning with '#' or "//" do not.
func isContentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	return !strings.HasPrefix(trimmed, "#") && !strings.HasPrefix(trimmed, "//")
}

// parseEdgeLine parses one edgelist content line. Accepted forms are
// "u v w", "u v", "u, v, w" and "u, v": two integer endpoints with an
// optional float weight defaulting to 1.
func parseEdgeLine(op, filename string, lineno int, line string) (graph.Edge, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) != 2 && len(fields) != 3 {
		return graph.Edge{}, graphioErrorf(op, ErrBadFormat, "%s:%d: want 2 or 3 fields, got %d", filename, lineno, len(fields))
	}

	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return graph.Edge{}, graphioErrorf(op, ErrBadFormat, "%s:%d: bad vertex %q", filename, lineno, fields[0])
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return graph.Edge{}, graphioErrorf(op, ErrBadFormat, "%s:%d: bad vertex %q", filename, lineno, fields[1])
	}
	if u < 0 || v < 0 {
		return graph.Edge{}, graphioErrorf(op, ErrBadFormat, "%s:%d: negative vertex", filename, lineno)
	}

	w := 1.0
	if len(fields) == 3 {
		w, err = strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return graph.Edge{}, graphioErrorf(op, ErrBadFormat, "%s:%d: bad weight %q", filename, lineno, fields[2])
		}
	}

	return graph.Edge{U: u, V: v, Weight: w}, nil
}

// forEachEdge streams the content lines of an edgelist file through fn.
func forEachEdge(op, filename string, fn func(e graph.Edge) error) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("graphio.%s: %w", op, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineno := 0
	for sc.Scan() {
		lineno++
		if !isContentLine(sc.Text()) {
			continue
		}
		e, err := parseEdgeLine(op, filename, lineno, sc.Text())
		if err != nil {
			return err
		}
		if err := fn(e); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("graphio.%s: %w", op, err)
	}

	return nil
}

// LoadEdgelist reads an edgelist file into a Graph.
//
// Every content line is one undirected edge: (u, v, w) and its mirror
// (v, u, w) both enter the adjacency matrix, self-loops once. Repeated
// lines sum their weights. The number of vertices is one more than the
// highest endpoint mentioned, so trailing isolated vertices cannot be
// represented in this format; use an adjacencylist for those.
//
// Errors: ErrBadFormat (with file and line context) for unparseable
// content, sparse.ErrNaNInf for non-finite weights, and the underlying os
// error when the file cannot be opened. A file with no content lines fails
// with ErrBadFormat since it determines no vertex count.
// Complexity: O(lines + nnz log nnz).
func LoadEdgelist(filename string) (*graph.Graph, error) {
	const op = "LoadEdgelist"

	var ts []sparse.Triplet
	n := 0
	err := forEachEdge(op, filename, func(e graph.Edge) error {
		if e.U >= n {
			n = e.U + 1
		}
		if e.V >= n {
			n = e.V + 1
		}
		ts = append(ts, sparse.Triplet{Row: e.U, Col: e.V, Value: e.Weight})
		if e.U != e.V {
			ts = append(ts, sparse.Triplet{Row: e.V, Col: e.U, Value: e.Weight})
		}

		return nil
	})
	if err != nil {
		return nil, err
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

// SaveEdgelist writes g as an edgelist file: one "u v w" line per edge
// with u <= v, rows ascending, `%g` weights. Loading the result restores
// a graph Equal to g up to trailing isolated vertices.
// Complexity: O(rows + nnz).
func SaveEdgelist(g *graph.Graph, filename string) error {
	const op = "SaveEdgelist"
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("graphio.%s: %w", op, err)
	}

	w := bufio.NewWriter(f)
	adj := g.Adjacency()
	for u := 0; u < g.NumberOfVertices(); u++ {
		cols, vals := adj.RawRow(u)
		for k, v := range cols {
			if v < u {
				continue
			}
			fmt.Fprintf(w, "%d %d %g\n", u, v, vals[k])
		}
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
