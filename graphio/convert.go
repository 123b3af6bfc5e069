// SPDX-License-Identifier: MIT
// Package graphio: streaming conversions between the two file formats.

package graphio

import (
	"bufio"
	"container/heap"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/merelind/lapwing/graph"
)

// sortChunkLines is the number of edges SortEdgelist holds in memory per
// run. A variable rather than a constant so tests can force multi-run
// merges.
var sortChunkLines = 1 << 17

// edgeKeyLess orders edges by (u, v).
func edgeKeyLess(a, b graph.Edge) bool {
	if a.U != b.U {
		return a.U < b.U
	}

	return a.V < b.V
}

// runReader streams one sorted run during the merge phase.
type runReader struct {
	f      *os.File
	sc     *bufio.Scanner
	lineno int
}

func (r *runReader) next(op string) (graph.Edge, bool, error) {
	for r.sc.Scan() {
		r.lineno++
		if !isContentLine(r.sc.Text()) {
			continue
		}
		e, err := parseEdgeLine(op, r.f.Name(), r.lineno, r.sc.Text())
		if err != nil {
			return graph.Edge{}, false, err
		}

		return e, true, nil
	}
	if err := r.sc.Err(); err != nil {
		return graph.Edge{}, false, fmt.Errorf("graphio.%s: %w", op, err)
	}

	return graph.Edge{}, false, nil
}

// mergeItem pairs the head edge of a run with the run's index; the index
// breaks key ties so the merge stays stable.
type mergeItem struct {
	e   graph.Edge
	run int
}

type mergeHeap []mergeItem

func (h mergeHeap) Len() int { return len(h) }

func (h mergeHeap) Less(i, j int) bool {
	if h[i].e.U != h[j].e.U || h[i].e.V != h[j].e.V {
		return edgeKeyLess(h[i].e, h[j].e)
	}

	return h[i].run < h[j].run
}

func (h mergeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *mergeHeap) Push(x interface{}) { *h = append(*h, x.(mergeItem)) }

func (h *mergeHeap) Pop() interface{} {
	old := *h
	it := old[len(old)-1]
	*h = old[:len(old)-1]

	return it
}

// CopyEdgelistDuplicateEdges copies the edgelist infile to outfile with
// every content line emitted in both directions (self-loops once), in the
// canonical "u v w" form. Comments are dropped.
// Complexity: O(lines).
func CopyEdgelistDuplicateEdges(infile, outfile string) error {
	const op = "CopyEdgelistDuplicateEdges"
	out, err := os.Create(outfile)
	if err != nil {
		return fmt.Errorf("graphio.%s: %w", op, err)
	}

	w := bufio.NewWriter(out)
	err = forEachEdge(op, infile, func(e graph.Edge) error {
		fmt.Fprintf(w, "%d %d %g\n", e.U, e.V, e.Weight)
		if e.U != e.V {
			fmt.Fprintf(w, "%d %d %g\n", e.V, e.U, e.Weight)
		}

		return nil
	})
	if err != nil {
		out.Close()

		return err
	}

	if err := w.Flush(); err != nil {
		out.Close()

		return fmt.Errorf("graphio.%s: %w", op, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("graphio.%s: %w", op, err)
	}

	return nil
}

// SortEdgelist rewrites the edgelist file in place with its content lines
// sorted by (u, v) and normalised to "u v w". Comment and blank lines are
// dropped; the sorted file feeds the streaming conversions, which only
// need content. Sorting happens on disk: runs of sortChunkLines edges are
// sorted in memory and spilled to temporary files, then merged with a
// k-way heap, so memory stays bounded however large the file is. The
// result replaces the input atomically via a sibling temp file and rename.
// Complexity: O(lines log lines) time, O(sortChunkLines + runs) space.
func SortEdgelist(filename string) error {
	const op = "SortEdgelist"
	dir := filepath.Dir(filename)

	// Pass 1: spill sorted runs.
	var runs []string
	defer func() {
		for _, name := range runs {
			os.Remove(name)
		}
	}()

	var chunk []graph.Edge
	spill := func() error {
		if len(chunk) == 0 {
			return nil
		}
		sort.SliceStable(chunk, func(i, j int) bool { return edgeKeyLess(chunk[i], chunk[j]) })

		tmp, err := os.CreateTemp(dir, "lapwing-run-*")
		if err != nil {
			return fmt.Errorf("graphio.%s: %w", op, err)
		}
		runs = append(runs, tmp.Name())
		w := bufio.NewWriter(tmp)
		for _, e := range chunk {
			fmt.Fprintf(w, "%d %d %g\n", e.U, e.V, e.Weight)
		}
		if err := w.Flush(); err != nil {
			tmp.Close()

			return fmt.Errorf("graphio.%s: %w", op, err)
		}
		if err := tmp.Close(); err != nil {
			return fmt.Errorf("graphio.%s: %w", op, err)
		}
		chunk = chunk[:0]

		return nil
	}

	err := forEachEdge(op, filename, func(e graph.Edge) error {
		chunk = append(chunk, e)
		if len(chunk) >= sortChunkLines {
			return spill()
		}

		return nil
	})
	if err != nil {
		return err
	}
	if err := spill(); err != nil {
		return err
	}

	// Pass 2: k-way merge into a sibling temp file, then move it over the
	// original so a failed sort never corrupts the input.
	out, err := os.CreateTemp(dir, "lapwing-sorted-*")
	if err != nil {
		return fmt.Errorf("graphio.%s: %w", op, err)
	}
	defer os.Remove(out.Name()) // no-op once the rename has happened

	readers := make([]*runReader, 0, len(runs))
	closeReaders := func() {
		for _, r := range readers {
			r.f.Close()
		}
	}

	h := make(mergeHeap, 0, len(runs))
	for i, name := range runs {
		f, err := os.Open(name)
		if err != nil {
			closeReaders()
			out.Close()

			return fmt.Errorf("graphio.%s: %w", op, err)
		}
		sc := bufio.NewScanner(f)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		r := &runReader{f: f, sc: sc}
		readers = append(readers, r)

		e, ok, err := r.next(op)
		if err != nil {
			closeReaders()
			out.Close()

			return err
		}
		if ok {
			h = append(h, mergeItem{e: e, run: i})
		}
	}
	heap.Init(&h)

	w := bufio.NewWriter(out)
	for h.Len() > 0 {
		it := heap.Pop(&h).(mergeItem)
		fmt.Fprintf(w, "%d %d %g\n", it.e.U, it.e.V, it.e.Weight)

		e, ok, err := readers[it.run].next(op)
		if err != nil {
			closeReaders()
			out.Close()

			return err
		}
		if ok {
			heap.Push(&h, mergeItem{e: e, run: it.run})
		}
	}
	closeReaders()

	if err := w.Flush(); err != nil {
		out.Close()

		return fmt.Errorf("graphio.%s: %w", op, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("graphio.%s: %w", op, err)
	}
	if err := os.Rename(out.Name(), filename); err != nil {
		return fmt.Errorf("graphio.%s: %w", op, err)
	}

	return nil
}

// EdgelistToAdjacencylist converts an edgelist file into an adjacencylist
// file without materialising the graph: the edges are duplicated into both
// directions in a temporary file, the copy is sorted on disk, and runs of
// equal first vertex then stream out as adjacency lines. Memory stays
// bounded by the sort chunk plus one output line.
//
// Comments are dropped, and a vertex that appears in no edge gets no line.
func EdgelistToAdjacencylist(edgelistFname, adjacencylistFname string) error {
	const op = "EdgelistToAdjacencylist"

	tmp, err := os.CreateTemp(filepath.Dir(adjacencylistFname), "lapwing-both-directions-*")
	if err != nil {
		return fmt.Errorf("graphio.%s: %w", op, err)
	}
	tmpName := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpName)

	if err := CopyEdgelistDuplicateEdges(edgelistFname, tmpName); err != nil {
		return fmt.Errorf("graphio.%s: %w", op, err)
	}
	if err := SortEdgelist(tmpName); err != nil {
		return fmt.Errorf("graphio.%s: %w", op, err)
	}

	out, err := os.Create(adjacencylistFname)
	if err != nil {
		return fmt.Errorf("graphio.%s: %w", op, err)
	}
	w := bufio.NewWriter(out)

	current := -1
	err = forEachEdge(op, tmpName, func(e graph.Edge) error {
		if e.U != current {
			if current >= 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%d:", e.U)
			current = e.U
		}
		fmt.Fprintf(w, " %d %g", e.V, e.Weight)

		return nil
	})
	if err != nil {
		out.Close()

		return err
	}
	if current >= 0 {
		fmt.Fprintln(w)
	}

	if err := w.Flush(); err != nil {
		out.Close()

		return fmt.Errorf("graphio.%s: %w", op, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("graphio.%s: %w", op, err)
	}

	return nil
}

// AdjacencylistToEdgelist converts an adjacencylist file into an edgelist
// file, streaming line by line. Every edge appears in the lines of both
// endpoints, so only the v >= u entries are written and each edge lands in
// the output exactly once, self-loops included.
func AdjacencylistToEdgelist(adjacencylistFname, edgelistFname string) error {
	const op = "AdjacencylistToEdgelist"
	in, err := os.Open(adjacencylistFname)
	if err != nil {
		return fmt.Errorf("graphio.%s: %w", op, err)
	}
	defer in.Close()

	out, err := os.Create(edgelistFname)
	if err != nil {
		return fmt.Errorf("graphio.%s: %w", op, err)
	}
	w := bufio.NewWriter(out)

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineno := 0
	for sc.Scan() {
		lineno++
		if !isContentLine(sc.Text()) {
			continue
		}
		_, edges, err := parseAdjacencyLine(op, adjacencylistFname, lineno, sc.Text())
		if err != nil {
			out.Close()

			return err
		}
		for _, e := range edges {
			if e.V >= e.U {
				fmt.Fprintf(w, "%d %d %g\n", e.U, e.V, e.Weight)
			}
		}
	}
	if err := sc.Err(); err != nil {
		out.Close()

		return fmt.Errorf("graphio.%s: %w", op, err)
	}

	if err := w.Flush(); err != nil {
		out.Close()

		return fmt.Errorf("graphio.%s: %w", op, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("graphio.%s: %w", op, err)
	}

	return nil
}
