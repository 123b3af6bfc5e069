// SPDX-License-Identifier: MIT

package graphio_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merelind/lapwing/graph"
	"github.com/merelind/lapwing/graphio"
)

func TestCopyEdgelistDuplicateEdges(t *testing.T) {
	in := writeFile(t, "in.edgelist", "# c\n0 1 0.5\n2 2 3\n")
	out := filepath.Join(t.TempDir(), "out.edgelist")

	require.NoError(t, graphio.CopyEdgelistDuplicateEdges(in, out))
	require.Equal(t, "0 1 0.5\n1 0 0.5\n2 2 3\n", readFile(t, out))
}

// TestSortEdgelist: lines come out ordered by (u, v), normalised to the
// space-separated three-field form, comments dropped.
func TestSortEdgelist(t *testing.T) {
	path := writeFile(t, "unsorted.edgelist", "2 0 1\n0 5 2\n0, 1, 1\n1 0 4\n# comment\n")

	require.NoError(t, graphio.SortEdgelist(path))
	require.Equal(t, "0 1 1\n0 5 2\n1 0 4\n2 0 1\n", readFile(t, path))
}

// TestSortEdgelistManyRuns shrinks the chunk size so the sort spills
// several runs and exercises the k-way merge.
func TestSortEdgelistManyRuns(t *testing.T) {
	restore := graphio.SetSortChunkLines_TestOnly(2)
	defer restore()

	path := writeFile(t, "runs.edgelist", "6 0 1\n5 0 1\n4 0 1\n3 0 1\n2 0 1\n1 0 1\n0 0 1\n")
	require.NoError(t, graphio.SortEdgelist(path))
	require.Equal(t, "0 0 1\n1 0 1\n2 0 1\n3 0 1\n4 0 1\n5 0 1\n6 0 1\n", readFile(t, path))
}

// TestSortEdgelistStable: lines with equal (u, v) keep their input order
// even when the merge pulls them from different runs.
func TestSortEdgelistStable(t *testing.T) {
	restore := graphio.SetSortChunkLines_TestOnly(2)
	defer restore()

	path := writeFile(t, "dups.edgelist", "1 1 9\n1 1 8\n1 1 7\n1 1 6\n")
	require.NoError(t, graphio.SortEdgelist(path))
	require.Equal(t, "1 1 9\n1 1 8\n1 1 7\n1 1 6\n", readFile(t, path))
}

// TestSortEdgelistBadInput: a parse failure leaves the original file
// untouched and cleans up every temporary.
func TestSortEdgelistBadInput(t *testing.T) {
	const content = "0 1 1\nnot an edge at all\n"
	path := writeFile(t, "bad.edgelist", content)

	err := graphio.SortEdgelist(path)
	require.ErrorIs(t, err, graphio.ErrBadFormat)
	require.Equal(t, content, readFile(t, path))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestSortEdgelistMissingFile(t *testing.T) {
	err := graphio.SortEdgelist(filepath.Join(t.TempDir(), "absent.edgelist"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestEdgelistToAdjacencylist(t *testing.T) {
	in := writeFile(t, "in.edgelist", "0 1 0.5\n1 2 1\n2 2 2\n")
	out := filepath.Join(t.TempDir(), "out.adjacencylist")

	require.NoError(t, graphio.EdgelistToAdjacencylist(in, out))
	require.Equal(t, "0: 1 0.5\n1: 0 0.5 2 1\n2: 1 1 2 2\n", readFile(t, out))

	fromEdges, err := graphio.LoadEdgelist(in)
	require.NoError(t, err)
	fromAdjacency, err := graphio.LoadAdjacencylist(out)
	require.NoError(t, err)
	require.True(t, fromEdges.Equal(fromAdjacency))
}

func TestEdgelistToAdjacencylistBadInput(t *testing.T) {
	in := writeFile(t, "bad.edgelist", "0 1 1\nbroken\n")
	out := filepath.Join(t.TempDir(), "out.adjacencylist")

	err := graphio.EdgelistToAdjacencylist(in, out)
	require.ErrorIs(t, err, graphio.ErrBadFormat)
	require.NoFileExists(t, out)
}

func TestAdjacencylistToEdgelist(t *testing.T) {
	in := writeFile(t, "in.adjacencylist", "0: 1 0.5\n1: 0 0.5 2 1\n2: 1 1 2 2\n")
	out := filepath.Join(t.TempDir(), "out.edgelist")

	require.NoError(t, graphio.AdjacencylistToEdgelist(in, out))
	require.Equal(t, "0 1 0.5\n1 2 1\n2 2 2\n", readFile(t, out))
}

func TestAdjacencylistToEdgelistBadInput(t *testing.T) {
	in := writeFile(t, "bad.adjacencylist", "0: 1\n")
	out := filepath.Join(t.TempDir(), "out.edgelist")

	err := graphio.AdjacencylistToEdgelist(in, out)
	require.ErrorIs(t, err, graphio.ErrBadFormat)
}

func TestConvertMissingInput(t *testing.T) {
	dir := t.TempDir()
	absent := filepath.Join(dir, "absent")

	err := graphio.EdgelistToAdjacencylist(absent, filepath.Join(dir, "out.adjacencylist"))
	require.ErrorIs(t, err, fs.ErrNotExist)

	err = graphio.AdjacencylistToEdgelist(absent, filepath.Join(dir, "out.edgelist"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

// TestConversionRoundTrip pushes a real graph through both conversions with
// a tiny sort chunk, so the on-disk pipeline runs a genuine multi-run merge,
// and checks the graph survives unchanged.
func TestConversionRoundTrip(t *testing.T) {
	restore := graphio.SetSortChunkLines_TestOnly(2)
	defer restore()

	g, err := graph.BarbellGraph(10)
	require.NoError(t, err)

	dir := t.TempDir()
	edgelist := filepath.Join(dir, "graph.edgelist")
	adjacencylist := filepath.Join(dir, "graph.adjacencylist")
	back := filepath.Join(dir, "back.edgelist")

	require.NoError(t, graphio.SaveEdgelist(g, edgelist))
	require.NoError(t, graphio.EdgelistToAdjacencylist(edgelist, adjacencylist))

	viaAdjacency, err := graphio.LoadAdjacencylist(adjacencylist)
	require.NoError(t, err)
	require.True(t, g.Equal(viaAdjacency))

	require.NoError(t, graphio.AdjacencylistToEdgelist(adjacencylist, back))
	viaEdgelist, err := graphio.LoadEdgelist(back)
	require.NoError(t, err)
	require.True(t, g.Equal(viaEdgelist))
}
