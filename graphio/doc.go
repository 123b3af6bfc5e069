// SPDX-License-Identifier: MIT

// Package graphio reads and writes graphs as line-oriented text files and
// converts between the two supported formats in bounded memory.
//
// # Formats
//
// An edgelist file holds one undirected edge per content line, in any of
// the forms
//
//	<u> <v> <w>
//	<u> <v>
//	<u>, <v>, <w>
//	<u>, <v>
//
// with integer endpoints and an optional float weight defaulting to 1.
// Repeated lines sum their weights. An adjacencylist file holds one vertex
// per content line,
//
//	<u>: <v1> <w1> <v2> <w2> ...
//
// with every edge present in the line of both endpoints and self-loops
// once, in their own line. In both formats blank lines and lines beginning
// with '#' or "//" are ignored.
//
// The formats differ in one observable way: an adjacencylist represents
// isolated vertices (a bare "u:" line) while an edgelist can only mention
// vertices that carry an edge.
//
// # Conversions
//
// EdgelistToAdjacencylist and AdjacencylistToEdgelist stream between the
// formats without building the Graph. The edgelist direction duplicates
// every edge into both orientations in a temporary file and sorts it on
// disk (SortEdgelist, an external merge sort), so arbitrarily large files
// convert in bounded memory. Conversions and SortEdgelist drop comments;
// the load/save pairs keep the graph exact but not the file bytes.
//
// # Errors
//
//	ErrBadFormat - unparseable content line; the error text carries
//	               file name and line number.
//
// Loading also surfaces graph.ErrAsymmetric for one-sided adjacency
// entries, sparse.ErrNaNInf for non-finite weights, and the underlying os
// error (fs.ErrNotExist and friends) when a file cannot be opened. All
// errors are matched with errors.Is.
//
// # Determinism
//
// Save and conversion output is canonical: rows ascending, columns
// ascending within a row, weights in %g form. Equal graphs produce
// byte-identical files.
package graphio
