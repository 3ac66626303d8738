// Package gridgraph treats a rectangular block of text as a graph of cells,
// one byte per cell, with 4-, 8- or row-only neighbour adjacency.
//
// What:
//
//   - Grid wraps the lines of a puzzle input; it is immutable once built.
//   - Neighbors enumerates adjacent in-bounds cells under Conn4, Conn8 or ConnRow.
//   - ConnectedComponents groups cells accepted by a predicate into regions
//     ("numbers" in a schematic, "islands" in a map).
//   - Find and Points locate cells by value or predicate.
//
// Why:
//
//   - Schematic adjacency, pipe tracing and galaxy images all read a grid of
//     characters; this package owns bounds checks and neighbour offsets.
//
// Complexity:
//
//   - FromText:            O(W×H), Memory: O(W×H).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)  (d = 2, 4 or 8).
//   - Find, Points:        O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
