package gridgraph

import (
	"strings"
)

// FromText builds a Grid from newline separated rows. Blank leading and
// trailing lines and CR characters are ignored.
// Returns ErrEmptyGrid if no row remains and ErrNonRectangular if row
// lengths differ.
// Complexity: O(W×H) time and memory.
func FromText(text string) (*Grid, error) {
	text = strings.Trim(strings.ReplaceAll(text, "\r", ""), "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	return FromRows(strings.Split(text, "\n"))
}

// FromRows builds a Grid from rows, deep-copying them.
// Complexity: O(W×H) time and memory.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	cells := make([][]byte, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = []byte(row)
	}
	return &Grid{Width: w, Height: len(rows), cells: cells}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the byte at p and whether p is in bounds.
// Complexity: O(1).
func (g *Grid) At(p Point) (byte, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[p.Y][p.X], true
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) string {
	return string(g.cells[y])
}

// NeighborOffsets returns the unit offsets for conn.
// Complexity: O(1).
func NeighborOffsets(conn Connectivity) []Point {
	switch conn {
	case Conn8:
		return offsets8
	case ConnRow:
		return offsetsR
	default:
		return offsets4
	}
}

// Neighbors returns the in-bounds neighbours of p under conn.
// Complexity: O(d).
func (g *Grid) Neighbors(p Point, conn Connectivity) []Point {
	offs := NeighborOffsets(conn)
	out := make([]Point, 0, len(offs))
	for _, d := range offs {
		if q := p.Add(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Find returns the first cell, in row-major order, holding b.
// Complexity: O(W×H).
func (g *Grid) Find(b byte) (Point, bool) {
	for y, row := range g.cells {
		for x, c := range row {
			if c == b {
				return Point{x, y}, true
			}
		}
	}
	return Point{}, false
}

// Points returns every cell accepted by keep, in row-major order.
// Complexity: O(W×H).
func (g *Grid) Points(keep func(byte) bool) []Point {
	var out []Point
	for y, row := range g.cells {
		for x, c := range row {
			if keep(c) {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

// index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{idx % g.Width, idx / g.Width}
}
