package gridgraph

// ConnectedComponents finds all contiguous regions of cells accepted by
// keep, according to conn. Components are listed in row-major order of
// their first cell; each component is a slice of row-major cell indices in
// BFS order from that cell.
//
// To convert an index back to a Point, use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents(keep func(byte) bool, conn Connectivity) [][]int {
	seen := make([]bool, g.Width*g.Height)
	var comps [][]int
	offsets := NeighborOffsets(conn)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !keep(g.cells[y][x]) {
				continue
			}
			p0 := Point{x, y}
			i0 := g.index(p0)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				up := g.Coordinate(u)
				for _, d := range offsets {
					v := up.Add(d)
					if !g.InBounds(v) || !keep(g.cells[v.Y][v.X]) {
						continue
					}
					vi := g.index(v)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}
