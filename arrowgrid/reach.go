package arrowgrid

// neighborOffsets lists the 8-neighborhood as (dRow, dCol) in search order
// N, E, S, W, NE, SE, SW, NW.
var neighborOffsets = [8][2]int{
	{-1, 0}, {0, 1}, {1, 0}, {0, -1},
	{-1, 1}, {1, 1}, {1, -1}, {-1, -1},
}

// Reachable reports whether the target can be reached from the start when
// every legal step is an edge, ignoring path shape. A false result proves that
// no path exists; true says nothing about how long a search will take.
//
// Time:   O(R×C×8).
// Memory: O(R×C) for the seen flags and queue.
func (g *Grid) Reachable() bool {
	target := g.Index(g.Target())
	seen := make([]bool, len(g.cells))
	queue := []int{0}
	seen[0] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == target {
			return true
		}
		uv := g.Vertex(u)
		for _, d := range neighborOffsets {
			nv := uv.Add(d[0], d[1])
			if !g.InBounds(nv) {
				continue
			}
			vi := g.Index(nv)
			if seen[vi] || !CanMove(g.cells[u], g.cells[vi]) {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}

	return false
}
