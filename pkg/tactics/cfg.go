package tactics

import "github.com/gobanengine/michigo/pkg/board"

// ComputeCFGDistances returns, for every point, its common-fate-graph
// distance from src: traversal within a block (same color, non-empty)
// costs 0, any other traversal costs 1. Points never reached stay -1.
// Grounded on michi.c's compute_cfg_distances; the fixed-point relaxation
// (a point can be re-enqueued if a shorter distance is later discovered)
// is preserved rather than simplified to a plain one-pass BFS, since a
// contracted same-color block can expose a shorter path to an already
// visited point later in the scan.
func ComputeCFGDistances(pos *board.Position, src board.Point) []int {
	g := pos.Geometry()
	cfgMap := make([]int, g.BoardSize)
	for i := range cfgMap {
		cfgMap[i] = -1
	}
	cfgMap[src] = 0

	fringe := []board.Point{src}
	for head := 0; head < len(fringe); head++ {
		pt := fringe[head]
		for _, n := range g.Neighbors(pt) {
			c := pos.AtPoint(n)
			if c == board.Out {
				continue
			}
			if cfgMap[n] >= 0 && cfgMap[n] <= cfgMap[pt] {
				continue
			}
			before := cfgMap[n]
			if c != board.Empty && c == pos.AtPoint(pt) {
				cfgMap[n] = cfgMap[pt]
			} else {
				cfgMap[n] = cfgMap[pt] + 1
			}
			if before < 0 || before > cfgMap[n] {
				fringe = append(fringe, n)
			}
		}
	}
	return cfgMap
}
