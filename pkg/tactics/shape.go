package tactics

import "github.com/gobanengine/michigo/pkg/board"

// LineHeight returns the 0-based distance of pt from the nearest board
// edge, along the closer of its row/column axis. Grounded on michi.c's
// line_height.
func LineHeight(g *board.Geometry, pt board.Point) int {
	row := int(pt) / g.RowStride
	col := int(pt) % g.RowStride
	if row > g.N/2 {
		row = g.N + 1 - row
	}
	if col > g.N/2 {
		col = g.N + 1 - col
	}
	if row < col {
		return row - 1
	}
	return col - 1
}

// EmptyArea reports whether every point within Manhattan distance dist of
// pt is empty (no stones of either color). Grounded on michi.c's
// empty_area; used to bias MCTS priors away from dame-ish plays deep in
// open space near the edge.
func EmptyArea(pos *board.Position, pt board.Point, dist int) bool {
	for _, n := range pos.Geometry().Neighbors(pt) {
		c := pos.AtPoint(n)
		if c == board.Other || c == board.ToPlay {
			return false
		}
		if c == board.Empty && dist > 1 && !EmptyArea(pos, n, dist-1) {
			return false
		}
	}
	return true
}
