package playout

import (
	"github.com/gobanengine/michigo/pkg/board"
	"github.com/gobanengine/michigo/pkg/ctx"
	"github.com/gobanengine/michigo/pkg/tactics"
)

// LastMovesNeighbors builds the randomly shuffled set of candidate points
// the playout heuristics are tried against: pos.Last itself plus its
// on-board neighbors, then pos.Last2 and its neighbors inserted (uniquely)
// after. Grounded on michi.c's make_list_neighbors/
// make_list_last_moves_neighbors.
func LastMovesNeighbors(pos *board.Position, c *ctx.Context) []board.Point {
	points := listNeighbors(pos, pos.Last)
	last2 := listNeighbors(pos, pos.Last2)
	for _, n := range last2 {
		insertUnique(&points, n)
	}
	c.RNG.Shuffle(len(points), func(i, j int) { points[i], points[j] = points[j], points[i] })
	return points
}

func listNeighbors(pos *board.Position, pt board.Point) []board.Point {
	if pt == board.Pass || pt == board.NoPoint {
		return nil
	}
	g := pos.Geometry()
	points := make([]board.Point, 0, 9)
	points = append(points, pt)
	for _, n := range g.AllNeighbors(pt) {
		if pos.AtPoint(n) != board.Out {
			points = append(points, n)
		}
	}
	return points
}

func insertUnique(points *[]board.Point, pt board.Point) {
	for _, p := range *points {
		if p == pt {
			return
		}
	}
	*points = append(*points, pt)
}

// GenPlayoutMovesCapture suggests, for every block of either color in
// candidates, the move(s) that capture it or save it from atari (per
// tactics.FixAtari with SINGLEPT_NOK, TWOLIBS_TEST). Grounded on michi.c's
// gen_playout_moves_capture.
//
// michi.c's prob parameter is accepted by gen_playout_moves_capture but
// never actually read inside it — only gen_playout_moves_pat3 applies a
// probability gate in the C source. Spec text assigns capture suggestions
// a probability too, so unlike the (apparently vestigial) C parameter this
// implementation honors that and gates the whole suggestion pass on it.
func GenPlayoutMovesCapture(pos *board.Position, c *ctx.Context, candidates []board.Point, prob float64, expensiveOK bool) []board.Point {
	if c.RNG.Float64() > prob {
		return nil
	}
	twolibEdgeonly := !expensiveOK
	var moves []board.Point
	for _, pt := range candidates {
		col := pos.AtPoint(pt)
		if col != board.ToPlay && col != board.Other {
			continue
		}
		_, escapeMoves, _ := tactics.FixAtari(pos, c, pt, false, true, twolibEdgeonly)
		for _, mv := range escapeMoves {
			insertUnique(&moves, mv)
		}
	}
	return moves
}

// GenPlayoutMovesPat3 suggests every empty point in candidates whose 3x3
// neighborhood matches the compiled pattern dictionary, gated by prob.
// Grounded on michi.c's gen_playout_moves_pat3 (which also marks each
// candidate in already_suggested purely to dedup within this call — this
// port gets the same dedup for free via insertUnique, so
// c.AlreadySuggested is left untouched here).
func GenPlayoutMovesPat3(pos *board.Position, c *ctx.Context, candidates []board.Point, prob float64) []board.Point {
	if c.RNG.Float64() > prob {
		return nil
	}
	var moves []board.Point
	for _, pt := range candidates {
		if pos.AtPoint(pt) != board.Empty {
			continue
		}
		if c.Pattern3.Match(pos.Env8(pt)) {
			insertUnique(&moves, pt)
		}
	}
	return moves
}

// GenPlayoutMovesRandom lists every empty, non-true-eye point on the board,
// starting the scan at i0 and wrapping around — the fallback once capture
// and pattern suggestions are exhausted. False positives (suicide moves)
// are expected; ChooseFrom filters them out via PlayMove's own rejection.
// Grounded on michi.c's gen_playout_moves_random.
func GenPlayoutMovesRandom(pos *board.Position, i0 board.Point) []board.Point {
	g := pos.Geometry()
	moves := make([]board.Point, 0, g.BoardSize)
	for i := i0; i < board.Point(g.IMax); i++ {
		if pos.AtPoint(i) != board.Empty {
			continue
		}
		if col, ok := board.IsEye(pos, i); ok && col == board.ToPlay {
			continue
		}
		moves = append(moves, i)
	}
	for i := board.Point(g.IMin); i < i0; i++ {
		if pos.AtPoint(i) != board.Empty {
			continue
		}
		if col, ok := board.IsEye(pos, i); ok && col == board.ToPlay {
			continue
		}
		moves = append(moves, i)
	}
	return moves
}
