package playout

import (
	"github.com/gobanengine/michigo/pkg/board"
	"github.com/gobanengine/michigo/pkg/ctx"
)

// Result is the outcome of one simulated random game: the score from the
// starting position's to-play side's perspective, plus the AMAF map
// (amaf[pt] is +1/-1 for the absolute color that played pt first, 0 if pt
// was never played) that tree_update folds into RAVE statistics.
type Result struct {
	Score float64
	AMAF  []int
}

// MCPlayout runs one random game to completion (or MaxGameLen) from pos,
// mutating pos in place move by move, and returns the score from the
// perspective of the side to move at the position MCPlayout was called
// with. owner, if non-nil, accumulates per-point ownership sign (see
// board.Score) across repeated calls sharing the same buffer. Grounded on
// michi.c's mcplayout.
func MCPlayout(pos *board.Position, c *ctx.Context, owner []float32, disp bool) Result {
	g := pos.Geometry()
	startN := pos.N
	amaf := make([]int, g.BoardSize)
	passes := 0

	for passes < 2 && pos.N < MaxGameLen(g.N) {
		candidates := LastMovesNeighbors(pos, c)

		move := board.Pass
		if captureMoves := GenPlayoutMovesCapture(pos, c, candidates, ProbHeuristicCapture, false); len(captureMoves) > 0 {
			move = ChooseFrom(pos, c, captureMoves, "capture", disp)
		}
		if move == board.Pass {
			if pat3Moves := GenPlayoutMovesPat3(pos, c, candidates, ProbHeuristicPat3); len(pat3Moves) > 0 {
				move = ChooseFrom(pos, c, pat3Moves, "pat3", disp)
			}
		}
		if move == board.Pass {
			start := board.Point(g.IMin-1) + board.Point(c.RNG.Intn(g.N*g.W))
			move = ChooseFrom(pos, c, GenPlayoutMovesRandom(pos, start), "random", disp)
		}

		if move == board.Pass {
			pos.PassMove()
			passes++
			continue
		}
		passes = 0
		if amaf[move] == 0 {
			// pos.N was already advanced by the PlayMove call inside
			// ChooseFrom, so the side that just played is (pos.N-1)%2.
			if (pos.N-1)%2 == 0 {
				amaf[move] = 1
			} else {
				amaf[move] = -1
			}
		}
	}

	s := float64(board.Score(pos, owner))
	if startN%2 != pos.N%2 {
		s = -s
	}
	return Result{Score: s, AMAF: amaf}
}
