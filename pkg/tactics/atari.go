// Package tactics implements the atari/ladder/CFG-distance reading used to
// seed playout move generation and MCTS priors. Grounded on
// original_source/michi.c's fix_atari/read_ladder_attack/compute_block
// family, which the teacher repo never ported (its naive string board has
// no tactical reading at all).
package tactics

import (
	"github.com/gobanengine/michigo/pkg/board"
	"github.com/gobanengine/michigo/pkg/ctx"
)

// FixAtari checks the block at pt: whether it is in atari, and if so which
// moves capture or save it. Grounded on michi.c's fix_atari.
//
// singleptOk skips single-stone blocks entirely: they are reported as not
// in atari, with no capture or escape moves.
// twolibTest additionally checks 2-liberty blocks for a working ladder,
// proposing the ladder-continuation move as a capture threat;
// twolibEdgeonly skips that (expensive) check when both liberties are away
// from the edge.
func FixAtari(pos *board.Position, c *ctx.Context, pt board.Point, singleptOk, twolibTest, twolibEdgeonly bool) (inAtari bool, moves []board.Point, sizes []int) {
	g := pos.Geometry()
	stones := board.NewSlist(g.BoardSize)
	libs := board.NewSlist(5)
	board.ComputeBlock(pos, pt, c.Mark1, stones, libs)

	insert := func(mv board.Point) {
		for _, m := range moves {
			if m == mv {
				return
			}
		}
		moves = append(moves, mv)
		sizes = append(sizes, stones.Len())
	}

	if singleptOk && stones.Len() == 1 {
		return false, nil, nil
	}

	if libs.Len() >= 2 {
		if twolibTest && libs.Len() == 2 && stones.Len() > 1 {
			if twolibEdgeonly && (LineHeight(g, libs.At(0)) > 0 && LineHeight(g, libs.At(1)) > 0) {
				return false, nil, nil // no expensive ladder check
			}
			if ladder := ReadLadderAttack(pos, c, pt, []board.Point{libs.At(0), libs.At(1)}); ladder != board.NoPoint {
				insert(ladder)
			}
		}
		return false, moves, sizes
	}

	if pos.AtPoint(pt) == board.Other {
		// opponent's group with one liberty left: capture it.
		insert(libs.At(0))
		return true, moves, sizes
	}

	// Our own group, in atari. Before thinking about escape, can we
	// counter-capture a neighboring block that is itself in atari?
	for _, lib := range neighborBlocksInAtari(pos, c, stones) {
		insert(lib)
	}

	lib := libs.At(0)
	escPos := pos.Clone()
	if _, err := escPos.PlayMove(lib); err != nil {
		return true, moves, sizes // the last liberty is itself suicidal
	}
	escStones := board.NewSlist(g.BoardSize)
	escLibs := board.NewSlist(5)
	board.ComputeBlock(escPos, lib, c.Mark1, escStones, escLibs)
	if escLibs.Len() >= 2 {
		multipleCounterCaptures := len(moves) > 1
		switch {
		case multipleCounterCaptures, escLibs.Len() >= 3:
			insert(lib)
		case escLibs.Len() == 2:
			escLibPts := make([]board.Point, escLibs.Len())
			for i := range escLibPts {
				escLibPts[i] = escLibs.At(i)
			}
			if ReadLadderAttack(escPos, c, lib, escLibPts) == board.NoPoint {
				insert(lib)
			}
		}
	}
	return true, moves, sizes
}

// ReadLadderAttack checks whether the block at pt, with exactly the two
// liberties in libs, is caught in a working ladder: playing either liberty
// and finding the block still in atari with no escape. Grounded on
// michi.c's read_ladder_attack, which the comment there calls "a general
// 2-lib capture exhaustive solver" despite the narrow two-liberty framing.
func ReadLadderAttack(pos *board.Position, c *ctx.Context, pt board.Point, libs []board.Point) board.Point {
	move := board.NoPoint
	for _, l := range libs {
		posL := pos.Clone()
		if _, err := posL.PlayMove(l); err != nil {
			continue
		}
		// One-move horizon: ignore any further 2-lib ladders the
		// recursion would otherwise chase indefinitely.
		inAtari, escapeMoves, _ := FixAtari(posL, c, pt, false, false, false)
		if inAtari && len(escapeMoves) == 0 {
			move = l
		}
	}
	return move
}

// neighborBlocksInAtari returns the single liberty of every distinct
// opponent block adjacent to stones that itself has exactly one liberty —
// candidate counter-capture moves. Grounded on michi.c's
// make_list_neighbor_blocks_in_atari; uses c.Mark2 to track which opponent
// blocks have already been visited, since c.Mark1 is busy being reused by
// the nested ComputeBlock calls.
func neighborBlocksInAtari(pos *board.Position, c *ctx.Context, stones *board.Slist) []board.Point {
	g := pos.Geometry()
	opponent := board.Other
	if pos.AtPoint(stones.At(0)) == board.Other {
		opponent = board.ToPlay
	}

	c.Mark2.Reset()
	var libs []board.Point
	blockStones := board.NewSlist(g.BoardSize)
	blockLibs := board.NewSlist(5)
	for _, pt := range stones.Items() {
		for _, n := range g.Neighbors(pt) {
			if pos.AtPoint(n) != opponent || c.Mark2.IsMarked(n) {
				continue
			}
			board.ComputeBlock(pos, n, c.Mark1, blockStones, blockLibs)
			if blockLibs.Len() != 1 {
				continue
			}
			libs = append(libs, blockLibs.At(0))
			for _, s := range blockStones.Items() {
				c.Mark2.Mark(s)
			}
		}
	}
	return libs
}
