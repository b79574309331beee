package playout

import (
	"github.com/gobanengine/michigo/pkg/board"
	"github.com/gobanengine/michigo/pkg/ctx"
	"github.com/gobanengine/michigo/pkg/tactics"
)

// ChooseFrom tries each candidate move in order, playing the first one that
// is legal, then rolling a self-atari rejection check (PROB_SSAREJECT for
// a heuristic-suggested move, the lower PROB_RSAREJECT for a "random"
// fallback move, so nakade-ish sacrifices from the weaker heuristics still
// get through more often). A rejected move is undone and the scan
// continues. Returns board.Pass if nothing in moves was playable.
// Grounded on michi.c's choose_from.
func ChooseFrom(pos *board.Position, c *ctx.Context, moves []board.Point, kind string, disp bool) board.Point {
	for _, pt := range moves {
		if disp && kind != "random" {
			c.Logger.Debug().Str("kind", kind).Str("move", board.StrCoord(pt, pos.Geometry())).Msg("move suggestion")
		}
		captured, err := pos.PlayMove(pt)
		if err != nil {
			continue
		}

		rejectProb := ProbSSAReject
		if kind == "random" {
			rejectProb = ProbRSAReject
		}
		if c.RNG.Float64() <= rejectProb {
			_, selfAtariMoves, _ := tactics.FixAtari(pos, c, pt, true, true, true)
			if len(selfAtariMoves) > 0 {
				if disp {
					c.Logger.Debug().Str("move", board.StrCoord(pt, pos.Geometry())).Msg("rejecting self-atari move")
				}
				pos.Undo(captured)
				continue
			}
		}
		return pt
	}
	return board.Pass
}
