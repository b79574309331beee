package board

import "github.com/pkg/errors"

// PlayMove plays a stone at pt for the side to move, applying captures,
// checking suicide and ko-recapture, and then flipping the board's
// perspective (the side that just moved becomes 'x', the other side 'X')
// so the position is always ready for the next PlayMove/PassMove call from
// the new side-to-move's point of view. Grounded on michi.c's play_move,
// translated from floodfill-capture to incremental block/liberty search.
//
// The returned slice lists every point captured by this move. michi.c keeps
// this in a global, pos_capture, that callers peek at right after play_move
// returns; per the design notes that global belongs in the return value, so
// it's returned directly instead (copied out of internal scratch storage —
// the next PlayMove call reuses that buffer).
func (p *Position) PlayMove(pt Point) ([]Point, error) {
	if pt == Pass {
		p.PassMove()
		return nil, nil
	}
	if pt < Point(p.g.IMin) || pt >= Point(p.g.IMax) || p.Color[pt] == Out {
		return nil, errors.Wrapf(ErrOccupied, "%s: off board", StrCoord(pt, p.g))
	}
	if p.Color[pt] != Empty {
		return nil, errors.Wrapf(ErrOccupied, "%s", StrCoord(pt, p.g))
	}
	if pt == p.Ko {
		return nil, errors.Wrapf(ErrKoRecapture, "%s", StrCoord(pt, p.g))
	}

	s := p.ensureScratch()
	p.putStone(pt)

	captured := s.capturedBuf[:0]
	singleCapturedPoint := NoPoint
	for _, n := range p.g.Neighbors(pt) {
		if p.Color[n] != Other {
			continue
		}
		ComputeBlock(p, n, s.marker, s.blockStones, s.blockLibs)
		if s.blockLibs.Len() != 0 {
			continue
		}
		for _, stone := range s.blockStones.Items() {
			captured = append(captured, stone)
		}
		if s.blockStones.Len() == 1 {
			singleCapturedPoint = s.blockStones.At(0)
		}
		captureBlock(p, s.blockStones)
	}

	ComputeBlock(p, pt, s.marker, s.blockStones, s.blockLibs)
	if s.blockLibs.Len() == 0 {
		// Suicide: unwind captures and the placement, reject the move.
		for _, stone := range captured {
			p.restoreOtherStone(stone)
		}
		p.undoOwnStone(pt)
		return nil, errors.Wrapf(ErrSuicide, "%s", StrCoord(pt, p.g))
	}

	newKo := NoPoint
	if len(captured) == 1 && singleCapturedPoint != NoPoint &&
		s.blockStones.Len() == 1 && s.blockLibs.Len() == 1 && s.blockLibs.At(0) == singleCapturedPoint {
		newKo = singleCapturedPoint
	}

	p.CapX += len(captured)
	p.KoOld = p.Ko
	p.Ko = newKo
	p.Last3 = p.Last2
	p.Last2 = p.Last
	p.Last = pt
	p.N++
	p.CapX, p.Cap = p.Cap, p.CapX
	p.swapSides()
	result := make([]Point, len(captured))
	copy(result, captured)
	return result, nil
}

// PassMove records a pass: no board change, but history and the side to
// move still advance, and any standing ko is cleared (a pass can't be used
// to stall out a ko ban).
func (p *Position) PassMove() {
	p.KoOld = p.Ko
	p.Ko = NoPoint
	p.Last3 = p.Last2
	p.Last2 = p.Last
	p.Last = Pass
	p.N++
	p.CapX, p.Cap = p.Cap, p.CapX
	p.swapSides()
}

// Undo reverses exactly one ply: the most recent PlayMove or PassMove call.
// captured must be the slice PlayMove returned for that call (nil for a
// PassMove or a capture-free move). This only correctly restores a SINGLE
// captured stone: undoing a move that captured more than one stone leaves
// the board missing the rest. Its callers are the playout self-atari
// rejection in playout.ChooseFrom, which plays one trial move and checks
// one resulting capture, and Engine.Undo.
func (p *Position) Undo(captured []Point) {
	if p.Last != Pass {
		p.removeStone(p.Last)
	}
	p.Last, p.Last2 = p.Last2, p.Last3
	p.Ko = p.KoOld
	if len(captured) == 1 {
		p.putStone(captured[0])
		p.Cap--
	}
	p.N--
	p.CapX, p.Cap = p.Cap, p.CapX
	p.swapSides()
}

// swapSides flips every stone's board letter so the side to move is always
// 'X'. This is the one O(board size) step per move; every other operation
// in the engine is incremental specifically so this sweep is the only
// linear-time cost PlayMove pays. env4/env4d are untouched here: they
// encode absolute BLACK/WHITE, not the mover-relative 'X'/'x' letters, so
// relabeling the board doesn't change a single bit of them — the pattern
// dictionary's color-swap symmetry closure is what makes that absolute
// encoding usable by mover-relative pattern templates.
func (p *Position) swapSides() {
	for pt := p.g.IMin; pt < p.g.IMax; pt++ {
		switch p.Color[pt] {
		case ToPlay:
			p.Color[pt] = Other
		case Other:
			p.Color[pt] = ToPlay
		}
	}
}
