package board

// env4/env4d pack, for every point, the color of its 4 orthogonal and 4
// diagonal neighbors into a single byte each: 2 bits per neighbor, one bit
// in the low nibble and one in the high nibble, at the bit position of the
// neighbor's slot (0=N,1=E,2=S,3=W for env4; 0=NE,1=SE,2=SW,3=NW for env4d).
// The 2-bit code is (hi,lo): WHITE=(0,0) BLACK=(0,1) EMPTY=(1,0) OUT=(1,1).
//
// Keeping these caches incremental (touched only by putStone/removeStone,
// never recomputed from scratch on the hot path) is what makes the 3x3
// pattern matcher a handful of shifts instead of 8 neighbor reads per move.
var (
	maskLo   = [4]byte{0x01, 0x02, 0x04, 0x08}
	maskHi   = [4]byte{0x10, 0x20, 0x40, 0x80}
	maskBoth = [4]byte{0x11, 0x22, 0x44, 0x88}
	maskClr  = [4]byte{0xEE, 0xDD, 0xBB, 0x77} // ^maskBoth, per slot
)

// colorCode returns the absolute 2-bit color code (0 white, 1 black,
// 2 empty, 3 out) of the stone at c, given which color is currently "X"
// (n even means the player to move, who plays 'X', is BLACK).
func colorCode(blackToPlay bool, c byte) int {
	switch c {
	case Empty:
		return 2
	case Out:
		return 3
	case ToPlay:
		if blackToPlay {
			return 1
		}
		return 0
	default: // Other
		if blackToPlay {
			return 0
		}
		return 1
	}
}

// computeEnv4 rebuilds the env4 (offset 0) or env4d (offset 4) byte for pt
// from scratch, by reading its 4 neighbors at Delta[offset:offset+4]. Used
// only at position construction; the hot path maintains these bytes
// incrementally.
func (p *Position) computeEnv4(pt Point, offset int) byte {
	blackToPlay := p.N%2 == 0
	var env byte
	for k := offset; k < offset+4; k++ {
		idx := k - offset
		n := pt + Point(p.g.Delta[k])
		switch colorCode(blackToPlay, p.Color[n]) {
		case 1:
			env |= maskLo[idx]
		case 2:
			env |= maskHi[idx]
		case 3:
			env |= maskBoth[idx]
		}
	}
	return env
}

// touchAbs applies one neighbor-side env4/env4d update for a transition
// to/from the absolute color isBlack selects. Toggling both bits is its own
// inverse and covers every transition that touches BLACK; transitions that
// touch WHITE exploit WHITE's code (0,0) being the all-zero one, so placing
// is an AND-clear and removing is an OR of the high bit alone.
func touchAbs(arr []byte, at Point, slot int, isBlack, placing bool) {
	if isBlack {
		arr[at] ^= maskBoth[slot]
		return
	}
	if placing {
		arr[at] &= maskClr[slot] // EMPTY(1,0) -> WHITE(0,0)
	} else {
		arr[at] |= maskHi[slot] // WHITE(0,0) -> EMPTY(1,0)
	}
}

// placeAbsStone transitions pt from EMPTY to the absolute color isBlack
// selects, updating all 8 neighbors' env4/env4d.
func (p *Position) placeAbsStone(pt Point, isBlack bool) {
	for k := 0; k < 4; k++ {
		touchAbs(p.Env4, pt+Point(p.g.Delta[k]), (k+2)%4, isBlack, true)
	}
	for k := 4; k < 8; k++ {
		idx := k - 4
		touchAbs(p.Env4D, pt+Point(p.g.Delta[k]), (idx+2)%4, isBlack, true)
	}
}

// removeAbsStone transitions pt from the absolute color isBlack selects to
// EMPTY, updating all 8 neighbors' env4/env4d.
func (p *Position) removeAbsStone(pt Point, isBlack bool) {
	for k := 0; k < 4; k++ {
		touchAbs(p.Env4, pt+Point(p.g.Delta[k]), (k+2)%4, isBlack, false)
	}
	for k := 4; k < 8; k++ {
		idx := k - 4
		touchAbs(p.Env4D, pt+Point(p.g.Delta[k]), (idx+2)%4, isBlack, false)
	}
}

// putStone places a TO-PLAY ('X') stone at pt. Callers must have already
// verified pt is empty.
func (p *Position) putStone(pt Point) {
	p.placeAbsStone(pt, p.ToMoveIsBlack())
	p.Color[pt] = ToPlay
}

// removeStone removes an opponent ('x') stone at pt — capture always
// removes the color that is NOT to move.
func (p *Position) removeStone(pt Point) {
	p.removeAbsStone(pt, !p.ToMoveIsBlack())
	p.Color[pt] = Empty
}

// restoreOtherStone re-places a just-captured opponent ('x') stone at pt,
// the exact inverse of removeStone. Used to unwind a suicide attempt after
// captures have already been applied.
func (p *Position) restoreOtherStone(pt Point) {
	p.placeAbsStone(pt, !p.ToMoveIsBlack())
	p.Color[pt] = Other
}

// undoOwnStone removes the TO-PLAY stone just placed at pt, the exact
// inverse of putStone. Used to unwind a suicide attempt.
func (p *Position) undoOwnStone(pt Point) {
	p.removeAbsStone(pt, p.ToMoveIsBlack())
	p.Color[pt] = Empty
}

// Env8 packs env4 and env4d into the 16-bit descriptor the 3x3 pattern
// matcher indexes on: low byte orthogonal, high byte diagonal.
func (p *Position) Env8(pt Point) uint16 {
	return uint16(p.Env4[pt]) | uint16(p.Env4D[pt])<<8
}
