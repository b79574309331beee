package largepattern

import "github.com/gobanengine/michigo/pkg/rng"

// colorCode maps a large-board or pattern-string byte to the mover-relative
// 2-bit code the Zobrist table is indexed by: 0 EMPTY, 1 OUT, 2 OTHER,
// 3 TO-PLAY. Unlike pkg/board's env4 encoding this is relative, not
// absolute — the large board is always synced from an already
// swap-cased Position, so 'X' already means "to move" here. Ported from
// patterns.c's init_stone_color.
func colorCode(c byte) int {
	switch c {
	case '.':
		return 0
	case '#', ' ':
		return 1
	case 'O', 'x':
		return 2
	case 'X':
		return 3
	default:
		return 1
	}
}

// zobristTable holds 141*4 random 64-bit words, one per (offset index,
// color code) pair. Built once, deterministically, from a fixed seed: the
// dictionary's hash keys only ever need to be self-consistent within one
// process, never compared across runs or persisted, so there's no
// correctness reason to tie this to the engine's gameplay seed — keeping it
// fixed instead means the dictionary behaves identically across restarts.
type zobristTable [141][4]uint64

func newZobristTable() *zobristTable {
	const fixedSeed = 0xC0FFEE
	gen := rng.New(fixedSeed)
	var t zobristTable
	for d := 0; d < 141; d++ {
		for c := 0; c < 4; c++ {
			hi := uint64(gen.Uint32())
			lo := uint64(gen.Uint32())
			t[d][c] = hi<<32 | lo
		}
	}
	return &t
}

// hash computes the Zobrist signature of a pattern string of up to 141
// characters, one XOR term per character.
func (t *zobristTable) hash(s string) uint64 {
	var k uint64
	for i := 0; i < len(s); i++ {
		k ^= t[i][colorCode(s[i])]
	}
	return k
}

// extend XORs in the offsets [lo,hi) of seq1d, read from largeBoard at
// basePt, into the running signature k. Ported from patterns.c's
// update_zobrist_hash_at_point.
func (t *zobristTable) extend(largeBoard []byte, basePt int, seq1d [141]int, lo, hi int, k uint64) uint64 {
	for i := lo; i < hi; i++ {
		c := largeBoard[basePt+seq1d[i]]
		k ^= t[i][colorCode(c)]
	}
	return k
}
