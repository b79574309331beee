package board

import "github.com/OneOfOne/xxhash"

// Position is a single board state: stone colors, the incremental env4/env4d
// neighbor caches, move count, and ko/history bookkeeping. The board is
// always stored "swap-cased": the side to move is always 'X', so move
// generation and pattern matching never need to branch on whose turn it is.
type Position struct {
	g *Geometry

	Color []byte
	Env4  []byte
	Env4D []byte

	N     int // 0-based move number; N%2==0 means BLACK is to move
	Ko    Point
	KoOld Point

	Last, Last2, Last3 Point

	Cap  int // running total of stones captured by the side that just moved ('x')
	CapX int // running total of stones captured by the side to move ('X')

	Komi float32

	scratch *moveScratch
}

// Geometry returns the board layout this position was built with.
func (p *Position) Geometry() *Geometry { return p.g }

// EmptyPosition builds a fresh empty board of the geometry's size, with no
// history and no ko, as the initial state of a game.
func EmptyPosition(g *Geometry, komi float32) *Position {
	color := make([]byte, g.BoardSize)
	k := 0
	for i := 0; i < g.RowStride; i++ {
		color[k] = Out
		k++
	}
	for row := 1; row <= g.N; row++ {
		color[k] = Out
		k++
		for col := 1; col <= g.N; col++ {
			color[k] = Empty
			k++
		}
	}
	for i := 0; i < g.W; i++ {
		color[k] = Out
		k++
	}

	p := &Position{
		g:     g,
		Color: color,
		Env4:  make([]byte, g.BoardSize),
		Env4D: make([]byte, g.BoardSize),
		Ko:    NoPoint,
		KoOld: NoPoint,
		Last:  NoPoint,
		Last2: NoPoint,
		Last3: NoPoint,
		Komi:  komi,
	}
	p.g.ForAllPoints(func(pt Point) {
		p.Env4[pt] = p.computeEnv4(pt, 0)
		p.Env4D[pt] = p.computeEnv4(pt, 4)
	})
	return p
}

// Clone returns a deep, independent copy of p. Used by tactical reading
// (ladder/atari search) and by the tree search and its playouts, all of
// which must mutate a scratch board without disturbing the position under
// search.
func (p *Position) Clone() *Position {
	c := &Position{
		g:     p.g,
		Color: append([]byte(nil), p.Color...),
		Env4:  append([]byte(nil), p.Env4...),
		Env4D: append([]byte(nil), p.Env4D...),
		N:     p.N,
		Ko:    p.Ko,
		KoOld: p.KoOld,
		Last:  p.Last,
		Last2: p.Last2,
		Last3: p.Last3,
		Cap:   p.Cap,
		CapX:  p.CapX,
		Komi:  p.Komi,
	}
	return c
}

// Fingerprint returns a whole-board hash suitable for cheaply comparing two
// positions without diffing the full color string. Not used for Zobrist incremental
// signatures — those are computed separately in pkg/largepattern and must
// stay the spec-mandated XOR-of-ring-words scheme.
func (p *Position) Fingerprint() uint64 {
	h := xxhash.New64()
	h.Write(p.Color)
	return h.Sum64()
}

// AtPoint reports the color stored at pt (Empty/ToPlay/Other/Out).
func (p *Position) AtPoint(pt Point) byte { return p.Color[pt] }

// ToMoveIsBlack reports whether the side to move (always rendered 'X' on
// the board) is BLACK in absolute terms.
func (p *Position) ToMoveIsBlack() bool { return p.N%2 == 0 }
