package largepattern

import "github.com/gobanengine/michigo/pkg/board"

// Geometry is the large board's layout: a copy of the live board padded
// with a 7-point border on every side (wide enough for the largest
// gridcular ring), addressed as a flat array the same way pkg/board
// addresses the live board. Grounded on patterns.c's
// compute_large_coord/init_large_board.
//
// The top and bottom borders are 7 full rows each (Height = N+14), but
// each row holds only N+7 cells: the left border is explicit and the
// "right" border reuses the following row's left border via the flat 1D
// addressing (seq1d = dx - dy*Width), exactly as the reference engine
// does — any read that overflows a row lands on the next row's border
// cells, which read as OUT either way. This is not a bug to fix; it's the
// reference engine's memory layout, ported faithfully.
type Geometry struct {
	N      int
	Width  int // N+7
	Height int // N+14
	Size   int // Width*Height

	// LargeCoord maps a board.Point to its index in the large board.
	LargeCoord []int

	// Seq1D is gridcularSeq flattened into this geometry's 1D addressing.
	Seq1D [141]int

	revIndex map[int]int // Seq1D value -> index, for building permutations
}

// NewGeometry derives a large-board Geometry from a board Geometry.
func NewGeometry(g *board.Geometry) *Geometry {
	lg := &Geometry{
		N:      g.N,
		Width:  g.N + 7,
		Height: g.N + 14,
	}
	lg.Size = lg.Width * lg.Height
	lg.LargeCoord = make([]int, g.BoardSize)
	for r := 1; r <= g.N; r++ {
		for c := 1; c <= g.N; c++ {
			pt := r*g.RowStride + c
			y, x := r-1, c-1
			lg.LargeCoord[pt] = (y+7)*lg.Width + (x + 7)
		}
	}
	lg.revIndex = make(map[int]int, 141)
	for i, s := range gridcularSeq {
		d := s.X - s.Y*lg.Width
		lg.Seq1D[i] = d
		lg.revIndex[d] = i
	}
	return lg
}

// indexOf returns the canonical gridcularSeq index whose 1D displacement
// (in this geometry) equals disp. Ported from patterns.c's gridcular_index;
// panics if disp isn't one of the 141 canonical offsets, which can only
// happen if a permutation table was built against the wrong Geometry.
func (g *Geometry) indexOf(disp int) int {
	i, ok := g.revIndex[disp]
	if !ok {
		panic("largepattern: displacement not in canonical gridcular set")
	}
	return i
}
