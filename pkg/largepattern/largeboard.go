package largepattern

import "github.com/gobanengine/michigo/pkg/board"

// LargeBoard mirrors a live Position's stones into a 7-point-bordered flat
// array, the addressing gridcularSeq's offsets are defined against.
// Grounded on patterns.c's large_board/copy_to_large_board.
type LargeBoard struct {
	geo   *Geometry
	cells []byte
}

// NewLargeBoard allocates a LargeBoard for geo, filled with OUT.
func NewLargeBoard(geo *Geometry) *LargeBoard {
	lb := &LargeBoard{geo: geo, cells: make([]byte, geo.Size)}
	lb.Reset()
	return lb
}

// Reset fills the entire large board with '#' (OUT), including the
// interior — call SyncFrom afterward to populate real stones.
func (lb *LargeBoard) Reset() {
	for i := range lb.cells {
		lb.cells[i] = '#'
	}
}

// SyncFrom copies pos's interior stones into the large board at their
// mapped positions. The border stays '#' from the last Reset.
func (lb *LargeBoard) SyncFrom(pos *board.Position, g *board.Geometry) {
	g.ForAllPoints(func(pt board.Point) {
		lb.cells[lb.geo.LargeCoord[pt]] = pos.AtPoint(pt)
	})
}

// At returns the large-board point index for a board point.
func (lb *LargeBoard) At(pt board.Point) int { return lb.geo.LargeCoord[pt] }

// Cells exposes the raw backing array for zobristTable.extend.
func (lb *LargeBoard) Cells() []byte { return lb.cells }
