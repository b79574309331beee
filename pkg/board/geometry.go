// Package board implements the Go board representation: incremental stone
// placement, capture, ko, suicide, and the cached 3x3 neighborhood
// descriptors used by the pattern matcher.
package board

// Point is an index into a Position's flattened color/env4/env4d arrays.
// Real board points are always >= 0; Pass/Resign/NoPoint are negative
// sentinels that can never collide with a real index, which is a small
// departure from the reference implementation (which overloads index 0,
// always part of the border row, as PASS) made purely for clarity -- Go's
// type system gives us the room C's `int` didn't.
type Point int

const (
	// NoPoint marks the absence of a ko, or of a last/last2/last3 move,
	// before any has been recorded.
	NoPoint Point = -3
	// Pass is the PASS sentinel; never a valid board index.
	Pass Point = -1
	// Resign is the RESIGN sentinel returned by search; never a valid board
	// index and never played through PlayMove.
	Resign Point = -2
)

// Colors. EMPTY/TO-PLAY/OPPONENT/OUT per spec §3. The board is kept
// "swap-cased" after every move so TO-PLAY is always 'X'.
const (
	Empty  byte = '.'
	ToPlay byte = 'X'
	Other  byte = 'x'
	Out    byte = ' '
)

// Geometry holds the fixed, N-derived layout of a board of side N: the
// flattened (N+1)x(N+2)+1 array size, the 8 neighbor offsets, and the
// [IMin, IMax) index range that holds every interior point. It is computed once per board size and
// shared (read-only) by every Position of that size.
type Geometry struct {
	N         int
	RowStride int // N+1: stride between vertically adjacent points
	W         int // N+2: stride used by the SE/NW diagonal offsets
	BoardSize int // (N+1)*W + 1
	IMin      int // N+1: the border cell that opens row 1, just before the first interior point
	IMax      int // BoardSize-N-1: end of the scan range; the last interior point is IMax-2

	// Delta holds the 8 neighbor offsets in the fixed order
	// North, East, South, West, NE, SE, SW, NW.
	Delta [8]int
}

// NewGeometry derives a board Geometry from N. Rebuilding a Geometry for a
// different N is always safe; what is NOT safe (per §6) is reusing large
// pattern tables across different N, since the large board border width is
// fixed at the widest gridcular radius.
func NewGeometry(n int) *Geometry {
	rowStride := n + 1
	w := n + 2
	g := &Geometry{
		N:         n,
		RowStride: rowStride,
		W:         w,
		BoardSize: rowStride*w + 1,
	}
	g.Delta = [8]int{-rowStride, 1, rowStride, -1, -n, w, n, -w}
	g.IMin = rowStride
	g.IMax = g.BoardSize - n - 1
	return g
}

// Neighbors returns the 4 orthogonal neighbors of pt (North, East, South,
// West).
func (g *Geometry) Neighbors(pt Point) [4]Point {
	return [4]Point{
		pt + Point(g.Delta[0]),
		pt + Point(g.Delta[1]),
		pt + Point(g.Delta[2]),
		pt + Point(g.Delta[3]),
	}
}

// DiagNeighbors returns the 4 diagonal neighbors of pt (NE, SE, SW, NW).
func (g *Geometry) DiagNeighbors(pt Point) [4]Point {
	return [4]Point{
		pt + Point(g.Delta[4]),
		pt + Point(g.Delta[5]),
		pt + Point(g.Delta[6]),
		pt + Point(g.Delta[7]),
	}
}

// AllNeighbors returns all 8 neighbors, orthogonal first, in the fixed
// N,E,S,W,NE,SE,SW,NW order.
func (g *Geometry) AllNeighbors(pt Point) [8]Point {
	var out [8]Point
	for k := 0; k < 8; k++ {
		out[k] = pt + Point(g.Delta[k])
	}
	return out
}

// ForAllPoints calls fn for every interior point of the board, in
// increasing index order.
func (g *Geometry) ForAllPoints(fn func(Point)) {
	for pt := g.IMin; pt < g.IMax; pt++ {
		if pt%g.RowStride == 0 {
			continue // border cell at the left end of a row
		}
		fn(Point(pt))
	}
}
