package engine

import (
	"fmt"
	"io"

	"github.com/gobanengine/michigo/pkg/board"
)

// prettyBoard renders pos from an absolute-color point of view (BLACK
// always shown 'X', WHITE always shown 'O') regardless of who is to move,
// undoing the swap-cased 'X'/'x' convention the engine keeps internally.
// Grounded on michi.c's make_pretty.
func prettyBoard(pos *board.Position) ([]byte, int, int) {
	g := pos.Geometry()
	out := make([]byte, g.BoardSize)
	copy(out, pos.Color)

	var capBlack, capWhite int
	if pos.N%2 != 0 { // WHITE to play
		for i, c := range out {
			switch c {
			case board.ToPlay:
				out[i] = 'O'
			case board.Other:
				out[i] = 'X'
			}
		}
		capBlack, capWhite = pos.Cap, pos.CapX
	} else { // BLACK to play
		for i, c := range out {
			if c == board.Other {
				out[i] = 'O'
			}
		}
		capWhite, capBlack = pos.Cap, pos.CapX
	}
	return out, capBlack, capWhite
}

// printPosition is the real implementation behind Engine.PrintPosition,
// split out so it can be unit-tested without an Engine. numSims scales the
// owner-map thresholds exactly as michi.c's print_pos does (0.6/0.3 of the
// iteration count that produced the accumulated owner map).
func printPosition(w io.Writer, pos *board.Position, owner []float32, numSims int) {
	g := pos.Geometry()
	pretty, capBlack, capWhite := prettyBoard(pos)

	fmt.Fprintf(w, "Move: %-3d   Black: %d caps   White: %d caps   Komi: %.1f",
		pos.N, capBlack, capWhite, pos.Komi)
	if pos.Ko != board.NoPoint {
		fmt.Fprintf(w, "   ko: %s", board.StrCoord(pos.Ko, g))
	}
	fmt.Fprintln(w)

	for row := 1; row <= g.N; row++ {
		fmt.Fprintf(w, " %-2d ", g.N-row+1)
		for col := 1; col <= g.N; col++ {
			pt := row*g.RowStride + col
			fmt.Fprintf(w, "%c ", pretty[pt])
		}
		if owner != nil {
			fmt.Fprint(w, "   ")
			for col := 1; col <= g.N; col++ {
				pt := row*g.RowStride + col
				fmt.Fprintf(w, " %c", ownerGlyph(owner[pt], numSims))
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, "    ")
	for col := 1; col <= g.N; col++ {
		letter := byte('@' + col)
		if letter > 'H' {
			letter++
		}
		fmt.Fprintf(w, "%c ", letter)
	}
	fmt.Fprintln(w)
}

func ownerGlyph(v float32, numSims int) byte {
	n := float32(numSims)
	switch {
	case v > 0.6*n:
		return 'X'
	case v > 0.3*n:
		return 'x'
	case v < -0.6*n:
		return 'O'
	case v < -0.3*n:
		return 'o'
	default:
		return '.'
	}
}
