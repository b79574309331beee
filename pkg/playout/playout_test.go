package playout

import (
	"testing"

	"github.com/gobanengine/michigo/pkg/board"
	"github.com/gobanengine/michigo/pkg/ctx"
)

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func newTestContext(g *board.Geometry, seed uint32) *ctx.Context {
	return ctx.New(g, seed, discardWriter{})
}

func setpos(t *testing.T, g *board.Geometry, coords ...string) *board.Position {
	t.Helper()
	pos := board.EmptyPosition(g, 7.5)
	for _, c := range coords {
		pt, err := board.ParseCoord(c, g)
		if err != nil {
			t.Fatalf("parsing %q: %v", c, err)
		}
		if _, err := pos.PlayMove(pt); err != nil {
			t.Fatalf("playing %q: %v", c, err)
		}
	}
	return pos
}

func TestLastMovesNeighborsIncludesLastMoveAndNeighbors(t *testing.T) {
	g := board.NewGeometry(9)
	pos := setpos(t, g, "E5")
	c := newTestContext(g, 1)

	last, _ := board.ParseCoord("E5", g)
	points := LastMovesNeighbors(pos, c)
	found := false
	for _, p := range points {
		if p == last {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected last move %v among candidates %v", last, points)
	}
	if len(points) != 9 {
		// E5 plus all 8 neighbors (orthogonal and diagonal), all on-board.
		t.Fatalf("got %d candidates, want 9 (E5 has no last2 yet)", len(points))
	}
}

func TestGenPlayoutMovesCaptureSuggestsLibertyOfAtariBlock(t *testing.T) {
	g := board.NewGeometry(9)
	// White E5 surrounded on 3 sides, last liberty E6; black to move.
	pos := setpos(t, g, "D5", "E5", "F5", "C1", "E4", "C2")
	c := newTestContext(g, 1)

	e5 := mustCoord(t, g, "E5")
	e6 := mustCoord(t, g, "E6")
	moves := GenPlayoutMovesCapture(pos, c, []board.Point{e5}, 1.0, true)
	if len(moves) != 1 || moves[0] != e6 {
		t.Fatalf("moves = %v, want [%v]", moves, e6)
	}
}

func TestGenPlayoutMovesCaptureProbabilityGateZero(t *testing.T) {
	g := board.NewGeometry(9)
	pos := setpos(t, g, "D5", "E5", "F5", "C1", "E4", "C2")
	c := newTestContext(g, 1)

	e5 := mustCoord(t, g, "E5")
	moves := GenPlayoutMovesCapture(pos, c, []board.Point{e5}, 0.0, true)
	if len(moves) != 0 {
		t.Fatalf("prob=0 should suppress every suggestion, got %v", moves)
	}
}

func TestGenPlayoutMovesRandomSkipsOccupiedAndTrueEyes(t *testing.T) {
	g := board.NewGeometry(9)
	// Build a true eye for the side to move (black) at E5: fill its 4
	// orthogonal neighbors with black, interleaving throwaway white moves
	// far away so the alternating PlayMove sequence lands black on all of
	// them; the diagonal neighbors are left empty, which IsEye treats as
	// non-false (no opposite-color diagonal to disqualify the eye).
	pos := setpos(t, g, "D5", "A1", "F5", "A2", "E4", "A3", "E6", "A4")
	e5 := mustCoord(t, g, "E5")

	moves := GenPlayoutMovesRandom(pos, board.Point(g.IMin))
	for _, m := range moves {
		if m == e5 {
			t.Fatalf("GenPlayoutMovesRandom suggested filling a true eye at E5")
		}
		if pos.AtPoint(m) != board.Empty {
			t.Fatalf("GenPlayoutMovesRandom suggested occupied point %v", m)
		}
	}
}

func TestChooseFromPicksFirstLegalMove(t *testing.T) {
	g := board.NewGeometry(9)
	pos := board.EmptyPosition(g, 7.5)
	c := newTestContext(g, 1)

	e5 := mustCoord(t, g, "E5")
	move := ChooseFrom(pos, c, []board.Point{e5}, "random", false)
	if move != e5 {
		t.Fatalf("move = %v, want %v", move, e5)
	}
	if pos.AtPoint(e5) != board.Other {
		// After PlayMove the board swaps sides; the stone just placed is
		// now seen as the opponent's from the new to-move side.
		t.Fatalf("E5 not occupied after ChooseFrom played it")
	}
}

func TestChooseFromReturnsPassWhenNothingPlayable(t *testing.T) {
	g := board.NewGeometry(9)
	pos := setpos(t, g, "E5")
	c := newTestContext(g, 1)

	e5 := mustCoord(t, g, "E5")
	move := ChooseFrom(pos, c, []board.Point{e5}, "random", false)
	if move != board.Pass {
		t.Fatalf("move = %v, want Pass (E5 already occupied)", move)
	}
}

func TestMCPlayoutTerminatesAndReturnsFiniteScore(t *testing.T) {
	g := board.NewGeometry(5)
	pos := board.EmptyPosition(g, 7.5)
	c := newTestContext(g, 42)

	owner := make([]float32, g.BoardSize)
	result := MCPlayout(pos, c, owner, false)
	if result.Score != result.Score {
		t.Fatalf("score is NaN")
	}
	if pos.N == 0 {
		t.Fatalf("playout made no moves at all")
	}
}

func mustCoord(t *testing.T, g *board.Geometry, s string) board.Point {
	t.Helper()
	pt, err := board.ParseCoord(s, g)
	if err != nil {
		t.Fatalf("parsing %q: %v", s, err)
	}
	return pt
}
