package tactics

import (
	"testing"

	"github.com/gobanengine/michigo/pkg/board"
	"github.com/gobanengine/michigo/pkg/ctx"
)

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

func newTestContext(g *board.Geometry) *ctx.Context {
	return ctx.New(g, 1, discardWriter{})
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestFixAtariSinglePointOkAlwaysNotInAtari(t *testing.T) {
	g := board.NewGeometry(9)
	pos := setpos(t, g, "A1")
	c := newTestContext(g)

	pt, _ := board.ParseCoord("A1", g)
	inAtari, moves, _ := FixAtari(pos, c, pt, true, false, false)
	if inAtari || len(moves) != 0 {
		t.Fatalf("singleptOk single stone: got inAtari=%v moves=%v, want false/empty", inAtari, moves)
	}
}

// Scenario 2 from the reference engine's own test suite: after
// C8 C9 E9 B8 F9 D8, fix_atari(C8) reports atari with the lone escape C7.
func TestFixAtariEscapeScenario(t *testing.T) {
	g := board.NewGeometry(9)
	pos := setpos(t, g, "C8", "C9", "E9", "B8", "F9", "D8")
	c := newTestContext(g)

	pt, _ := board.ParseCoord("C8", g)
	inAtari, moves, sizes := FixAtari(pos, c, pt, false, true, false)
	if !inAtari {
		t.Fatalf("C8 should be in atari")
	}
	if len(moves) != 1 || moves[0] != mustCoord(t, g, "C7") {
		t.Fatalf("moves = %v, want [C7]", moves)
	}
	if len(sizes) != 1 || sizes[0] != 1 {
		t.Fatalf("sizes = %v, want [1]", sizes)
	}
}

func TestFixAtariCapturesOpponentBlock(t *testing.T) {
	g := board.NewGeometry(9)
	// Surround a lone white stone at E5 on three sides; its last liberty
	// is E6.
	pos := setpos(t, g, "D5", "E5", "F5", "C1", "E4", "C2")
	c := newTestContext(g)

	pt := mustCoord(t, g, "E5")
	inAtari, moves, _ := FixAtari(pos, c, pt, false, false, false)
	if !inAtari {
		t.Fatalf("E5 (white, 1 liberty) should be in atari")
	}
	if len(moves) != 1 || moves[0] != mustCoord(t, g, "E6") {
		t.Fatalf("moves = %v, want [E6]", moves)
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
