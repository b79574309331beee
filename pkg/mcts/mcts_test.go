package mcts

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

func TestExpandEmptyBoardProducesOneChildPerPoint(t *testing.T) {
	g := board.NewGeometry(5)
	pos := board.EmptyPosition(g, 7.5)
	c := newTestContext(g, 1)

	root := NewNode(pos)
	Expand(root, c)

	if len(root.Children) != 25 {
		t.Fatalf("got %d children on an empty 5x5 board, want 25", len(root.Children))
	}
	for _, child := range root.Children {
		if child.PV < PriorEvenPV {
			t.Fatalf("child prior visits %v below the even prior floor", child.PV)
		}
	}
}

func TestExpandWithNoLegalMovesAddsPassChild(t *testing.T) {
	g := board.NewGeometry(2)
	pos := board.EmptyPosition(g, 0)
	// Black takes A1 and B2 while white passes: A2 and B1 are then true
	// eyes of black, the side to move, so no legal non-eye move remains.
	for _, coord := range []string{"A1", "pass", "B2", "pass"} {
		pt, err := board.ParseCoord(coord, g)
		if err != nil {
			t.Fatalf("parsing %q: %v", coord, err)
		}
		if pt == board.Pass {
			pos.PassMove()
			continue
		}
		if pos.AtPoint(pt) != board.Empty {
			continue
		}
		if _, err := pos.PlayMove(pt); err != nil {
			continue
		}
	}
	c := newTestContext(g, 1)
	root := NewNode(pos)
	Expand(root, c)

	if len(root.Children) == 0 {
		t.Fatalf("Expand produced no children at all, want at least the forced pass")
	}
}

func TestWinrateUnvisitedNodeIsNegative(t *testing.T) {
	n := &Node{}
	if wr := Winrate(n); wr != -0.1 {
		t.Fatalf("Winrate(unvisited) = %v, want -0.1", wr)
	}
}

func TestRaveUrgencyWithoutAmafEqualsPlainExpectation(t *testing.T) {
	n := &Node{V: 10, W: 4, PV: PriorEvenPV, PW: PriorEvenPW}
	want := (n.W + n.PW) / (n.V + n.PV)
	if got := RaveUrgency(n); got != want {
		t.Fatalf("RaveUrgency = %v, want %v", got, want)
	}
}

func TestBestMoveSkipsExceptList(t *testing.T) {
	a := &Node{V: 5}
	b := &Node{V: 10}
	root := &Node{Children: []*Node{a, b}}

	if got := BestMove(root, nil); got != b {
		t.Fatalf("BestMove = %v, want the higher-visit child", got)
	}
	if got := BestMove(root, []*Node{b}); got != a {
		t.Fatalf("BestMove with b excluded = %v, want a", got)
	}
}

func TestTreeSearchFromEmptyBoardReturnsALegalMoveOrPass(t *testing.T) {
	g := board.NewGeometry(5)
	pos := board.EmptyPosition(g, 7.5)
	c := newTestContext(g, 7)

	root := NewNode(pos)
	owner := make([]float32, g.BoardSize)
	move := TreeSearch(root, c, 20, owner, false)

	if move == board.Resign {
		t.Fatalf("search from the empty board resigned, which should never happen this early")
	}
	if move != board.Pass && (move < board.Point(g.IMin) || move >= board.Point(g.IMax)) {
		t.Fatalf("move %v is out of the board's interior range", move)
	}
}
