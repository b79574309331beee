package engine

import (
	"strings"
	"testing"

	"github.com/gobanengine/michigo/pkg/board"
)

func newTestEngine(t *testing.T, n int) *Engine {
	t.Helper()
	e, err := New(Config{BoardSize: n, Komi: 7.5, Seed: 1, NumSims: 16})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return e
}

func TestPlayThenUndoRestoresPosition(t *testing.T) {
	e := newTestEngine(t, 9)
	before := append([]byte(nil), e.Position().Color...)

	pt, err := board.ParseCoord("E5", e.Position().Geometry())
	if err != nil {
		t.Fatalf("parsing E5: %v", err)
	}
	if err := e.Play(pt); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if err := e.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	after := e.Position().Color
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("position differs at index %d after play+undo: %c != %c", i, before[i], after[i])
		}
	}
}

func TestGenmoveAfterOpponentPassAlsoPasses(t *testing.T) {
	e := newTestEngine(t, 9)
	// Play enough moves that pos.N > 2 holds, then pass as the opponent.
	for _, coord := range []string{"C3", "G7", "C4"} {
		pt, _ := board.ParseCoord(coord, e.Position().Geometry())
		if err := e.Play(pt); err != nil {
			t.Fatalf("Play %s: %v", coord, err)
		}
	}
	e.Pass()

	move, err := e.Genmove(false)
	if err != nil {
		t.Fatalf("Genmove: %v", err)
	}
	if move != board.Pass {
		t.Fatalf("Genmove after opponent pass = %v, want Pass", move)
	}
}

func TestUndoWithEmptyHistoryErrors(t *testing.T) {
	e := newTestEngine(t, 9)
	if err := e.Undo(); err == nil {
		t.Fatalf("Undo with no history should error")
	}
}

func TestBenchmarkReturnsFiniteScore(t *testing.T) {
	e := newTestEngine(t, 5)
	mean := e.Benchmark(5)
	if mean != mean {
		t.Fatalf("Benchmark returned NaN")
	}
}

func TestPrintPositionIncludesHeaderAndBoard(t *testing.T) {
	e := newTestEngine(t, 5)
	var buf strings.Builder
	e.PrintPosition(&buf, nil)
	out := buf.String()
	if !strings.Contains(out, "Move: 0") {
		t.Fatalf("expected move header in output, got:\n%s", out)
	}
	if !strings.Contains(out, "Komi: 7.5") {
		t.Fatalf("expected komi in output, got:\n%s", out)
	}
}
