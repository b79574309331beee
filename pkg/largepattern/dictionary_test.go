package largepattern

import (
	"testing"

	"github.com/gobanengine/michigo/pkg/board"
)

func TestFirstPermutationIsIdentity(t *testing.T) {
	geo := NewGeometry(board.NewGeometry(9))
	perms := buildPermutations(geo)
	for i := 0; i < 141; i++ {
		if perms[0][i] != i {
			t.Fatalf("perms[0][%d] = %d, want %d (first variant must be identity)", i, perms[0][i], i)
		}
	}
}

func TestTableFindInsertLookupRoundTrip(t *testing.T) {
	tb := newTable()
	tb.insert(12345, 7, 0.5)
	prob, ok := tb.lookup(12345)
	if !ok || prob != 0.5 {
		t.Fatalf("lookup(12345) = (%v, %v), want (0.5, true)", prob, ok)
	}
	if _, ok := tb.lookup(999999); ok {
		t.Fatal("lookup of an unseen key should miss")
	}
}

func TestProbeNeverIndexesOutOfRange(t *testing.T) {
	tb := newTable()
	// Force many collisions by inserting keys that hash to the same bucket
	// repeatedly; if the >= fix were missing this would eventually panic
	// with an index-out-of-range instead of completing.
	base := uint64(1) << 20
	for i := 0; i < 4096; i++ {
		tb.insert(base+uint64(i)<<45, i, float32(i))
	}
}

func TestDictionaryProbabilityMissWithoutLoad(t *testing.T) {
	bg := board.NewGeometry(9)
	d := New(bg)
	lb := d.NewLargeBoard()
	pos := board.EmptyPosition(bg, 7.5)
	lb.SyncFrom(pos, bg)
	if _, ok := d.Probability(lb, board.Point(bg.IMin)); ok {
		t.Fatal("an unloaded dictionary should never report a match")
	}
}
