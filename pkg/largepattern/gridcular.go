// Package largepattern implements the gridcular-metric large pattern
// dictionary: a library of move shapes up to radius 7, matched against a
// Zobrist signature of the board's neighborhood and looked up in an
// open-addressed hash table. Grounded on original_source/patterns.c.
package largepattern

// Shift is a (dx, dy) displacement in the gridcular metric.
type Shift struct{ X, Y int }

// gridcularSeq lists, in canonical order, the 141 offsets of the 12
// concentric gridcular "rings" used to build progressively larger patterns.
// Transcribed verbatim from patterns.c's pat_gridcular_seq.
var gridcularSeq = [141]Shift{
	{0, 0},
	{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{0, 2}, {0, -2}, {2, 0}, {-2, 0},
	{1, 2}, {-1, 2}, {1, -2}, {-1, -2}, {2, 1}, {-2, 1}, {2, -1}, {-2, -1},
	{0, 3}, {0, -3}, {2, 2}, {-2, 2}, {2, -2}, {-2, -2}, {3, 0}, {-3, 0},
	{1, 3}, {-1, 3}, {1, -3}, {-1, -3}, {3, 1}, {-3, 1}, {3, -1}, {-3, -1},
	{0, 4}, {0, -4}, {2, 3}, {-2, 3}, {2, -3}, {-2, -3}, {3, 2}, {-3, 2},
	{3, -2}, {-3, -2}, {4, 0}, {-4, 0},
	{1, 4}, {-1, 4}, {1, -4}, {-1, -4}, {3, 3}, {-3, 3}, {3, -3}, {-3, -3},
	{4, 1}, {-4, 1}, {4, -1}, {-4, -1},
	{0, 5}, {0, -5}, {2, 4}, {-2, 4}, {2, -4}, {-2, -4}, {4, 2}, {-4, 2},
	{4, -2}, {-4, -2}, {5, 0}, {-5, 0},
	{1, 5}, {-1, 5}, {1, -5}, {-1, -5}, {3, 4}, {-3, 4}, {3, -4}, {-3, -4},
	{4, 3}, {-4, 3}, {4, -3}, {-4, -3}, {5, 1}, {-5, 1}, {5, -1}, {-5, -1},
	{0, 6}, {0, -6}, {2, 5}, {-2, 5}, {2, -5}, {-2, -5}, {4, 4}, {-4, 4},
	{4, -4}, {-4, -4}, {5, 2}, {-5, 2}, {5, -2}, {-5, -2}, {6, 0}, {-6, 0},
	{1, 6}, {-1, 6}, {1, -6}, {-1, -6}, {3, 5}, {-3, 5}, {3, -5}, {-3, -5},
	{5, 3}, {-5, 3}, {5, -3}, {-5, -3}, {6, 1}, {-6, 1}, {6, -1}, {-6, -1},
	{0, 7}, {0, -7}, {2, 6}, {-2, 6}, {2, -6}, {-2, -6}, {4, 5}, {-4, 5},
	{4, -5}, {-4, -5}, {5, 4}, {-5, 4}, {5, -4}, {-5, -4}, {6, 2}, {-6, 2},
	{6, -2}, {-6, -2}, {7, 0}, {-7, 0},
}

// gridcularSize[s] is the number of offsets (a prefix of gridcularSeq) that
// make up pattern "size" s, for s in [0,12]. Size 0 is empty; size 12 is
// the full 141-offset neighborhood.
var gridcularSize = [13]int{0, 9, 13, 21, 29, 37, 49, 61, 73, 89, 105, 121, 141}

func flipY(seq [141]Shift) [141]Shift {
	var out [141]Shift
	for i, s := range seq {
		out[i] = Shift{s.X, -s.Y}
	}
	return out
}

func flipX(seq [141]Shift) [141]Shift {
	var out [141]Shift
	for i, s := range seq {
		out[i] = Shift{-s.X, s.Y}
	}
	return out
}

func rot90(seq [141]Shift) [141]Shift {
	var out [141]Shift
	for i, s := range seq {
		out[i] = Shift{-s.Y, s.X}
	}
	return out
}
