package board

// ComputeBlock flood-fills the connected same-color group containing pt,
// collecting its member stones into stones and its liberties (distinct
// adjacent empty points) into libs. marker supplies the visited set; stones
// and libs are Reset by this call. Grounded on michi.c's compute_block,
// adapted from a recursive-on-a-copy-board C routine into an explicit-stack
// walk over the incrementally-maintained Color array.
func ComputeBlock(pos *Position, pt Point, marker *Marker, stones, libs *Slist) {
	marker.Reset()
	stones.Reset()
	libs.Reset()

	color := pos.Color[pt]
	frontier := []Point{pt}
	marker.Mark(pt)
	for len(frontier) > 0 {
		cur := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		stones.Push(cur)
		for _, n := range pos.g.Neighbors(cur) {
			c := pos.Color[n]
			if c == Empty {
				libs.InsertUnique(n)
				continue
			}
			if c == color && !marker.TestAndMark(n) {
				frontier = append(frontier, n)
			}
		}
	}
}

// captureBlock removes every stone in stones from the board, returning the
// number removed.
func captureBlock(pos *Position, stones *Slist) int {
	for _, pt := range stones.Items() {
		pos.removeStone(pt)
	}
	return stones.Len()
}

// HasLiberty reports whether the block containing pt has at least one
// liberty, using the position's scratch buffers. Cheap convenience for
// callers that only need the boolean.
func HasLiberty(pos *Position, pt Point) bool {
	s := pos.ensureScratch()
	ComputeBlock(pos, pt, s.marker, s.blockStones, s.blockLibs)
	return s.blockLibs.Len() > 0
}

// BlockSize returns the number of stones in the block containing pt.
func BlockSize(pos *Position, pt Point) int {
	s := pos.ensureScratch()
	ComputeBlock(pos, pt, s.marker, s.blockStones, s.blockLibs)
	return s.blockStones.Len()
}
