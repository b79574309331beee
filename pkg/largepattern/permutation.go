package largepattern

// buildPermutations computes the 8 index-permutations of the 141 canonical
// gridcular offsets corresponding to the 8 board symmetries (4 rotations x
// optional mirror). permutations[k][i] gives the canonical index whose
// offset lands at position i under symmetry k, so that re-indexing a
// pattern string by permutations[k] yields the string as it would read
// under that symmetry. Ported from patterns.c's
// gridcular_enumerate/gridcular_enumerate1/gridcular_enumerate2/
// gridcular_register.
func buildPermutations(g *Geometry) [8][141]int {
	var perms [8][141]int
	n := 0
	register := func(seq [141]Shift) {
		for i, s := range seq {
			disp := s.X - s.Y*g.Width
			perms[n][i] = g.indexOf(disp)
		}
		n++
	}
	enumerate2 := func(seq [141]Shift) {
		register(seq)
		register(flipY(seq))
	}
	enumerate1 := func(seq [141]Shift) {
		enumerate2(seq)
		enumerate2(flipX(seq))
	}
	enumerate1(gridcularSeq)
	enumerate1(rot90(gridcularSeq))
	return perms
}

// permuteString reorders the first len(s) characters of s according to
// perm, mirroring patterns.c's permute(). Safe because every gridcularSize
// boundary is a symmetric disk, so any of the 8 symmetries maps a pattern
// string's index range onto itself.
func permuteString(perm [141]int, s string) string {
	out := make([]byte, len(s))
	for k := 0; k < len(s); k++ {
		out[k] = s[perm[k]]
	}
	return string(out)
}
