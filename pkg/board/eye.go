package board

// IsEyeish tests whether pt is surrounded by a single color, ignoring the
// board edge (OUT neighbors are skipped, not disqualifying). It returns
// that color and true, or (0, false) if pt is not even eye-shaped — this is
// strictly cheaper than IsEye and doesn't distinguish real eyes from false
// ones, which is what most playout-policy call sites want.
func IsEyeish(pos *Position, pt Point) (color byte, ok bool) {
	var eyeColor byte
	for _, n := range pos.g.Neighbors(pt) {
		c := pos.Color[n]
		if c == Out {
			continue
		}
		if c == Empty {
			return 0, false
		}
		if eyeColor == 0 {
			eyeColor = c
		} else if c != eyeColor {
			return 0, false
		}
	}
	if eyeColor == 0 {
		return 0, false
	}
	return eyeColor, true
}

// swapColor returns the opposite board letter ('X' <-> 'x'); used only by
// the false-eye diagonal count, which reasons about absolute sides rather
// than point colors.
func swapColor(c byte) byte {
	if c == ToPlay {
		return Other
	}
	return ToPlay
}

// IsEye tests whether pt is a real (not false) eye of its surrounding
// color: eye-shaped per IsEyeish, and with at most one diagonal occupied by
// the opposite color (edge/corner points count as one such occupied
// diagonal each, since a diagonal off the board can't defend the eye).
func IsEye(pos *Position, pt Point) (color byte, ok bool) {
	eyeColor, eyeish := IsEyeish(pos, pt)
	if !eyeish {
		return 0, false
	}
	falseColor := swapColor(eyeColor)
	falseCount := 0
	atEdge := false
	for _, n := range pos.g.DiagNeighbors(pt) {
		switch pos.Color[n] {
		case Out:
			atEdge = true
		case falseColor:
			falseCount++
		}
	}
	if atEdge {
		falseCount++
	}
	if falseCount >= 2 {
		return 0, false
	}
	return eyeColor, true
}
