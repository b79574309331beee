package board

// Score computes a Tromp-Taylor-ish area score (stones on board plus
// single-color-bordered empty territory, dame left uncounted) and returns
// it from the current to-play side's perspective: positive means the side
// to move is ahead. Grounded on the teacher's flood-fill Position.score,
// reworked to use the Marker/frontier-stack idiom the rest of this package
// uses instead of a string-based floodfill.
//
// owner, if non-nil, must be sized g.BoardSize; Score accumulates +1 into
// owner[pt] for every point it attributes to black and -1 for every point
// attributed to white (dame left untouched), regardless of which color was
// actually to play when this call was made — matching michi.c's score()
// flipping its accumulation by pos->n%2 so owner_map always ends up in
// absolute black/white terms, not to-play-relative ones, across playouts
// that start from either color's turn. Per the design notes this lets a
// caller run many playouts from the same leaf and sum per-point ownership
// across them, matching michi.c's owner_map accumulation in mcplayout.
func Score(pos *Position, owner []float32) float32 {
	g := pos.g
	visited := NewMarker(g.BoardSize)
	var blackArea, whiteArea float32
	blackToPlay := pos.ToMoveIsBlack()

	frontier := make([]Point, 0, g.BoardSize)
	region := make([]Point, 0, g.BoardSize)

	mark := func(pt Point, toPlayOwns bool) {
		if owner == nil {
			return
		}
		// toPlayOwns is relative to the current to-play side; normalize to
		// absolute black/white the same way blackArea/whiteArea above do.
		if toPlayOwns == blackToPlay {
			owner[pt]++
		} else {
			owner[pt]--
		}
	}

	for pt := g.IMin; pt < g.IMax; pt++ {
		p := Point(pt)
		switch pos.Color[p] {
		case ToPlay:
			if blackToPlay {
				blackArea++
			} else {
				whiteArea++
			}
			mark(p, true)
		case Other:
			if blackToPlay {
				whiteArea++
			} else {
				blackArea++
			}
			mark(p, false)
		case Empty:
			if visited.IsMarked(p) {
				continue
			}
			region = region[:0]
			borderToPlay, borderOther := false, false
			frontier = append(frontier[:0], p)
			visited.Mark(p)
			for len(frontier) > 0 {
				cur := frontier[len(frontier)-1]
				frontier = frontier[:len(frontier)-1]
				region = append(region, cur)
				for _, n := range g.Neighbors(cur) {
					switch pos.Color[n] {
					case Empty:
						if !visited.TestAndMark(n) {
							frontier = append(frontier, n)
						}
					case ToPlay:
						borderToPlay = true
					case Other:
						borderOther = true
					}
				}
			}
			switch {
			case borderToPlay && !borderOther:
				if blackToPlay {
					blackArea += float32(len(region))
				} else {
					whiteArea += float32(len(region))
				}
				for _, r := range region {
					mark(r, true)
				}
			case borderOther && !borderToPlay:
				if blackToPlay {
					whiteArea += float32(len(region))
				} else {
					blackArea += float32(len(region))
				}
				for _, r := range region {
					mark(r, false)
				}
			}
			// Bordered by both colors (or neither, an all-OUT-bordered
			// region can't occur inside IMin..IMax): dame, uncounted.
		}
	}

	absolute := blackArea - whiteArea - pos.Komi
	if blackToPlay {
		return absolute
	}
	return -absolute
}
