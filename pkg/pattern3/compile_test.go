package pattern3

import "testing"

func TestCompileMatchesLibraryShape(t *testing.T) {
	d := Compile()

	// Template 0 ("enclosing hane": XOX / ... / ???) with X=BLACK: N=O(white),
	// W=., E=., NE=X(black), NW=X(black), and S/SE/SW free (pick EMPTY).
	codes := [8]int{
		codeWhite, // N
		codeEmpty, // E
		codeEmpty, // S
		codeEmpty, // W
		codeBlack, // NE
		codeEmpty, // SE
		codeEmpty, // SW
		codeBlack, // NW
	}
	env8 := packEnv8(codes)
	if !d.Match(env8) {
		t.Fatalf("expected env8 %016b to match the enclosing-hane template", env8)
	}
}

func TestCompileRejectsAllEmpty(t *testing.T) {
	d := Compile()
	var codes [8]int
	for i := range codes {
		codes[i] = codeEmpty
	}
	env8 := packEnv8(codes)
	if d.Match(env8) {
		t.Fatalf("an empty 3x3 neighborhood should not match any playout pattern")
	}
}

func TestSymmetriesCoverAllEightOrientations(t *testing.T) {
	g := parseSrc("XO?", "X..", "x.?")
	seen := map[grid]bool{}
	for _, s := range symmetries(g) {
		seen[s] = true
	}
	if len(seen) != 8 {
		t.Fatalf("symmetries produced %d distinct orientations of an asymmetric pattern, want 8", len(seen))
	}
}
