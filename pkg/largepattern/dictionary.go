package largepattern

import (
	"context"
	"os"

	"github.com/gobanengine/michigo/pkg/board"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Dictionary is the loaded large-pattern library: a Zobrist table, the
// open-addressed hash table of pattern keys -> probabilities, and the 8
// symmetry permutations needed to expand each loaded spatial pattern into
// every orientation it can match.
type Dictionary struct {
	geo     *Geometry
	zobrist *zobristTable
	tbl     *table
	perms   [8][141]int
	Loaded  bool
}

// New builds an (empty, unloaded) Dictionary sized for a board of g's size.
// Call Load to populate it from the pattern files; an unloaded Dictionary's
// Probability always reports no match, which is the reference engine's own
// degraded-but-functional behavior when the pattern files are missing.
func New(g *board.Geometry) *Dictionary {
	geo := NewGeometry(g)
	return &Dictionary{
		geo:     geo,
		zobrist: newZobristTable(),
		tbl:     newTable(),
		perms:   buildPermutations(geo),
	}
}

// Load reads probPath and spatPath and populates the hash table. The two
// files are parsed concurrently via errgroup, since parsing is independent
// until the merge step below; building the 8-way symmetry closure of each
// pattern and inserting it into the table is done afterward, sequentially,
// since it's the one step that needs both files' results together.
func (d *Dictionary) Load(ctx context.Context, probPath, spatPath string) error {
	var probs map[int]float32
	var spats []spatEntry

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		f, err := os.Open(probPath)
		if err != nil {
			return errors.Wrap(err, "largepattern: opening patterns.prob")
		}
		defer f.Close()
		var perr error
		probs, perr = parseProbFile(f)
		return perr
	})
	g.Go(func() error {
		f, err := os.Open(spatPath)
		if err != nil {
			return errors.Wrap(err, "largepattern: opening patterns.spat")
		}
		defer f.Close()
		var serr error
		spats, serr = parseSpatFile(f)
		return serr
	})
	if err := g.Wait(); err != nil {
		return err
	}

	for _, entry := range spats {
		prob := probs[entry.ID]
		for _, perm := range d.perms {
			variant := permuteString(perm, entry.Pattern)
			key := d.zobrist.hash(variant)
			d.tbl.insert(key, entry.ID, prob)
		}
	}
	d.Loaded = true
	return nil
}

// NewLargeBoard allocates a LargeBoard matching this dictionary's geometry.
func (d *Dictionary) NewLargeBoard() *LargeBoard {
	return NewLargeBoard(d.geo)
}

// Probability returns the move probability the largest matching pattern
// around pt assigns, or (0, false) if nothing in the dictionary matches (or
// nothing was ever loaded). Multiple progressively wider patterns may
// match; the widest one wins. Ported from patterns.c's
// large_pattern_probability, including its early-exit heuristic: a ring
// that misses right after another miss (with no match in between) ends
// the scan, whether or not any smaller ring matched; the widest match seen
// before that point wins.
func (d *Dictionary) Probability(lb *LargeBoard, pt board.Point) (float32, bool) {
	if !d.Loaded {
		return 0, false
	}
	basePt := lb.At(pt)
	var k uint64
	var prob float32
	matched, matchedLen, nonMatchedLen := false, 0, 0
	for s := 1; s < 13; s++ {
		lo, hi := gridcularSize[s-1], gridcularSize[s]
		k = d.zobrist.extend(lb.Cells(), basePt, d.geo.Seq1D, lo, hi, k)
		length := gridcularSize[s]
		if p, ok := d.tbl.lookup(k); ok {
			prob = p
			matched = true
			matchedLen = length
		} else if matchedLen < nonMatchedLen && nonMatchedLen < length {
			break
		} else {
			nonMatchedLen = length
		}
	}
	return prob, matched
}

// PatternMatch is one matching library pattern reported by MatchList: the
// spatial id, its probability, and the gridcular ring size at which it
// matched.
type PatternMatch struct {
	ID     int
	Prob   float32
	Radius int
}

// MatchList returns every gridcular ring around pt that matches a library
// pattern, widest ring last. Unlike Probability (which only needs the
// single widest match), this walks every ring without the early-exit
// heuristic, since the debug "match_pat" command wants the full match
// history for a point. Grounded on debug.c's make_list_pat_matching.
func (d *Dictionary) MatchList(lb *LargeBoard, pt board.Point) []PatternMatch {
	if !d.Loaded {
		return nil
	}
	basePt := lb.At(pt)
	var k uint64
	var matches []PatternMatch
	for s := 1; s < 13; s++ {
		lo, hi := gridcularSize[s-1], gridcularSize[s]
		k = d.zobrist.extend(lb.Cells(), basePt, d.geo.Seq1D, lo, hi, k)
		if id, prob, ok := d.tbl.lookupFull(k); ok {
			matches = append(matches, PatternMatch{ID: id, Prob: prob, Radius: gridcularSize[s]})
		}
	}
	return matches
}
