package largepattern

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// spatEntry is one raw line of patterns.spat: a pattern id and its spatial
// string in canonical gridcular order. Probability is filled in later,
// once patterns.prob has also been parsed.
type spatEntry struct {
	ID      int
	Pattern string
}

// parseProbFile reads patterns.prob, mapping pattern id -> move
// probability. Ported from patterns.c's load_prob_file. Lines starting
// with '#' are comments.
func parseProbFile(r io.Reader) (map[int]float32, error) {
	probs := make(map[int]float32)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var prob float32
		var t1, t2, id int
		if _, err := fmt.Sscanf(line, "%f %d %d (s:%d)", &prob, &t1, &t2, &id); err != nil {
			continue // malformed line, same tolerance as the reference scanf-and-ignore-failures style
		}
		probs[id] = prob
	}
	return probs, errors.Wrap(scanner.Err(), "largepattern: reading patterns.prob")
}

// parseSpatFile reads patterns.spat, one spatEntry per pattern definition.
// Ported from patterns.c's load_spat_file, split from the hash-table
// insertion step so parsing patterns.prob and patterns.spat can run
// concurrently (see Dictionary.Load).
func parseSpatFile(r io.Reader) ([]spatEntry, error) {
	var entries []spatEntry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var id, d int
		var pat string
		if _, err := fmt.Sscanf(line, "%d %d %s", &id, &d, &pat); err != nil {
			continue
		}
		entries = append(entries, spatEntry{ID: id, Pattern: pat})
	}
	return entries, errors.Wrap(scanner.Err(), "largepattern: reading patterns.spat")
}
