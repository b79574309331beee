package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrBadCoord is returned by ParseCoord when the input string is not a
// valid board coordinate (and is not "pass" or "resign").
var ErrBadCoord = errors.New("board: invalid coordinate")

// StrCoord renders pt as a GTP-style coordinate: a column letter (A-H,
// skipping I, then J-T...) followed by a 1-based row counted from the
// bottom of the board. Pass and Resign render as "pass"/"resign".
func StrCoord(pt Point, g *Geometry) string {
	switch pt {
	case Pass:
		return "pass"
	case Resign:
		return "resign"
	case NoPoint:
		return "null"
	}
	row := int(pt) / g.RowStride
	col := int(pt) % g.RowStride
	letter := byte('@' + col)
	if letter > 'H' {
		letter++ // skip 'I'
	}
	return fmt.Sprintf("%c%d", letter, g.N+1-row)
}

// ParseCoord parses a GTP-style coordinate string into a Point. "pass" and
// "resign" (case-insensitive) map to their sentinels.
func ParseCoord(s string, g *Geometry) (Point, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "pass":
		return Pass, nil
	case "resign":
		return Resign, nil
	}
	if len(s) < 2 {
		return NoPoint, errors.Wrapf(ErrBadCoord, "%q", s)
	}
	col := s[0]
	if col >= 'a' && col <= 'z' {
		col -= 'a' - 'A'
	}
	y, err := strconv.Atoi(s[1:])
	if err != nil {
		return NoPoint, errors.Wrapf(ErrBadCoord, "%q", s)
	}
	var x int
	if col < 'J' {
		x = int(col) - '@'
	} else {
		x = int(col) - '@' - 1
	}
	if x < 1 || x > g.N || y < 1 || y > g.N {
		return NoPoint, errors.Wrapf(ErrBadCoord, "%q out of range", s)
	}
	row := g.N - y + 1
	return Point(row*g.RowStride + x), nil
}
