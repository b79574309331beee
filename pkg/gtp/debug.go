package gtp

import (
	"fmt"
	"strings"

	"github.com/gobanengine/michigo/pkg/board"
	"github.com/gobanengine/michigo/pkg/playout"
	"github.com/gobanengine/michigo/pkg/tactics"
)

// debugCommands lists the "debug" subcommand family, grounded on debug.c's
// known_commands string.
var debugCommands = []string{
	"env8", "fix_atari", "gen_playout", "match_pat",
	"playout", "print_mark", "savepos", "setpos", "help",
}

func (s *Server) cmdDebug(args []string) (bool, string) {
	if len(args) == 0 {
		return false, "usage: debug <subcommand> ..."
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "setpos":
		return s.debugSetpos(rest)
	case "savepos":
		return true, "" // nothing persisted across a GTP session; accepted for parity
	case "playout":
		return s.debugPlayout(rest)
	case "gen_playout":
		return s.debugGenPlayout(rest)
	case "match_pat":
		return s.debugMatchPat(rest)
	case "fix_atari":
		return s.debugFixAtari(rest)
	case "env8":
		return s.debugEnv8(rest)
	case "print_mark":
		return s.debugPrintMark(rest)
	case "help":
		return true, strings.Join(debugCommands, "\n")
	default:
		return false, "unknown debug command: " + sub
	}
}

// debugSetpos plays each argument in turn, alternating colors (each coord
// must land on an empty point, or be "pass"/"PASS"), exactly as debug.c's
// "setpos" handler.
func (s *Server) debugSetpos(args []string) (bool, string) {
	for _, str := range args {
		if strings.EqualFold(str, "pass") {
			s.Engine.Pass()
			continue
		}
		pt, err := board.ParseCoord(str, s.Engine.Position().Geometry())
		if err != nil {
			return false, err.Error()
		}
		if s.Engine.Position().AtPoint(pt) != board.Empty {
			return false, "Error Illegal move: point not EMPTY"
		}
		if err := s.Engine.Play(pt); err != nil {
			return false, err.Error()
		}
	}
	return true, ""
}

// debugPlayout runs a single random playout directly on (and mutating) the
// engine's live position, exactly as debug.c's "playout" handler calls
// mcplayout(pos, ...) on the shared pos rather than a clone.
func (s *Server) debugPlayout(args []string) (bool, string) {
	owner := make([]float32, s.Engine.Position().Geometry().BoardSize)
	result := playout.MCPlayout(s.Engine.Position(), s.Engine.Context(), owner, true)
	return true, fmt.Sprintf("score=%.1f", result.Score)
}

// debugGenPlayout reports the capture or pat3 playout-policy suggestions for
// the current position's last-move neighborhood, grounded on debug.c's
// "gen_playout capture|pat3" handler.
func (s *Server) debugGenPlayout(args []string) (bool, string) {
	if len(args) == 0 {
		return false, "Error - missing [capture|pat3]"
	}
	pos, c := s.Engine.Position(), s.Engine.Context()
	candidates := playout.LastMovesNeighbors(pos, c)
	var moves []board.Point
	switch args[0] {
	case "capture":
		moves = playout.GenPlayoutMovesCapture(pos, c, candidates, 1.0, false)
	case "pat3":
		moves = playout.GenPlayoutMovesPat3(pos, c, candidates, 1.0)
	default:
		return false, "Error - missing [capture|pat3]"
	}
	return true, coordList(moves, pos.Geometry())
}

// debugMatchPat reports every library pattern matching the point, widest
// ring last, grounded on debug.c's "match_pat" handler via
// largepattern.Dictionary.MatchList.
func (s *Server) debugMatchPat(args []string) (bool, string) {
	if len(args) == 0 {
		return false, "Error missing point"
	}
	pos, c := s.Engine.Position(), s.Engine.Context()
	pt, err := board.ParseCoord(args[0], pos.Geometry())
	if err != nil {
		return false, err.Error()
	}
	lb := c.LargePatterns.NewLargeBoard()
	lb.SyncFrom(pos, pos.Geometry())
	matches := c.LargePatterns.MatchList(lb, pt)
	if len(matches) == 0 {
		return true, "no match"
	}
	var sb strings.Builder
	for _, m := range matches {
		fmt.Fprintf(&sb, "radius=%d id=%d prob=%.4f\n", m.Radius, m.ID, m.Prob)
	}
	return true, strings.TrimRight(sb.String(), "\n")
}

// debugFixAtari reports whether the stone at the given point is in atari
// and, if so, the moves that capture or save it, matching debug.c's
// "fix_atari" handler's "1|0 move move..." response shape (SINGLEPT_NOK,
// TWOLIBS_TEST, not edge-only).
func (s *Server) debugFixAtari(args []string) (bool, string) {
	if len(args) == 0 {
		return false, "Error -- point missing"
	}
	pos, c := s.Engine.Position(), s.Engine.Context()
	pt, err := board.ParseCoord(args[0], pos.Geometry())
	if err != nil {
		return false, err.Error()
	}
	if pos.AtPoint(pt) != board.ToPlay && pos.AtPoint(pt) != board.Other {
		return false, "Error given point not occupied by a stone"
	}
	inAtari, moves, _ := tactics.FixAtari(pos, c, pt, false, true, false)
	flag := "0"
	if inAtari {
		flag = "1"
	}
	list := coordList(moves, pos.Geometry())
	if list == "" {
		return true, flag
	}
	return true, flag + " " + list
}

// debugEnv8 prints the 3x3 environment code around a point as a little
// ASCII grid, grounded on debug.c's print_env8/decode_env8.
func (s *Server) debugEnv8(args []string) (bool, string) {
	if len(args) == 0 {
		return false, "Error missing point"
	}
	pos := s.Engine.Position()
	pt, err := board.ParseCoord(args[0], pos.Geometry())
	if err != nil {
		return false, err.Error()
	}
	env8 := pos.Env8(pt)
	return true, renderEnv8(env8)
}

// decodeEnv8 extracts the 2-bit code for neighbor slot idx (0=N, 1=E, 2=S,
// 3=W, 4=NE, 5=SE, 6=SW, 7=NW) and maps it to the display glyph used by
// print_pos: O for WHITE, X for BLACK, . for empty, # for off-board.
// Slots 0-3 live in the low byte and 4-7 in the high byte; within a byte,
// slot k keeps its low code bit at bit k and its high code bit at bit k+4.
// Grounded on debug.c's decode_env8/decode_env4.
func decodeEnv8(env8 uint16, idx int) byte {
	b := byte(env8)
	if idx >= 4 {
		b = byte(env8 >> 8)
		idx -= 4
	}
	c := (b>>idx)&1 | ((b>>(idx+4))&1)<<1
	switch c {
	case 0:
		return 'O'
	case 1:
		return 'X'
	case 2:
		return '.'
	default:
		return '#'
	}
}

func renderEnv8(env8 uint16) string {
	nw, n, ne := decodeEnv8(env8, 7), decodeEnv8(env8, 0), decodeEnv8(env8, 4)
	w, e := decodeEnv8(env8, 3), decodeEnv8(env8, 1)
	sw, s, se := decodeEnv8(env8, 6), decodeEnv8(env8, 2), decodeEnv8(env8, 5)
	return fmt.Sprintf("env8 = %d\n%c %c %c\n%c %c %c\n%c %c %c",
		env8, nw, n, ne, w, '.', e, sw, s, se)
}

// debugPrintMark dumps the board with every point marked in the named
// scratch marker (mark1, mark2, or the default already_suggested) shown as
// '*', grounded on debug.c's print_marker.
func (s *Server) debugPrintMark(args []string) (bool, string) {
	c := s.Engine.Context()
	marker := c.AlreadySuggested
	if len(args) > 0 {
		switch args[0] {
		case "mark1":
			marker = c.Mark1
		case "mark2":
			marker = c.Mark2
		}
	}
	pos := s.Engine.Position()
	pretty, _, _ := prettyBoardForMark(pos, marker)
	var sb strings.Builder
	g := pos.Geometry()
	for row := 1; row <= g.N; row++ {
		for col := 1; col <= g.N; col++ {
			pt := row*g.RowStride + col
			fmt.Fprintf(&sb, "%c ", pretty[pt])
		}
		sb.WriteByte('\n')
	}
	return true, strings.TrimRight(sb.String(), "\n")
}

// prettyBoardForMark is prettyBoard's marker-aware twin: any marked point
// is shown as '*' regardless of its stone color.
func prettyBoardForMark(pos *board.Position, marker *board.Marker) ([]byte, int, int) {
	g := pos.Geometry()
	out := make([]byte, g.BoardSize)
	copy(out, pos.Color)
	for pt := g.IMin; pt < g.IMax; pt++ {
		if marker.IsMarked(board.Point(pt)) {
			out[pt] = '*'
		}
	}
	return out, 0, 0
}

func coordList(moves []board.Point, g *board.Geometry) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = board.StrCoord(m, g)
	}
	return strings.Join(parts, " ")
}
