// Package gtp implements the engine's line-oriented Go Text Protocol
// server: a command loop reading from an io.Reader and writing "=id text"/
// "?id text" responses, plus the engine's own "debug" subcommand family.
// Grounded on original_source/michi.c's gtp_io, which the teacher never
// implemented.
package gtp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gobanengine/michigo/pkg/board"
	"github.com/gobanengine/michigo/pkg/engine"
)

// KnownCommands lists every top-level command this server answers,
// transcribed from michi.c's gtp_io's known_commands string, used for both
// "list_commands"/"help" and "known_command".
var KnownCommands = []string{
	"cputime", "debug", "genmove", "help", "known_command",
	"list_commands", "name", "play", "protocol_version", "quit", "version",
	"clear_board", "boardsize",
}

// Server runs the GTP command loop against one Engine. Grounded on
// michi.c's gtp_io: one Position/tree pair, read line by line from stdin,
// until EOF or "quit".
type Server struct {
	Engine *engine.Engine
	In     io.Reader
	Out    io.Writer

	// Disp turns on the verbose per-move tracing mcplayout/tree_descend
	// print when true, mirroring the reference engine's disp flag
	// (normally left off in a real GTP session).
	Disp bool
}

// New builds a Server around e, reading commands from in and writing
// responses to out.
func New(e *engine.Engine, in io.Reader, out io.Writer) *Server {
	return &Server{Engine: e, In: in, Out: out}
}

// Run reads commands until EOF or "quit", writing a GTP response after
// each one. Returns nil on a clean EOF or "quit"; a read error otherwise.
func (s *Server) Run() error {
	scanner := bufio.NewScanner(s.In)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		id, rest := splitCommandID(line)
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		if cmd == "quit" {
			s.reply(id, true, "")
			return nil
		}

		ok, resp := s.dispatch(cmd, args)
		s.reply(id, ok, resp)
	}
	return scanner.Err()
}

// splitCommandID peels a leading numeric command id off a GTP line, per
// the protocol's optional "id command args..." form.
func splitCommandID(line string) (id, rest string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", ""
	}
	if _, err := strconv.Atoi(fields[0]); err == nil {
		return fields[0], strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
	}
	return "", line
}

func (s *Server) reply(id string, ok bool, text string) {
	prefix := "="
	if !ok {
		prefix = "?"
	}
	fmt.Fprintf(s.Out, "\n%s%s %s\n\n", prefix, id, text)
}

func (s *Server) dispatch(cmd string, args []string) (ok bool, resp string) {
	switch cmd {
	case "play":
		return s.cmdPlay(args)
	case "genmove":
		return s.cmdGenmove(args)
	case "clear_board":
		s.Engine.ClearBoard()
		return true, ""
	case "boardsize":
		return s.cmdBoardsize(args)
	case "cputime":
		return true, fmt.Sprintf("%.3f", s.Engine.Context().CPUTime().Seconds())
	case "name":
		return true, "michigo"
	case "version":
		return true, "simple go program demo"
	case "protocol_version":
		return true, "2"
	case "list_commands", "help":
		return true, strings.Join(KnownCommands, "\n")
	case "known_command":
		if len(args) == 0 {
			return false, "missing command name"
		}
		for _, k := range KnownCommands {
			if k == args[0] {
				return true, "true"
			}
		}
		return true, "false"
	case "debug":
		return s.cmdDebug(args)
	default:
		return false, "unknown command: " + cmd
	}
}

func (s *Server) cmdPlay(args []string) (bool, string) {
	if len(args) < 2 {
		return false, "usage: play <color> <coord>"
	}
	// args[0] is the color, ignored: the engine always assumes strictly
	// alternating play, exactly as michi.c's gtp_io does.
	pt, err := board.ParseCoord(args[1], s.Engine.Position().Geometry())
	if err != nil {
		return false, err.Error()
	}
	if err := s.Engine.Play(pt); err != nil {
		return false, err.Error()
	}
	return true, ""
}

func (s *Server) cmdGenmove(args []string) (bool, string) {
	move, err := s.Engine.Genmove(s.Disp)
	if err != nil {
		return false, err.Error()
	}
	return true, board.StrCoord(move, s.Engine.Position().Geometry())
}

func (s *Server) cmdBoardsize(args []string) (bool, string) {
	if len(args) == 0 {
		return false, "usage: boardsize <n>"
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return false, "not a number: " + args[0]
	}
	if n != s.Engine.Position().Geometry().N {
		return false, fmt.Sprintf("Error: trying to set incompatible boardsize %d (!= %d)",
			n, s.Engine.Position().Geometry().N)
	}
	return true, ""
}
