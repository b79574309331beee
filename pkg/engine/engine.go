package engine

import (
	"context"
	"io"

	"github.com/gobanengine/michigo/pkg/board"
	"github.com/gobanengine/michigo/pkg/ctx"
	"github.com/gobanengine/michigo/pkg/mcts"
	"github.com/gobanengine/michigo/pkg/playout"
	"github.com/pkg/errors"
)

// ply records one played move's undo information: the move itself and
// whatever it captured, exactly what board.Position.Undo needs.
type ply struct {
	move     board.Point
	captured []board.Point
}

// Engine is the top-level facade: a position, the context it shares with
// every search/playout call, and the undo history needed to reverse plays
// one at a time. Each genmove/search call grows and discards its own tree
// from scratch, matching michi.c's gtp_io, which calls free_tree/
// new_tree_node around every tree_search rather than keeping one alive
// across moves.
type Engine struct {
	cfg     Config
	geo     *board.Geometry
	pos     *board.Position
	ctx     *ctx.Context
	history []ply

	closeLog func() error
}

// New builds an Engine from cfg: an empty board of cfg.BoardSize, a fresh
// Context seeded with cfg.Seed, and (if cfg.PatternProb/PatternSpat are
// set) a loaded large-pattern dictionary. A missing or unreadable pattern
// pair is logged as a warning and left unloaded rather than failing
// construction, per §7's "missing pattern files" disposition.
func New(cfg Config) (*Engine, error) {
	if cfg.NumSims == 0 {
		cfg.NumSims = DefaultNumSims
	}
	logW, closeLog, err := cfg.logWriter()
	if err != nil {
		return nil, err
	}

	geo := board.NewGeometry(cfg.BoardSize)
	c := ctx.New(geo, cfg.Seed, logW)

	if cfg.PatternProb != "" && cfg.PatternSpat != "" {
		if err := c.LargePatterns.Load(context.Background(), cfg.PatternProb, cfg.PatternSpat); err != nil {
			c.Logger.Warn().Err(err).Msg("large pattern dictionary not loaded; continuing without it")
		}
	}

	e := &Engine{
		cfg:      cfg,
		geo:      geo,
		pos:      board.EmptyPosition(geo, cfg.Komi),
		ctx:      c,
		closeLog: closeLog,
	}
	return e, nil
}

// Close releases the engine's log file, if one was opened.
func (e *Engine) Close() error {
	if e.closeLog == nil {
		return nil
	}
	return e.closeLog()
}

// Position returns the current board state. Callers must not mutate it
// directly; go through Play/Pass/Undo/Genmove.
func (e *Engine) Position() *board.Position { return e.pos }

// Context returns the engine's shared search/playout context, for debug
// commands that need direct access (env8 dump, marker printing).
func (e *Engine) Context() *ctx.Context { return e.ctx }

// ClearBoard resets the engine to an empty board, discarding history.
// Grounded on michi.c's gtp_io's "clear_board" handler.
func (e *Engine) ClearBoard() {
	e.pos = board.EmptyPosition(e.geo, e.cfg.Komi)
	e.history = e.history[:0]
}

// Play plays pt for the side to move. Grounded on michi.c's gtp_io's
// "play" handler (GTP's color argument is accepted but ignored there too —
// the engine always assumes strictly alternating play).
func (e *Engine) Play(pt board.Point) error {
	captured, err := e.pos.PlayMove(pt)
	if err != nil {
		return err
	}
	e.history = append(e.history, ply{move: pt, captured: captured})
	return nil
}

// Pass passes for the side to move.
func (e *Engine) Pass() {
	e.pos.PassMove()
	e.history = append(e.history, ply{move: board.Pass})
}

// Undo reverses the most recent Play/Pass call. Returns an error if there
// is no history left to undo (the Undo round-trip law only covers moves
// that captured at most one stone; see board.Position.Undo).
func (e *Engine) Undo() error {
	if len(e.history) == 0 {
		return errors.New("engine: nothing to undo")
	}
	last := e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]
	e.pos.Undo(last.captured)
	return nil
}

// Search runs numSims MCTS iterations from the current position without
// playing the resulting move, returning it plus the accumulated ownership
// map. Used by Genmove and by any driver that wants to inspect a move
// before committing to it.
func (e *Engine) Search(numSims int, disp bool) (board.Point, []float32) {
	root := mcts.NewNode(e.pos.Clone())
	owner := make([]float32, e.geo.BoardSize)
	move := mcts.TreeSearch(root, e.ctx, numSims, owner, disp)
	return move, owner
}

// Genmove runs a fresh search from the current position and plays the
// resulting move (unless it is Resign, which is returned without being
// applied — there is no board point to play). Grounded on michi.c's
// gtp_io's "genmove" handler, including its special case: after the
// opponent's pass with at least a few moves played, pass back immediately
// rather than spending a search on it.
func (e *Engine) Genmove(disp bool) (board.Point, error) {
	if e.pos.Last == board.Pass && e.pos.N > 2 {
		e.Pass()
		return board.Pass, nil
	}
	move, _ := e.Search(e.cfg.NumSims, disp)
	switch move {
	case board.Pass:
		e.Pass()
	case board.Resign:
		// Nothing to apply; the game is over from this engine's side.
	default:
		if err := e.Play(move); err != nil {
			return board.NoPoint, err
		}
	}
	return move, nil
}

// Benchmark runs n playouts from a fresh empty position and returns their
// mean score, a pure sanity check that the playout policy is unbiased (see
// §8's mcbenchmark testable property). It never touches the engine's own
// position/history. Grounded on michi.c's mcbenchmark.
func (e *Engine) Benchmark(n int) float64 {
	owner := make([]float32, e.geo.BoardSize)
	sum := 0.0
	for i := 0; i < n; i++ {
		pos := board.EmptyPosition(e.geo, e.cfg.Komi)
		sum += playout.MCPlayout(pos, e.ctx, owner, false).Score
	}
	return sum / float64(n)
}

// PrintPosition writes a human-readable board dump to w, grounded on
// michi.c's print_pos: the board itself, move/capture/komi/ko header, and
// (if owner is non-nil) a per-point ownership column derived from a prior
// search's accumulated owner map.
func (e *Engine) PrintPosition(w io.Writer, owner []float32) {
	printPosition(w, e.pos, owner, e.cfg.NumSims)
}
