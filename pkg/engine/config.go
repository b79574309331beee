// Package engine ties the board, playout policy, and search tree together
// into the handful of operations a driver (GTP loop, CLI debug command,
// benchmark) actually calls: play, pass, undo, search, genmove. Grounded
// on original_source/michi.c's gtp_io/main, which the teacher never ported
// (its single file stops at board mechanics).
package engine

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// DefaultNumSims is michi.h's N_SIMS: the iteration count genmove runs
// when the driver doesn't override it.
const DefaultNumSims = 1400

// Config collects everything needed to build an Engine. Grounded on
// michi.c's main(): board size is fixed at process start (rebuilding the
// pattern tables for a different N is out of scope, per §6), the RNG seed
// defaults to a time-derived value unless pinned, and the pattern files
// are optional — a missing pair degrades the engine (large-pattern priors
// drop out) rather than failing startup.
type Config struct {
	BoardSize int
	Komi      float32
	Seed      uint32
	NumSims   int

	LogPath     string
	PatternProb string
	PatternSpat string
}

func (c Config) logWriter() (io.Writer, func() error, error) {
	if c.LogPath == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "engine: opening log file %q", c.LogPath)
	}
	return f, f.Close, nil
}
