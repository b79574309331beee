// Package ctx carries the mutable, single-thread-owned state that the
// reference engine keeps in package-level globals (flog, mark1/mark2,
// already_suggested, idum, the pattern dictionaries) as one explicit value
// threaded through every call instead. See the design notes on replacing
// global mutable state with an engine context.
package ctx

import (
	"io"
	"time"

	"github.com/gobanengine/michigo/pkg/board"
	"github.com/gobanengine/michigo/pkg/largepattern"
	"github.com/gobanengine/michigo/pkg/pattern3"
	"github.com/gobanengine/michigo/pkg/rng"
	"github.com/rs/zerolog"
)

// Context bundles everything the engine's operations need besides the
// Position itself: the RNG stream, reusable scratch markers for tactical
// reading, the compiled pattern dictionaries, and a logger. One Context is
// created per running engine and lives for the process's lifetime; it is
// never shared across threads (see the single-threaded scheduling model).
type Context struct {
	Geometry *board.Geometry

	RNG *rng.LCG

	// Mark1 and Mark2 are the two scratch Markers the reference engine
	// keeps as globals (mark1/mark2 in michi.c), reused across block,
	// atari and ladder scans that need a disposable visited-set without
	// allocating one per call.
	Mark1 *board.Marker
	Mark2 *board.Marker

	// AlreadySuggested is the counterpart of michi.c's already_suggested
	// global. Nothing in the playout generators marks it; only the debug
	// "print_mark" command reads it.
	AlreadySuggested *board.Marker

	Pattern3      *pattern3.Dictionary
	LargePatterns *largepattern.Dictionary

	Logger zerolog.Logger

	// StartTime is the process start instant, wired to the GTP cputime
	// command.
	StartTime time.Time
}

// New builds a Context for a board of g's size. The large-pattern
// dictionary starts unloaded (Probability always misses) until Load is
// called; Pattern3 is compiled unconditionally since it has no external
// file dependency.
func New(g *board.Geometry, seed uint32, logWriter io.Writer) *Context {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: logWriter, NoColor: true}).
		With().Timestamp().Logger()
	return &Context{
		Geometry:         g,
		RNG:              rng.New(seed),
		Mark1:            board.NewMarker(g.BoardSize),
		Mark2:            board.NewMarker(g.BoardSize),
		AlreadySuggested: board.NewMarker(g.BoardSize),
		Pattern3:         pattern3.Compile(),
		LargePatterns:    largepattern.New(g),
		Logger:           logger,
		StartTime:        time.Now(),
	}
}

// CPUTime reports elapsed wall-clock time since the Context was created,
// wired to the GTP cputime command (michi.c's gtp_io has no real CPU-time
// accounting either — it reports the same wall-clock delta).
func (c *Context) CPUTime() time.Duration {
	return time.Since(c.StartTime)
}
