// Command michigo is the engine's command-line entry point: a GTP server
// by default, plus a handful of debug subcommands inherited from the
// reference implementation's main() dispatch (mcdebug, mcbenchmark,
// tsdebug). Grounded on original_source/michi.c's main/usage.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gobanengine/michigo/pkg/board"
	"github.com/gobanengine/michigo/pkg/engine"
	"github.com/gobanengine/michigo/pkg/gtp"
	"github.com/gobanengine/michigo/pkg/mcts"
	"github.com/gobanengine/michigo/pkg/playout"
	"github.com/gobanengine/michigo/pkg/rng"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: michigo [-z seed] [-boardsize N] [-komi K] [-sims N] "+
		"[-log path] [-pat-prob path] [-pat-spat path] <gtp|mcdebug|mcbenchmark|tsdebug>")
}

func main() {
	var (
		seed    = flag.Uint("z", 0, "random seed (0 = derive from clock)")
		size    = flag.Int("boardsize", 9, "board size")
		komi    = flag.Float64("komi", 7.5, "komi")
		sims    = flag.Int("sims", engine.DefaultNumSims, "MCTS simulations per move")
		logPath = flag.String("log", "michi.log", "log file path")
		patProb = flag.String("pat-prob", "", "large pattern probability file")
		patSpat = flag.String("pat-spat", "", "large pattern spatial file")
		bench   = flag.Int("bench-n", 2000, "playout count for mcbenchmark")
		tsSims  = flag.Int("ts-sims", 100, "simulation count for tsdebug")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}
	command := flag.Arg(0)

	s := uint32(*seed)
	if s == 0 {
		s = rng.DefaultSeed()
	}

	cfg := engine.Config{
		BoardSize:   *size,
		Komi:        float32(*komi),
		Seed:        s,
		NumSims:     *sims,
		LogPath:     *logPath,
		PatternProb: *patProb,
		PatternSpat: *patSpat,
	}
	e, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "michigo:", err)
		os.Exit(1)
	}
	defer e.Close()

	switch command {
	case "gtp":
		srv := gtp.New(e, os.Stdin, os.Stdout)
		if err := srv.Run(); err != nil {
			fmt.Fprintln(os.Stderr, "michigo:", err)
			os.Exit(1)
		}
	case "mcdebug":
		owner := make([]float32, e.Position().Geometry().BoardSize)
		result := playout.MCPlayout(e.Position(), e.Context(), owner, true)
		fmt.Println(result.Score)
	case "mcbenchmark":
		fmt.Println(e.Benchmark(*bench))
	case "tsdebug":
		root := mcts.NewNode(e.Position().Clone())
		owner := make([]float32, e.Position().Geometry().BoardSize)
		move := mcts.TreeSearch(root, e.Context(), *tsSims, owner, false)
		fmt.Fprintln(os.Stderr, "move =", board.StrCoord(move, e.Position().Geometry()))
		if move != board.Pass && move != board.Resign {
			if err := e.Play(move); err != nil {
				fmt.Fprintln(os.Stderr, "michigo:", err)
				os.Exit(1)
			}
		}
		e.PrintPosition(os.Stderr, nil)
	default:
		fmt.Fprintln(os.Stderr, "michigo: unknown command:", command)
		usage()
		os.Exit(1)
	}
}
