package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvyen/builder"
	"github.com/katalvlaran/lvyen/core"
	"github.com/katalvlaran/lvyen/dfs"
	"github.com/katalvlaran/lvyen/verify"
	"github.com/katalvlaran/lvyen/yen"
)

// Harness defaults.
const (
	defaultVertices = 1000
	defaultDensity  = 0.1
	defaultStart    = 0
	defaultEnd      = 10
)

// Search engines selectable with --engine.
const (
	engineYen = "yen"
	engineDFS = "dfs"
)

var (
	errNoPath      = errors.New("couldn't find a valid path")
	errNotRestored = errors.New("search left the graph modified")
)

// config holds the flag values of one invocation.
type config struct {
	vertices   int
	density    float64
	start      int
	end        int
	seed       int64
	engine     string
	order      string
	exhaustive bool
	debug      bool
}

func newRootCmd() *cobra.Command {
	cfg := &config{}
	cmd := &cobra.Command{
		Use:   "lvyen <length>",
		Short: "Find a simple path with an exact number of vertices in a random graph",
		Long: `lvyen builds a random undirected graph, searches it for a simple path
from --start to --end that has exactly <length> vertices, prints the search
time in seconds and checks the path it found.

Examples:
  # 5-vertex path on the default 1000-vertex graph
  lvyen 5

  # Reproducible run with length-ordered candidates
  lvyen 6 --seed 42 --order shortest

  # Smaller, denser graph, search until candidates run out
  lvyen 8 --vertices 200 --density 0.05 --exhaustive`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr(), cfg.debug), cfg, args[0])
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.vertices, "vertices", defaultVertices, "Number of vertices in the random graph")
	f.Float64Var(&cfg.density, "density", defaultDensity, "Probability of an edge between any two vertices")
	f.IntVar(&cfg.start, "start", defaultStart, "First vertex of the path")
	f.IntVar(&cfg.end, "end", defaultEnd, "Last vertex of the path")
	f.Int64Var(&cfg.seed, "seed", 0, "Random seed for graph generation (0: time based)")
	f.StringVar(&cfg.engine, "engine", engineYen, "Search engine: yen, dfs")
	f.StringVar(&cfg.order, "order", yen.OrderLexMax.String(), "Candidate order: lex, shortest")
	f.BoolVar(&cfg.exhaustive, "exhaustive", false, "Keep searching past over-long candidates")
	f.BoolVar(&cfg.debug, "debug", false, "Enable debug logging")

	return cmd
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()
}

func run(out io.Writer, logger zerolog.Logger, cfg *config, lengthArg string) error {
	length, err := strconv.Atoi(lengthArg)
	if err != nil || length < 0 {
		return fmt.Errorf("invalid length %q: want a non-negative integer", lengthArg)
	}
	order, err := yen.ParseOrder(cfg.order)
	if err != nil {
		return err
	}
	if cfg.engine != engineYen && cfg.engine != engineDFS {
		return fmt.Errorf("unknown engine %q: want %s or %s", cfg.engine, engineYen, engineDFS)
	}
	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := builder.BuildGraph(cfg.vertices,
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.RandomSparse(cfg.vertices, cfg.density))
	if err != nil {
		return fmt.Errorf("failed to build graph: %w", err)
	}
	pristine := g.Clone()
	logger.Info().
		Int("vertices", g.Size()).
		Int("edges", g.EdgeCount()).
		Int64("seed", seed).
		Msg("Graph built")

	began := time.Now()
	path, err := search(logger, g, cfg, length, order)
	elapsed := time.Since(began)
	fmt.Fprintf(out, "%.4f\n", elapsed.Seconds())
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if !g.Equal(pristine) {
		return errNotRestored
	}
	if path == nil {
		return errNoPath
	}
	if err := verify.Path(pristine, path, cfg.start, cfg.end, length); err != nil {
		return fmt.Errorf("invalid path %v: %w", path, err)
	}
	logger.Info().Ints("path", path).Msg("Path verified")

	return nil
}

// search runs the selected engine and returns its path, nil when none.
func search(logger zerolog.Logger, g *core.Graph, cfg *config, length int, order yen.Order) ([]int, error) {
	if cfg.engine == engineDFS {
		return dfs.ExactPath(g, cfg.start, cfg.end, length)
	}

	opts := []yen.Option{
		yen.WithOrder(order),
		yen.WithOnConfirm(func(p []int) {
			logger.Debug().Ints("path", p).Int("len", len(p)).Msg("Confirmed")
		}),
	}
	if cfg.exhaustive {
		opts = append(opts, yen.WithExhaustive())
	}

	res, err := yen.Find(g, cfg.start, cfg.end, length, opts...)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Int("confirmed", res.Confirmed).
		Int("generated", res.Generated).
		Int("spurs", res.Spurs).
		Msg("Search complete")

	return res.Path, nil
}
