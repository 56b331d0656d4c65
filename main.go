package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/llehouerou/movierec/internal/app"
	"github.com/llehouerou/movierec/internal/catalog"
	"github.com/llehouerou/movierec/internal/config"
	"github.com/llehouerou/movierec/internal/errmsg"
	"github.com/llehouerou/movierec/internal/index"
	"github.com/llehouerou/movierec/internal/logging"
	"github.com/llehouerou/movierec/internal/prompt"
	"github.com/llehouerou/movierec/internal/recommend"
	"github.com/llehouerou/movierec/internal/state"
)

type flags struct {
	data   string
	limit  int
	engine string
	plain  bool
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.data, "data", "", "movie catalog CSV (default from config, then movies.csv)")
	flag.IntVar(&f.limit, "limit", 0, "number of recommendations per genre")
	flag.StringVar(&f.engine, "engine", "", `query engine: "memory" or "sqlite"`)
	flag.BoolVar(&f.plain, "plain", false, "use the line-mode prompt instead of the terminal UI")
	flag.Parse()
	return f
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(f flags) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	applyFlags(cfg, f)
	if err := cfg.Validate(); err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logCloser, err := logging.Init(logging.Config{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpLogOpen, cfg.Log.File, err))
	}
	defer logCloser.Close()

	cat, err := catalog.Load(cfg.DataFile)
	if err != nil {
		logging.Error().Str("path", cfg.DataFile).Msg(errmsg.Format(errmsg.OpCatalogLoad, err))
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	engine, closeEngine, err := newEngine(ctx, cfg.Engine, cat)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpIndexBuild, err))
	}
	defer closeEngine.Close()

	logging.Info().
		Str("engine", cfg.Engine).
		Int("limit", cfg.Limit).
		Bool("plain", f.plain).
		Msg("starting")

	if f.plain || !interactive() {
		p := prompt.New(engine, cat.Len(), cfg.Limit, os.Stdin, os.Stdout)
		if err := p.Run(ctx); err != nil {
			return errors.New(errmsg.Format(errmsg.OpReadInput, err))
		}
		return nil
	}

	m := app.New(engine, cat.Len(), cfg.Limit)
	if st, err := state.Open(); err != nil {
		logging.Warn().Err(err).Msg("state unavailable, last genre will not be remembered")
	} else {
		defer st.Close()
		m = m.WithHistory(st, historyKey(cfg.DataFile))
	}

	if err := app.Run(m); err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	return nil
}

func applyFlags(cfg *config.Config, f flags) {
	if f.data != "" {
		cfg.DataFile = f.data
	}
	if f.limit != 0 {
		cfg.Limit = f.limit
	}
	if f.engine != "" {
		cfg.Engine = f.engine
	}
	cfg.Normalize()
}

// historyKey identifies a catalog file independently of the working directory.
func historyKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func newEngine(ctx context.Context, kind string, cat *catalog.Catalog) (recommend.Engine, io.Closer, error) {
	if kind == config.EngineSQLite {
		idx, err := index.Build(ctx, cat)
		if err != nil {
			return nil, nil, err
		}
		return idx, idx, nil
	}
	return recommend.New(cat), nopCloser{}, nil
}

func interactive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
