package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/holdem-equity/internal/deck"
	"github.com/lox/holdem-equity/internal/equity"
	"github.com/lox/holdem-equity/internal/holdem"
	"github.com/lox/holdem-equity/internal/logging"
)

// EquityCmd estimates one hand's equity.
type EquityCmd struct {
	Players  int           `short:"p" help:"Participants at the table, hero included" default:"2"`
	Hero     string        `help:"Hero hole cards, e.g. 'KsKd' (random when omitted)"`
	Trials   int           `short:"n" help:"Number of Monte Carlo trials" default:"50000"`
	Seed     *int64        `help:"Random seed for reproducible results"`
	Workers  int           `short:"w" help:"Worker goroutines (0 picks one per CPU, up to 8)" default:"0"`
	Timeout  time.Duration `help:"Stop early and report partial results after this long"`
	Format   string        `short:"f" help:"Output format" enum:"table,json,yaml" default:"table"`
	Output   string        `short:"o" help:"Write the report to this file instead of stdout" type:"path"`
	Progress bool          `help:"Show progress on stderr"`
}

func (c *EquityCmd) Run(g *Globals) error {
	logger := logging.New(g.LogLevel, g.LogJSON)
	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	hero, err := deck.ParseCards(c.Hero)
	if err != nil {
		return fmt.Errorf("hero: %w", err)
	}
	session, err := holdem.Configure(c.Players, hero...)
	if err != nil {
		return err
	}

	res, runErr := simulate(ctx, logger, session, simulation{
		trials:   c.Trials,
		seed:     c.Seed,
		workers:  c.Workers,
		timeout:  c.Timeout,
		progress: c.Progress,
	})
	if res.RunID == "" {
		return runErr
	}

	runs := []run{{Hero: hero, Result: res}}
	if err := emit(c.Output, func(w io.Writer) error { return renderRuns(w, c.Format, runs) }); err != nil {
		return err
	}
	return runErr
}

type simulation struct {
	name     string
	trials   int
	seed     *int64
	workers  int
	timeout  time.Duration
	progress bool
}

// simulate runs one equity estimate with the runner options shared by the
// equity and batch commands.
func simulate(ctx context.Context, logger zerolog.Logger, session *holdem.Session, sim simulation) (equity.Result, error) {
	clock := quartz.NewReal()
	opts := []equity.Option{
		equity.WithWorkers(sim.workers),
		equity.WithLogger(logger),
		equity.WithClock(clock),
		equity.WithMaxDuration(sim.timeout),
	}
	if sim.seed != nil {
		opts = append(opts, equity.WithSeed(*sim.seed))
	}

	var progress *dotProgress
	if sim.progress {
		progress = newDotProgress(os.Stderr, clock, sim.name)
		opts = append(opts, equity.WithProgress(progress.Update))
	}

	res, err := equity.NewRunner(opts...).Run(ctx, session, sim.trials)
	if progress != nil {
		progress.Stop(res.Trials())
	}
	return res, err
}
