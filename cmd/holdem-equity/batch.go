package main

import (
	"io"

	"github.com/lox/holdem-equity/internal/config"
	"github.com/lox/holdem-equity/internal/logging"
)

// BatchCmd runs the scenarios of an HCL file in order.
type BatchCmd struct {
	File     string `arg:"" help:"Scenario file" type:"existingfile"`
	Format   string `short:"f" help:"Output format" enum:"table,json,yaml" default:"table"`
	Output   string `short:"o" help:"Write the report to this file instead of stdout" type:"path"`
	Progress bool   `help:"Show progress on stderr"`
}

func (c *BatchCmd) Run(g *Globals) error {
	logger := logging.New(g.LogLevel, g.LogJSON)
	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	cfg, err := config.Load(c.File)
	if err != nil {
		return err
	}
	logger.Info().Str("file", c.File).Int("scenarios", len(cfg.Scenarios)).Msg("Loaded scenarios")

	var (
		runs   []run
		runErr error
	)
	for _, sc := range cfg.Scenarios {
		session, err := sc.Session()
		if err != nil {
			return err
		}

		sim := simulation{
			name:     sc.Name,
			trials:   sc.Trials,
			workers:  sc.Workers,
			progress: c.Progress,
		}
		if sc.Seed != 0 {
			seed := sc.Seed
			sim.seed = &seed
		}

		res, err := simulate(ctx, logger.With().Str("scenario", sc.Name).Logger(), session, sim)
		if res.RunID != "" {
			runs = append(runs, run{Name: sc.Name, Hero: sc.HeroCards(), Result: res})
		}
		if err != nil {
			runErr = err
			break
		}
	}

	if len(runs) > 0 {
		err := emit(c.Output, func(w io.Writer) error { return renderRuns(w, c.Format, runs) })
		if err != nil {
			return err
		}
	}
	return runErr
}
