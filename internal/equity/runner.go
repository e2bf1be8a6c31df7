// Package equity estimates a hero's chance of winning a Hold'em deal by
// Monte Carlo simulation over many independent trials.
package equity

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-equity/internal/holdem"
	"github.com/lox/holdem-equity/internal/randutil"
)

// DefaultTrials is the trial count used when callers don't pick one.
const DefaultTrials = 50000

const (
	// maxWorkers caps parallelism; beyond it returns diminish.
	maxWorkers = 8
	// checkInterval is how many trials a worker runs between cancellation checks.
	checkInterval = 64
	// progressInterval is how many trials pass between progress callbacks.
	progressInterval = 1000
)

var (
	ErrInvalidTrials = errors.New("trial count must not be negative")
	ErrNoSession     = errors.New("no session to simulate")

	errDeadline = errors.New("wall-clock limit reached")
)

// ProgressFunc receives the number of finished trials. It is called from
// worker goroutines and must be safe for concurrent use.
type ProgressFunc func(done, total int)

// Runner runs equity simulations.
type Runner struct {
	workers     int
	seed        int64
	seeded      bool
	logger      zerolog.Logger
	clock       quartz.Clock
	maxDuration time.Duration
	progress    ProgressFunc
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers sets the number of goroutines trials are split across.
// Values below 1 select the default.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithSeed makes runs reproducible: the same seed and worker count produce
// the same result.
func WithSeed(seed int64) Option {
	return func(r *Runner) {
		r.seed = seed
		r.seeded = true
	}
}

// WithLogger sets the logger used for run lifecycle events.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithClock replaces the wall clock, mostly for tests.
func WithClock(clock quartz.Clock) Option {
	return func(r *Runner) {
		r.clock = clock
	}
}

// WithMaxDuration stops a run early once d has elapsed. The result then covers
// only the trials that finished. Zero means no limit.
func WithMaxDuration(d time.Duration) Option {
	return func(r *Runner) {
		r.maxDuration = d
	}
}

// WithProgress registers a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(r *Runner) {
		r.progress = fn
	}
}

// NewRunner creates a runner with the given options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		workers: defaultWorkers(),
		logger:  zerolog.Nop(),
		clock:   quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func defaultWorkers() int {
	return min(runtime.NumCPU(), maxWorkers)
}

// RunEquity simulates trials deals of base with a default runner.
func RunEquity(ctx context.Context, base *holdem.Session, trials int) (Result, error) {
	return NewRunner().Run(ctx, base, trials)
}

// Run plays trials independent deals, each on its own clone of base, and
// aggregates the hero's results. Trials are split evenly across workers, and
// each worker draws from its own random stream derived from the run seed.
//
// If the wall-clock limit is hit the partial result is returned with Truncated
// set. If ctx is cancelled the partial result is returned along with the
// context's error.
func (r *Runner) Run(ctx context.Context, base *holdem.Session, trials int) (Result, error) {
	if trials < 0 {
		return Result{}, fmt.Errorf("%d trials: %w", trials, ErrInvalidTrials)
	}
	if base == nil {
		return Result{}, ErrNoSession
	}

	seed := r.seed
	if !r.seeded {
		seed = randutil.Seed()
	}
	workers := max(min(r.workers, trials), 1)

	res := Result{
		RunID:     uuid.NewString(),
		Players:   base.Players(),
		Requested: trials,
		Seed:      seed,
		Workers:   workers,
	}
	logger := r.logger.With().Str("run_id", res.RunID).Logger()
	logger.Debug().
		Int("players", res.Players).
		Int("trials", trials).
		Int("workers", workers).
		Int64("seed", seed).
		Msg("Starting equity run")

	start := r.clock.Now()
	var deadline time.Time
	if r.maxDuration > 0 {
		deadline = start.Add(r.maxDuration)
	}

	var done atomic.Int64
	tallies := make([]Tally, workers)
	g, gctx := errgroup.WithContext(ctx)

	perWorker, remainder := trials/workers, trials%workers
	for w := range workers {
		n := perWorker
		if w < remainder {
			n++
		}

		g.Go(func() error {
			rng := randutil.Stream(seed, w)
			tally := &tallies[w]
			for i := range n {
				if i%checkInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
					if !deadline.IsZero() && !r.clock.Now().Before(deadline) {
						return errDeadline
					}
				}
				outcome, hero := base.Clone().PlayOnce(rng)
				tally.Record(outcome, hero)
				r.report(int(done.Add(1)), trials)
			}
			return nil
		})
	}

	err := g.Wait()
	for _, t := range tallies {
		res.Tally.Merge(t)
	}
	res.Elapsed = r.clock.Since(start)
	res.Truncated = res.Trials() < trials

	switch {
	case errors.Is(err, errDeadline):
		logger.Warn().
			Int("completed", res.Trials()).
			Dur("limit", r.maxDuration).
			Msg("Equity run stopped at wall-clock limit")
		err = nil
	case err != nil:
		logger.Warn().Err(err).Int("completed", res.Trials()).Msg("Equity run cancelled")
		return res, err
	}

	logger.Debug().
		Int("wins", res.Wins).
		Int("losses", res.Losses).
		Int("draws", res.Draws).
		Float64("win_rate", res.WinRate()).
		Dur("elapsed", res.Elapsed).
		Msg("Equity run complete")
	return res, nil
}

func (r *Runner) report(done, total int) {
	if r.progress != nil && (done%progressInterval == 0 || done == total) {
		r.progress(done, total)
	}
}
