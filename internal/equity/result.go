package equity

import (
	"math"
	"time"

	"github.com/lox/holdem-equity/internal/evaluator"
	"github.com/lox/holdem-equity/internal/holdem"
)

// Tally counts trial outcomes. Tallies from different workers add up.
type Tally struct {
	Wins           int                          `json:"wins" yaml:"wins"`
	Losses         int                          `json:"losses" yaml:"losses"`
	Draws          int                          `json:"draws" yaml:"draws"`
	HeroCategories [evaluator.NumCategories]int `json:"-" yaml:"-"`
}

// Record adds one trial.
func (t *Tally) Record(outcome holdem.Showdown, hero evaluator.Grade) {
	switch outcome {
	case holdem.Win:
		t.Wins++
	case holdem.Lose:
		t.Losses++
	case holdem.Draw:
		t.Draws++
	}
	t.HeroCategories[hero.Category()]++
}

// Merge adds another tally into t.
func (t *Tally) Merge(o Tally) {
	t.Wins += o.Wins
	t.Losses += o.Losses
	t.Draws += o.Draws
	for i, n := range o.HeroCategories {
		t.HeroCategories[i] += n
	}
}

// Trials is the number of trials recorded.
func (t Tally) Trials() int {
	return t.Wins + t.Losses + t.Draws
}

// Result is the aggregate of an equity run.
type Result struct {
	Tally

	RunID     string        `json:"run_id" yaml:"run_id"`
	Players   int           `json:"players" yaml:"players"`
	Requested int           `json:"requested" yaml:"requested"`
	Seed      int64         `json:"seed" yaml:"seed"`
	Workers   int           `json:"workers" yaml:"workers"`
	Truncated bool          `json:"truncated" yaml:"truncated"`
	Elapsed   time.Duration `json:"elapsed" yaml:"elapsed"`
}

// WinRate is wins over completed trials: the estimated probability that the
// hero wins outright.
func (r Result) WinRate() float64 {
	return r.rate(r.Wins)
}

// DrawRate is the share of trials where the hero tied for best.
func (r Result) DrawRate() float64 {
	return r.rate(r.Draws)
}

// LossRate is the share of trials where some opponent had a better hand.
func (r Result) LossRate() float64 {
	return r.rate(r.Losses)
}

// Equity counts draws as half a win.
func (r Result) Equity() float64 {
	n := r.Trials()
	if n == 0 {
		return 0
	}
	return (float64(r.Wins) + float64(r.Draws)/2) / float64(n)
}

// StdError is the standard error of Equity, treating each trial as a sample
// worth 1, 0.5 or 0.
func (r Result) StdError() float64 {
	n := r.Trials()
	if n < 2 {
		return 0
	}
	mean := r.Equity()
	sumSq := float64(r.Wins) + float64(r.Draws)/4
	variance := (sumSq - float64(n)*mean*mean) / float64(n-1)
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance / float64(n))
}

// ConfidenceInterval95 returns the 95% confidence interval for Equity.
func (r Result) ConfidenceInterval95() (float64, float64) {
	margin := 1.96 * r.StdError()
	return r.Equity() - margin, r.Equity() + margin
}

// CategoryRate is how often the hero finished with the given category.
func (r Result) CategoryRate(c evaluator.Category) float64 {
	return r.rate(r.HeroCategories[c])
}

func (r Result) rate(n int) float64 {
	total := r.Trials()
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}
