// Package config loads batch equity scenarios from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdem-equity/internal/deck"
	"github.com/lox/holdem-equity/internal/equity"
	"github.com/lox/holdem-equity/internal/holdem"
)

var (
	ErrNoScenarios       = errors.New("no scenarios defined")
	ErrDuplicateScenario = errors.New("duplicate scenario name")
	ErrInvalidScenario   = errors.New("invalid scenario")
)

// File is the decoded form of a scenario file.
type File struct {
	Defaults  *Defaults  `hcl:"defaults,block"`
	Scenarios []Scenario `hcl:"scenario,block"`
}

// Defaults apply to every scenario that doesn't set its own value.
type Defaults struct {
	Trials  int   `hcl:"trials,optional"`
	Workers int   `hcl:"workers,optional"`
	Seed    int64 `hcl:"seed,optional"`
}

// Scenario is one equity run: a table size and optionally the hero's cards.
type Scenario struct {
	Name    string `hcl:"name,label"`
	Players int    `hcl:"players"`
	Hero    string `hcl:"hero,optional"`
	Trials  int    `hcl:"trials,optional"`
	Workers int    `hcl:"workers,optional"`
	Seed    int64  `hcl:"seed,optional"`

	heroCards []deck.Card
}

// HeroCards returns the parsed hero cards, empty for a random hero.
func (s Scenario) HeroCards() []deck.Card {
	return s.heroCards
}

// Session builds the session template for the scenario.
func (s Scenario) Session() (*holdem.Session, error) {
	session, err := holdem.Configure(s.Players, s.heroCards...)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return session, nil
}

// DefaultDefaults returns the settings used when a file has no defaults block.
func DefaultDefaults() Defaults {
	return Defaults{
		Trials:  equity.DefaultTrials,
		Workers: 0, // auto
		Seed:    0, // random
	}
}

// Load reads and validates a scenario file.
func Load(filename string) (*File, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes scenario HCL. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg File
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (f *File) applyDefaults() {
	defaults := DefaultDefaults()
	if f.Defaults != nil {
		if f.Defaults.Trials != 0 {
			defaults.Trials = f.Defaults.Trials
		}
		defaults.Workers = f.Defaults.Workers
		defaults.Seed = f.Defaults.Seed
	}
	f.Defaults = &defaults

	for i := range f.Scenarios {
		sc := &f.Scenarios[i]
		if sc.Trials == 0 {
			sc.Trials = defaults.Trials
		}
		if sc.Workers == 0 {
			sc.Workers = defaults.Workers
		}
		if sc.Seed == 0 {
			sc.Seed = defaults.Seed
		}
	}
}

func (f *File) validate() error {
	if len(f.Scenarios) == 0 {
		return ErrNoScenarios
	}
	if f.Defaults.Trials < 0 {
		return fmt.Errorf("defaults: %d trials: %w", f.Defaults.Trials, equity.ErrInvalidTrials)
	}
	if f.Defaults.Workers < 0 {
		return fmt.Errorf("defaults: workers %d: %w", f.Defaults.Workers, ErrInvalidScenario)
	}

	seen := make(map[string]bool, len(f.Scenarios))
	for i := range f.Scenarios {
		sc := &f.Scenarios[i]
		if seen[sc.Name] {
			return fmt.Errorf("scenario %q: %w", sc.Name, ErrDuplicateScenario)
		}
		seen[sc.Name] = true

		if sc.Trials < 0 {
			return fmt.Errorf("scenario %q: %d trials: %w", sc.Name, sc.Trials, equity.ErrInvalidTrials)
		}
		if sc.Workers < 0 {
			return fmt.Errorf("scenario %q: workers %d: %w", sc.Name, sc.Workers, ErrInvalidScenario)
		}

		cards, err := deck.ParseCards(sc.Hero)
		if err != nil {
			return fmt.Errorf("scenario %q: hero: %w", sc.Name, err)
		}
		sc.heroCards = cards

		// Building the template catches bad player counts and hero cards.
		if _, err := sc.Session(); err != nil {
			return err
		}
	}
	return nil
}
