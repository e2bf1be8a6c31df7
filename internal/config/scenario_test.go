package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-equity/internal/deck"
	"github.com/lox/holdem-equity/internal/equity"
	"github.com/lox/holdem-equity/internal/holdem"
)

const sample = `
defaults {
  trials  = 20000
  workers = 4
  seed    = 42
}

scenario "kings-three-way" {
  players = 3
  hero    = "KsKd"
}

scenario "random-heads-up" {
  players = 2
  trials  = 1000
  seed    = 7
}
`

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(sample), "sample.hcl")
	require.NoError(t, err)
	require.Len(t, cfg.Scenarios, 2)

	kings := cfg.Scenarios[0]
	assert.Equal(t, "kings-three-way", kings.Name)
	assert.Equal(t, 3, kings.Players)
	assert.Equal(t, 20000, kings.Trials)
	assert.Equal(t, 4, kings.Workers)
	assert.Equal(t, int64(42), kings.Seed)
	assert.Equal(t, deck.MustParseCards("KsKd"), kings.HeroCards())

	random := cfg.Scenarios[1]
	assert.Equal(t, 1000, random.Trials)
	assert.Equal(t, int64(7), random.Seed)
	assert.Empty(t, random.HeroCards())
}

func TestParseWithoutDefaultsBlock(t *testing.T) {
	cfg, err := Parse([]byte(`
scenario "solo" {
  players = 6
}
`), "solo.hcl")
	require.NoError(t, err)

	assert.Equal(t, DefaultDefaults(), *cfg.Defaults)
	sc := cfg.Scenarios[0]
	assert.Equal(t, equity.DefaultTrials, sc.Trials)
	assert.Zero(t, sc.Workers)
	assert.Zero(t, sc.Seed)
}

func TestScenarioSession(t *testing.T) {
	cfg, err := Parse([]byte(sample), "sample.hcl")
	require.NoError(t, err)

	s, err := cfg.Scenarios[0].Session()
	require.NoError(t, err)
	assert.Equal(t, 3, s.Players())
	assert.Equal(t, holdem.PreFlop, s.Stage())
	assert.Equal(t, deck.MustParseCards("KsKd"), s.Hero())
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
		wantMsg string
	}{
		{
			name:    "no scenarios",
			src:     `defaults { trials = 10 }`,
			wantErr: ErrNoScenarios,
		},
		{
			name:    "too many players",
			src:     `scenario "crowd" { players = 11 }`,
			wantErr: holdem.ErrTooManyPlayers,
			wantMsg: `scenario "crowd"`,
		},
		{
			name:    "too few players",
			src:     `scenario "alone" { players = 1 }`,
			wantErr: holdem.ErrTooFewPlayers,
			wantMsg: `scenario "alone"`,
		},
		{
			name:    "one hero card",
			src:     "scenario \"half\" {\n  players = 2\n  hero    = \"Ks\"\n}",
			wantErr: holdem.ErrHeroCards,
			wantMsg: `scenario "half"`,
		},
		{
			name:    "duplicate hero card",
			src:     "scenario \"twins\" {\n  players = 2\n  hero    = \"KsKs\"\n}",
			wantErr: deck.ErrDuplicateCard,
			wantMsg: `scenario "twins"`,
		},
		{
			name:    "unparseable hero",
			src:     "scenario \"junk\" {\n  players = 2\n  hero    = \"KxKd\"\n}",
			wantMsg: `scenario "junk": hero`,
		},
		{
			name:    "negative trials",
			src:     "scenario \"neg\" {\n  players = 2\n  trials  = -5\n}",
			wantErr: equity.ErrInvalidTrials,
		},
		{
			name:    "negative default trials",
			src:     "defaults {\n  trials = -5\n}\n\nscenario \"ok\" {\n  players = 2\n}",
			wantErr: equity.ErrInvalidTrials,
			wantMsg: "defaults",
		},
		{
			name: "duplicate names",
			src: `
scenario "same" { players = 2 }
scenario "same" { players = 3 }
`,
			wantErr: ErrDuplicateScenario,
		},
		{
			name:    "missing players",
			src:     `scenario "empty" {}`,
			wantMsg: "failed to decode HCL",
		},
		{
			name:    "syntax error",
			src:     `scenario "broken" {`,
			wantMsg: "failed to parse HCL file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.src), "test.hcl")
			require.Error(t, err)
			assert.Nil(t, cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Scenarios, 2)

	_, err = Load(filepath.Join(dir, "missing.hcl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
