package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lox/holdem-equity/internal/deck"
	"github.com/lox/holdem-equity/internal/equity"
	"github.com/lox/holdem-equity/internal/evaluator"
)

func sampleRun(name string) run {
	res := equity.Result{
		Tally:     equity.Tally{Wins: 820, Losses: 174, Draws: 6},
		RunID:     "9b2d8f1e-7c55-4d4c-9a57-0d3f3f6c8e21",
		Players:   2,
		Requested: 1000,
		Seed:      42,
		Workers:   4,
		Elapsed:   1500 * time.Millisecond,
	}
	res.HeroCategories[evaluator.OnePair] = 600
	res.HeroCategories[evaluator.TwoPair] = 250
	res.HeroCategories[evaluator.ThreeOfAKind] = 150
	return run{Name: name, Hero: deck.MustParseCards("KsKd"), Result: res}
}

func TestGradeCards(t *testing.T) {
	g, err := gradeCards("5s5d5h4c4hTh9c")
	require.NoError(t, err)
	assert.Equal(t, evaluator.FullHouse, g.Category())

	tests := []struct {
		name    string
		cards   string
		wantErr error
	}{
		{name: "four cards", cards: "AsKsQsJs", wantErr: errPoolSize},
		{name: "eight cards", cards: "AsKsQsJsTs9s8s7s", wantErr: errPoolSize},
		{name: "duplicate", cards: "AsAsQsJsTs", wantErr: deck.ErrDuplicateCard},
		{name: "bad notation", cards: "AsKsQsJsXs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gradeCards(tt.cards)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRenderGrade(t *testing.T) {
	g, err := gradeCards("KsKd7hQh2d9c3s")
	require.NoError(t, err)

	var table bytes.Buffer
	require.NoError(t, renderGrade(&table, "table", g))
	assert.Equal(t, "One Pair  K♠ K♦ Q♥ 9♣ 7♥\n", table.String())

	var js bytes.Buffer
	require.NoError(t, renderGrade(&js, "json", g))
	var decoded gradeReport
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, gradeReport{Category: "One Pair", Cards: []string{"Ks", "Kd", "Qh", "9c", "7h"}}, decoded)
}

func TestRenderRunsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderRuns(&buf, "json", []run{sampleRun("")}))

	var report runReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, "KsKd", report.Hero)
	assert.Equal(t, 1000, report.Trials)
	assert.Equal(t, 820, report.Wins)
	assert.InDelta(t, 0.82, report.WinRate, 1e-9)
	assert.InDelta(t, 0.823, report.Equity, 1e-9)
	assert.Equal(t, int64(1500), report.ElapsedMS)
	assert.Equal(t, []categoryShare{
		{Category: "Three of a Kind", Rate: 0.15},
		{Category: "Two Pair", Rate: 0.25},
		{Category: "One Pair", Rate: 0.6},
	}, report.Categories)
	assert.NotContains(t, buf.String(), `"name"`)
}

func TestRenderBatchIsList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderRuns(&buf, "yaml", []run{sampleRun("kings")}))

	var reports []runReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "kings", reports[0].Name)
	assert.Equal(t, int64(42), reports[0].Seed)
	assert.Equal(t, 4, reports[0].Workers)
}

func TestRenderTable(t *testing.T) {
	r := sampleRun("")
	r.Result.Truncated = true
	r.Result.Requested = 5000

	var buf bytes.Buffer
	require.NoError(t, renderRuns(&buf, "table", []run{r}))

	out := buf.String()
	assert.Contains(t, out, "K♠ K♦")
	assert.Contains(t, out, "82.0%")
	assert.Contains(t, out, "82.3%")
	assert.Contains(t, out, "One Pair")
	assert.Contains(t, out, "Straight Flush")
	assert.Contains(t, out, "1000 trials in 1.5s (seed 42, 4 workers)")
	assert.Contains(t, out, "stopped early after 1000 of 5000")
	assert.NotContains(t, out, "scenario")
}

func TestRenderBatchTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderRuns(&buf, "table", []run{sampleRun("kings"), sampleRun("kings-again")}))

	out := buf.String()
	assert.Contains(t, out, "scenario")
	assert.Contains(t, out, "kings-again")
	assert.NotContains(t, out, "hero made")
}
