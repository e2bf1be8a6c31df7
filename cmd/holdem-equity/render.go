package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/lox/holdem-equity/internal/deck"
	"github.com/lox/holdem-equity/internal/equity"
	"github.com/lox/holdem-equity/internal/evaluator"
	"github.com/lox/holdem-equity/internal/fileutil"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))
)

type gradeReport struct {
	Category string   `json:"category" yaml:"category"`
	Cards    []string `json:"cards" yaml:"cards"`
}

type categoryShare struct {
	Category string  `json:"category" yaml:"category"`
	Rate     float64 `json:"rate" yaml:"rate"`
}

// run pairs a result with what was simulated.
type run struct {
	Name   string
	Hero   []deck.Card
	Result equity.Result
}

type runReport struct {
	Name       string          `json:"name,omitempty" yaml:"name,omitempty"`
	RunID      string          `json:"run_id" yaml:"run_id"`
	Players    int             `json:"players" yaml:"players"`
	Hero       string          `json:"hero,omitempty" yaml:"hero,omitempty"`
	Trials     int             `json:"trials" yaml:"trials"`
	Requested  int             `json:"requested" yaml:"requested"`
	Wins       int             `json:"wins" yaml:"wins"`
	Losses     int             `json:"losses" yaml:"losses"`
	Draws      int             `json:"draws" yaml:"draws"`
	WinRate    float64         `json:"win_rate" yaml:"win_rate"`
	DrawRate   float64         `json:"draw_rate" yaml:"draw_rate"`
	LossRate   float64         `json:"loss_rate" yaml:"loss_rate"`
	Equity     float64         `json:"equity" yaml:"equity"`
	Margin95   float64         `json:"equity_margin_95" yaml:"equity_margin_95"`
	Categories []categoryShare `json:"categories" yaml:"categories"`
	Seed       int64           `json:"seed" yaml:"seed"`
	Workers    int             `json:"workers" yaml:"workers"`
	Truncated  bool            `json:"truncated" yaml:"truncated"`
	ElapsedMS  int64           `json:"elapsed_ms" yaml:"elapsed_ms"`
}

func newRunReport(r run) runReport {
	res := r.Result
	report := runReport{
		Name:      r.Name,
		RunID:     res.RunID,
		Players:   res.Players,
		Trials:    res.Trials(),
		Requested: res.Requested,
		Wins:      res.Wins,
		Losses:    res.Losses,
		Draws:     res.Draws,
		WinRate:   res.WinRate(),
		DrawRate:  res.DrawRate(),
		LossRate:  res.LossRate(),
		Equity:    res.Equity(),
		Margin95:  1.96 * res.StdError(),
		Seed:      res.Seed,
		Workers:   res.Workers,
		Truncated: res.Truncated,
		ElapsedMS: res.Elapsed.Milliseconds(),
	}
	if len(r.Hero) > 0 {
		report.Hero = notation(r.Hero)
	}
	for _, c := range evaluator.Categories() {
		if res.HeroCategories[c] > 0 {
			report.Categories = append(report.Categories, categoryShare{
				Category: c.String(),
				Rate:     res.CategoryRate(c),
			})
		}
	}
	return report
}

func notation(cards []deck.Card) string {
	s := make([]byte, 0, len(cards)*2)
	for _, c := range cards {
		s = append(s, c.Notation()...)
	}
	return string(s)
}

// emit sends a report to stdout, or atomically to path when one is given.
func emit(path string, write func(io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}
	return fileutil.WriteAtomic(path, 0o644, write)
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// renderRuns writes results in the requested format. A single unnamed run is
// encoded as an object, batch results as a list.
func renderRuns(w io.Writer, format string, runs []run) error {
	switch format {
	case "json", "yaml":
		reports := make([]runReport, len(runs))
		for i, r := range runs {
			reports[i] = newRunReport(r)
		}
		if len(reports) == 1 && reports[0].Name == "" {
			return encode(w, format, reports[0])
		}
		return encode(w, format, reports)
	default:
		return renderTable(w, runs)
	}
}

func renderTable(w io.Writer, runs []run) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	named := len(runs) > 1 || (len(runs) == 1 && runs[0].Name != "")

	if named {
		fmt.Fprintf(tw, "%s\t", headerStyle.Render("scenario"))
	}
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("hero"),
		headerStyle.Render("players"),
		headerStyle.Render("trials"),
		headerStyle.Render("win"),
		headerStyle.Render("draw"),
		headerStyle.Render("lose"),
		headerStyle.Render("equity"),
		headerStyle.Render("±95%"))

	for _, r := range runs {
		res := r.Result
		hero := "random"
		if len(r.Hero) > 0 {
			hero = deck.FormatCards(r.Hero)
		}
		if named {
			fmt.Fprintf(tw, "%s\t", r.Name)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
			handStyle.Render(hero),
			res.Players,
			res.Trials(),
			winStyle.Render(percent(res.WinRate())),
			tieStyle.Render(percent(res.DrawRate())),
			loseStyle.Render(percent(res.LossRate())),
			percent(res.Equity()),
			percent(1.96*res.StdError()))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(runs) == 1 {
		fmt.Fprintln(w)
		if err := renderCategories(w, runs[0].Result); err != nil {
			return err
		}
	}

	fmt.Fprintln(w)
	for _, r := range runs {
		res := r.Result
		fmt.Fprintf(w, "%d trials in %v (seed %d, %d workers)",
			res.Trials(), res.Elapsed.Truncate(time.Millisecond), res.Seed, res.Workers)
		if res.Truncated {
			fmt.Fprint(w, warnStyle.Render(fmt.Sprintf(" stopped early after %d of %d", res.Trials(), res.Requested)))
		}
		fmt.Fprintln(w)
	}
	return nil
}

// renderCategories shows how often the hero finished with each category.
func renderCategories(w io.Writer, res equity.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", categoryStyle.Render("hero made"), headerStyle.Render("share"))
	for _, c := range evaluator.Categories() {
		rate := "."
		if res.HeroCategories[c] > 0 {
			rate = percent(res.CategoryRate(c))
		}
		fmt.Fprintf(tw, "%s\t%s\n", categoryStyle.Render(c.String()), rate)
	}
	return tw.Flush()
}

func percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
