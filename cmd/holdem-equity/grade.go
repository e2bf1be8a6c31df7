package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lox/holdem-equity/internal/deck"
	"github.com/lox/holdem-equity/internal/evaluator"
)

var errPoolSize = errors.New("need between 5 and 7 cards")

// GradeCmd grades a single pool of cards.
type GradeCmd struct {
	Cards  string `arg:"" help:"Cards to grade, e.g. '5s5d5h4c4hTh9c'"`
	Format string `short:"f" help:"Output format" enum:"table,json,yaml" default:"table"`
}

func (c *GradeCmd) Run(_ *Globals) error {
	grade, err := gradeCards(c.Cards)
	if err != nil {
		return err
	}
	return renderGrade(os.Stdout, c.Format, grade)
}

func gradeCards(s string) (evaluator.Grade, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return evaluator.Grade{}, err
	}
	if len(cards) < 5 || len(cards) > deck.MaxHandSize {
		return evaluator.Grade{}, fmt.Errorf("got %d cards: %w", len(cards), errPoolSize)
	}

	seen := make(map[deck.Card]bool, len(cards))
	for _, card := range cards {
		if seen[card] {
			return evaluator.Grade{}, fmt.Errorf("card %s: %w", card, deck.ErrDuplicateCard)
		}
		seen[card] = true
	}
	return evaluator.Evaluate(cards), nil
}

func renderGrade(w io.Writer, format string, g evaluator.Grade) error {
	cards := g.Cards()
	switch format {
	case "json", "yaml":
		out := gradeReport{Category: g.Category().String()}
		for _, card := range cards {
			out.Cards = append(out.Cards, card.Notation())
		}
		return encode(w, format, out)
	default:
		_, err := fmt.Fprintf(w, "%s  %s\n",
			categoryStyle.Render(g.Category().String()),
			handStyle.Render(deck.FormatCards(cards[:])))
		return err
	}
}
