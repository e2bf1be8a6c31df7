package evaluator

import (
	"strings"

	"github.com/lox/holdem-equity/internal/deck"
)

// Category enumerates the poker hand categories ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// NumCategories is the number of hand categories.
const NumCategories = int(StraightFlush) + 1

// Categories returns every category, strongest first.
func Categories() []Category {
	out := make([]Category, 0, NumCategories)
	for c := StraightFlush; ; c-- {
		out = append(out, c)
		if c == HighCard {
			return out
		}
	}
}

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Grade is the best five-card hand found in a pool. Cards are ordered from
// most to least significant, so two grades of the same category compare slot
// by slot.
type Grade struct {
	category Category
	cards    [5]deck.Card
	values   [5]deck.Rank // comparison ranks; an Ace in a wheel is deck.LowAce
}

func newGrade(category Category, cards [5]deck.Card) Grade {
	g := Grade{category: category, cards: cards}
	for i, c := range cards {
		g.values[i] = c.Rank
	}
	return g
}

// Category returns the hand category.
func (g Grade) Category() Category {
	return g.category
}

// Cards returns the five selected cards, most significant first.
func (g Grade) Cards() [5]deck.Card {
	return g.cards
}

// Compare returns -1 if g is weaker than other, 0 if equal and 1 if stronger.
func (g Grade) Compare(other Grade) int {
	if g.category != other.category {
		if g.category < other.category {
			return -1
		}
		return 1
	}
	for i := range g.values {
		if g.values[i] != other.values[i] {
			if g.values[i] < other.values[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Beats reports whether g is strictly stronger than other.
func (g Grade) Beats(other Grade) bool {
	return g.Compare(other) > 0
}

// Ties reports whether g and other split the pot.
func (g Grade) Ties(other Grade) bool {
	return g.Compare(other) == 0
}

// String returns the category and its cards, e.g. "Full House: 5♠ 5♦ 5♥ 4♣ 4♥".
func (g Grade) String() string {
	var b strings.Builder
	b.WriteString(g.category.String())
	b.WriteString(": ")
	b.WriteString(deck.FormatCards(g.cards[:]))
	return b.String()
}

// Best returns the indices of the strongest grades. More than one index means
// a tie.
func Best(grades []Grade) []int {
	if len(grades) == 0 {
		return nil
	}
	best := []int{0}
	for i := 1; i < len(grades); i++ {
		switch cmp := grades[i].Compare(grades[best[0]]); {
		case cmp > 0:
			best = append(best[:0], i)
		case cmp == 0:
			best = append(best, i)
		}
	}
	return best
}
