package evaluator

import (
	"fmt"
	"slices"

	"github.com/lox/holdem-equity/internal/deck"
)

const (
	minPool = 5
	maxPool = deck.MaxHandSize
)

// detector looks for one hand category in a pool.
type detector func(p *pool) (Grade, bool)

// detectors are tried strongest first; the first match is the best hand.
var detectors = []detector{
	straightFlush,
	fourOfAKind,
	fullHouse,
	flush,
	straight,
	threeOfAKind,
	twoPair,
	onePair,
}

// Evaluate returns the best five-card hand that can be made from 5 to 7 cards.
// The input slice is not modified. Any other pool size is a programming error
// and panics.
func Evaluate(cards []deck.Card) Grade {
	if len(cards) < minPool || len(cards) > maxPool {
		panic(fmt.Sprintf("evaluator: cannot grade %d cards", len(cards)))
	}
	p := newPool(cards)
	for _, detect := range detectors {
		if g, ok := detect(p); ok {
			return g
		}
	}
	return highCard(p)
}

// pool is a sorted view of the cards being graded, highest rank first.
type pool struct {
	cards      []deck.Card
	rankCounts [deck.Ace + 1]int
	suitCounts [deck.NumSuits]int
}

func newPool(cards []deck.Card) *pool {
	p := &pool{cards: slices.Clone(cards)}
	slices.SortStableFunc(p.cards, func(a, b deck.Card) int {
		return int(b.Rank) - int(a.Rank)
	})
	for _, c := range p.cards {
		p.rankCounts[c.Rank]++
		p.suitCounts[c.Suit]++
	}
	return p
}

// ranksWithCount returns ranks held exactly n times, highest first.
func (p *pool) ranksWithCount(n int) []deck.Rank {
	var out []deck.Rank
	for r := deck.Ace; r >= deck.Two; r-- {
		if p.rankCounts[r] == n {
			out = append(out, r)
		}
	}
	return out
}

// ofRank returns up to n cards of rank r.
func (p *pool) ofRank(r deck.Rank, n int) []deck.Card {
	out := make([]deck.Card, 0, n)
	for _, c := range p.cards {
		if len(out) == n {
			break
		}
		if c.Rank == r {
			out = append(out, c)
		}
	}
	return out
}

// kickers returns the n highest cards whose rank is not excluded.
func (p *pool) kickers(n int, exclude ...deck.Rank) []deck.Card {
	out := make([]deck.Card, 0, n)
	for _, c := range p.cards {
		if len(out) == n {
			break
		}
		if !slices.Contains(exclude, c.Rank) {
			out = append(out, c)
		}
	}
	return out
}

// flushSuit returns the suit held at least five times, if any.
func (p *pool) flushSuit() (deck.Suit, bool) {
	for s, n := range p.suitCounts {
		if n >= 5 {
			return deck.Suit(s), true
		}
	}
	return 0, false
}

func join(parts ...[]deck.Card) [5]deck.Card {
	var out [5]deck.Card
	i := 0
	for _, part := range parts {
		i += copy(out[i:], part)
	}
	if i != 5 {
		panic(fmt.Sprintf("evaluator: selected %d cards, want 5", i))
	}
	return out
}

func straightFlush(p *pool) (Grade, bool) {
	suit, ok := p.flushSuit()
	if !ok {
		return Grade{}, false
	}
	suited := make([]deck.Card, 0, len(p.cards))
	for _, c := range p.cards {
		if c.Suit == suit {
			suited = append(suited, c)
		}
	}
	g, ok := straight(newPool(suited))
	if !ok {
		return Grade{}, false
	}
	g.category = StraightFlush
	return g, true
}

func fourOfAKind(p *pool) (Grade, bool) {
	quads := p.ranksWithCount(4)
	if len(quads) == 0 {
		return Grade{}, false
	}
	return newGrade(FourOfAKind, join(p.ofRank(quads[0], 4), p.kickers(1, quads[0]))), true
}

func fullHouse(p *pool) (Grade, bool) {
	trips := p.ranksWithCount(3)
	pairs := p.ranksWithCount(2)
	if len(trips) == 0 || len(trips)+len(pairs) < 2 {
		return Grade{}, false
	}
	three := p.ofRank(trips[0], 3)
	if len(trips) > 1 {
		return newGrade(FullHouse, join(three, p.ofRank(trips[1], 2))), true
	}
	return newGrade(FullHouse, join(three, p.ofRank(pairs[0], 2))), true
}

func flush(p *pool) (Grade, bool) {
	suit, ok := p.flushSuit()
	if !ok {
		return Grade{}, false
	}
	top := make([]deck.Card, 0, 5)
	for _, c := range p.cards {
		if c.Suit == suit && len(top) < 5 {
			top = append(top, c)
		}
	}
	return newGrade(Flush, join(top)), true
}

// straight scans ranks from Ace down, collapsing duplicates, and returns the
// highest run of five. A wheel (5-4-3-2-A) is only used when nothing higher
// exists, and its Ace compares as deck.LowAce.
func straight(p *pool) (Grade, bool) {
	run := 0
	for r := deck.Ace; r >= deck.Two; r-- {
		if p.rankCounts[r] == 0 {
			run = 0
			continue
		}
		run++
		if run == 5 {
			return newGrade(Straight, p.sequence(r+4, r+3, r+2, r+1, r)), true
		}
	}

	if run == 4 && p.rankCounts[deck.Five] > 0 && p.rankCounts[deck.Ace] > 0 {
		g := newGrade(Straight, p.sequence(deck.Five, deck.Four, deck.Three, deck.Two, deck.Ace))
		g.values[4] = deck.LowAce
		return g, true
	}
	return Grade{}, false
}

// sequence picks one card of each rank, in the given order.
func (p *pool) sequence(ranks ...deck.Rank) [5]deck.Card {
	parts := make([][]deck.Card, 0, len(ranks))
	for _, r := range ranks {
		parts = append(parts, p.ofRank(r, 1))
	}
	return join(parts...)
}

func threeOfAKind(p *pool) (Grade, bool) {
	trips := p.ranksWithCount(3)
	if len(trips) == 0 {
		return Grade{}, false
	}
	return newGrade(ThreeOfAKind, join(p.ofRank(trips[0], 3), p.kickers(2, trips[0]))), true
}

// twoPair keeps the two highest pairs; a third pair only competes as a kicker.
func twoPair(p *pool) (Grade, bool) {
	pairs := p.ranksWithCount(2)
	if len(pairs) < 2 {
		return Grade{}, false
	}
	hi, lo := pairs[0], pairs[1]
	return newGrade(TwoPair, join(p.ofRank(hi, 2), p.ofRank(lo, 2), p.kickers(1, hi, lo))), true
}

func onePair(p *pool) (Grade, bool) {
	pairs := p.ranksWithCount(2)
	if len(pairs) == 0 {
		return Grade{}, false
	}
	return newGrade(OnePair, join(p.ofRank(pairs[0], 2), p.kickers(3, pairs[0]))), true
}

func highCard(p *pool) Grade {
	return newGrade(HighCard, join(p.cards[:5]))
}
