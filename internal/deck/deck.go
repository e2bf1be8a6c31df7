package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

var (
	// ErrFrontOccupied is returned when cards are pinned to a deck that has
	// already dealt or pinned cards.
	ErrFrontOccupied = errors.New("deck front is already occupied")

	// ErrDuplicateCard is returned when the same card is pinned twice.
	ErrDuplicateCard = errors.New("duplicate card")

	// ErrInvalidCard is returned for cards outside the standard 52.
	ErrInvalidCard = errors.New("invalid card")
)

// Deck is a permutation of the 52 cards plus a dealing cursor.
// Cards below the cursor are dealt (or pinned) and never move again.
type Deck struct {
	cards  [DeckSize]Card
	cursor int
}

// NewDeck creates a new standard 52-card deck in suit-major order
func NewDeck() *Deck {
	d := &Deck{}
	i := 0
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(suit, rank)
			i++
		}
	}
	return d
}

// Clone returns an independent copy of the deck
func (d *Deck) Clone() *Deck {
	c := *d
	return &c
}

// Shuffle randomizes the undealt cards with Fisher-Yates. Dealt and pinned
// cards keep their positions.
func (d *Deck) Shuffle(rng *rand.Rand) {
	n := DeckSize - d.cursor
	for i := n - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[d.cursor+i], d.cards[d.cursor+j] = d.cards[d.cursor+j], d.cards[d.cursor+i]
	}
}

// Deal returns the card at the cursor and advances past it
func (d *Deck) Deal() (Card, bool) {
	if d.cursor >= DeckSize {
		return Card{}, false
	}
	card := d.cards[d.cursor]
	d.cursor++
	return card, true
}

// DealN deals n cards from the deck, fewer if the deck runs out
func (d *Deck) DealN(n int) []Card {
	if n > d.CardsRemaining() {
		n = d.CardsRemaining()
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.cursor:d.cursor+n])
	d.cursor += n
	return cards
}

// Pin moves the given cards to the front of the deck, in order, and marks them
// dealt. It only works on a deck that has not dealt anything yet.
func (d *Deck) Pin(cards ...Card) error {
	if d.cursor != 0 {
		return fmt.Errorf("pin %s: %w", FormatCards(cards), ErrFrontOccupied)
	}
	seen := make(map[Card]bool, len(cards))
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("pin %v: %w", c, ErrInvalidCard)
		}
		if seen[c] {
			return fmt.Errorf("pin %s: %w", c, ErrDuplicateCard)
		}
		seen[c] = true
	}

	for i, c := range cards {
		for j := i; j < DeckSize; j++ {
			if d.cards[j] == c {
				d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
				break
			}
		}
	}
	d.cursor = len(cards)
	return nil
}

// Dealt returns the cards already dealt or pinned
func (d *Deck) Dealt() []Card {
	out := make([]Card, d.cursor)
	copy(out, d.cards[:d.cursor])
	return out
}

// Cursor returns the index of the next card to deal
func (d *Deck) Cursor() int {
	return d.cursor
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return DeckSize - d.cursor
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return d.cursor >= DeckSize
}
