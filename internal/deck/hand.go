package deck

import "fmt"

// MaxHandSize is two hole cards plus five community cards.
const MaxHandSize = 7

// Hand is an append-only set of cards owned by one participant.
// The zero value is an empty hand.
type Hand struct {
	cards [MaxHandSize]Card
	n     int
}

// NewHand creates a hand holding the given cards
func NewHand(cards ...Card) Hand {
	var h Hand
	h.Add(cards...)
	return h
}

// Add appends cards to the hand. Exceeding MaxHandSize is a programming error
// and panics.
func (h *Hand) Add(cards ...Card) {
	if h.n+len(cards) > MaxHandSize {
		panic(fmt.Sprintf("hand overflow: %d cards held, adding %d", h.n, len(cards)))
	}
	for _, c := range cards {
		h.cards[h.n] = c
		h.n++
	}
}

// Len returns the number of cards held
func (h Hand) Len() int {
	return h.n
}

// Cards returns a copy of the held cards in the order they were added
func (h Hand) Cards() []Card {
	out := make([]Card, h.n)
	copy(out, h.cards[:h.n])
	return out
}

// String returns the held cards, e.g. "[K♠ K♦]"
func (h Hand) String() string {
	return "[" + FormatCards(h.cards[:h.n]) + "]"
}
