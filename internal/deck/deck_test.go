package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-equity/internal/randutil"
)

func TestNewDeck(t *testing.T) {
	d := NewDeck()
	assert.Equal(t, DeckSize, d.CardsRemaining())
	assert.False(t, d.IsEmpty())

	first, ok := d.Deal()
	require.True(t, ok)
	assert.Equal(t, NewCard(Spades, Two), first)
}

func TestDeckDealAllDistinct(t *testing.T) {
	d := NewDeck()
	d.Shuffle(randutil.New(1))

	seen := make(map[int]bool, DeckSize)
	for i := 0; i < DeckSize; i++ {
		card, ok := d.Deal()
		require.True(t, ok, "deal %d failed", i+1)
		require.False(t, seen[card.Index()], "card %s dealt twice", card)
		seen[card.Index()] = true
	}

	assert.True(t, d.IsEmpty())
	_, ok := d.Deal()
	assert.False(t, ok, "deal should fail on an exhausted deck")
}

func TestDeckDealN(t *testing.T) {
	d := NewDeck()
	cards := d.DealN(5)
	assert.Len(t, cards, 5)
	assert.Equal(t, 47, d.CardsRemaining())

	rest := d.DealN(100)
	assert.Len(t, rest, 47)
	assert.True(t, d.IsEmpty())
}

func TestShuffleKeepsDealtCards(t *testing.T) {
	d := NewDeck()
	dealt := d.DealN(10)

	for seed := int64(0); seed < 20; seed++ {
		d.Shuffle(randutil.New(seed))
		assert.Equal(t, dealt, d.Dealt())
		assert.Equal(t, 10, d.Cursor())
	}

	// The undealt suffix is still a permutation of the remaining 42 cards.
	seen := make(map[Card]bool)
	for _, c := range dealt {
		seen[c] = true
	}
	for !d.IsEmpty() {
		c, _ := d.Deal()
		require.False(t, seen[c])
		seen[c] = true
	}
	assert.Len(t, seen, DeckSize)
}

func TestShuffleIsSeeded(t *testing.T) {
	a, b := NewDeck(), NewDeck()
	a.Shuffle(randutil.New(99))
	b.Shuffle(randutil.New(99))
	assert.Equal(t, a.DealN(DeckSize), b.DealN(DeckSize))
}

func TestPin(t *testing.T) {
	hero := MustParseCards("KsKd")

	d := NewDeck()
	require.NoError(t, d.Pin(hero...))
	assert.Equal(t, 2, d.Cursor())
	assert.Equal(t, hero, d.Dealt())

	d.Shuffle(randutil.New(3))
	assert.Equal(t, hero, d.Dealt())
	for !d.IsEmpty() {
		c, _ := d.Deal()
		assert.NotContains(t, hero, c)
	}
}

func TestPinErrors(t *testing.T) {
	t.Run("front occupied", func(t *testing.T) {
		d := NewDeck()
		require.NoError(t, d.Pin(MustParseCards("AhAc")...))
		err := d.Pin(MustParseCards("2h2c")...)
		assert.ErrorIs(t, err, ErrFrontOccupied)
	})

	t.Run("after dealing", func(t *testing.T) {
		d := NewDeck()
		d.Deal()
		assert.ErrorIs(t, d.Pin(MustParseCards("2h")...), ErrFrontOccupied)
	})

	t.Run("duplicate", func(t *testing.T) {
		d := NewDeck()
		assert.ErrorIs(t, d.Pin(MustParseCards("QhQh")...), ErrDuplicateCard)
		assert.Zero(t, d.Cursor())
	})

	t.Run("invalid", func(t *testing.T) {
		d := NewDeck()
		assert.ErrorIs(t, d.Pin(Card{Suit: Hearts, Rank: LowAce}), ErrInvalidCard)
	})
}

func TestCloneIsIndependent(t *testing.T) {
	d := NewDeck()
	require.NoError(t, d.Pin(MustParseCards("As")...))

	c := d.Clone()
	c.Shuffle(randutil.New(5))
	c.DealN(4)

	assert.Equal(t, 1, d.Cursor())
	assert.Equal(t, 5, c.Cursor())
	assert.Equal(t, NewCard(Spades, Three), d.DealN(2)[0])
}
