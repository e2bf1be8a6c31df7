// Package holdem holds the state of a single Texas Hold'em deal: the deck,
// every participant's cards, the community cards and the current stage.
//
// A Session configured once is used as a template: each simulated deal works
// on a Clone so the template is never mutated.
package holdem

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/lox/holdem-equity/internal/deck"
	"github.com/lox/holdem-equity/internal/evaluator"
)

const (
	// MinPlayers is the smallest table that can be simulated.
	MinPlayers = 2
	// MaxPlayers is the largest table a single deck can serve.
	MaxPlayers = 10

	holeCards      = 2
	communityLimit = 5
)

var (
	ErrTooFewPlayers  = errors.New("too few players")
	ErrTooManyPlayers = errors.New("too many players")
	ErrHeroCards      = errors.New("hero must hold exactly 0 or 2 cards")
)

// Session is the deck, participants and board of one deal. Participant 0 is
// the hero.
type Session struct {
	deck      *deck.Deck
	stage     Stage
	players   []deck.Hand
	community []deck.Card
}

// Configure creates a session for the given number of participants. When hero
// cards are given they are pinned to the front of the deck and dealt to
// participant 0; otherwise the hero is dealt random cards like everyone else.
func Configure(players int, hero ...deck.Card) (*Session, error) {
	s, err := NewSession(players)
	if err != nil {
		return nil, err
	}
	if len(hero) == 0 {
		return s, nil
	}
	if err := s.PinHero(hero...); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSession creates a session at PreFlop with an ordered deck and empty hands.
func NewSession(players int) (*Session, error) {
	if players < MinPlayers {
		return nil, fmt.Errorf("%d players (minimum %d): %w", players, MinPlayers, ErrTooFewPlayers)
	}
	if players > MaxPlayers {
		return nil, fmt.Errorf("%d players (maximum %d): %w", players, MaxPlayers, ErrTooManyPlayers)
	}
	return &Session{
		deck:      deck.NewDeck(),
		stage:     PreFlop,
		players:   make([]deck.Hand, players),
		community: make([]deck.Card, 0, communityLimit),
	}, nil
}

// PinHero fixes the hero's two hole cards. It fails if the deck has already
// dealt or pinned anything.
func (s *Session) PinHero(cards ...deck.Card) error {
	if len(cards) != holeCards {
		return fmt.Errorf("got %d cards: %w", len(cards), ErrHeroCards)
	}
	if err := s.deck.Pin(cards...); err != nil {
		return fmt.Errorf("pin hero cards: %w", err)
	}
	s.players[0].Add(cards...)
	return nil
}

// Clone returns a deep copy that can be played without touching s.
func (s *Session) Clone() *Session {
	c := &Session{
		deck:      s.deck.Clone(),
		stage:     s.stage,
		players:   make([]deck.Hand, len(s.players)),
		community: make([]deck.Card, len(s.community), communityLimit),
	}
	copy(c.players, s.players)
	copy(c.community, s.community)
	return c
}

// Players returns the number of participants.
func (s *Session) Players() int {
	return len(s.players)
}

// Stage returns the current stage.
func (s *Session) Stage() Stage {
	return s.stage
}

// Hero returns the hero's cards so far.
func (s *Session) Hero() []deck.Card {
	return s.players[0].Cards()
}

// Hand returns participant i's hole cards.
func (s *Session) Hand(i int) []deck.Card {
	return s.players[i].Cards()
}

// Community returns a copy of the community cards.
func (s *Session) Community() []deck.Card {
	return append([]deck.Card(nil), s.community...)
}

// Shuffle randomizes the undealt part of the deck.
func (s *Session) Shuffle(rng *rand.Rand) {
	s.deck.Shuffle(rng)
}

// DealHoleCards tops up every participant to two hole cards.
func (s *Session) DealHoleCards() {
	for i := range s.players {
		for s.players[i].Len() < holeCards {
			s.players[i].Add(s.mustDeal())
		}
	}
}

// Advance moves to the next stage, revealing the community cards it needs.
// Calling it at River is a programming error and panics.
func (s *Session) Advance() {
	switch s.stage {
	case PreFlop:
		s.preflopToFlop()
	case Flop:
		s.flopToTurn()
	case Turn:
		s.turnToRiver()
	default:
		panic(fmt.Sprintf("holdem: cannot advance past %s", s.stage))
	}
}

// RunToRiver advances stage by stage until the board is complete.
func (s *Session) RunToRiver() {
	for s.stage != River {
		s.Advance()
	}
}

func (s *Session) preflopToFlop() {
	s.mustBeAt(PreFlop)
	for range 3 {
		s.addCommunityCard()
	}
	s.stage = Flop
}

func (s *Session) flopToTurn() {
	s.mustBeAt(Flop)
	s.addCommunityCard()
	s.stage = Turn
}

func (s *Session) turnToRiver() {
	s.mustBeAt(Turn)
	s.addCommunityCard()
	s.stage = River
}

func (s *Session) mustBeAt(stage Stage) {
	if s.stage != stage {
		panic(fmt.Sprintf("holdem: transition from %s called at %s", stage, s.stage))
	}
}

func (s *Session) addCommunityCard() {
	if len(s.community) >= communityLimit {
		panic(fmt.Sprintf("holdem: community cards cannot exceed %d", communityLimit))
	}
	s.community = append(s.community, s.mustDeal())
}

func (s *Session) mustDeal() deck.Card {
	c, ok := s.deck.Deal()
	if !ok {
		panic("holdem: deck exhausted")
	}
	return c
}

// Grades returns every participant's best hand from hole plus community cards.
// It needs at least the flop on the board.
func (s *Session) Grades() []evaluator.Grade {
	grades := make([]evaluator.Grade, len(s.players))
	pool := make([]deck.Card, 0, deck.MaxHandSize)
	for i, h := range s.players {
		pool = append(pool[:0], h.Cards()...)
		pool = append(pool, s.community...)
		grades[i] = evaluator.Evaluate(pool)
	}
	return grades
}

// Outcome compares the hero's grade with every opponent's: any better
// opponent is a loss, otherwise any equal opponent is a draw.
func Outcome(grades []evaluator.Grade) Showdown {
	hero := grades[0]
	draw := false
	for _, opp := range grades[1:] {
		switch hero.Compare(opp) {
		case -1:
			return Lose
		case 0:
			draw = true
		}
	}
	if draw {
		return Draw
	}
	return Win
}

// PlayOnce plays this session to showdown: shuffle the undealt cards, deal
// hole cards, run the board out and compare. It mutates s, so call it on a
// Clone of the configured session. The hero's grade is returned alongside the
// outcome.
func (s *Session) PlayOnce(rng *rand.Rand) (Showdown, evaluator.Grade) {
	s.Shuffle(rng)
	s.DealHoleCards()
	s.RunToRiver()
	grades := s.Grades()
	return Outcome(grades), grades[0]
}
