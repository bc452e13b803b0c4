package deck

import (
	"errors"

	"blackjacktable/internal/rng"
)

// ErrShoeEmpty is an error when TakeCard() is attempted and there are no more cards.
// A correct caller reshuffles between rounds and never sees this.
var ErrShoeEmpty = errors.New("no cards left in the shoe")

// ErrInvalidDeckCount is an error when a shoe is requested with fewer than one deck
var ErrInvalidDeckCount = errors.New("shoe requires at least one deck")

// cardsPerDeck is the size of a single deck, used for the true-count divisor
const cardsPerDeck = 52

// Shoe is a draw pile built from one or more decks.
// Cards come off the end of Cards, and every draw updates the hi-lo
// counting statistics before the card is handed back.
type Shoe struct {
	Cards []*Card `json:"cards"`

	deckCount    int
	runningCount int
	trueCount    float64
	rng          rng.Generator
}

// NewShoe returns a new shoe built from deckCount decks.
// Important! this shoe is unshuffled. You must call the Shuffle() method to shuffle the cards
func NewShoe(deckCount int, gen rng.Generator) (*Shoe, error) {
	if deckCount < 1 {
		return nil, ErrInvalidDeckCount
	}

	s := &Shoe{
		deckCount: deckCount,
		rng:       gen,
	}

	if err := s.build(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Shoe) build() error {
	cards := make([]*Card, 0, s.deckCount*cardsPerDeck)
	for i := 0; i < s.deckCount; i++ {
		d, err := NewDeck()
		if err != nil {
			return err
		}

		cards = append(cards, d.Cards...)
	}

	s.Cards = cards
	return nil
}

// Shuffle rebuilds the shoe from fresh decks and applies a uniform
// Fisher-Yates permutation. The running and true counts reset to zero.
func (s *Shoe) Shuffle() {
	// build succeeded at construction, so it cannot fail here
	if err := s.build(); err != nil {
		panic(err)
	}

	for j := len(s.Cards) - 1; j > 0; j-- {
		i := s.rng.Intn(j + 1)

		s.Cards[i], s.Cards[j] = s.Cards[j], s.Cards[i]
	}

	s.runningCount = 0
	s.trueCount = 0
}

// TakeCard removes and returns the card at the draw end of the shoe.
// The counting statistics are updated before the card is returned.
// If there are no more cards, an ErrShoeEmpty is returned along with a nil card.
func (s *Shoe) TakeCard() (*Card, error) {
	n := len(s.Cards)
	if n == 0 {
		return nil, ErrShoeEmpty
	}

	card := s.Cards[n-1]
	s.Cards = s.Cards[:n-1]
	s.observe(card)

	return card, nil
}

// observe folds a drawn card into the running and true counts.
// The true-count divisor is the number of full decks remaining, clamped
// to a minimum of one so the value stays finite near the end of the shoe.
func (s *Shoe) observe(card *Card) {
	s.runningCount += CountValue(card)

	decksRemaining := len(s.Cards) / cardsPerDeck
	if decksRemaining < 1 {
		decksRemaining = 1
	}

	s.trueCount = float64(s.runningCount) / float64(decksRemaining)
}

// Remaining returns the number of cards left in the shoe
func (s *Shoe) Remaining() int {
	return len(s.Cards)
}

// CanDraw returns true if there are {want} cards left in the shoe
func (s *Shoe) CanDraw(want int) bool {
	return len(s.Cards) >= want
}

// RunningCount returns the hi-lo running count for all cards drawn since the last shuffle
func (s *Shoe) RunningCount() int {
	return s.runningCount
}

// TrueCount returns the running count divided by the number of full decks remaining
func (s *Shoe) TrueCount() float64 {
	return s.trueCount
}
