package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	a := assert.New(t)
	deck, err := NewDeck()
	a.NoError(err)
	a.Equal(52, len(deck.Cards))

	a.Equal(Card{Rank: 2, Suit: Clubs}, *deck.Cards[0])
	a.Equal(Card{Rank: Ace, Suit: Spades}, *deck.Cards[51])

	// one of each rank in each suit
	seen := make(map[Card]int)
	for _, card := range deck.Cards {
		seen[*card]++
	}

	a.Equal(52, len(seen))
	for card, count := range seen {
		a.Equal(1, count, "expected exactly one %s", card.String())
	}
}

func TestInvalidRankError(t *testing.T) {
	err := InvalidRankError{Rank: 15}
	assert.EqualError(t, err, "invalid rank: 15")
}
