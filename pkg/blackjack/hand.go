package blackjack

import (
	"fmt"
	"strings"

	"blackjacktable/pkg/deck"
)

// TwentyOne is the target hand value
const TwentyOne = 21

// Hand is an ordered collection of cards held by the player or the dealer.
// Cards are only ever appended; a hand with no cards values zero.
type Hand struct {
	cards []*deck.Card
}

// NewHand returns an empty hand
func NewHand() *Hand {
	return &Hand{}
}

// NewHandWithCard returns a hand holding the given card
func NewHandWithCard(card *deck.Card) *Hand {
	return &Hand{cards: []*deck.Card{card}}
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *deck.Card) {
	h.cards = append(h.cards, card)
}

// Cards returns the cards in insertion order
func (h *Hand) Cards() []*deck.Card {
	return h.cards
}

// Count returns the number of cards in the hand
func (h *Hand) Count() int {
	return len(h.cards)
}

// Value returns the best blackjack total for the hand.
// As many aces as possible count high without going over 21. If even the
// all-low combination busts, that total is returned as-is, never clamped.
func (h *Hand) Value() int {
	aces := 0
	total := 0
	for _, card := range h.cards {
		if card.Rank == deck.Ace {
			aces++
			continue
		}

		total += card.BlackjackValue()
	}

	if aces == 0 {
		return total
	}

	value := total
	for low := 0; low <= aces; low++ {
		value = total + (aces-low)*deck.AceHighValue + low*deck.AceLowValue
		if value <= TwentyOne {
			return value
		}
	}

	return value
}

// IsBlackjack returns true for a natural: exactly two cards, exactly one
// of them an ace, valuing twenty-one. A 21 reached with three or more
// cards is not a natural.
func (h *Hand) IsBlackjack() bool {
	if len(h.cards) != 2 {
		return false
	}

	aces := 0
	for _, card := range h.cards {
		if card.Rank == deck.Ace {
			aces++
		}
	}

	return aces == 1 && h.Value() == TwentyOne
}

func (h *Hand) String() string {
	if len(h.cards) == 0 {
		return "(0)"
	}

	tokens := make([]string, len(h.cards))
	for i, card := range h.cards {
		tokens[i] = card.String()
	}

	return fmt.Sprintf("%s (%d)", strings.Join(tokens, " "), h.Value())
}
