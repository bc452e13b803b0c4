package deck

import "fmt"

// InvalidRankError is an error for a rank outside the 2..Ace table.
// Deck construction validates every rank it deals out rather than
// silently omitting cards.
type InvalidRankError struct {
	Rank int
}

func (e InvalidRankError) Error() string {
	return fmt.Sprintf("invalid rank: %d", e.Rank)
}

// ranks is the complete rank table for a standard deck
var ranks = []int{2, 3, 4, 5, 6, 7, 8, 9, 10, Jack, Queen, King, Ace}

// suits is the complete suit table for a standard deck
var suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Deck represents a single complete set of 52 playing cards
type Deck struct {
	Cards []*Card `json:"cards"`
}

// NewDeck returns a new unshuffled deck of 52 cards, one of each rank in each suit
func NewDeck() (*Deck, error) {
	cards := make([]*Card, 0, len(ranks)*len(suits))
	for _, suit := range suits {
		for _, rank := range ranks {
			if rank < 2 || rank > Ace {
				return nil, InvalidRankError{Rank: rank}
			}

			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return &Deck{Cards: cards}, nil
}
