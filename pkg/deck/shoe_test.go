package deck

import (
	"testing"

	"blackjacktable/internal/rng"

	"github.com/stretchr/testify/assert"
)

func TestNewShoe(t *testing.T) {
	a := assert.New(t)

	shoe, err := NewShoe(6, rng.NewSeeded(0))
	a.NoError(err)
	a.Equal(312, shoe.Remaining())

	shoe, err = NewShoe(1, rng.NewSeeded(0))
	a.NoError(err)
	a.Equal(52, shoe.Remaining())

	shoe, err = NewShoe(0, rng.NewSeeded(0))
	a.Nil(shoe)
	a.Equal(ErrInvalidDeckCount, err)

	shoe, err = NewShoe(-1, rng.NewSeeded(0))
	a.Nil(shoe)
	a.Equal(ErrInvalidDeckCount, err)
}

func TestShoe_Shuffle(t *testing.T) {
	a := assert.New(t)

	shoe, err := NewShoe(6, rng.NewSeeded(1))
	a.NoError(err)

	before := make(map[Card]int)
	for _, card := range shoe.Cards {
		before[*card]++
	}

	shoe.Shuffle()
	a.Equal(312, shoe.Remaining())

	after := make(map[Card]int)
	for _, card := range shoe.Cards {
		after[*card]++
	}

	// same multiset: every distinct card six times
	a.Equal(before, after)
	a.Equal(52, len(after))
	for card, count := range after {
		a.Equal(6, count, "expected six copies of %s", card.String())
	}

	// a seeded shuffle must actually permute
	unshuffled, _ := NewShoe(6, rng.NewSeeded(1))
	a.NotEqual(CardsToString(unshuffled.Cards), CardsToString(shoe.Cards))
}

func TestShoe_ShuffleResetsCounts(t *testing.T) {
	a := assert.New(t)

	shoe, err := NewShoe(1, rng.NewSeeded(0))
	a.NoError(err)

	// draw a few cards so the counters move
	for i := 0; i < 10; i++ {
		_, err := shoe.TakeCard()
		a.NoError(err)
	}
	a.NotEqual(0, shoe.RunningCount())

	shoe.Shuffle()
	a.Equal(52, shoe.Remaining())
	a.Equal(0, shoe.RunningCount())
	a.Equal(0.0, shoe.TrueCount())
}

func TestShoe_TakeCard(t *testing.T) {
	a := assert.New(t)

	shoe, err := NewShoe(1, rng.NewSeeded(0))
	a.NoError(err)

	for i := 0; i < 52; i++ {
		card, err := shoe.TakeCard()
		a.NoError(err)
		a.NotNil(card)
	}

	a.Equal(0, shoe.Remaining())
	a.False(shoe.CanDraw(1))

	card, err := shoe.TakeCard()
	a.Nil(card)
	a.Equal(ErrShoeEmpty, err)

	// a full deck nets out to zero: 20 low, 12 neutral, 20 high
	a.Equal(0, shoe.RunningCount())
}

func TestShoe_RunningCount(t *testing.T) {
	a := assert.New(t)

	shoe, err := NewShoe(1, rng.NewSeeded(0))
	a.NoError(err)

	// cards come off the end of the slice
	shoe.Cards = CardsFromString("13s,8d,2c")

	card, err := shoe.TakeCard()
	a.NoError(err)
	a.Equal("2♣", card.String())
	a.Equal(1, shoe.RunningCount())

	card, err = shoe.TakeCard()
	a.NoError(err)
	a.Equal("8♦", card.String())
	a.Equal(1, shoe.RunningCount())

	card, err = shoe.TakeCard()
	a.NoError(err)
	a.Equal("K♠", card.String())
	a.Equal(0, shoe.RunningCount())
}

func TestShoe_TrueCount(t *testing.T) {
	a := assert.New(t)

	shoe, err := NewShoe(6, rng.NewSeeded(0))
	a.NoError(err)

	// unshuffled shoe ends with the ace of spades: high card, -1
	card, err := shoe.TakeCard()
	a.NoError(err)
	a.Equal(Ace, card.Rank)
	a.Equal(-1, shoe.RunningCount())

	// 311 cards left is five full decks
	a.InDelta(-0.2, shoe.TrueCount(), 0.0001)
}

func TestShoe_TrueCountDivisorClampsToOneDeck(t *testing.T) {
	a := assert.New(t)

	shoe, err := NewShoe(1, rng.NewSeeded(0))
	a.NoError(err)

	// fewer than 52 cards remain after the draw, so the divisor clamps
	// to a single deck and the true count equals the running count
	shoe.Cards = CardsFromString("2c,3c,4c")

	_, err = shoe.TakeCard()
	a.NoError(err)
	a.Equal(1, shoe.RunningCount())
	a.Equal(1.0, shoe.TrueCount())

	_, err = shoe.TakeCard()
	a.NoError(err)
	a.Equal(2, shoe.RunningCount())
	a.Equal(2.0, shoe.TrueCount())

	// last card: zero cards remain, the divisor still clamps to one
	_, err = shoe.TakeCard()
	a.NoError(err)
	a.Equal(3, shoe.RunningCount())
	a.Equal(3.0, shoe.TrueCount())
}

func TestCountValue(t *testing.T) {
	a := assert.New(t)

	for _, card := range CardsFromString("2c,3d,4h,5s,6c") {
		a.Equal(1, CountValue(card), "expected %s to count +1", card.String())
	}

	for _, card := range CardsFromString("7c,8d,9h") {
		a.Equal(0, CountValue(card), "expected %s to count 0", card.String())
	}

	for _, card := range CardsFromString("10c,11d,12h,13s,14c") {
		a.Equal(-1, CountValue(card), "expected %s to count -1", card.String())
	}
}
