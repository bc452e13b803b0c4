package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("A♠", CardFromString("14s").String())
	a.Equal("10♥", CardFromString("10h").String())
	a.Equal("2♣", CardFromString("2c").String())
	a.Equal("J♦", CardFromString("11d").String())
	a.Equal("Q♥", CardFromString("12h").String())
	a.Equal("K♣", CardFromString("13c").String())
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("5s").Equal(CardFromString("5s")))
	a.False(CardFromString("5s").Equal(CardFromString("5c")))
	a.False(CardFromString("5s").Equal(CardFromString("6s")))
}

func TestCard_BlackjackValue(t *testing.T) {
	a := assert.New(t)
	for rank := 2; rank <= 10; rank++ {
		card := Card{Rank: rank, Suit: Spades}
		a.Equal(rank, card.BlackjackValue())
	}

	a.Equal(10, CardFromString("11c").BlackjackValue())
	a.Equal(10, CardFromString("12c").BlackjackValue())
	a.Equal(10, CardFromString("13c").BlackjackValue())
	a.Equal(11, CardFromString("14c").BlackjackValue())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)
	a.Equal(Card{Rank: 2, Suit: Clubs}, *CardFromString("2c"))
	a.Equal(Card{Rank: Ace, Suit: Spades}, *CardFromString("14s"))
	a.Nil(CardFromString(""))

	a.Panics(func() {
		CardFromString("1x")
	})
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("2c,10h,14s")
	assert.Equal(t, "2c,10h,14s", CardsToString(cards))
	assert.Equal(t, "", CardsToString(nil))
}
