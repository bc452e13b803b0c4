package blackjack

// Options contains options for a blackjack table
type Options struct {
	// DeckCount is the number of decks in the shoe, at least one
	DeckCount int

	// ReshuffleLimit is the minimum number of cards that must remain
	// before the caller should rebuild the shoe for the next round
	ReshuffleLimit int
}

// DefaultOptions returns the standard six-deck table
func DefaultOptions() Options {
	return Options{
		DeckCount:      6,
		ReshuffleLimit: 52,
	}
}
