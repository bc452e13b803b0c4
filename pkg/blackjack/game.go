package blackjack

import (
	"errors"

	"blackjacktable/internal/rng"
	"blackjacktable/pkg/deck"

	"github.com/sirupsen/logrus"
)

// Game owns the shoe and the seated participant for a shoe lifetime,
// which may span many rounds. The engine performs no I/O; the shell
// drives rounds and renders the results.
type Game struct {
	options     Options
	shoe        *deck.Shoe
	participant *Participant
	round       *Round
	logger      logrus.FieldLogger
	logChan     chan []*LogMessage
}

// NewGame builds and shuffles a shoe and seats a participant with the buy-in
func NewGame(logger logrus.FieldLogger, gen rng.Generator, buyIn int, options Options) (*Game, error) {
	if options.ReshuffleLimit < 0 {
		return nil, errors.New("reshuffle limit cannot be negative")
	}

	shoe, err := deck.NewShoe(options.DeckCount, gen)
	if err != nil {
		return nil, err
	}
	shoe.Shuffle()

	return &Game{
		options:     options,
		shoe:        shoe,
		participant: NewParticipant(buyIn),
		logger:      logger,
		logChan:     make(chan []*LogMessage, 256),
	}, nil
}

// NewRound starts a new round against the dealer.
// Only one round may be in progress at a time.
func (g *Game) NewRound() (*Round, error) {
	if g.round != nil && g.round.State != StateResolved {
		return nil, ErrRoundInProgress
	}

	g.round = newRound(g.logger, g.shoe, g.logChan)
	return g.round, nil
}

// Participant returns the seated participant
func (g *Game) Participant() *Participant {
	return g.participant
}

// ShouldReshuffle reports whether the shoe has fallen below the
// reshuffle limit. The engine never reshuffles on its own; scheduling
// is the caller's responsibility.
func (g *Game) ShouldReshuffle() bool {
	return g.shoe.Remaining() < g.options.ReshuffleLimit
}

// Reshuffle rebuilds the shoe with fresh decks, resetting the counts.
// It must not be called while a round is in progress.
func (g *Game) Reshuffle() error {
	if g.round != nil && g.round.State != StateResolved {
		return ErrRoundInProgress
	}

	g.shoe.Shuffle()
	g.logger.WithField("cards", g.shoe.Remaining()).Debug("shoe reshuffled")
	return nil
}

// CardsRemaining returns the number of cards left in the shoe
func (g *Game) CardsRemaining() int {
	return g.shoe.Remaining()
}

// RunningCount returns the shoe's hi-lo running count
func (g *Game) RunningCount() int {
	return g.shoe.RunningCount()
}

// TrueCount returns the shoe's true count
func (g *Game) TrueCount() float64 {
	return g.shoe.TrueCount()
}

// LogChan returns the channel the table sends log messages on
func (g *Game) LogChan() <-chan []*LogMessage {
	return g.logChan
}
