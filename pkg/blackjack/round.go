package blackjack

import (
	"fmt"

	"blackjacktable/pkg/deck"

	"github.com/sirupsen/logrus"
)

// State identifies where a round is in its lifecycle
type State string

// State constants
const (
	// StateDealing is before the opening cards have been dealt
	StateDealing State = "dealing"

	// StatePlayerTurn means the round is waiting on a hit or stand decision
	StatePlayerTurn State = "player-turn"

	// StateDealerReveal means the dealer's hole card is about to be shown
	StateDealerReveal State = "dealer-reveal"

	// StateDealerTurn means the dealer draws to the house policy
	StateDealerTurn State = "dealer-turn"

	// StateResolved is terminal; the outcome is final
	StateResolved State = "resolved"
)

// dealerStandsAt is the fixed house policy: the dealer draws below 17
// and never hits at 17 or above
const dealerStandsAt = 17

// Round is a single hand of blackjack played against the dealer.
// Advance() drives the dealer-controlled states; PlayerAction() is the
// input boundary for the player's turn.
type Round struct {
	PlayerHand *Hand
	DealerHand *Hand
	State      State

	// the dealer's face-down card, drawn during the deal and kept out of
	// DealerHand until the reveal
	holeCard *deck.Card

	shoe    *deck.Shoe
	outcome Outcome
	logger  logrus.FieldLogger
	logChan chan []*LogMessage
}

func newRound(logger logrus.FieldLogger, shoe *deck.Shoe, logChan chan []*LogMessage) *Round {
	return &Round{
		PlayerHand: NewHand(),
		DealerHand: NewHand(),
		State:      StateDealing,
		shoe:       shoe,
		logger:     logger,
		logChan:    logChan,
	}
}

// Advance moves the round through its dealer-driven states and returns
// true if the state changed. During the player's turn it returns false
// without error; supply input through PlayerAction instead.
func (r *Round) Advance() (bool, error) {
	switch r.State {
	case StateDealing:
		if err := r.deal(); err != nil {
			return false, err
		}

		return true, nil
	case StatePlayerTurn:
		return false, nil
	case StateDealerReveal:
		r.revealDealer()
		return true, nil
	case StateDealerTurn:
		if err := r.playDealer(); err != nil {
			return false, err
		}

		return true, nil
	case StateResolved:
		return false, ErrRoundResolved
	}

	panic(fmt.Sprintf("invalid state: %s", r.State))
}

// deal draws the opening cards in casino order: dealer face-up, player,
// dealer face-down, player. Every draw goes through the shoe so the
// counting statistics see all four cards.
func (r *Round) deal() error {
	upCard, err := r.shoe.TakeCard()
	if err != nil {
		return err
	}
	r.DealerHand.AddCard(upCard)

	firstCard, err := r.shoe.TakeCard()
	if err != nil {
		return err
	}
	r.PlayerHand.AddCard(firstCard)

	holeCard, err := r.shoe.TakeCard()
	if err != nil {
		return err
	}
	r.holeCard = holeCard

	secondCard, err := r.shoe.TakeCard()
	if err != nil {
		return err
	}
	r.PlayerHand.AddCard(secondCard)

	r.sendLogMessage(newLogMessage("dealer shows %s", upCard).withCards(upCard))

	r.State = StatePlayerTurn
	r.checkPlayerDone()
	return nil
}

// checkPlayerDone ends the player's turn once they reach 21 or bust
func (r *Round) checkPlayerDone() {
	if r.PlayerHand.Value() >= TwentyOne {
		r.State = StateDealerReveal
	}
}

// PlayerAction applies a hit or stand decision.
// Any other decision is rejected without mutating the round.
func (r *Round) PlayerAction(decision Decision) error {
	if r.State != StatePlayerTurn {
		if r.State == StateResolved {
			return ErrRoundResolved
		}

		return ErrNotPlayerTurn
	}

	switch decision {
	case DecisionHit:
		card, err := r.shoe.TakeCard()
		if err != nil {
			return err
		}

		r.PlayerHand.AddCard(card)
		r.sendLogMessage(newLogMessage("player hit %s", card).withCards(card))
		r.checkPlayerDone()
		return nil
	case DecisionStand:
		r.sendLogMessage(newLogMessage("player stands at %d", r.PlayerHand.Value()))
		r.State = StateDealerReveal
		return nil
	}

	return fmt.Errorf("invalid decision: %d", int(decision))
}

// revealDealer moves the hole card into the visible dealer hand and
// settles naturals immediately: a two-card ace-high 21 pays 3:2 unless
// the dealer also holds one, which pushes.
func (r *Round) revealDealer() {
	holeCard := r.holeCard
	r.holeCard = nil
	r.DealerHand.AddCard(holeCard)
	r.sendLogMessage(newLogMessage("dealer reveals %s", holeCard).withCards(holeCard))

	if r.PlayerHand.IsBlackjack() {
		if r.DealerHand.IsBlackjack() {
			r.resolve(OutcomeBlackjackPush)
		} else {
			r.resolve(OutcomePlayerBlackjack)
		}

		return
	}

	r.State = StateDealerTurn
}

// playDealer draws for the dealer until the house policy says stop.
// The dealer plays out even after a player bust; those draws still feed
// the counting statistics.
func (r *Round) playDealer() error {
	for r.DealerHand.Value() < dealerStandsAt {
		card, err := r.shoe.TakeCard()
		if err != nil {
			return err
		}

		r.DealerHand.AddCard(card)
		r.sendLogMessage(newLogMessage("dealer hit %s", card).withCards(card))
	}

	r.resolve(r.compareHands())
	return nil
}

// compareHands determines the outcome once both hands are final.
// Precedence: player bust, then dealer bust, then push, then the higher
// value wins.
func (r *Round) compareHands() Outcome {
	playerValue := r.PlayerHand.Value()
	dealerValue := r.DealerHand.Value()

	switch {
	case playerValue > TwentyOne:
		return OutcomePlayerBust
	case dealerValue > TwentyOne:
		return OutcomeDealerBust
	case playerValue == dealerValue:
		return OutcomePush
	case dealerValue > playerValue:
		return OutcomeDealerWin
	default:
		return OutcomePlayerWin
	}
}

func (r *Round) resolve(outcome Outcome) {
	r.outcome = outcome
	r.State = StateResolved
	r.sendLogMessage(newLogMessage("round resolved: %s", outcome))
}

// Outcome returns the final outcome.
// The second return is false until the round reaches the resolved state.
func (r *Round) Outcome() (Outcome, bool) {
	if r.State != StateResolved {
		return "", false
	}

	return r.outcome, true
}

func (r *Round) sendLogMessage(message *LogMessage) {
	if r.logChan == nil {
		return
	}

	select {
	case r.logChan <- []*LogMessage{message}:
	default:
		r.logger.Warn("log channel full, dropping message")
	}
}
