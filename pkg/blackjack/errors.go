package blackjack

import "errors"

// ErrRoundResolved is returned when an action is attempted on a resolved round
var ErrRoundResolved = errors.New("round is resolved")

// ErrRoundInProgress is returned when a new round or reshuffle is requested before the current round resolves
var ErrRoundInProgress = errors.New("a round is already in progress")

// ErrNotPlayerTurn is returned when a decision arrives outside the player's turn
var ErrNotPlayerTurn = errors.New("not the player's turn")

// ErrInvalidBet is returned when a bet is zero or negative
var ErrInvalidBet = errors.New("bet must be greater than zero")

// ErrInsufficientFunds is returned when a bet exceeds the participant's balance
var ErrInsufficientFunds = errors.New("bet exceeds balance")
