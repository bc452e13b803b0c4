package blackjack

import "fmt"

// Outcome is the final result of a resolved round
type Outcome string

// Outcome constants
const (
	// OutcomePlayerBust means the player went over 21; it beats everything, even a dealer bust
	OutcomePlayerBust Outcome = "player-bust"

	// OutcomeDealerBust means the dealer went over 21 and the player did not
	OutcomeDealerBust Outcome = "dealer-bust"

	// OutcomePush means both hands hold the same value
	OutcomePush Outcome = "push"

	// OutcomeDealerWin means the dealer's hand values higher
	OutcomeDealerWin Outcome = "dealer-win"

	// OutcomePlayerWin means the player's hand values higher
	OutcomePlayerWin Outcome = "player-win"

	// OutcomePlayerBlackjack means the player holds a natural and the dealer does not
	OutcomePlayerBlackjack Outcome = "player-blackjack"

	// OutcomeBlackjackPush means both the player and the dealer hold naturals
	OutcomeBlackjackPush Outcome = "blackjack-push"
)

// PlayerWon returns true if the outcome pays the player
func (o Outcome) PlayerWon() bool {
	switch o {
	case OutcomePlayerWin, OutcomeDealerBust, OutcomePlayerBlackjack:
		return true
	}

	return false
}

// IsPush returns true if the bet is returned
func (o Outcome) IsPush() bool {
	return o == OutcomePush || o == OutcomeBlackjackPush
}

// Payout returns the balance adjustment for the given bet.
// A natural pays 3:2 rounded down, regular wins pay even money, pushes
// return the bet, and losses forfeit it.
func (o Outcome) Payout(bet int) int {
	switch o {
	case OutcomePlayerBlackjack:
		return bet * 3 / 2
	case OutcomePlayerWin, OutcomeDealerBust:
		return bet
	case OutcomePush, OutcomeBlackjackPush:
		return 0
	case OutcomePlayerBust, OutcomeDealerWin:
		return -bet
	}

	panic(fmt.Sprintf("invalid outcome: %s", string(o)))
}
