package blackjack

import (
	"fmt"
	"strings"
)

// Decision is a choice the player can make during their turn
type Decision int

// Decision constants
const (
	DecisionHit Decision = iota
	DecisionStand
)

func (d Decision) String() string {
	switch d {
	case DecisionHit:
		return "hit"
	case DecisionStand:
		return "stand"
	}

	panic(fmt.Sprintf("invalid decision: %d", int(d)))
}

// DecisionFromString parses a player decision.
// Accepts "h"/"hit" and "s"/"stand"; anything else is an error the caller
// should re-prompt on.
func DecisionFromString(s string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "hit":
		return DecisionHit, nil
	case "s", "stand":
		return DecisionStand, nil
	}

	return 0, fmt.Errorf("invalid decision: %q", s)
}
