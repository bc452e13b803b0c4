package blackjack

// Participant tracks the player's bankroll across rounds
type Participant struct {
	balance    int
	currentBet int
}

// NewParticipant seats a participant with the given buy-in
func NewParticipant(buyIn int) *Participant {
	return &Participant{balance: buyIn}
}

// Balance returns the current bankroll
func (p *Participant) Balance() int {
	return p.balance
}

// CurrentBet returns the most recently placed bet
func (p *Participant) CurrentBet() int {
	return p.currentBet
}

// PlaceBet sets the bet for the next round.
// The bet must be positive and within the participant's balance.
func (p *Participant) PlaceBet(amount int) error {
	if amount <= 0 {
		return ErrInvalidBet
	}

	if amount > p.balance {
		return ErrInsufficientFunds
	}

	p.currentBet = amount
	return nil
}

// ApplyOutcome adjusts the balance for the resolved outcome and returns the adjustment
func (p *Participant) ApplyOutcome(outcome Outcome) int {
	adjustment := outcome.Payout(p.currentBet)
	p.balance += adjustment

	return adjustment
}
