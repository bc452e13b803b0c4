package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"blackjacktable/pkg/blackjack"
)

var errInputClosed = errors.New("input closed")

// table is the interactive loop around the engine.
// All I/O happens here; the engine only transitions state.
type table struct {
	game  *blackjack.Game
	in    *bufio.Scanner
	out   io.Writer
	delay time.Duration
}

// playShoe plays rounds until the shoe runs low
func (t *table) playShoe() error {
	for {
		t.printf("============ ROUND BEGIN ============\n")
		if err := t.placeBet(); err != nil {
			return err
		}
		t.pause()

		if err := t.playRound(); err != nil {
			return err
		}
		t.pause()
		t.printf("============ ROUND END   ============\n\n")

		t.printf("Counts (running/true) %d/%.1f\n\n", t.game.RunningCount(), t.game.TrueCount())

		if t.game.ShouldReshuffle() {
			t.printf("Shoe over\n")
			return nil
		}
	}
}

func (t *table) playRound() error {
	round, err := t.game.NewRound()
	if err != nil {
		return err
	}

	// the deal
	if _, err := round.Advance(); err != nil {
		return err
	}
	t.drainLog()
	t.pause()

	if err := t.playerTurn(round); err != nil {
		return err
	}

	for round.State != blackjack.StateResolved {
		if _, err := round.Advance(); err != nil {
			return err
		}
		t.drainLog()
		t.pause()
	}

	t.printf("Dealer hand: %s\n", round.DealerHand)

	outcome, ok := round.Outcome()
	if !ok {
		return errors.New("round did not resolve")
	}

	adjustment := t.game.Participant().ApplyOutcome(outcome)
	t.printf("%s\n", outcomeMessage(outcome, adjustment))
	t.printf("Balance: $%d\n", t.game.Participant().Balance())
	return nil
}

func (t *table) playerTurn(round *blackjack.Round) error {
	for round.State == blackjack.StatePlayerTurn {
		t.printf("Hand: %s\n", round.PlayerHand)
		t.printf("Move? [h/s]\n")

		line, err := t.readLine()
		if err != nil {
			return err
		}

		decision, err := blackjack.DecisionFromString(line)
		if err != nil {
			t.printf("Invalid choice '%s', please try again\n", strings.TrimSpace(line))
			continue
		}

		if err := round.PlayerAction(decision); err != nil {
			return err
		}
		t.drainLog()
	}

	t.printf("Hand: %s\n", round.PlayerHand)
	if round.PlayerHand.IsBlackjack() {
		t.printf("BlackJack!\n")
	}

	return nil
}

func (t *table) placeBet() error {
	participant := t.game.Participant()

	for {
		t.printf("Place your bets for the round!\n")
		t.printf("Repeat last [r] / Amount [a]?\n")

		line, err := t.readLine()
		if err != nil {
			return err
		}

		switch strings.TrimSpace(line) {
		case "r":
			if participant.CurrentBet() == 0 {
				t.printf("You have not yet placed any bets, please place one before trying to repeat\n")
				continue
			}

			if err := participant.PlaceBet(participant.CurrentBet()); err != nil {
				t.printf("You cannot afford a bet of $%d, please try again with a smaller bet\n", participant.CurrentBet())
				continue
			}

			return nil
		case "a":
			t.printf("How much would you like to bet of your $%d?\n", participant.Balance())

			amountLine, err := t.readLine()
			if err != nil {
				return err
			}

			amount, err := strconv.Atoi(strings.TrimSpace(amountLine))
			if err != nil {
				t.printf("Invalid number '%s', please try again\n", strings.TrimSpace(amountLine))
				continue
			}

			if err := participant.PlaceBet(amount); err != nil {
				t.printf("You cannot afford a bet of $%d, please try again with a smaller bet\n", amount)
				continue
			}

			return nil
		default:
			t.printf("Invalid choice, please try again\n")
		}
	}
}

// drainLog prints any queued table narration without blocking
func (t *table) drainLog() {
	for {
		select {
		case messages := <-t.game.LogChan():
			for _, message := range messages {
				t.printf("%s\n", message.Message)
			}
		default:
			return
		}
	}
}

func (t *table) readLine() (string, error) {
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", err
		}

		return "", errInputClosed
	}

	return t.in.Text(), nil
}

func (t *table) printf(format string, a ...interface{}) {
	fmt.Fprintf(t.out, format, a...)
}

func (t *table) pause() {
	if t.delay > 0 {
		time.Sleep(t.delay)
	}
}

func outcomeMessage(outcome blackjack.Outcome, adjustment int) string {
	switch outcome {
	case blackjack.OutcomePlayerBust:
		return "Player bust :("
	case blackjack.OutcomeDealerBust:
		return fmt.Sprintf("Dealer bust! winnings $%d", adjustment)
	case blackjack.OutcomePush, blackjack.OutcomeBlackjackPush:
		return "Push! You get your money back"
	case blackjack.OutcomeDealerWin:
		return "Dealer wins, better luck next time!"
	case blackjack.OutcomePlayerWin:
		return fmt.Sprintf("Congratulations! winnings $%d", adjustment)
	case blackjack.OutcomePlayerBlackjack:
		return fmt.Sprintf("BlackJack wins 3:2! winnings $%d", adjustment)
	}

	return string(outcome)
}
