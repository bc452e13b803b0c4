package blackjack

import (
	"fmt"
	"time"

	"blackjacktable/pkg/deck"

	"github.com/google/uuid"
)

// LogMessage describes a table event for the shell to render
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Cards   []*deck.Card `json:"cards"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

func newLogMessage(format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

func (l *LogMessage) withCards(cards ...*deck.Card) *LogMessage {
	l.Cards = cards
	return l
}
