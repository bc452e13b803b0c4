package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"time"

	"blackjacktable/internal/config"
	"blackjacktable/internal/rng"
	"blackjacktable/pkg/blackjack"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

// Version is the build version
var Version = "v0.0.0-dev"

type cli struct {
	DeckCount      int           `short:"d" default:"${deck_count}" help:"Number of decks in the shoe"`
	ReshuffleLimit int           `short:"r" default:"${reshuffle_limit}" help:"Minimum number of cards required to play another round"`
	Delay          time.Duration `default:"${delay}" help:"Delay between moves to make the game easier to follow, 0 disables pacing"`
	BuyIn          int           `short:"b" default:"${buy_in}" help:"Initial amount of money for the player in dollars"`
}

func main() {
	setupLogger()

	cfg := config.Instance()

	var args cli
	kong.Parse(&args,
		kong.Name("blackjack"),
		kong.Description("Play blackjack against the house from a multi-deck shoe"),
		kong.UsageOnError(),
		kong.Vars{
			"deck_count":      strconv.Itoa(cfg.Table.DeckCount),
			"reshuffle_limit": strconv.Itoa(cfg.Table.ReshuffleLimit),
			"delay":           (time.Duration(cfg.Table.DelayMillis) * time.Millisecond).String(),
			"buy_in":          strconv.Itoa(cfg.Table.BuyIn),
		},
	)

	game, err := blackjack.NewGame(logrus.StandardLogger(), rng.Crypto{}, args.BuyIn, blackjack.Options{
		DeckCount:      args.DeckCount,
		ReshuffleLimit: args.ReshuffleLimit,
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not start the table")
	}

	logrus.WithFields(logrus.Fields{
		"version": Version,
		"decks":   args.DeckCount,
	}).Debug("table open")

	t := &table{
		game:  game,
		in:    bufio.NewScanner(os.Stdin),
		out:   os.Stdout,
		delay: args.Delay,
	}

	if err := t.playShoe(); err != nil {
		logrus.WithError(err).Fatal("table error")
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
