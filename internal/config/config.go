package config

import (
	"blackjacktable/internal/util"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the blackjack table
type Config struct {
	loaded bool
	Log    struct {
		Level string `yaml:"level" envconfig:"level"`
	}
	Table struct {
		DeckCount      int `yaml:"deckCount" envconfig:"deck_count"`
		ReshuffleLimit int `yaml:"reshuffleLimit" envconfig:"reshuffle_limit"`
		BuyIn          int `yaml:"buyIn" envconfig:"buy_in"`
		DelayMillis    int `yaml:"delayMillis" envconfig:"delay_millis"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; defaults and the environment apply
func Load() error {
	config = Config{}
	config.Table.DeckCount = 6
	config.Table.ReshuffleLimit = 52
	config.Table.BuyIn = 2500
	config.Table.DelayMillis = 1000

	configFile := util.Getenv("BJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("bj", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
