package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

var ErrEmptyToken = errors.New("error getting MBC_TELEGRAM_TOKEN: variable not specified or contains an empty string")

type Config struct {
	Env         string // Env is the current environment: local, dev, prod.
	StoragePath string // StoragePath is the sqlite file holding platform logins and orders.
	URLScheme   string // URLScheme is the custom scheme accepted by deep links.
	Tg          Telegram
	Glasses     Glasses
}

type Telegram struct {
	Token   string        // Token is an unique telgram bot token.
	Timeout time.Duration // Timeout is a poller timeout duration.
}

type Glasses struct {
	PairingDelay time.Duration // PairingDelay is how long the simulated handshake takes.
}

// MustLoad loads the configuration from environment variables and returns a Config struct.
func MustLoad() *Config {
	// Automatically binds environment variables to config keys
	viper.SetEnvPrefix("MBC")
	viper.AutomaticEnv()

	// optional args
	viper.SetDefault("ENV", "production")
	viper.SetDefault("TELEGRAM_TIMEOUT", "15s")
	viper.SetDefault("STORAGE_PATH", "commerce.db")
	viper.SetDefault("URL_SCHEME", "metabrowser")
	viper.SetDefault("PAIRING_DELAY", "2s")

	if viper.GetString("TELEGRAM_TOKEN") == "" {
		panic(ErrEmptyToken)
	}

	return &Config{
		Env:         viper.GetString("ENV"),
		StoragePath: viper.GetString("STORAGE_PATH"),
		URLScheme:   viper.GetString("URL_SCHEME"),
		Tg: Telegram{
			Token:   viper.GetString("TELEGRAM_TOKEN"),
			Timeout: viper.GetDuration("TELEGRAM_TIMEOUT"),
		},
		Glasses: Glasses{
			PairingDelay: viper.GetDuration("PAIRING_DELAY"),
		},
	}
}
