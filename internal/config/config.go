package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App     App
	Bot     Bot
	Market  Market
	Enrich  Enrich
	Scanner Scanner
	Ops     Ops
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"deals-bot"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type Bot struct {
	Token string `env:"BOT_TOKEN,required"`
	// ChatID is the one fixed destination channel for deal notifications.
	ChatID  int64 `env:"BOT_CHAT_ID,required"`
	AdminID int64 `env:"BOT_ADMIN_ID"`
	// Mention is prepended to new deal posts only, e.g. "@limited_deals".
	Mention string `env:"BOT_MENTION"`
}

type Ops struct {
	ProbeAddress  string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricAddress string `env:"METRIC_LISTEN_ADDRESS" envDefault:":9102"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("validate.Struct: %w", err)
	}

	return config, nil
}
