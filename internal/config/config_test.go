package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"deals_bot/internal/config"
)

func TestLoad(t *testing.T) {
	rq := require.New(t)

	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("BOT_CHAT_ID", "-1001234567890")
	t.Setenv("SCAN_INTERVAL", "10s")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("123:abc", cfg.Bot.Token)
	rq.Equal(int64(-1001234567890), cfg.Bot.ChatID)
	rq.Equal(10*time.Second, cfg.Scanner.Interval)
	rq.Equal(10.0, cfg.Scanner.MinDiscount)
	rq.Equal(int64(3600), cfg.Enrich.ReferencePrice)
	rq.Equal("https://api.rolimons.com/market/v1/dealactivity", cfg.Market.ActivityURL)
}

func TestLoadMissingToken(t *testing.T) {
	rq := require.New(t)

	t.Setenv("BOT_CHAT_ID", "1")

	_, err := config.Load()
	rq.Error(err)
}
