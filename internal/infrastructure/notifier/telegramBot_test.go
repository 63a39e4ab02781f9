package notifier_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"deals_bot/internal/config"
	"deals_bot/internal/infrastructure/notifier"
)

func TestNewTelegramBotRejectsEmptyToken(t *testing.T) {
	rq := require.New(t)

	_, err := notifier.NewTelegramBot(config.Bot{ChatID: 1})
	rq.Error(err)
}

func TestFetchUnknownMessage(t *testing.T) {
	rq := require.New(t)

	bot, err := notifier.NewTelegramBot(config.Bot{
		Token:  "123456789:AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
		ChatID: 1,
	})
	rq.NoError(err)

	_, err = bot.Fetch(context.Background(), 42)
	rq.ErrorIs(err, notifier.ErrMessageNotFound)
}
