package middleware

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// AdminOnly drops every update not sent by the configured admin. With a zero
// admin id the bot accepts commands from anyone.
func AdminOnly(adminID int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if adminID == 0 {
			return ctx.Next(update)
		}

		if update.Message == nil {
			return nil
		}

		if update.Message.From != nil && update.Message.From.ID == adminID {
			return ctx.Next(update)
		}

		return nil
	}
}
