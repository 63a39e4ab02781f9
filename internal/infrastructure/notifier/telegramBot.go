package notifier

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/patrickmn/go-cache"

	"deals_bot/internal/config"
	"deals_bot/internal/domain"
	"deals_bot/internal/domain/entity"
	"deals_bot/pkg/contextx"
	"deals_bot/pkg/errcodes"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// ErrMessageNotFound reports a message id with no known rendered state. For
// the reconciler this is the expected "message was deleted or expired" race,
// not a fault.
var ErrMessageNotFound = domain.NewError(errcodes.MessageNotFound, "message not found")

// Rendered-state retention. Bots cannot re-read their own messages through
// the API, so Fetch is served from this store; a deal that stays live longer
// than the TTL simply re-renders from scratch on its next edit.
const (
	storeTTL     = 24 * time.Hour
	storeCleanup = time.Hour
)

// TelegramBot is the notification sink: thin send/edit/fetch over one fixed
// chat. Platform errors surface to the caller tagged, never swallowed here.
type TelegramBot struct {
	bot     *telego.Bot
	chatID  int64
	mention string
	store   *cache.Cache
}

func NewTelegramBot(cfg config.Bot) (*TelegramBot, error) {
	bot, err := telego.NewBot(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:     bot,
		chatID:  cfg.ChatID,
		mention: cfg.Mention,
		store:   cache.New(storeTTL, storeCleanup),
	}, nil
}

// Send posts a new deal notification and returns its message id. The
// configured mention rides along on new posts only.
func (b *TelegramBot) Send(ctx context.Context, n entity.Notification) (int, error) {
	text := n.HTML()
	if b.mention != "" {
		text = b.mention + "\n" + text
	}

	msg := tu.Message(
		tu.ID(b.chatID),
		text,
	).WithParseMode(telego.ModeHTML)

	sent, err := b.bot.SendMessage(ctx, msg)
	if err != nil {
		return 0, domain.WrapError(err, errcodes.SendRejected, "send message")
	}

	b.store.Set(storeKey(sent.MessageID), n, cache.DefaultExpiration)

	logger(ctx).Info("posted deal notification", "deal-id", n.DealID, "message-id", sent.MessageID)

	return sent.MessageID, nil
}

// Edit re-renders an existing notification in place.
func (b *TelegramBot) Edit(ctx context.Context, messageID int, n entity.Notification) error {
	_, err := b.bot.EditMessageText(ctx, &telego.EditMessageTextParams{
		ChatID:    telego.ChatID{ID: b.chatID},
		MessageID: messageID,
		Text:      n.HTML(),
		ParseMode: telego.ModeHTML,
	})
	if err != nil {
		return domain.WrapError(err, errcodes.EditRejected, "edit message")
	}

	b.store.Set(storeKey(messageID), n, cache.DefaultExpiration)

	return nil
}

// Fetch returns the last rendered state sent under the message id.
func (b *TelegramBot) Fetch(_ context.Context, messageID int) (entity.Notification, error) {
	value, found := b.store.Get(storeKey(messageID))
	if !found {
		return entity.Notification{}, ErrMessageNotFound
	}

	n, ok := value.(entity.Notification)
	if !ok {
		return entity.Notification{}, ErrMessageNotFound
	}

	return n, nil
}

// SendText sends a plain service message, e.g. the startup announcement.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text)

	_, err := b.bot.SendMessage(ctx, msg)
	if err != nil {
		return domain.WrapError(err, errcodes.SendRejected, "send message")
	}

	return nil
}

func storeKey(messageID int) string {
	return strconv.Itoa(messageID)
}
