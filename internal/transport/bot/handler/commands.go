package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"deals_bot/internal/domain/service/deals"
	"deals_bot/internal/transport/bot/view"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	status := "🔴 stopped"
	if h.rec.IsRunning() {
		status = "🟢 running"
	}

	opts := h.rec.Options()

	text := fmt.Sprintf(`📊 <b>Scanner status</b>

🔍 <b>Scanner:</b> %s
📌 <b>Tracked deals:</b> %d
📉 <b>Min discount:</b> %.1f%%
💰 <b>Price bounds:</b> %s
📦 <b>Item types:</b> %s
↕️ <b>Sort:</b> %s
`,
		status,
		h.rec.Tracked(),
		opts.MinDiscount,
		boundsLabel(opts),
		typesLabel(opts.ItemTypes),
		sortLabel(opts.Sort),
	)

	return h.sendHTML(ctx, msg.Chat.ID, text)
}

func (h *Handler) OnSortDiscount(ctx *th.Context, msg telego.Message) error {
	h.rec.UpdateOptions(func(opts *deals.Options) {
		opts.Sort = deals.SortDiscount
	})

	return h.submitAndReply(ctx, msg.Chat.ID, "✅ Sorting by discount.")
}

func (h *Handler) OnSortValue(ctx *th.Context, msg telego.Message) error {
	h.rec.UpdateOptions(func(opts *deals.Options) {
		opts.Sort = deals.SortValue
	})

	return h.submitAndReply(ctx, msg.Chat.ID, "✅ Sorting by value.")
}

// OnFilterPrice sets the price bounds.
// Usage: /filter_price 100 5000
func (h *Handler) OnFilterPrice(ctx *th.Context, msg telego.Message) error {
	args := strings.Fields(msg.Text)
	if len(args) < 3 {
		return h.sendHTML(ctx, msg.Chat.ID, view.FilterPriceUsage)
	}

	min, errMin := strconv.ParseInt(args[1], 10, 64)
	max, errMax := strconv.ParseInt(args[2], 10, 64)
	if errMin != nil || errMax != nil || min < 0 || min > max {
		return h.sendHTML(ctx, msg.Chat.ID, view.FilterPriceInvalid)
	}

	h.rec.UpdateOptions(func(opts *deals.Options) {
		opts.PriceMin = &min
		opts.PriceMax = &max
	})

	return h.submitAndReply(ctx, msg.Chat.ID,
		fmt.Sprintf("✅ Price bounds set: %d – %d.", min, max))
}

// OnFilterType sets the item type allow-list. Without arguments the filter is
// cleared.
// Usage: /filter_type Hat Face
func (h *Handler) OnFilterType(ctx *th.Context, msg telego.Message) error {
	args := strings.Fields(msg.Text)

	types := args[1:]

	h.rec.UpdateOptions(func(opts *deals.Options) {
		opts.ItemTypes = types
	})

	reply := "✅ Type filter cleared."
	if len(types) > 0 {
		reply = "✅ Type filter set: " + strings.Join(types, ", ") + "."
	}

	return h.submitAndReply(ctx, msg.Chat.ID, reply)
}

// submitAndReply requests an immediate cycle and acknowledges the command.
// A coalesced request still applied the new options; the pending cycle will
// pick them up.
func (h *Handler) submitAndReply(ctx *th.Context, chatID int64, confirmation string) error {
	queued := view.ScanQueued
	if !h.rec.Submit() {
		queued = view.ScanAlreadyQueued
	}

	return h.sendHTML(ctx, chatID, confirmation+"\n"+queued)
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})
	return err
}

func boundsLabel(opts deals.Options) string {
	if opts.PriceMin == nil && opts.PriceMax == nil {
		return "unbounded"
	}

	low, high := "0", "∞"
	if opts.PriceMin != nil {
		low = strconv.FormatInt(*opts.PriceMin, 10)
	}
	if opts.PriceMax != nil {
		high = strconv.FormatInt(*opts.PriceMax, 10)
	}

	return low + " – " + high
}

func typesLabel(types []string) string {
	if len(types) == 0 {
		return "all"
	}
	return strings.Join(types, ", ")
}

func sortLabel(key deals.SortKey) string {
	switch key {
	case deals.SortDiscount:
		return "discount"
	case deals.SortValue:
		return "value"
	default:
		return "feed order"
	}
}
