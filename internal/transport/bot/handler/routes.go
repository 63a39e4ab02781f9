package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"deals_bot/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))
	adminGroup.HandleMessage(h.OnStatus, th.CommandEqual("status"))

	adminGroup.HandleMessage(h.OnSortDiscount, th.CommandEqual("sort_discount"))
	adminGroup.HandleMessage(h.OnSortValue, th.CommandEqual("sort_value"))
	adminGroup.HandleMessage(h.OnFilterPrice, th.CommandEqual("filter_price"))
	adminGroup.HandleMessage(h.OnFilterType, th.CommandEqual("filter_type"))
}
