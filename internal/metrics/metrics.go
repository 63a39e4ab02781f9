package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	CyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deals_bot_cycles_total",
		Help: "Reconciliation cycles started.",
	})

	FetchFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deals_bot_fetch_failures_total",
		Help: "Upstream market fetches that failed, by dataset.",
	}, []string{"dataset"})

	DealsPostedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deals_bot_deals_posted_total",
		Help: "New deal notifications posted.",
	})

	DealsEditedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deals_bot_deals_edited_total",
		Help: "Existing deal notifications edited in place.",
	})

	DealsClosedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deals_bot_deals_closed_total",
		Help: "Deal notifications marked sold by the close-out pass.",
	})

	DealsSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deals_bot_deals_skipped_total",
		Help: "Deals skipped in a cycle because enrichment or delivery failed.",
	})

	TrackedDeals = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "deals_bot_tracked_deals",
		Help: "Deal ids currently mapped to a live notification.",
	})
)
