package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/xid"

	"deals_bot/internal/domain/entity"
	"deals_bot/internal/domain/service/deals"
	"deals_bot/internal/infrastructure/notifier"
	"deals_bot/internal/metrics"
	"deals_bot/pkg/contextx"
	"deals_bot/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type MarketClient interface {
	DealActivity(ctx context.Context) ([]entity.Activity, error)
	ItemDetails(ctx context.Context) (map[string]entity.ItemDetails, error)
}

type ImageResolver interface {
	Resolve(ctx context.Context, itemID string) (string, error)
}

type AvailabilityChecker interface {
	Availability(ctx context.Context, itemID string) (entity.Availability, error)
}

type Sink interface {
	Send(ctx context.Context, n entity.Notification) (int, error)
	Edit(ctx context.Context, messageID int, n entity.Notification) error
	Fetch(ctx context.Context, messageID int) (entity.Notification, error)
}

// Reconciler keeps the notification channel in sync with the live deal feed.
// Each cycle it fetches the market, closes out posted deals that left the
// feed, and posts or refreshes the ones still in it.
//
// All cycles run on the single Run goroutine, so the posted map needs no
// locking; commands reach the loop through option updates and the coalescing
// trigger channel.
type Reconciler struct {
	market     MarketClient
	images     ImageResolver
	storefront AvailabilityChecker
	sink       Sink

	interval    time.Duration
	catalogBase string

	// posted maps deal id to the message id of its live notification.
	// Owned by the Run goroutine.
	posted map[string]int

	// trigger carries at most one pending on-demand cycle request.
	trigger chan struct{}

	tracked atomic.Int64

	// Control fields
	mu         sync.Mutex
	opts       deals.Options
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewReconciler(
	market MarketClient,
	images ImageResolver,
	storefront AvailabilityChecker,
	sink Sink,
) *Reconciler {
	return &Reconciler{
		market:     market,
		images:     images,
		storefront: storefront,
		sink:       sink,
		interval:   30 * time.Second,
		posted:     make(map[string]int),
		trigger:    make(chan struct{}, 1),
		opts:       deals.DefaultOptions(),
	}
}

func (r *Reconciler) WithInterval(d time.Duration) *Reconciler {
	if d > 0 {
		r.interval = d
	}
	return r
}

func (r *Reconciler) WithOptions(opts deals.Options) *Reconciler {
	r.opts = opts
	return r
}

func (r *Reconciler) WithCatalogBase(url string) *Reconciler {
	r.catalogBase = url
	return r
}

// Options returns a snapshot of the current filter criteria.
func (r *Reconciler) Options() deals.Options {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opts
}

// UpdateOptions applies fn to the filter criteria used by subsequent cycles.
func (r *Reconciler) UpdateOptions(fn func(*deals.Options)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.opts)
}

// Tracked reports how many deals currently map to a live notification.
func (r *Reconciler) Tracked() int {
	return int(r.tracked.Load())
}

// Submit requests an on-demand cycle. It never blocks: with a cycle already
// pending the request coalesces into it and Submit reports false.
func (r *Reconciler) Submit() bool {
	select {
	case r.trigger <- struct{}{}:
		return true
	default:
		return false
	}
}

func (r *Reconciler) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		return errors.New("reconciler is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.cancelFunc = cancel
	r.isRunning = true

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			r.mu.Lock()
			r.isRunning = false
			r.cancelFunc = nil
			r.mu.Unlock()
		}()

		if err := r.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(runCtx).Error("reconciler stopped", logx.Error(err))
		}
	}()

	return nil
}

func (r *Reconciler) Stop() {
	r.mu.Lock()

	if !r.isRunning {
		r.mu.Unlock()
		return
	}

	if r.cancelFunc != nil {
		r.cancelFunc()
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Reconciler) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isRunning
}

func (r *Reconciler) Run(ctx context.Context) error {
	logger(ctx).Info("reconciler started", "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("reconciler stopped")
			return ctx.Err()
		case <-r.trigger:
			r.Reconcile(ctx)
		case <-ticker.C:
			r.Reconcile(ctx)
		}
	}
}

// Reconcile runs one full cycle against the current options. It is not safe
// for concurrent use; outside tests only the Run loop calls it.
func (r *Reconciler) Reconcile(ctx context.Context) {
	cycleID := xid.New().String()
	log := logger(ctx).With(slog.String(logx.FieldCycleID, cycleID))
	ctx = contextx.WithLogger(ctx, log)

	metrics.CyclesTotal.Inc()

	activities, err := r.market.DealActivity(ctx)
	if err != nil {
		log.Error("deal activity fetch failed", logx.Error(err))
		metrics.FetchFailuresTotal.WithLabelValues("activity").Inc()
		return
	}

	items, err := r.market.ItemDetails(ctx)
	if err != nil {
		log.Error("item details fetch failed", logx.Error(err))
		metrics.FetchFailuresTotal.WithLabelValues("items").Inc()
		return
	}

	current := deals.Filter(activities, items, r.Options())

	// An empty result cannot be told apart from an upstream hiccup, so it
	// never closes anything. Stale messages wait for the next good cycle.
	if len(current) == 0 {
		log.Debug("no qualifying deals")
		return
	}

	live := make(map[string]struct{}, len(current))
	for _, deal := range current {
		live[deal.ID] = struct{}{}
	}

	r.closeDeparted(ctx, live)
	r.publish(ctx, current)

	r.tracked.Store(int64(len(r.posted)))
	metrics.TrackedDeals.Set(float64(len(r.posted)))
}

// closeDeparted retires notifications whose deal left the feed. Whether or
// not the message is still reachable, the mapping entry is removed exactly
// once: a missing message is the expected deletion race, not a reason to
// retry forever.
func (r *Reconciler) closeDeparted(ctx context.Context, live map[string]struct{}) {
	for id, messageID := range r.posted {
		if _, ok := live[id]; ok {
			continue
		}

		n, err := r.sink.Fetch(ctx, messageID)
		switch {
		case errors.Is(err, notifier.ErrMessageNotFound):
			logger(ctx).Warn("notification gone before close-out",
				slog.String(logx.FieldDealID, id), "message-id", messageID)
		case err != nil:
			logger(ctx).Error("close-out fetch failed",
				slog.String(logx.FieldDealID, id), logx.Error(err))
		default:
			n.MarkClosed()
			if err := r.sink.Edit(ctx, messageID, n); err != nil {
				logger(ctx).Error("close-out edit failed",
					slog.String(logx.FieldDealID, id), logx.Error(err))
			}
		}

		delete(r.posted, id)
		metrics.DealsClosedTotal.Inc()

		logger(ctx).Info("deal closed", slog.String(logx.FieldDealID, id))
	}
}

// publish posts new deals and refreshes ones already on the channel. A deal
// is recorded as posted only after its send succeeds, so a delivery failure
// retries naturally on the next cycle.
func (r *Reconciler) publish(ctx context.Context, current []entity.Deal) {
	for _, deal := range current {
		imageURL, err := r.images.Resolve(ctx, deal.ID)
		if err != nil {
			// The thumbnail is part of the message; without it the deal
			// sits out this cycle.
			logger(ctx).Error("thumbnail resolution failed",
				slog.String(logx.FieldDealID, deal.ID), logx.Error(err))
			metrics.DealsSkippedTotal.Inc()
			continue
		}

		availability, err := r.storefront.Availability(ctx, deal.ID)
		if err != nil {
			logger(ctx).Warn("availability check failed",
				slog.String(logx.FieldDealID, deal.ID), logx.Error(err))
			availability = entity.AvailabilityUnknown
		}

		n := r.render(deal, imageURL, availability)

		if messageID, ok := r.posted[deal.ID]; ok {
			if err := r.sink.Edit(ctx, messageID, n); err != nil {
				// The message may still exist; the mapping stays so the
				// next cycle edits instead of double-posting.
				logger(ctx).Error("edit failed",
					slog.String(logx.FieldDealID, deal.ID), logx.Error(err))
				metrics.DealsSkippedTotal.Inc()
				continue
			}

			metrics.DealsEditedTotal.Inc()
			continue
		}

		messageID, err := r.sink.Send(ctx, n)
		if err != nil {
			logger(ctx).Error("send failed",
				slog.String(logx.FieldDealID, deal.ID), logx.Error(err))
			metrics.DealsSkippedTotal.Inc()
			continue
		}

		r.posted[deal.ID] = messageID
		metrics.DealsPostedTotal.Inc()

		logger(ctx).Info("deal posted",
			slog.String(logx.FieldDealID, deal.ID), "message-id", messageID)
	}
}

// render maps a deal and its enrichment results to the message form. An
// unknown availability renders as an open deal; only a confirmed sale gets
// the sold styling.
func (r *Reconciler) render(deal entity.Deal, imageURL string, availability entity.Availability) entity.Notification {
	state := entity.StateOpen
	if availability == entity.AvailabilitySold {
		state = entity.StateSold
	}

	return entity.Notification{
		DealID:   deal.ID,
		Name:     deal.Name,
		Value:    deal.Value,
		RAP:      deal.RAP,
		Price:    deal.Price,
		Discount: deal.Discount,
		ImageURL: imageURL,
		ItemURL:  deal.CatalogURL(r.catalogBase),
		Tier:     entity.TierFor(deal.Discount),
		State:    state,
	}
}
