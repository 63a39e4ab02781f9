package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"deals_bot/internal/config"
	"deals_bot/internal/domain/service/deals"
	"deals_bot/internal/infrastructure/enrich"
	"deals_bot/internal/infrastructure/notifier"
	"deals_bot/internal/infrastructure/rolimons"
	"deals_bot/internal/transport/bot"
	"deals_bot/internal/worker"
	"deals_bot/pkg/application/modules"
	"deals_bot/pkg/contextx"
	"deals_bot/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(log)

	if err := run(ctx, log); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1)
	}

	log.Info("application stopped")
}

func run(ctx context.Context, log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	log = log.With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	ctx = contextx.WithLogger(ctx, log)

	market := rolimons.NewClient(cfg.Market)
	images := enrich.NewThumbnail(cfg.Enrich)
	storefront := enrich.NewStorefront(cfg.Enrich)

	sink, err := notifier.NewTelegramBot(cfg.Bot)
	if err != nil {
		return fmt.Errorf("notifier bot: %w", err)
	}

	if err := sink.SendText(ctx, "🚀 Deal scanner starting up."); err != nil {
		// The channel may not be reachable yet; cycles will retry anyway.
		log.Error("startup announcement failed", logx.Error(err))
	}

	opts := deals.DefaultOptions()
	opts.MinDiscount = cfg.Scanner.MinDiscount

	rec := worker.NewReconciler(market, images, storefront, sink).
		WithInterval(cfg.Scanner.Interval).
		WithOptions(opts).
		WithCatalogBase(cfg.Enrich.StorefrontURL)

	commandBot, err := bot.New(ctx, cfg, rec)
	if err != nil {
		return fmt.Errorf("command bot: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Ops.ProbeAddress,
	}.Run(gctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Ops.MetricAddress,
	}.Run(gctx, g)

	if err := rec.Start(gctx); err != nil {
		return fmt.Errorf("reconciler start: %w", err)
	}
	defer rec.Stop()

	g.Go(func() error {
		return commandBot.Run(gctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
