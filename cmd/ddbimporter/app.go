package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/ddb-importer/internal/clients/srd"
	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	"github.com/KirkDiggler/ddb-importer/internal/config"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	importorch "github.com/KirkDiggler/ddb-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/ddb-importer/internal/redis"
	actorrepo "github.com/KirkDiggler/ddb-importer/internal/repositories/actor"
	"github.com/KirkDiggler/ddb-importer/internal/repositories/content"
)

// app holds the process-wide dependencies of an importer
type app struct {
	importer *importorch.Orchestrator
	closers  []func() error
}

// newApp connects the stores and builds the import orchestrator. The custom
// store handle is created once here and shared by every import.
func newApp(ctx context.Context, cfg *config.Config, notifier importorch.Notifier) (*app, error) {
	a := &app{}
	ok := false
	defer func() {
		if !ok {
			a.Close()
		}
	}()

	redis, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}
	a.closers = append(a.closers, redis.Close)
	if err := redisclient.Ping(ctx, redis); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis unavailable")
	}

	actors, err := actorrepo.NewRedis(&actorrepo.RedisConfig{Client: redis})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create actor repository")
	}

	custom, err := a.customStore(ctx, cfg, redis)
	if err != nil {
		return nil, err
	}

	registry := compendium.NewRegistry()
	if cfg.SRDDisabled {
		slog.InfoContext(ctx, "SRD reference stores disabled")
	} else {
		stores, err := srd.Stores(&srd.Config{
			BaseURL:  cfg.SRDBaseURL,
			CacheTTL: cfg.SRDCacheTTL,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create SRD stores")
		}
		registry.Register(stores...)
	}

	order, err := config.LoadOrder(cfg.OrderFile)
	if err != nil {
		return nil, err
	}

	orch, err := importorch.New(&importorch.Config{
		ActorRepo:   actors,
		Registry:    registry,
		Order:       order,
		CustomStore: custom,
		Clock:       clock.New(),
		Notifier:    notifier,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create importer")
	}
	a.importer = orch

	ok = true
	return a, nil
}

func (a *app) customStore(ctx context.Context, cfg *config.Config, redis redisclient.Client) (compendium.WritableStore, error) {
	switch cfg.StoreBackend {
	case config.BackendNone:
		slog.InfoContext(ctx, "custom content store disabled, synthesized content will not be cached")
		return nil, nil
	case config.BackendSQLite:
		store, err := content.OpenSQLite(ctx, &content.SQLiteConfig{
			Path:    cfg.SQLitePath,
			StoreID: cfg.StoreID,
			Label:   cfg.StoreLabel,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to open sqlite content store")
		}
		a.closers = append(a.closers, store.Close)
		slog.InfoContext(ctx, "using sqlite content store", "path", cfg.SQLitePath, "store", store.ID())
		return store, nil
	default:
		store, err := content.NewRedis(&content.RedisConfig{
			Client:  redis,
			StoreID: cfg.StoreID,
			Label:   cfg.StoreLabel,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create redis content store")
		}
		slog.InfoContext(ctx, "using redis content store", "store", store.ID())
		return store, nil
	}
}

// Close releases connections in reverse order
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("failed to close resource", "error", err.Error())
		}
	}
	a.closers = nil
}
