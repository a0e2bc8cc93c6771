package memcache_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"traveldna/internal/config"
	"traveldna/internal/services"
)

var Module = fx.Provide(provideSessionStore)

// provideSessionStore runs the expiry janitor for the app's lifetime and
// closes every open session on shutdown.
func provideSessionStore(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) services.SessionStoreInterface {
	store := services.NewSessionStore(cfg.Quiz.SessionTTL, logger)
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go store.RunJanitor(ctx, cfg.Quiz.SweepInterval)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			store.CloseAll()
			return nil
		},
	})
	return store
}
