package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"bookstore-api/internal/infra/cache"
	"bookstore-api/internal/pkg/config"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"

	"go.uber.org/fx"
)

const (
	dbConnectTimeout = 10 * time.Second
	cachePingTimeout = 2 * time.Second
)

type bookCache interface {
	queries.BookCache
	commands.BookCacheInvalidator
}

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewBookCache,
		func(c bookCache) queries.BookCache { return c },
		func(c bookCache) commands.BookCacheInvalidator { return c },
	),
)

func NewBookCache(lc fx.Lifecycle, cfg config.Config) bookCache {
	if !cfg.Redis.Enabled() {
		slog.Info("book cache disabled", "reason", "REDIS_ADDR not set")
		return cache.NoopBookCache{}
	}

	rdb := cache.NewClient(cfg.Redis)
	bc := cache.NewBookCache(rdb, cfg.Redis.BookCacheTTL)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, cachePingTimeout)
			defer cancel()
			// the cache is optional; reads fall through to the database
			if err := bc.Ping(ctx); err != nil {
				slog.Warn("redis unreachable, book cache will miss", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return bc
}
