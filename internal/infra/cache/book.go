package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"bookstore-api/internal/pkg/config"
	"bookstore-api/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const (
	generationKey = "book:gen"
	opTimeout     = 200 * time.Millisecond
)

// BookCache stores book detail views in Redis. Keys embed a generation
// counter so that a category change can drop every entry with one INCR.
type BookCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}

func NewBookCache(rdb *redis.Client, ttl time.Duration) *BookCache {
	return &BookCache{rdb: rdb, ttl: ttl}
}

func (c *BookCache) Get(ctx context.Context, id int64) (*queries.BookView, bool) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	key, err := c.key(ctx, id)
	if err != nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("book cache read failed", "book_id", id, "error", err)
		}
		return nil, false
	}
	var v queries.BookView
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.Warn("book cache entry corrupt", "book_id", id, "error", err)
		return nil, false
	}
	return &v, true
}

func (c *BookCache) Set(ctx context.Context, view *queries.BookView) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	raw, err := json.Marshal(view)
	if err != nil {
		return
	}
	key, err := c.key(ctx, view.ID)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Warn("book cache write failed", "book_id", view.ID, "error", err)
	}
}

func (c *BookCache) Invalidate(ctx context.Context, id int64) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	key, err := c.key(ctx, id)
	if err != nil {
		return
	}
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		slog.Warn("book cache invalidate failed", "book_id", id, "error", err)
	}
}

// InvalidateAll bumps the generation; old entries expire on their TTL.
func (c *BookCache) InvalidateAll(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := c.rdb.Incr(ctx, generationKey).Err(); err != nil {
		slog.Warn("book cache generation bump failed", "error", err)
	}
}

func (c *BookCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *BookCache) key(ctx context.Context, id int64) (string, error) {
	gen, err := c.rdb.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		slog.Warn("book cache generation read failed", "error", err)
		return "", err
	}
	return "book:v" + strconv.FormatInt(gen, 10) + ":" + strconv.FormatInt(id, 10), nil
}

// NoopBookCache is used when Redis is not configured.
type NoopBookCache struct{}

func (NoopBookCache) Get(context.Context, int64) (*queries.BookView, bool) { return nil, false }
func (NoopBookCache) Set(context.Context, *queries.BookView)               {}
func (NoopBookCache) Invalidate(context.Context, int64)                    {}
func (NoopBookCache) InvalidateAll(context.Context)                        {}
