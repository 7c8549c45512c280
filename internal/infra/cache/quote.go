package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/pkg/config"
	"resort-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "resort:quote"

func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}
	return client, nil
}

// QuoteCache keeps resolved prices in Redis. Each resource has a version
// counter folded into the key, so Invalidate is a single INCR and stale
// entries simply age out.
type QuoteCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewQuoteCache(client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *QuoteCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuoteCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached price and the token naming the slot it looked in.
// The token is empty when the version counter could not be read.
func (c *QuoteCache) Get(ctx context.Context, key shared.QuoteKey) (money.Money, shared.QuoteToken, bool) {
	k, err := c.key(ctx, key)
	if err != nil {
		return money.Zero(), "", false
	}
	cents, err := c.client.Get(ctx, k).Int64()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("quote cache read failed", "error", err.Error())
		}
		return money.Zero(), shared.QuoteToken(k), false
	}
	return money.FromCents(cents), shared.QuoteToken(k), true
}

// Put stores under the slot Get observed. If the resource was invalidated
// in between, the entry lands under the old version and is never read.
func (c *QuoteCache) Put(ctx context.Context, token shared.QuoteToken, price money.Money) {
	if token == "" {
		return
	}
	if err := c.client.Set(ctx, string(token), price.Cents(), c.ttl).Err(); err != nil {
		c.logger.Warn("quote cache write failed", "error", err.Error())
	}
}

func (c *QuoteCache) Invalidate(ctx context.Context, resourceID uuid.UUID) {
	if err := c.client.Incr(ctx, versionKey(resourceID)).Err(); err != nil {
		c.logger.Warn("quote cache invalidation failed", "resource_id", resourceID.String(), "error", err.Error())
	}
}

func (c *QuoteCache) key(ctx context.Context, key shared.QuoteKey) (string, error) {
	version, err := c.client.Get(ctx, versionKey(key.ResourceID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.logger.Warn("quote cache version read failed", "error", err.Error())
		return "", err
	}
	return fmt.Sprintf("%s:%s:v%d:%d:%d:%d", keyPrefix, key.ResourceID,
		version, key.Span.Start().UnixMicro(), key.Span.End().UnixMicro(), key.Occupancy), nil
}

func versionKey(resourceID uuid.UUID) string {
	return keyPrefix + ":version:" + resourceID.String()
}

var _ shared.QuoteCache = (*QuoteCache)(nil)
