//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"resort-engine/internal/domain/shared/interval"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/infra/cache"
	"resort-engine/internal/pkg/config"
	"resort-engine/internal/usecase/shared"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	s, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		s.Close()
	})
	return s, client
}

func quoteKey(resourceID uuid.UUID) shared.QuoteKey {
	start := time.Date(2030, 6, 4, 10, 0, 0, 0, time.UTC)
	return shared.QuoteKey{ResourceID: resourceID, Span: interval.Must(start, start.Add(2*time.Hour)), Occupancy: 3}
}

func TestQuoteCacheRoundTrip(t *testing.T) {
	_, client := setupMiniRedis(t)
	c := cache.NewQuoteCache(client, time.Minute, nil)
	ctx := context.Background()
	key := quoteKey(uuid.New())

	_, token, ok := c.Get(ctx, key)
	assert.False(t, ok)
	require.NotEmpty(t, token)

	c.Put(ctx, token, money.FromCents(6000))
	got, _, ok := c.Get(ctx, key)
	require.True(t, ok)
	assert.Equal(t, int64(6000), got.Cents())

	other := key
	other.Occupancy = 4
	_, _, ok = c.Get(ctx, other)
	assert.False(t, ok)
}

// put fills the slot for key the way a caller does after a miss.
func put(t *testing.T, c *cache.QuoteCache, key shared.QuoteKey, price money.Money) {
	t.Helper()
	_, token, _ := c.Get(context.Background(), key)
	require.NotEmpty(t, token)
	c.Put(context.Background(), token, price)
}

func TestQuoteCacheInvalidate(t *testing.T) {
	_, client := setupMiniRedis(t)
	c := cache.NewQuoteCache(client, time.Minute, nil)
	ctx := context.Background()
	id := uuid.New()
	key := quoteKey(id)
	untouched := quoteKey(uuid.New())

	put(t, c, key, money.FromCents(6000))
	put(t, c, untouched, money.FromCents(100))
	c.Invalidate(ctx, id)

	_, _, ok := c.Get(ctx, key)
	assert.False(t, ok)
	_, _, ok = c.Get(ctx, untouched)
	assert.True(t, ok)
}

func TestQuoteCacheDropsPriceResolvedBeforeInvalidate(t *testing.T) {
	_, client := setupMiniRedis(t)
	c := cache.NewQuoteCache(client, time.Minute, nil)
	ctx := context.Background()
	id := uuid.New()
	key := quoteKey(id)

	_, token, ok := c.Get(ctx, key)
	require.False(t, ok)

	// The rules change while the caller is still resolving the old price.
	c.Invalidate(ctx, id)
	c.Put(ctx, token, money.FromCents(6000))

	_, fresh, ok := c.Get(ctx, key)
	assert.False(t, ok)
	assert.NotEqual(t, token, fresh)

	c.Put(ctx, fresh, money.FromCents(3000))
	got, _, ok := c.Get(ctx, key)
	require.True(t, ok)
	assert.Equal(t, int64(3000), got.Cents())
}

func TestQuoteCacheExpires(t *testing.T) {
	s, client := setupMiniRedis(t)
	c := cache.NewQuoteCache(client, time.Minute, nil)
	ctx := context.Background()
	key := quoteKey(uuid.New())

	put(t, c, key, money.FromCents(6000))
	s.FastForward(2 * time.Minute)

	_, _, ok := c.Get(ctx, key)
	assert.False(t, ok)
}

func TestQuoteCacheTreatsOutageAsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	c := cache.NewQuoteCache(client, time.Minute, nil)

	_, token, ok := c.Get(context.Background(), quoteKey(uuid.New()))
	assert.False(t, ok)
	assert.Empty(t, token)
	c.Put(context.Background(), token, money.FromCents(100))
}

func TestConnect(t *testing.T) {
	s, _ := setupMiniRedis(t)
	client, err := cache.Connect(context.Background(), config.RedisConfig{Addr: s.Addr()})
	require.NoError(t, err)
	_ = client.Close()

	_, err = cache.Connect(context.Background(), config.RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
