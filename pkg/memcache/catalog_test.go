package mem

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"match2b/internal/matching"
)

func sampleCatalog() []matching.Solution {
	return []matching.Solution{
		{ID: "a", SolutionTitle: "A", Industries: []string{"Tech"}, CreatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "b", SolutionTitle: "B", Industries: []string{"Retail"}, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestMemoryCatalog_SetGetExpire(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	c := NewMemoryCatalog(time.Minute)
	c.now = func() time.Time { return now }

	_, ok := c.Get(ctx)
	assert.False(t, ok)

	require.True(t, c.Set(ctx, c.Generation(ctx), sampleCatalog()))
	got, ok := c.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, sampleCatalog(), got)

	// callers may reorder what they get back
	got[0], got[1] = got[1], got[0]
	again, _ := c.Get(ctx)
	assert.Equal(t, "a", again[0].ID)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get(ctx)
	assert.False(t, ok)
}

func TestMemoryCatalog_Invalidate(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCatalog(time.Minute)
	c.Set(ctx, c.Generation(ctx), sampleCatalog())
	c.Invalidate(ctx)

	_, ok := c.Get(ctx)
	assert.False(t, ok)
}

func TestMemoryCatalog_StaleGenerationIsDropped(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCatalog(time.Minute)

	gen := c.Generation(ctx)
	c.Invalidate(ctx)
	assert.False(t, c.Set(ctx, gen, sampleCatalog()))
	_, ok := c.Get(ctx)
	assert.False(t, ok)

	assert.True(t, c.Set(ctx, c.Generation(ctx), sampleCatalog()))
	_, ok = c.Get(ctx)
	assert.True(t, ok)
}

func TestNoopCatalog(t *testing.T) {
	var c CatalogCache = NoopCatalog{}
	assert.False(t, c.Set(context.Background(), c.Generation(context.Background()), sampleCatalog()))
	_, ok := c.Get(context.Background())
	assert.False(t, ok)
}

func TestRedisCatalog(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedisCatalog(client, "match2b:catalog", time.Minute, zap.NewNop())

	_, ok := c.Get(ctx)
	assert.False(t, ok)

	require.True(t, c.Set(ctx, c.Generation(ctx), sampleCatalog()))
	got, ok := c.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, sampleCatalog(), got)
	assert.Equal(t, time.Minute, srv.TTL("match2b:catalog"))

	srv.FastForward(2 * time.Minute)
	_, ok = c.Get(ctx)
	assert.False(t, ok)

	c.Set(ctx, c.Generation(ctx), sampleCatalog())
	c.Invalidate(ctx)
	_, ok = c.Get(ctx)
	assert.False(t, ok)
}

func TestRedisCatalog_StaleGenerationIsDropped(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	loader := NewRedisCatalog(client, "match2b:catalog", time.Minute, zap.NewNop())
	other := NewRedisCatalog(client, "match2b:catalog", time.Minute, zap.NewNop())

	gen := loader.Generation(ctx)
	other.Invalidate(ctx)
	assert.Equal(t, uint64(1), loader.Generation(ctx))

	assert.False(t, loader.Set(ctx, gen, sampleCatalog()))
	assert.False(t, srv.Exists("match2b:catalog"))

	assert.True(t, loader.Set(ctx, loader.Generation(ctx), sampleCatalog()))
	assert.True(t, srv.Exists("match2b:catalog"))
}

func TestRedisCatalog_CorruptEntryIsMiss(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, srv.Set("k", "{not json"))

	c := NewRedisCatalog(client, "k", time.Minute, zap.NewNop())
	_, ok := c.Get(context.Background())
	assert.False(t, ok)
}

func TestRedisCatalog_UnavailableIsMiss(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	srv.Close()

	c := NewRedisCatalog(client, "k", time.Minute, zap.NewNop())
	assert.False(t, c.Set(context.Background(), c.Generation(context.Background()), sampleCatalog()))
	_, ok := c.Get(context.Background())
	assert.False(t, ok)
}
