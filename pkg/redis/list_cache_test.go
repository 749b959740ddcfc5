package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
}

func TestListCache_SetGetInvalidate(t *testing.T) {
	newTestRedis(t)
	cache := NewListCache(time.Minute)
	ctx := context.Background()

	_, err := cache.Get(ctx, "jobs", "all")
	require.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, "jobs", "all", []byte(`[{"id":"a"}]`)))
	require.NoError(t, cache.Set(ctx, "jobs", "featured", []byte(`[]`)))
	require.NoError(t, cache.Set(ctx, "candidates", "all", []byte(`[]`)))

	got, err := cache.Get(ctx, "jobs", "all")
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"id":"a"}]`), got)

	require.NoError(t, cache.Invalidate(ctx, "jobs"))

	_, err = cache.Get(ctx, "jobs", "all")
	require.ErrorIs(t, err, ErrCacheMiss)
	_, err = cache.Get(ctx, "jobs", "featured")
	require.ErrorIs(t, err, ErrCacheMiss)

	// Other entities are untouched.
	_, err = cache.Get(ctx, "candidates", "all")
	require.NoError(t, err)
}

func TestListCache_NilClientIsNoop(t *testing.T) {
	SetClient(nil)
	cache := NewListCache(time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "jobs", "all", []byte("x")))
	_, err := cache.Get(ctx, "jobs", "all")
	require.ErrorIs(t, err, ErrCacheMiss)
	require.NoError(t, cache.Invalidate(ctx, "jobs"))
}
