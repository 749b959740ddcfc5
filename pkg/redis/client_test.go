package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestInit_ConnectsAndServesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Cleanup(func() { SetClient(nil) })

	require.NoError(t, Init("redis://"+mr.Addr(), ""))

	cache := NewListCache(time.Minute)
	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "jobs", "all", []byte("[]")))
	got, err := cache.Get(ctx, "jobs", "all")
	require.NoError(t, err)
	require.Equal(t, []byte("[]"), got)
}

func TestInit_BadURLLeavesCacheOff(t *testing.T) {
	SetClient(nil)

	require.Error(t, Init("not-a-redis-url", ""))

	// Failed init leaves the cache in miss-everything mode.
	_, err := NewListCache(time.Minute).Get(context.Background(), "jobs", "all")
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestInit_UnreachableServer(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	SetClient(nil)

	require.Error(t, Init("redis://"+addr, ""))
}
