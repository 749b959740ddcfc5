package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when no cached payload exists for a key.
var ErrCacheMiss = errors.New("cache miss")

// ListCache caches serialized public list responses per entity. Keys are
// namespaced "list:<entity>:<variant>" so a write to an entity can drop
// every cached variant of its listing in one pass.
type ListCache struct {
	ttl time.Duration
}

// NewListCache creates a list cache with the given TTL.
func NewListCache(ttl time.Duration) *ListCache {
	return &ListCache{ttl: ttl}
}

func listKey(entity, variant string) string {
	return "list:" + entity + ":" + variant
}

// Get returns the cached payload for an entity listing variant.
func (c *ListCache) Get(ctx context.Context, entity, variant string) ([]byte, error) {
	if client == nil {
		return nil, ErrCacheMiss
	}
	val, err := client.Get(ctx, listKey(entity, variant)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Set stores a serialized listing payload.
func (c *ListCache) Set(ctx context.Context, entity, variant string, payload []byte) error {
	if client == nil {
		return nil
	}
	return client.Set(ctx, listKey(entity, variant), payload, c.ttl).Err()
}

// Invalidate drops every cached listing variant for an entity. Called on
// any mutation of the entity's table.
func (c *ListCache) Invalidate(ctx context.Context, entity string) error {
	if client == nil {
		return nil
	}
	iter := client.Scan(ctx, 0, listKey(entity, "*"), 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return client.Del(ctx, keys...).Err()
}
