// Package redis holds the process-wide cache connection and the list
// cache built on it. The cache is optional: every caller degrades to a
// miss when no connection was established.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// pingTimeout bounds the startup connectivity check so a wrong REDIS_URL
// fails fast instead of hanging server boot.
const pingTimeout = 5 * time.Second

var client *redis.Client

// Init parses the connection URL, dials, and verifies the connection
// with a ping. On error the package client stays nil and the list cache
// treats every lookup as a miss.
func Init(url, password string) error {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}
	if password != "" {
		opts.Password = password
	}

	c := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		return err
	}

	client = c
	return nil
}

// SetClient swaps the package client directly. Tests use it to point the
// list cache at a miniredis instance, and at nil to simulate cache-off.
func SetClient(c *redis.Client) {
	client = c
}
