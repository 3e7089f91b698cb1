// Package redis holds the Redis client setup and the login throttle built on
// top of it. Redis is an auxiliary store here: only transient rate-limit
// counters live in it, never account or character data.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultDialTimeout = 5 * time.Second

// Config holds the connection settings for the throttle store.
type Config struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

// Connect opens a client against cfg.Addr and verifies it with a ping before
// handing it out, so a misconfigured address fails at startup rather than on
// the first login. DialTimeout bounds the ping; zero means 5s.
func (cfg Config) Connect(ctx context.Context) (*redis.Client, error) {
	dialTimeout := cfg.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return client, nil
}
