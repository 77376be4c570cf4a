// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis provides a managed client for volatile data storage.

The member API uses it for the failed-login counters, which need atomic
increments and expiry shared across every server instance.
*/
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connection tuning. The limiter issues at most three short commands per
// login, so a small pool is plenty.
const (
	poolSize     = 10
	minIdleConns = 2
	maxIdleConns = 5

	dialTimeout = 3 * time.Second
	ioTimeout   = 2 * time.Second
	pingTimeout = 2 * time.Second
)

// Options parses a redis:// or rediss:// URL and applies the tuning above.
func Options(redisURL string) (*redis.Options, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}

	options.PoolSize, options.MinIdleConns, options.MaxIdleConns = poolSize, minIdleConns, maxIdleConns
	options.DialTimeout = dialTimeout
	options.ReadTimeout, options.WriteTimeout = ioTimeout, ioTimeout
	return options, nil
}

// NewClient dials Redis and pings it once. The client is closed again if the
// ping fails, so the caller only owns a client on success.
func NewClient(ctx context.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := Options(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(options)
	if err := Ping(ctx, client); err != nil {
		return nil, errors.Join(err, client.Close())
	}

	logger.Info("redis_client_connected", slog.String("addr", options.Addr), slog.Int("db", options.DB))
	return client, nil
}

// Ping bounds a PING by pingTimeout. The readiness probe calls it per request.
func Ping(ctx context.Context, client redis.UniversalClient) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping: %w", err)
	}
	return nil
}
