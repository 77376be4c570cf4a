// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/memberauth/internal/platform/constants"
)

// AttemptLimiter throttles failed logins per identifier.
type AttemptLimiter interface {
	// Check returns a [*LockoutError] once the identifier has used its budget.
	Check(ctx context.Context, identifier string) error

	// RecordFailure counts one failed attempt inside the current window.
	RecordFailure(ctx context.Context, identifier string) error

	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, identifier string) error
}

// LockoutError reports a locked identifier and how long the lock lasts.
type LockoutError struct {
	RetryAfter time.Duration
}

func (e *LockoutError) Error() string {
	return fmt.Sprintf("auth: too many login attempts, retry after %s", e.RetryAfter)
}

func (e *LockoutError) Unwrap() error { return ErrTooManyAttempts }

// RedisAttemptLimiter keeps fixed-window failure counters in Redis so the
// budget is shared by every server instance.
type RedisAttemptLimiter struct {
	client      redis.UniversalClient
	maxAttempts int
	window      time.Duration
}

// NewRedisAttemptLimiter allows maxAttempts failures per identifier per window.
func NewRedisAttemptLimiter(client redis.UniversalClient, maxAttempts int, window time.Duration) *RedisAttemptLimiter {
	return &RedisAttemptLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

func (l *RedisAttemptLimiter) Check(ctx context.Context, identifier string) error {
	key := attemptKey(identifier)

	count, err := l.client.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("redis_login_attempts_get_failed: %w", err)
	}

	if count < int64(l.maxAttempts) {
		return nil
	}

	retryAfter, err := l.client.TTL(ctx, key).Result()
	if err != nil || retryAfter <= 0 {
		retryAfter = l.window
	}
	return &LockoutError{RetryAfter: retryAfter}
}

func (l *RedisAttemptLimiter) RecordFailure(ctx context.Context, identifier string) error {
	key := attemptKey(identifier)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("redis_login_attempts_incr_failed: %w", err)
	}

	// The window opens with the first failure and is never extended.
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("redis_login_attempts_expire_failed: %w", err)
		}
	}

	return nil
}

func (l *RedisAttemptLimiter) Reset(ctx context.Context, identifier string) error {
	if err := l.client.Del(ctx, attemptKey(identifier)).Err(); err != nil {
		return fmt.Errorf("redis_login_attempts_del_failed: %w", err)
	}
	return nil
}

func attemptKey(identifier string) string {
	return constants.RedisPrefixLoginAttempts + identifier
}
