// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil reads and writes the per-request values keyed in ctxkey.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/memberauth/internal/platform/ctxkey"
	"github.com/taibuivan/memberauth/internal/platform/sec"
)

// value returns the typed value stored under k, or the zero value of T.
func value[T any](ctx context.Context, k any) T {
	v, _ := ctx.Value(k).(T)
	return v
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID returns "" when the RequestID middleware did not run.
func GetRequestID(ctx context.Context) string {
	return value[string](ctx, ctxkey.KeyRequestID)
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger falls back to [slog.Default] so callers never nil-check.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger := value[*slog.Logger](ctx, ctxkey.KeyLogger); logger != nil {
		return logger
	}
	return slog.Default()
}

func WithSecurityContext(ctx context.Context, securityContext *sec.SecurityContext) context.Context {
	return context.WithValue(ctx, ctxkey.KeySecurity, securityContext)
}

// GetSecurityContext is nil outside the SecurityContextHolder stage.
func GetSecurityContext(ctx context.Context) *sec.SecurityContext {
	return value[*sec.SecurityContext](ctx, ctxkey.KeySecurity)
}

// GetAuthentication returns the verified identity, or nil for anonymous requests.
func GetAuthentication(ctx context.Context) *sec.Authentication {
	if securityContext := GetSecurityContext(ctx); securityContext != nil {
		return securityContext.Authentication()
	}
	return nil
}
