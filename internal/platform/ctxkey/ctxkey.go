// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey holds the context keys for per-request values. The key type
// is unexported so no other package can construct a colliding key.
package ctxkey

type key int

const (
	// KeyRequestID maps to the X-Request-ID correlation string.
	KeyRequestID key = iota

	// KeySecurity maps to the request's *sec.SecurityContext.
	KeySecurity

	// KeyLogger maps to the request-scoped *slog.Logger.
	KeyLogger
)
