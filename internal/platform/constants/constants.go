// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants collects the fixed values shared by the server, the
security pipeline and the member module. Anything an operator may want to
change lives in config instead.
*/
package constants

import "time"

const (
	AppName    = "memberauth-api"
	AppVersion = "0.1.0-dev"
)

// # HTTP Server

const (
	DefaultReadTimeout       = 5 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultIdleTimeout       = 120 * time.Second
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout bounds a routed request; chi cancels its context afterwards.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is the drain budget for in-flight requests on SIGTERM.
	ShutdownTimeout = 30 * time.Second
)

// # Per-IP Throttling

const (
	DefaultRateLimitRPS   = 100.0
	DefaultRateLimitBurst = 150

	// An IP bucket untouched for RateLimitClientTTL is dropped on the next sweep.
	RateLimitCleanupInterval = time.Minute
	RateLimitClientTTL       = 3 * time.Minute
)

// # Headers

const (
	// HeaderAuthorization carries "Bearer <access token>" both ways.
	HeaderAuthorization = "Authorization"

	// HeaderRefresh carries the bare refresh token both ways.
	HeaderRefresh = "Refresh"

	HeaderXRequestID    = "X-Request-ID"
	HeaderOrigin        = "Origin"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"

	BearerPrefix = "Bearer "
)

// # Health Payload Keys

const (
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)

// RedisPrefixLoginAttempts namespaces the failed-login counters, one key per identifier.
const RedisPrefixLoginAttempts = "auth:login_attempts:"
