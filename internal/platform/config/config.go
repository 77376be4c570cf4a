// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Loaded once before the server accepts traffic, read-only afterwards.
  - DI-Friendly: Passed to core components (DB, Redis, TokenCodec) via constructors.
  - Fail Fast: [Config.Validate] rejects secrets too short for HMAC-SHA256.
*/
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// MinSecretKeyLength mirrors the HS256 minimum key size in bytes.
const MinSecretKeyLength = 32

// # Configuration Schema

// Config holds all runtime configuration for the member API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value store (Redis) backing the login attempt limiter
	RedisURL string `env:"REDIS_URL,required"`

	// Token signing. The secret is never logged.
	JWTSecretKey                  string `env:"JWT_SECRET_KEY,required,unset"`
	AccessTokenExpirationMinutes  int    `env:"JWT_ACCESS_TOKEN_EXPIRATION_MINUTES"  envDefault:"30"`
	RefreshTokenExpirationMinutes int    `env:"JWT_REFRESH_TOKEN_EXPIRATION_MINUTES" envDefault:"420"`

	// Authentication endpoints handled by the security pipeline
	LoginPath   string `env:"AUTH_LOGIN_PATH"   envDefault:"/v11/auth/login"`
	RefreshPath string `env:"AUTH_REFRESH_PATH" envDefault:"/v11/auth/refresh"`

	// AdminEmails receive the ADMIN role at registration.
	AdminEmails []string `env:"ADMIN_EMAILS" envSeparator:","`

	// Failed-login throttling per identifier
	LoginMaxAttempts   int           `env:"LOGIN_MAX_ATTEMPTS"   envDefault:"5"`
	LoginAttemptWindow time.Duration `env:"LOGIN_ATTEMPT_WINDOW" envDefault:"15m"`

	// Cross-Origin Resource Sharing
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct and validates it.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the invariants the security pipeline depends on.
func (c *Config) Validate() error {
	var problems []error

	if len(c.JWTSecretKey) < MinSecretKeyLength {
		problems = append(problems, fmt.Errorf("JWT_SECRET_KEY must be at least %d bytes", MinSecretKeyLength))
	}
	if c.AccessTokenExpirationMinutes <= 0 {
		problems = append(problems, errors.New("JWT_ACCESS_TOKEN_EXPIRATION_MINUTES must be positive"))
	}
	if c.RefreshTokenExpirationMinutes <= 0 {
		problems = append(problems, errors.New("JWT_REFRESH_TOKEN_EXPIRATION_MINUTES must be positive"))
	}
	if !strings.HasPrefix(c.LoginPath, "/") {
		problems = append(problems, errors.New("AUTH_LOGIN_PATH must be an absolute path"))
	}
	if !strings.HasPrefix(c.RefreshPath, "/") {
		problems = append(problems, errors.New("AUTH_REFRESH_PATH must be an absolute path"))
	}
	if c.LoginMaxAttempts <= 0 {
		problems = append(problems, errors.New("LOGIN_MAX_ATTEMPTS must be positive"))
	}
	if c.LoginAttemptWindow <= 0 {
		problems = append(problems, errors.New("LOGIN_ATTEMPT_WINDOW must be positive"))
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(problems...))
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
