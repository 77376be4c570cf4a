// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the token security pipeline in front of the router.

Stages, outermost first:

  - [SecurityContextHolder]: one empty security context per request, cleared at the end.
  - [AuthenticationFilter]: handles the login request and issues tokens.
  - [VerificationFilter]: turns a bearer token into an authentication, or records why it could not.
  - [Authorize]: applies the route [Policy] and answers 401 or 403.

Verification never rejects a request itself. It only records the failure on
the security context, so every 401 is written by the single [EntryPoint].
*/
package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/taibuivan/memberauth/internal/platform/apperr"
	"github.com/taibuivan/memberauth/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/memberauth/internal/platform/request"
	"github.com/taibuivan/memberauth/internal/platform/respond"
	"github.com/taibuivan/memberauth/internal/platform/sec"
	"github.com/taibuivan/memberauth/pkg/email"
)

// LoginRequest is the credential body of the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthenticationFilterConfig holds the collaborators of an [AuthenticationFilter].
// Limiter, Success and Failure are optional.
type AuthenticationFilterConfig struct {
	LoginPath     string
	Authenticator Authenticator
	Codec         *sec.TokenCodec
	Limiter       AttemptLimiter
	Success       SuccessHandler
	Failure       FailureHandler
}

// AuthenticationFilter intercepts POST requests to the login path. Anything
// else passes through untouched.
type AuthenticationFilter struct {
	loginPath     string
	authenticator Authenticator
	codec         *sec.TokenCodec
	limiter       AttemptLimiter
	success       SuccessHandler
	failure       FailureHandler
}

// NewAuthenticationFilter builds the login filter.
func NewAuthenticationFilter(cfg AuthenticationFilterConfig) *AuthenticationFilter {
	filter := &AuthenticationFilter{
		loginPath:     path.Clean(cfg.LoginPath),
		authenticator: cfg.Authenticator,
		codec:         cfg.Codec,
		limiter:       cfg.Limiter,
		success:       cfg.Success,
		failure:       cfg.Failure,
	}
	if filter.success == nil {
		filter.success = LoggingSuccessHandler{}
	}
	if filter.failure == nil {
		filter.failure = JSONFailureHandler{}
	}
	return filter
}

// Middleware returns the filter as a pipeline stage.
func (filter *AuthenticationFilter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !filter.shouldProcess(request) {
			next.ServeHTTP(writer, request)
			return
		}
		filter.attemptAuthentication(writer, request)
	})
}

// shouldProcess matches the cleaned path, the same normalization the route
// policy applies, so "/v11/auth//login" and "/v11/auth/login/" still log in.
func (filter *AuthenticationFilter) shouldProcess(request *http.Request) bool {
	return request.Method == http.MethodPost && path.Clean(request.URL.Path) == filter.loginPath
}

func (filter *AuthenticationFilter) attemptAuthentication(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	logger := ctxutil.GetLogger(ctx)

	var credential LoginRequest
	if err := requestutil.DecodeJSON(writer, request, &credential); err != nil {
		respond.Error(writer, request, err)
		return
	}

	identifier := email.Normalize(credential.Username)

	if filter.limiter != nil {
		if err := filter.limiter.Check(ctx, identifier); err != nil {
			var lockout *LockoutError
			if errors.As(err, &lockout) {
				logger.WarnContext(ctx, "login_locked_out", slog.Duration("retry_after", lockout.RetryAfter))
				respond.Error(writer, request, apperr.RateLimited(retrySeconds(lockout.RetryAfter)))
				return
			}
			// The limiter store is down; logins proceed unthrottled
			logger.ErrorContext(ctx, "login_limiter_unavailable", slog.Any("error", err))
		}
	}

	principal, err := filter.authenticator.Authenticate(ctx, credential.Username, credential.Password)
	if err != nil {
		if filter.limiter != nil && errors.Is(err, ErrBadCredentials) {
			if recordErr := filter.limiter.RecordFailure(ctx, identifier); recordErr != nil {
				logger.ErrorContext(ctx, "login_limiter_record_failed", slog.Any("error", recordErr))
			}
		}
		filter.failure.OnAuthenticationFailure(writer, request, err)
		return
	}

	filter.successfulAuthentication(writer, request, identifier, principal)
}

func (filter *AuthenticationFilter) successfulAuthentication(writer http.ResponseWriter, request *http.Request, identifier string, principal *Principal) {
	ctx := request.Context()

	if filter.limiter != nil {
		if err := filter.limiter.Reset(ctx, identifier); err != nil {
			ctxutil.GetLogger(ctx).ErrorContext(ctx, "login_limiter_reset_failed", slog.Any("error", err))
		}
	}

	pair, err := issueTokenPair(filter.codec, principal)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	writeTokenPair(writer, pair)
	filter.success.OnAuthenticationSuccess(writer, request, principal)
	writer.WriteHeader(http.StatusOK)
}

func retrySeconds(d time.Duration) int {
	seconds := int(d.Round(time.Second) / time.Second)
	if seconds < 1 {
		return 1
	}
	return seconds
}
