// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/memberauth/internal/platform/apperr"
	"github.com/taibuivan/memberauth/internal/platform/ctxutil"
	"github.com/taibuivan/memberauth/internal/platform/respond"
)

// # Handler Contracts

// SuccessHandler is called after a login issued tokens, before the response is committed.
type SuccessHandler interface {
	OnAuthenticationSuccess(writer http.ResponseWriter, request *http.Request, principal *Principal)
}

// FailureHandler writes the response for a failed login.
type FailureHandler interface {
	OnAuthenticationFailure(writer http.ResponseWriter, request *http.Request, err error)
}

// EntryPoint writes the response when an anonymous request reaches a protected route.
// cause is the verification error recorded earlier in the request, if any.
type EntryPoint interface {
	Commence(writer http.ResponseWriter, request *http.Request, cause error)
}

// AccessDeniedHandler writes the response when an authenticated principal lacks authority.
type AccessDeniedHandler interface {
	Handle(writer http.ResponseWriter, request *http.Request, err error)
}

// # Default Handlers

// LoggingSuccessHandler records successful logins.
type LoggingSuccessHandler struct{}

func (LoggingSuccessHandler) OnAuthenticationSuccess(_ http.ResponseWriter, request *http.Request, principal *Principal) {
	ctxutil.GetLogger(request.Context()).InfoContext(request.Context(), "authentication_succeeded",
		slog.String("username", principal.Username),
		slog.Any("roles", principal.Roles),
	)
}

// JSONFailureHandler answers a failed login with a generic 401.
type JSONFailureHandler struct{}

func (JSONFailureHandler) OnAuthenticationFailure(writer http.ResponseWriter, request *http.Request, err error) {
	level := slog.LevelWarn
	if !errors.Is(err, ErrBadCredentials) {
		level = slog.LevelError
	}
	ctxutil.GetLogger(request.Context()).Log(request.Context(), level, "authentication_failed",
		slog.String("error", err.Error()),
	)

	respond.Error(writer, request, apperr.Unauthorized())
}

// JSONEntryPoint answers with a generic 401. The recorded cause is logged, never sent.
type JSONEntryPoint struct{}

func (JSONEntryPoint) Commence(writer http.ResponseWriter, request *http.Request, cause error) {
	if cause != nil {
		ctxutil.GetLogger(request.Context()).DebugContext(request.Context(), "token_verification_failed",
			slog.String("error", cause.Error()),
		)
	}

	respond.Error(writer, request, apperr.Unauthorized())
}

// JSONAccessDeniedHandler answers with 403 and logs the denial server-side.
type JSONAccessDeniedHandler struct{}

func (JSONAccessDeniedHandler) Handle(writer http.ResponseWriter, request *http.Request, err error) {
	attrs := []any{slog.String("error", err.Error())}
	if authentication := ctxutil.GetAuthentication(request.Context()); authentication != nil {
		attrs = append(attrs,
			slog.String("username", authentication.Username),
			slog.Any("authorities", authentication.Authorities),
		)
	}
	ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "access_denied", attrs...)

	respond.Error(writer, request, apperr.Forbidden())
}
