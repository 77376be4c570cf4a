// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"log/slog"
	"net/http"

	"github.com/taibuivan/memberauth/internal/platform/apperr"
	"github.com/taibuivan/memberauth/internal/platform/constants"
	"github.com/taibuivan/memberauth/internal/platform/ctxutil"
	"github.com/taibuivan/memberauth/internal/platform/respond"
	"github.com/taibuivan/memberauth/internal/platform/sec"
)

// RefreshHandler exchanges a refresh token for a new token pair.
//
// Nothing is stored server-side; the old refresh token stays valid until it expires.
type RefreshHandler struct {
	codec      *sec.TokenCodec
	principals PrincipalLoader
}

// NewRefreshHandler builds the refresh endpoint.
func NewRefreshHandler(codec *sec.TokenCodec, principals PrincipalLoader) *RefreshHandler {
	return &RefreshHandler{codec: codec, principals: principals}
}

/*
ServeHTTP handles the refresh request.

POST {refresh path}

Request:
  - Header: Refresh: <refresh token>

Response:
  - 200: new tokens in the Authorization and Refresh headers
  - 401: any failure, generic body
*/
func (handler *RefreshHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	logger := ctxutil.GetLogger(ctx)

	token := request.Header.Get(constants.HeaderRefresh)
	if token == "" {
		respond.Error(writer, request, apperr.Unauthorized())
		return
	}

	claims, err := handler.codec.DecodeAndVerify(token, handler.codec.EncodedSecretKey())
	if err != nil {
		logger.DebugContext(ctx, "refresh_token_rejected", slog.String("error", err.Error()))
		respond.Error(writer, request, apperr.Unauthorized())
		return
	}

	// Access tokens carry a username; refresh tokens never do
	if claims.Username != "" || claims.Subject == "" {
		logger.DebugContext(ctx, "refresh_token_rejected", slog.String("error", ErrNotRefreshToken.Error()))
		respond.Error(writer, request, apperr.Unauthorized())
		return
	}

	principal, err := handler.principals.LoadPrincipal(ctx, claims.Subject)
	if err != nil {
		logger.WarnContext(ctx, "refresh_principal_rejected", slog.String("error", err.Error()))
		respond.Error(writer, request, apperr.Unauthorized())
		return
	}

	pair, err := issueTokenPair(handler.codec, principal)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	writeTokenPair(writer, pair)
	logger.InfoContext(ctx, "token_refreshed", slog.String("username", principal.Username))
	writer.WriteHeader(http.StatusOK)
}
