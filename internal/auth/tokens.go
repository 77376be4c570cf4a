// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"fmt"
	"net/http"

	"github.com/taibuivan/memberauth/internal/platform/constants"
	"github.com/taibuivan/memberauth/internal/platform/sec"
)

// TokenPair is what a login or refresh hands back to the client.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// issueTokenPair signs an access token carrying the principal's roles and a
// refresh token carrying only the subject.
func issueTokenPair(codec *sec.TokenCodec, principal *Principal) (TokenPair, error) {
	key := codec.EncodedSecretKey()

	accessToken, err := codec.IssueAccessToken(
		sec.Claims{Username: principal.Username, Roles: principal.Roles},
		principal.Username,
		codec.AccessTokenExpiry(),
		key,
	)
	if err != nil {
		return TokenPair{}, fmt.Errorf("auth: issue access token: %w", err)
	}

	refreshToken, err := codec.IssueRefreshToken(principal.Username, codec.RefreshTokenExpiry(), key)
	if err != nil {
		return TokenPair{}, fmt.Errorf("auth: issue refresh token: %w", err)
	}

	return TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// writeTokenPair places both tokens in the response headers.
func writeTokenPair(writer http.ResponseWriter, pair TokenPair) {
	writer.Header().Set(constants.HeaderAuthorization, constants.BearerPrefix+pair.AccessToken)
	writer.Header().Set(constants.HeaderRefresh, pair.RefreshToken)
}
