// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"
	"strings"

	"github.com/taibuivan/memberauth/internal/platform/constants"
	"github.com/taibuivan/memberauth/internal/platform/ctxutil"
	"github.com/taibuivan/memberauth/internal/platform/sec"
)

// VerificationFilter authenticates requests that carry a bearer token.
type VerificationFilter struct {
	codec    *sec.TokenCodec
	resolver *sec.AuthorityResolver
}

// NewVerificationFilter builds the bearer token stage.
func NewVerificationFilter(codec *sec.TokenCodec, resolver *sec.AuthorityResolver) *VerificationFilter {
	return &VerificationFilter{codec: codec, resolver: resolver}
}

// Middleware returns the filter as a pipeline stage. It always continues the
// chain; failures are recorded on the security context for the entry point.
func (filter *VerificationFilter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		token, ok := bearerToken(request)
		securityContext := ctxutil.GetSecurityContext(request.Context())

		if ok && securityContext != nil {
			filter.verify(securityContext, token)
		}

		next.ServeHTTP(writer, request)
	})
}

func (filter *VerificationFilter) verify(securityContext *sec.SecurityContext, token string) {
	claims, err := filter.codec.DecodeAndVerify(token, filter.codec.EncodedSecretKey())
	if err != nil {
		securityContext.RecordError(err)
		return
	}

	if claims.Username == "" {
		securityContext.RecordError(ErrNotAccessToken)
		return
	}

	securityContext.SetAuthentication(&sec.Authentication{
		Username:    claims.Username,
		Authorities: filter.resolver.ResolveAuthorities(claims.Roles),
	})
}

func bearerToken(request *http.Request) (string, bool) {
	header := request.Header.Get(constants.HeaderAuthorization)
	if !strings.HasPrefix(header, constants.BearerPrefix) {
		return "", false
	}
	return strings.TrimPrefix(header, constants.BearerPrefix), true
}
