// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/taibuivan/memberauth/internal/platform/ctxutil"
	"github.com/taibuivan/memberauth/internal/platform/sec"
)

// SecurityContextHolder attaches a fresh [sec.SecurityContext] to every request
// and clears it once the downstream chain returns, panics included.
func SecurityContextHolder() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			securityContext := sec.NewSecurityContext()
			defer securityContext.Clear()

			ctx := ctxutil.WithSecurityContext(request.Context(), securityContext)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
