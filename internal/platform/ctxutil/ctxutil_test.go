// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/memberauth/internal/platform/ctxutil"
	"github.com/taibuivan/memberauth/internal/platform/sec"
)

func TestRequestIDAndLogger(t *testing.T) {
	empty := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(empty))
	assert.Same(t, slog.Default(), ctxutil.GetLogger(empty))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := ctxutil.WithLogger(ctxutil.WithRequestID(empty, "req-42"), logger)

	assert.Equal(t, "req-42", ctxutil.GetRequestID(ctx))
	assert.Same(t, logger, ctxutil.GetLogger(ctx))
}

func TestAuthenticationFollowsHolder(t *testing.T) {
	assert.Nil(t, ctxutil.GetSecurityContext(context.Background()))
	assert.Nil(t, ctxutil.GetAuthentication(context.Background()))

	holder := sec.NewSecurityContext()
	ctx := ctxutil.WithSecurityContext(context.Background(), holder)
	assert.Nil(t, ctxutil.GetAuthentication(ctx), "empty holder is anonymous")

	// The context keeps a pointer, so later writes by a filter are visible.
	holder.SetAuthentication(&sec.Authentication{
		Username:    "alice@example.com",
		Authorities: []sec.Authority{"ROLE_USER"},
	})
	authentication := ctxutil.GetAuthentication(ctx)
	require.NotNil(t, authentication)
	assert.Equal(t, "alice@example.com", authentication.Username)

	holder.Clear()
	assert.Nil(t, ctxutil.GetAuthentication(ctx))
}
