// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/catalog/internal/platform/ctxutil"
	"github.com/taibuivan/catalog/internal/platform/sec"
)

/*
TestContext_RequestID verifies the correlation id round trip.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "0191b3a0-0000-7000-8000-00000000abcd")
	assert.Equal(t, "0191b3a0-0000-7000-8000-00000000abcd", ctxutil.GetRequestID(ctx))

	// Keys of other types never collide
	type foreignKey int
	ctx = context.WithValue(ctx, foreignKey(0), "spoofed")
	assert.Equal(t, "0191b3a0-0000-7000-8000-00000000abcd", ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies the request logger and its default fallback.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctxutil.WithLogger(ctx, nil)))

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	assert.Equal(t, logger, ctxutil.GetLogger(ctxutil.WithLogger(ctx, logger)))
}

/*
TestContext_AuthUser verifies that verified claims travel with the request.
*/
func TestContext_AuthUser(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ctxutil.GetAuthUser(ctx))

	ctx = ctxutil.WithAuthUser(ctx, &sec.AuthClaims{UserID: "0191b3a0-0000-7000-8000-000000000001", Username: "editor"})
	claims := ctxutil.GetAuthUser(ctx)
	if assert.NotNil(t, claims) {
		assert.Equal(t, "editor", claims.Username)
	}
}
