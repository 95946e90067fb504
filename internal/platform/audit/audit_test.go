// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/catalog/internal/platform/audit"
	"github.com/taibuivan/catalog/internal/platform/ctxutil"
	"github.com/taibuivan/catalog/internal/platform/sec"
)

type node struct {
	audit.Metadata
}

/*
TestStamper_CreateThenUpdate verifies that updates only touch the updated pair.
*/
func TestStamper_CreateThenUpdate(t *testing.T) {
	created := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	clock := created
	stamper := audit.NewStamper(func() time.Time { return clock })

	n := &node{}
	stamper.Created(ctxutil.WithAuthUser(context.Background(), &sec.AuthClaims{Username: "alice"}), n)

	assert.Equal(t, created, n.CreatedAt)
	assert.Equal(t, "alice", n.CreatedBy)
	assert.Equal(t, n.CreatedAt, n.UpdatedAt)
	assert.Equal(t, n.CreatedBy, n.UpdatedBy)

	clock = updated
	stamper.Updated(ctxutil.WithAuthUser(context.Background(), &sec.AuthClaims{Username: "bob"}), n)

	assert.Equal(t, created, n.CreatedAt)
	assert.Equal(t, "alice", n.CreatedBy)
	assert.Equal(t, updated, n.UpdatedAt)
	assert.Equal(t, "bob", n.UpdatedBy)
}

/*
TestActor resolves the acting user from the request context.
*/
func TestActor(t *testing.T) {
	assert.Equal(t, "anonymous", audit.Actor(context.Background()))

	ctx := ctxutil.WithAuthUser(context.Background(), &sec.AuthClaims{UserID: "42"})
	assert.Equal(t, "42", audit.Actor(ctx))
}
