// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package audit stamps creation and update metadata on every mutated catalog node.

Rules:

  - Create: all four fields are set to (now, actor); updated* mirrors created*.
  - Update: only updated* changes.
  - Duplicate: the copy is stamped as a fresh creation, never derived from the source.
  - Remove: nothing is stamped.
*/
package audit

import (
	"context"
	"time"

	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/ctxutil"
)

// Metadata is the audit trail carried by every node.
type Metadata struct {
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by"`
}

// AuditMetadata exposes the metadata for stamping. Types embedding [Metadata]
// satisfy [Audited] through their pointer.
func (m *Metadata) AuditMetadata() *Metadata { return m }

// Audited is any node carrying [Metadata].
type Audited interface {
	AuditMetadata() *Metadata
}

// # Stamping

// StampCreate sets all four fields to (now, actor).
func StampCreate(node Audited, actor string, now time.Time) {
	metadata := node.AuditMetadata()
	metadata.CreatedAt = now
	metadata.CreatedBy = actor
	metadata.UpdatedAt = now
	metadata.UpdatedBy = actor
}

// StampUpdate sets updatedAt/updatedBy, leaving the creation pair untouched.
func StampUpdate(node Audited, actor string, now time.Time) {
	metadata := node.AuditMetadata()
	metadata.UpdatedAt = now
	metadata.UpdatedBy = actor
}

// # Stamper

// Stamper binds stamping to a clock and to the actor of the current request.
type Stamper struct {
	clock func() time.Time
}

// NewStamper constructs a [Stamper]. A nil clock falls back to [time.Now].
func NewStamper(clock func() time.Time) *Stamper {
	if clock == nil {
		clock = time.Now
	}
	return &Stamper{clock: clock}
}

// Now returns the current stamping time in UTC.
func (stamper *Stamper) Now() time.Time {
	return stamper.clock().UTC()
}

// Created stamps node as newly created by the actor of ctx.
func (stamper *Stamper) Created(ctx context.Context, node Audited) {
	StampCreate(node, Actor(ctx), stamper.Now())
}

// Updated stamps node as updated by the actor of ctx.
func (stamper *Stamper) Updated(ctx context.Context, node Audited) {
	StampUpdate(node, Actor(ctx), stamper.Now())
}

// Actor returns the username of the authenticated caller, or
// [constants.AnonymousActor] for anonymous requests.
func Actor(ctx context.Context) string {
	claims := ctxutil.GetAuthUser(ctx)
	if claims == nil {
		return constants.AnonymousActor
	}

	if claims.Username != "" {
		return claims.Username
	}
	return claims.UserID
}
