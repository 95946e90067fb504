// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package entity defines the identity shared by every catalog node.
//
// A node has an internal surrogate key (ID), an externally visible stable key
// (UUID) and audit metadata. Owned children point back at their parent by
// ParentID, never by object reference, so an aggregate serializes as a plain tree.
package entity

import "github.com/taibuivan/catalog/internal/platform/audit"

// Base is embedded by every aggregate root and owned child.
type Base struct {
	ID   int64  `json:"id"`
	UUID string `json:"uuid"`

	// ParentID is the id of the owning node. Zero for aggregate roots.
	ParentID int64 `json:"parent_id,omitempty"`

	audit.Metadata

	// Version is the optimistic-lock version of the aggregate root. It is
	// maintained by the store and is zero for nodes that were never persisted.
	Version int64 `json:"-"`
}

// Entity returns the receiver. It lets generic code reach the identity of
// any type embedding [Base].
func (base *Base) Entity() *Base { return base }

// Identified is any node embedding [Base].
type Identified interface {
	Entity() *Base
}

// UUIDs returns the uuids of nodes in order.
func UUIDs[T Identified](nodes []T) []string {
	uuids := make([]string, 0, len(nodes))
	for _, node := range nodes {
		uuids = append(uuids, node.Entity().UUID)
	}
	return uuids
}

// Find returns the node with the given uuid and its index, or -1.
func Find[T Identified](nodes []T, uuid string) (T, int) {
	for index, node := range nodes {
		if node.Entity().UUID == uuid {
			return node, index
		}
	}

	var zero T
	return zero, -1
}

// Remove returns nodes without the element at index, preserving order.
func Remove[T any](nodes []T, index int) []T {
	out := make([]T, 0, len(nodes)-1)
	out = append(out, nodes[:index]...)
	return append(out, nodes[index+1:]...)
}
