// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package store persists catalog aggregates as documents.

An aggregate root is stored together with its whole owned subtree (a show with
its seasons and their episodes) as one JSON payload, so that writing an
aggregate is a single atomic operation and can never leave a partial subtree.

Each stored row also carries:

  - Facets: folded, flat key/value pairs that search predicates run against.
  - Nodes: the uuid of every owned descendant, indexed back to the root so that
    a child (e.g. an episode) can be addressed by its own uuid.
  - Version: an optimistic lock, bumped by every successful write.

Backends: [Memory] (tests, single instance), [Postgres] and [SQLite].
*/
package store

import (
	"context"
	"sort"

	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/dberr"
	"github.com/taibuivan/catalog/internal/platform/entity"
)

var (
	// ErrNotFound is returned when no aggregate matches the requested uuid.
	ErrNotFound = dberr.ErrNotFound

	// ErrConcurrentModification is returned when the stored version no longer
	// matches the version the caller loaded.
	ErrConcurrentModification = apperr.Conflict("CONCURRENT_MODIFICATION", "Resource was modified concurrently.")

	// ErrDuplicate is returned when inserting a root uuid that is already stored.
	ErrDuplicate = dberr.ErrDuplicate
)

// Document is an aggregate root that can be persisted by a [Repository].
type Document interface {
	entity.Identified

	// Descendants returns every owned node below the root, in pre-order.
	Descendants() []*entity.Base

	// Facets returns the searchable attributes of the aggregate.
	Facets() map[string]string
}

// Record is the storage form of one aggregate, shared by every backend.
type Record struct {
	Kind    string
	ID      int64
	UUID    string
	Version int64
	Facets  map[string]string
	Nodes   []string
	Payload []byte
}

// Criteria holds facet predicates. All predicates must hold for a record to match.
type Criteria struct {
	// Contains requires the facet to contain the (folded) value.
	Contains map[string]string
	// Equals requires the facet to equal the (folded) value.
	Equals map[string]string
}

// Backend is the raw record storage behind a [Repository].
//
// Ordering of search results is by root id ascending.
type Backend interface {
	Get(ctx context.Context, kind, uuid string) (Record, error)
	GetByNode(ctx context.Context, kind, nodeUUID string) (Record, error)
	Search(ctx context.Context, kind string, criteria Criteria, limit, offset int) ([]Record, int, error)
	Count(ctx context.Context, kind string) (int, error)
	Exists(ctx context.Context, kind, uuid string) (bool, error)

	// Put inserts the record when Version is 0 and otherwise replaces the
	// stored record if its version still equals Version. It returns the new version.
	Put(ctx context.Context, record Record) (int64, error)

	// Delete removes the record and its node index.
	Delete(ctx context.Context, kind, uuid string) error
}

// # Predicates

// predicate is one facet condition in a stable order.
type predicate struct {
	key      string
	value    string
	contains bool
}

// predicates flattens criteria into a deterministic list, Equals first.
func (criteria Criteria) predicates() []predicate {
	list := make([]predicate, 0, len(criteria.Contains)+len(criteria.Equals))
	for _, key := range sortedKeys(criteria.Equals) {
		list = append(list, predicate{key: key, value: criteria.Equals[key]})
	}
	for _, key := range sortedKeys(criteria.Contains) {
		list = append(list, predicate{key: key, value: criteria.Contains[key], contains: true})
	}
	return list
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
