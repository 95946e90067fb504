// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/existence"
	"github.com/taibuivan/catalog/pkg/slug"
)

// Repository is the typed view of one aggregate kind over a [Backend].
type Repository[T Document] struct {
	backend Backend
	kind    string
	newDoc  func() T
}

/*
NewRepository binds a document type to a backend.

Parameters:
  - backend: Backend (Raw record storage)
  - kind: string (Aggregate kind, e.g. "movie")
  - newDoc: func() T (Allocates an empty document to decode into)
*/
func NewRepository[T Document](backend Backend, kind string, newDoc func() T) *Repository[T] {
	return &Repository[T]{backend: backend, kind: kind, newDoc: newDoc}
}

// Kind returns the aggregate kind stored by this repository.
func (repository *Repository[T]) Kind() string { return repository.kind }

// Get loads the aggregate with the given root uuid.
func (repository *Repository[T]) Get(context context.Context, uuid string) (T, error) {
	record, err := repository.backend.Get(context, repository.kind, uuid)
	if err != nil {
		var zero T
		return zero, err
	}
	return repository.decode(record)
}

// GetByNode loads the aggregate owning the node with the given uuid.
func (repository *Repository[T]) GetByNode(context context.Context, nodeUUID string) (T, error) {
	record, err := repository.backend.GetByNode(context, repository.kind, nodeUUID)
	if err != nil {
		var zero T
		return zero, err
	}
	return repository.decode(record)
}

// Search returns one window of matching aggregates and the size of the whole match set.
//
// Criteria values are folded the same way facets are before matching.
func (repository *Repository[T]) Search(context context.Context, criteria Criteria, limit, offset int) ([]T, int, error) {
	records, total, err := repository.backend.Search(context, repository.kind, fold(criteria), limit, offset)
	if err != nil {
		return nil, 0, err
	}

	docs := make([]T, 0, len(records))
	for _, record := range records {
		doc, err := repository.decode(record)
		if err != nil {
			return nil, 0, err
		}
		docs = append(docs, doc)
	}
	return docs, total, nil
}

// Count returns the number of stored aggregates.
func (repository *Repository[T]) Count(context context.Context) (int, error) {
	return repository.backend.Count(context, repository.kind)
}

// Exists reports whether an aggregate with the given root uuid is stored.
func (repository *Repository[T]) Exists(context context.Context, uuid string) (bool, error) {
	return repository.backend.Exists(context, repository.kind, uuid)
}

// Save writes the whole aggregate atomically and updates its version.
//
// A document with version 0 is inserted; otherwise the write fails with
// [ErrConcurrentModification] if another writer saved it first.
func (repository *Repository[T]) Save(context context.Context, doc T) error {
	root := doc.Entity()

	payload, err := json.Marshal(doc)
	if err != nil {
		return apperr.Internal(fmt.Errorf("store: encode %s %s: %w", repository.kind, root.UUID, err))
	}

	descendants := doc.Descendants()
	nodes := make([]string, 0, len(descendants))
	for _, node := range descendants {
		nodes = append(nodes, node.UUID)
	}

	facets := make(map[string]string)
	for key, value := range doc.Facets() {
		facets[key] = slug.Fold(value)
	}

	version, err := repository.backend.Put(context, Record{
		Kind:    repository.kind,
		ID:      root.ID,
		UUID:    root.UUID,
		Version: root.Version,
		Facets:  facets,
		Nodes:   nodes,
		Payload: payload,
	})
	if err != nil {
		return err
	}

	root.Version = version
	return nil
}

// Delete removes the aggregate and its whole owned subtree.
func (repository *Repository[T]) Delete(context context.Context, uuid string) error {
	return repository.backend.Delete(context, repository.kind, uuid)
}

// Checker adapts the repository to the existence registry.
func (repository *Repository[T]) Checker() existence.Checker {
	return repository.Exists
}

func (repository *Repository[T]) decode(record Record) (T, error) {
	doc := repository.newDoc()
	if err := json.Unmarshal(record.Payload, doc); err != nil {
		var zero T
		return zero, apperr.Internal(fmt.Errorf("store: decode %s %s: %w", record.Kind, record.UUID, err))
	}

	doc.Entity().Version = record.Version
	return doc, nil
}

func fold(criteria Criteria) Criteria {
	folded := Criteria{Contains: map[string]string{}, Equals: map[string]string{}}
	for key, value := range criteria.Contains {
		folded.Contains[key] = slug.Fold(value)
	}
	for key, value := range criteria.Equals {
		folded.Equals[key] = slug.Fold(value)
	}
	return folded
}
