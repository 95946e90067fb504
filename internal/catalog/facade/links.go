// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facade

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/catalog/internal/platform/audit"
	"github.com/taibuivan/catalog/internal/platform/errcode"
	"github.com/taibuivan/catalog/internal/platform/existence"
	"github.com/taibuivan/catalog/internal/platform/store"
	"github.com/taibuivan/catalog/internal/platform/validate"
)

// ReferenceMark is the facet value of every reference facet.
const ReferenceMark = "1"

// ReferenceFacet is the facet key marking that an aggregate references the
// shared entity of kind with the given uuid.
func ReferenceFacet(kind existence.Kind, uuid string) string {
	return string(kind) + ":" + uuid
}

// MarkReferences adds a reference facet to facets for every id of kind.
func MarkReferences(facets map[string]string, kind existence.Kind, ids ...string) {
	for _, id := range ids {
		facets[ReferenceFacet(kind, id)] = ReferenceMark
	}
}

// Unlinker drops a removed shared entity from the aggregates of one kind.
type Unlinker interface {
	// Unlink returns the number of aggregates it rewrote.
	Unlink(context context.Context, kind existence.Kind, uuid string) (int, error)
}

// Links routes the removal of a shared entity to every aggregate kind that may
// reference it. Registration completes during startup, before serving.
type Links struct {
	unlinkers map[existence.Kind][]Unlinker
}

func NewLinks() *Links {
	return &Links{unlinkers: make(map[existence.Kind][]Unlinker)}
}

// Register subscribes unlinker to removals of the given shared kinds.
func (links *Links) Register(unlinker Unlinker, kinds ...existence.Kind) {
	for _, kind := range kinds {
		links.unlinkers[kind] = append(links.unlinkers[kind], unlinker)
	}
}

// Unlink asks every registered aggregate kind to drop the reference.
func (links *Links) Unlink(context context.Context, kind existence.Kind, uuid string) (int, error) {
	if links == nil {
		return 0, nil
	}

	total := 0
	for _, unlinker := range links.unlinkers[kind] {
		count, err := unlinker.Unlink(context, kind, uuid)
		total += count
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

/*
RemoveShared deletes a shared entity after unlinking it from every aggregate
that references it.

Referrers are rewritten before the entity is deleted, so a failure part way
leaves the entity in place and never a dangling reference.

Parameters:
  - context: context.Context
  - deps: Deps
  - repository: *store.Repository[T]
  - uuid: string (Uuid of the shared entity)
  - entity: errcode.Entity (Names the NOT_EXIST violation)
  - kind: existence.Kind (Reference kind held by the referrers)

Returns:
  - int: Number of aggregates the reference was dropped from
  - error: <ENTITY>_NOT_EXIST (404) or a store failure
*/
func RemoveShared[T store.Document](context context.Context, deps Deps, repository *store.Repository[T], uuid string, entity errcode.Entity, kind existence.Kind) (int, error) {
	if !validate.IsUUID(uuid) {
		return 0, entity.NotExist().Err()
	}
	id := strings.ToLower(uuid)

	exists, err := repository.Exists(context, id)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, entity.NotExist().Err()
	}

	unlinked, err := deps.Links.Unlink(context, kind, id)
	if err != nil {
		return unlinked, err
	}

	if err := Remove(context, repository, id, entity); err != nil {
		return unlinked, err
	}

	deps.Forget(context, kind, id)
	return unlinked, nil
}

/*
Unreference rewrites every aggregate of repository that references the
shared entity of kind with the given uuid.

drop removes the reference from one aggregate; the aggregate is then stamped
as updated and saved.
*/
func Unreference[T interface {
	store.Document
	audit.Audited
}](context context.Context, deps Deps, repository *store.Repository[T], kind existence.Kind, uuid string, drop func(T)) (int, error) {
	criteria := store.Criteria{Equals: map[string]string{ReferenceFacet(kind, uuid): ReferenceMark}}

	_, total, err := repository.Search(context, criteria, 1, 0)
	if err != nil || total == 0 {
		return 0, err
	}

	referrers, _, err := repository.Search(context, criteria, total, 0)
	if err != nil {
		return 0, err
	}

	for index, referrer := range referrers {
		drop(referrer)
		deps.Stamper.Updated(context, referrer)

		if err := repository.Save(context, referrer); err != nil {
			return index, err
		}
	}

	deps.Logger.Info("references_unlinked",
		slog.String("referrer", repository.Kind()),
		slog.String("kind", string(kind)),
		slog.String("uuid", uuid),
		slog.Int("count", len(referrers)),
	)
	return len(referrers), nil
}
