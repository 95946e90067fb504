// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package facade holds the orchestration shared by every catalog service.

A catalog operation always runs the same steps:

 1. Validate the request (collect every violation, then resolve references).
 2. Load the aggregate by uuid, reporting <ENTITY>_NOT_EXIST when absent.
 3. Mutate, stamp and persist the aggregate in a single store write.

The per-aggregate packages keep their own field rules and mappings; this
package only removes the plumbing they would otherwise repeat.
*/
package facade

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/audit"
	"github.com/taibuivan/catalog/internal/platform/duplicate"
	"github.com/taibuivan/catalog/internal/platform/errcode"
	"github.com/taibuivan/catalog/internal/platform/existence"
	"github.com/taibuivan/catalog/internal/platform/store"
	"github.com/taibuivan/catalog/internal/platform/validate"
	"github.com/taibuivan/catalog/pkg/pagination"
)

// Deps are the collaborators shared by every catalog service.
type Deps struct {
	// Resolver answers existence lookups for shared references.
	Resolver existence.Resolver

	// Forgetter drops cached existence answers after a shared entity is removed.
	Forgetter existence.Forgetter

	// Links unlinks a removed shared entity from the aggregates referencing it.
	Links *Links

	// Engine assigns identities to new trees and duplicates existing ones.
	Engine *duplicate.Engine

	// Stamper stamps audit metadata with the request actor.
	Stamper *audit.Stamper

	Logger *slog.Logger
}

// Validator returns a new [validate.Validator] whose year bounds follow the stamper clock.
func (deps Deps) Validator() *validate.Validator {
	return validate.New().WithClock(deps.Stamper.Now)
}

// Forget drops cached knowledge about a removed shared entity.
//
// A cache failure is logged, not returned: the entity is already gone and
// positive answers expire on their own.
func (deps Deps) Forget(context context.Context, kind existence.Kind, uuid string) {
	if deps.Forgetter == nil {
		return
	}

	if err := deps.Forgetter.Forget(context, kind, uuid); err != nil {
		deps.Logger.Warn("existence_forget_failed",
			slog.String("kind", string(kind)),
			slog.String("uuid", uuid),
			slog.Any("error", err),
		)
	}
}

// # Loading

/*
Load fetches the aggregate with the given uuid.

Parameters:
  - context: context.Context
  - repository: *store.Repository[T]
  - uuid: string (Root uuid as received from the client)
  - entity: errcode.Entity (Names the NOT_EXIST violation)

Returns:
  - T: The decoded aggregate
  - error: <ENTITY>_NOT_EXIST (404) for unknown or malformed uuids
*/
func Load[T store.Document](context context.Context, repository *store.Repository[T], uuid string, entity errcode.Entity) (T, error) {
	var zero T
	if !validate.IsUUID(uuid) {
		return zero, entity.NotExist().Err()
	}

	doc, err := repository.Get(context, strings.ToLower(uuid))
	if errors.Is(err, store.ErrNotFound) {
		return zero, entity.NotExist().Err()
	}
	return doc, err
}

// LoadByNode fetches the aggregate owning the node with the given uuid.
// Unknown nodes are reported with the NOT_EXIST violation of entity.
func LoadByNode[T store.Document](context context.Context, repository *store.Repository[T], nodeUUID string, entity errcode.Entity) (T, error) {
	var zero T
	if !validate.IsUUID(nodeUUID) {
		return zero, entity.NotExist().Err()
	}

	doc, err := repository.GetByNode(context, strings.ToLower(nodeUUID))
	if errors.Is(err, store.ErrNotFound) {
		return zero, entity.NotExist().Err()
	}
	return doc, err
}

/*
Found separates a missing target from a failed load.

A write addressed to an unknown uuid still validates its request, so that the
NOT_EXIST violation is reported together with every field violation.

Parameters:
  - err: error (Result of loading the target)
  - entity: errcode.Entity (Kind of the target)

Returns:
  - bool: Whether the target was loaded
  - error: err, unless it is exactly the NOT_EXIST violation of entity
*/
func Found(err error, entity errcode.Entity) (bool, error) {
	if err == nil {
		return true, nil
	}

	var appErr *apperr.AppError
	if errors.As(err, &appErr) && len(appErr.Details) == 1 && appErr.HasCode(entity.NotExist().Code) {
		return false, nil
	}
	return false, err
}

// Settle reports the NOT_EXIST violation of entity when the target was not
// found, then resolves the references queued on validator.
func Settle(context context.Context, deps Deps, validator *validate.Validator, entity errcode.Entity, found bool) error {
	validator.Check(entity.NotExist(), "", !found)
	return validator.Validate(context, deps.Resolver)
}

// Remove deletes the aggregate with the given uuid and its owned subtree.
func Remove[T store.Document](context context.Context, repository *store.Repository[T], uuid string, entity errcode.Entity) error {
	if !validate.IsUUID(uuid) {
		return entity.NotExist().Err()
	}

	err := repository.Delete(context, strings.ToLower(uuid))
	if errors.Is(err, store.ErrNotFound) {
		return entity.NotExist().Err()
	}
	return err
}

// # Searching

/*
Search returns one page of the aggregates matching criteria.

Parameters:
  - context: context.Context
  - repository: *store.Repository[T]
  - criteria: store.Criteria (Facet predicates)
  - page: int (1-indexed, PAGE_NOT_POSITIVE otherwise)
  - limit: int (LIMIT_NOT_POSITIVE otherwise)

Returns:
  - pagination.Result[T]: The page, empty when page lies past the end
  - error: VALIDATION_ERROR (400) for invalid paging
*/
func Search[T store.Document](context context.Context, repository *store.Repository[T], criteria store.Criteria, page, limit int) (pagination.Result[T], error) {
	if err := validate.New().Paging(page, limit).Err(); err != nil {
		return pagination.Result[T]{}, err
	}

	window := pagination.Paginate(0, page, limit)
	docs, total, err := repository.Search(context, criteria, limit, window.Offset)
	if err != nil {
		return pagination.Result[T]{}, err
	}

	return pagination.NewResult(docs, page, limit, total), nil
}

// # Writing

// Create assigns identities and creation stamps to a new aggregate and saves it.
func Create[T interface {
	store.Document
	duplicate.Node
}](context context.Context, deps Deps, repository *store.Repository[T], doc T) error {
	if err := deps.Engine.Identify(context, doc, 0); err != nil {
		return err
	}
	return repository.Save(context, doc)
}

// Attach assigns identities and creation stamps to a new owned subtree of parent.
// The caller appends child to the parent and saves the aggregate.
func Attach(context context.Context, deps Deps, parent duplicate.Node, child duplicate.Node) error {
	return deps.Engine.Identify(context, child, parent.Entity().ID)
}

/*
Duplicate deep-copies the aggregate with the given uuid and saves the copy.

Parameters:
  - context: context.Context
  - deps: Deps
  - repository: *store.Repository[T]
  - uuid: string (Source root uuid)
  - entity: errcode.Entity (Names the NOT_EXIST violation)

Returns:
  - T: The persisted copy
  - error: <ENTITY>_NOT_EXIST (404), a missing shared reference (404) or a store failure
*/
func Duplicate[T interface {
	store.Document
	duplicate.Node
}](context context.Context, deps Deps, repository *store.Repository[T], uuid string, entity errcode.Entity) (T, error) {
	var zero T

	source, err := Load(context, repository, uuid, entity)
	if err != nil {
		return zero, err
	}

	copied, err := duplicate.Copy(context, deps.Engine, repository.Kind(), source)
	if err != nil {
		return zero, err
	}

	if err := repository.Save(context, copied); err != nil {
		return zero, err
	}
	return copied, nil
}
