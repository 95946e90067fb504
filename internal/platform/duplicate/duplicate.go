// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package duplicate deep-copies aggregate trees.

Ownership decides what is copied:

  - Owned children (seasons of a show, episodes of a season) are copied
    recursively and attached to the copy of their parent.
  - Shared references (genres, authors, pictures) are never copied. The copy
    points at the very same entities, which must still exist.

Every copied node receives a fresh id, a fresh uuid, a creation stamp and a
parent id pointing at the copy of its parent. Ids come from one contiguous
block, assigned in pre-order (parent before its children, children in their
original order). New trees created by an add operation go through the same
[Engine.Identify] step.

The engine only builds the copy in memory. Callers persist it with a single
atomic store write, so a failed duplication never leaves a partial tree.
*/
package duplicate

import (
	"context"
	"time"

	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/audit"
	"github.com/taibuivan/catalog/internal/platform/entity"
	"github.com/taibuivan/catalog/internal/platform/errcode"
	"github.com/taibuivan/catalog/internal/platform/existence"
	"github.com/taibuivan/catalog/internal/platform/identity"
	"github.com/taibuivan/catalog/pkg/uuid"
)

// Node is one node of a duplicable tree.
type Node interface {
	audit.Audited
	Entity() *entity.Base

	// Copy returns a new node holding the scalar attributes and the shared
	// references of the receiver, and no owned children.
	Copy() Node

	// Children returns the owned children in order.
	Children() []Node

	// Adopt appends child to the owned children.
	Adopt(child Node)
}

// Reference is a shared reference held by a node, with the violation
// reported when it no longer resolves.
type Reference struct {
	existence.Ref
	Field   string
	Missing errcode.Def
}

// Referrer is implemented by nodes holding shared references.
type Referrer interface {
	References() []Reference
}

// Observer is notified of every successful duplication.
type Observer interface {
	Duplicated(kind string, nodes int)
}

// Engine copies trees using an identity sequence and an existence resolver.
type Engine struct {
	sequence identity.Sequence
	resolver existence.Resolver
	clock    func() time.Time
	observer Observer
}

// NewEngine constructs an [Engine]. observer may be nil.
func NewEngine(sequence identity.Sequence, resolver existence.Resolver, observer Observer) *Engine {
	return &Engine{sequence: sequence, resolver: resolver, clock: time.Now, observer: observer}
}

// WithClock overrides the clock used for creation stamps.
func (engine *Engine) WithClock(clock func() time.Time) *Engine {
	engine.clock = clock
	return engine
}

/*
Tree deep-copies source and every owned descendant.

Parameters:
  - ctx: context.Context (Carries the acting user)
  - kind: string (Aggregate or child kind, for metrics)
  - source: Node (Root of the subtree to copy; never mutated)

Returns:
  - Node: The detached copy, ready to be persisted
  - error: VALIDATION_ERROR (404) if a shared reference no longer exists
*/
func (engine *Engine) Tree(ctx context.Context, kind string, source Node) (Node, error) {

	// 1. Every shared reference in the subtree must still resolve
	if err := engine.verify(ctx, source); err != nil {
		return nil, err
	}

	// 2. Copy the structure, then give every copied node a fresh identity
	copied := clone(source)
	if err := engine.Identify(ctx, copied, source.Entity().ParentID); err != nil {
		return nil, err
	}

	if engine.observer != nil {
		engine.observer.Duplicated(kind, Count(copied))
	}
	return copied, nil
}

/*
Identify gives a new subtree its identity before it is first persisted.

Every node receives an id from one contiguous block in pre-order, a fresh
uuid and a creation stamp; every owned child is pointed at its parent.

Parameters:
  - ctx: context.Context (Carries the acting user)
  - root: Node (Subtree root, a new aggregate or a new owned child)
  - parentID: int64 (Id of the node owning root, zero for aggregate roots)
*/
func (engine *Engine) Identify(ctx context.Context, root Node, parentID int64) error {
	block, err := identity.NewBlock(ctx, engine.sequence, Count(root))
	if err != nil {
		return apperr.Internal(err)
	}

	assign(root, parentID, block, audit.Actor(ctx), engine.clock().UTC())
	return nil
}

// Count returns the number of nodes in the subtree rooted at node.
func Count(node Node) int {
	total := 1
	for _, child := range node.Children() {
		total += Count(child)
	}
	return total
}

func clone(source Node) Node {
	copied := source.Copy()
	for _, child := range source.Children() {
		copied.Adopt(clone(child))
	}
	return copied
}

func assign(node Node, parentID int64, block *identity.Block, actor string, now time.Time) {
	base := node.Entity()
	base.ID = block.Next()
	base.UUID = uuid.New()
	base.ParentID = parentID
	base.Version = 0
	audit.StampCreate(node, actor, now)

	for _, child := range node.Children() {
		assign(child, base.ID, block, actor, now)
	}
}

func (engine *Engine) verify(ctx context.Context, root Node) error {
	var (
		violations []apperr.FieldError
		seen       = make(map[existence.Ref]bool)
	)

	var walk func(Node) error
	walk = func(node Node) error {
		if referrer, ok := node.(Referrer); ok {
			for _, reference := range referrer.References() {
				if seen[reference.Ref] {
					continue
				}
				seen[reference.Ref] = true

				exists, err := engine.resolver.Exists(ctx, reference.Kind, reference.ID)
				if err != nil {
					return apperr.Internal(err)
				}
				if !exists {
					violations = append(violations, reference.Missing.Violation(reference.Field))
				}
			}
		}

		for _, child := range node.Children() {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(root); err != nil {
		return err
	}
	if len(violations) > 0 {
		return apperr.ValidationFailed(violations...)
	}
	return nil
}

// Copy is [Engine.Tree] for a concrete node type.
func Copy[T Node](ctx context.Context, engine *Engine, kind string, source T) (T, error) {
	copied, err := engine.Tree(ctx, kind, source)
	if err != nil {
		var zero T
		return zero, err
	}
	return copied.(T), nil
}
