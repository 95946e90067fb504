// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package existence answers one narrow question for the validation pipeline and the
duplication engine: does the entity (or register value) behind a reference exist?

Architecture:

  - Resolver: The boolean-existence contract consumed by the engine.
  - Registry: Routes each [Kind] to the storage that backs it.
  - Cached: Fronts any resolver with Redis for positive lookups.

A negative answer is reported by callers as NOT_FOUND; it is never silently
defaulted. An unregistered kind is an error, not a "no".
*/
package existence

import (
	"context"
	"fmt"
	"sync"
)

// # Kinds

// Kind identifies the family of shared references a lookup targets.
type Kind string

const (
	KindAuthor   Kind = "author"
	KindGenre    Kind = "genre"
	KindPicture  Kind = "picture"
	KindRegister Kind = "register"
)

// Ref is a shared (non-owned) reference held by an aggregate node.
type Ref struct {
	Kind Kind
	ID   string
}

// # Contracts

// Resolver confirms that a referenced entity or register value exists.
type Resolver interface {
	Exists(ctx context.Context, kind Kind, id string) (bool, error)
}

// Checker resolves existence for a single kind.
type Checker func(ctx context.Context, id string) (bool, error)

// Forgetter drops any cached knowledge about a reference. It is called by the
// facades after removing a shared entity.
type Forgetter interface {
	Forget(ctx context.Context, kind Kind, id string) error
}

// NopForgetter is used when no cache sits in front of the resolver.
type NopForgetter struct{}

// Forget implements [Forgetter].
func (NopForgetter) Forget(context.Context, Kind, string) error { return nil }

// # Registry

// Registry dispatches lookups to per-kind checkers.
//
// # Concurrency
//
// Registry is safe for concurrent use. Checkers are normally registered once
// during startup wiring.
type Registry struct {
	mu       sync.RWMutex
	checkers map[Kind]Checker
}

// NewRegistry constructs an empty [Registry].
func NewRegistry() *Registry {
	return &Registry{checkers: make(map[Kind]Checker)}
}

// Register binds checker to kind, replacing any previous binding.
func (registry *Registry) Register(kind Kind, checker Checker) *Registry {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	registry.checkers[kind] = checker
	return registry
}

// Exists implements [Resolver].
func (registry *Registry) Exists(ctx context.Context, kind Kind, id string) (bool, error) {
	registry.mu.RLock()
	checker, ok := registry.checkers[kind]
	registry.mu.RUnlock()

	if !ok {
		return false, fmt.Errorf("existence: no checker registered for kind %q", kind)
	}

	return checker(ctx, id)
}
