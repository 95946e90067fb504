// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package facadetest wires catalog services against the memory store for tests.
package facadetest

import (
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/taibuivan/catalog/internal/catalog/facade"
	"github.com/taibuivan/catalog/internal/catalog/register"
	"github.com/taibuivan/catalog/internal/platform/audit"
	"github.com/taibuivan/catalog/internal/platform/duplicate"
	"github.com/taibuivan/catalog/internal/platform/existence"
	"github.com/taibuivan/catalog/internal/platform/identity"
	"github.com/taibuivan/catalog/internal/platform/store"
)

// Start is the first instant returned by [Env.Clock].
var Start = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// Env is a fully wired in-memory catalog.
type Env struct {
	Backend  *store.Memory
	Registry *existence.Registry
	Deps     facade.Deps

	ticks atomic.Int64
}

// New returns an [Env] whose registry already knows the default registers.
func New(t *testing.T) *Env {
	t.Helper()

	env := &Env{
		Backend:  store.NewMemory(),
		Registry: existence.NewRegistry(),
	}
	env.Registry.Register(existence.KindRegister, register.Default().Exists)

	engine := duplicate.NewEngine(identity.NewMemorySequence(1), env.Registry, nil).WithClock(env.Clock)
	env.Deps = facade.Deps{
		Resolver:  env.Registry,
		Forgetter: existence.NopForgetter{},
		Links:     facade.NewLinks(),
		Engine:    engine,
		Stamper:   audit.NewStamper(env.Clock),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return env
}

// Clock advances one second on every call.
func (env *Env) Clock() time.Time {
	return Start.Add(time.Duration(env.ticks.Add(1)-1) * time.Second)
}
