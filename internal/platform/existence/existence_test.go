// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package existence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/platform/existence"
)

func TestRegistry_Dispatch(t *testing.T) {
	registry := existence.NewRegistry().
		Register(existence.KindGenre, func(_ context.Context, id string) (bool, error) { return id == "drama", nil })

	ok, err := registry.Exists(context.Background(), existence.KindGenre, "drama")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = registry.Exists(context.Background(), existence.KindGenre, "western")
	require.NoError(t, err)
	assert.False(t, ok)

	// Unknown kinds are an error, never a silent answer
	_, err = registry.Exists(context.Background(), existence.KindAuthor, "anyone")
	assert.Error(t, err)
}

func TestNopForgetter(t *testing.T) {
	assert.NoError(t, existence.NopForgetter{}.Forget(context.Background(), existence.KindGenre, "x"))
}
