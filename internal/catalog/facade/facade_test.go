// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facade_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/catalog/facade"
	"github.com/taibuivan/catalog/internal/platform/errcode"
	"github.com/taibuivan/catalog/internal/platform/existence"
)

type countingUnlinker struct {
	calls []string
	count int
	err   error
}

func (unlinker *countingUnlinker) Unlink(_ context.Context, kind existence.Kind, uuid string) (int, error) {
	unlinker.calls = append(unlinker.calls, facade.ReferenceFacet(kind, uuid))
	return unlinker.count, unlinker.err
}

/*
TestFound verifies that only a lone NOT_EXIST of the entity counts as a miss.
*/
func TestFound(t *testing.T) {
	entity := errcode.NewEntity("GENRE", "Genre")
	other := errcode.NewEntity("MOVIE", "Movie")

	found, err := facade.Found(nil, entity)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = facade.Found(entity.NotExist().Err(), entity)
	require.NoError(t, err)
	assert.False(t, found)

	var failure error = other.NotExist().Err()
	found, err = facade.Found(failure, entity)
	assert.Same(t, failure, err)
	assert.False(t, found)

	failure = errors.New("connection reset")
	_, err = facade.Found(failure, entity)
	assert.Same(t, failure, err)
}

/*
TestLinks_Unlink verifies routing by kind and the summed count.
*/
func TestLinks_Unlink(t *testing.T) {
	ctx := context.Background()
	movies := &countingUnlinker{count: 2}
	books := &countingUnlinker{count: 1}

	links := facade.NewLinks()
	links.Register(movies, existence.KindGenre, existence.KindPicture)
	links.Register(books, existence.KindAuthor)

	count, err := links.Unlink(ctx, existence.KindGenre, "g1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"genre:g1"}, movies.calls)
	assert.Empty(t, books.calls)

	books.err = errors.New("save failed")
	_, err = links.Unlink(ctx, existence.KindAuthor, "a1")
	assert.EqualError(t, err, "save failed")

	var nothing *facade.Links
	count, err = nothing.Unlink(ctx, existence.KindGenre, "g1")
	require.NoError(t, err)
	assert.Zero(t, count)
}
