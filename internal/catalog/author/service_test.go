// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/catalog/author"
	"github.com/taibuivan/catalog/internal/catalog/facade/facadetest"
	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/pkg/pointer"
)

/*
TestService_Validation verifies that every name violation is reported at once.
*/
func TestService_Validation(t *testing.T) {
	env := facadetest.New(t)
	service := author.NewService(author.NewRepository(env.Backend), env.Deps)

	_, err := service.Add(context.Background(), author.Request{
		FirstName:  nil,
		MiddleName: pointer.To(" "),
		LastName:   pointer.To(""),
	})

	assert.Equal(t, []string{"AUTHOR_FIRST_NAME_NULL", "AUTHOR_LAST_NAME_EMPTY", "AUTHOR_MIDDLE_NAME_EMPTY"}, apperr.As(err).Codes())
}

/*
TestService_SearchByFullName verifies that the middle name takes part in search.
*/
func TestService_SearchByFullName(t *testing.T) {
	ctx := context.Background()
	env := facadetest.New(t)
	service := author.NewService(author.NewRepository(env.Backend), env.Deps)

	_, err := service.Add(ctx, author.Request{FirstName: pointer.To("John"), MiddleName: pointer.To("Ronald Reuel"), LastName: pointer.To("Tolkien")})
	require.NoError(t, err)
	_, err = service.Add(ctx, author.Request{FirstName: pointer.To("Karel"), LastName: pointer.To("Čapek")})
	require.NoError(t, err)

	result, err := service.Search(ctx, author.Filter{Name: "reuel", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "John Ronald Reuel Tolkien", result.Data[0].FullName())

	result, err = service.Search(ctx, author.Filter{Name: "capek", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Nil(t, result.Data[0].MiddleName)
}

/*
TestService_UpdateNotExist verifies that a missing author stays a 404 next to field violations.
*/
func TestService_UpdateNotExist(t *testing.T) {
	env := facadetest.New(t)
	service := author.NewService(author.NewRepository(env.Backend), env.Deps)

	for _, uuid := range []string{"0191b3a0-0000-7000-8000-000000000001", "not-a-uuid"} {
		_, err := service.Update(context.Background(), uuid, author.Request{LastName: pointer.To("Čapek")})
		appErr := apperr.As(err)
		require.NotNil(t, appErr, uuid)
		assert.Equal(t, []string{"AUTHOR_FIRST_NAME_NULL", "AUTHOR_NOT_EXIST"}, appErr.Codes(), uuid)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus, uuid)
	}
}
