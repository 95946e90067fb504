// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package picture_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/catalog/facade/facadetest"
	"github.com/taibuivan/catalog/internal/catalog/picture"
	"github.com/taibuivan/catalog/internal/platform/apperr"
)

/*
TestService_Lifecycle verifies add, duplicate and remove of a picture.
*/
func TestService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	env := facadetest.New(t)
	service := picture.NewService(picture.NewRepository(env.Backend), env.Deps)

	_, err := service.Add(ctx, picture.Request{})
	assert.True(t, apperr.As(err).HasCode("PICTURE_CONTENT_NULL"))

	added, err := service.Add(ctx, picture.Request{Content: []byte{0x89, 0x50, 0x4e, 0x47}})
	require.NoError(t, err)

	copied, err := service.Duplicate(ctx, added.UUID)
	require.NoError(t, err)
	assert.Equal(t, added.Content, copied.Content)

	copied.Content[0] = 0
	stored, err := service.Get(ctx, added.UUID)
	require.NoError(t, err)
	assert.Equal(t, byte(0x89), stored.Content[0])

	require.NoError(t, service.Remove(ctx, added.UUID))
	_, err = service.Get(ctx, added.UUID)
	assert.True(t, apperr.As(err).HasCode("PICTURE_NOT_EXIST"))

	result, err := service.Search(ctx, picture.Filter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, result.Data, 1)
}

/*
TestHandler_Base64 verifies that content travels as base64 JSON.
*/
func TestHandler_Base64(t *testing.T) {
	env := facadetest.New(t)
	router := picture.NewHandler(picture.NewService(picture.NewRepository(env.Backend), env.Deps)).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"content":"iVBORw=="}`)))
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"content":"iVBORw=="`)
}

/*
TestService_UpdateNotExist verifies that a missing picture stays a 404 next to field violations.
*/
func TestService_UpdateNotExist(t *testing.T) {
	env := facadetest.New(t)
	service := picture.NewService(picture.NewRepository(env.Backend), env.Deps)

	_, err := service.Update(context.Background(), "0191b3a0-0000-7000-8000-000000000001", picture.Request{})
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, []string{"PICTURE_CONTENT_NULL", "PICTURE_NOT_EXIST"}, appErr.Codes())
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}
