// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package music_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/catalog/facade/facadetest"
	"github.com/taibuivan/catalog/internal/catalog/music"
	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/pkg/pointer"
)

func newService(t *testing.T) *music.Service {
	env := facadetest.New(t)
	return music.NewService(music.NewRepository(env.Backend), env.Deps)
}

func musicRequest() music.Request {
	return music.Request{Name: pointer.To("Abbey Road"), WikiEn: pointer.To(""), WikiCz: pointer.To(""), MediaCount: 1, Note: pointer.To("")}
}

/*
TestService_SongLength verifies that a zero length is accepted and a negative one is not.
*/
func TestService_SongLength(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	album, err := service.Add(ctx, musicRequest())
	require.NoError(t, err)

	_, err = service.AddSong(ctx, album.UUID, music.SongRequest{Name: pointer.To("Her Majesty"), Length: 0, Note: pointer.To("")})
	require.NoError(t, err)

	_, err = service.AddSong(ctx, album.UUID, music.SongRequest{Name: pointer.To("Something"), Length: -1, Note: pointer.To("")})
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, []string{"SONG_LENGTH_NEGATIVE"}, appErr.Codes())
	assert.Equal(t, "Length of song mustn't be negative number.", appErr.Details[0].Message)

	_, err = service.Add(ctx, music.Request{MediaCount: -3})
	assert.Equal(t, []string{
		"MUSIC_NAME_NULL",
		"MUSIC_WIKI_EN_NULL",
		"MUSIC_WIKI_CZ_NULL",
		"MUSIC_MEDIA_COUNT_NOT_POSITIVE",
		"MUSIC_NOTE_NULL",
	}, apperr.As(err).Codes())
}

/*
TestService_Duplicate verifies the copy of an album with its songs.
*/
func TestService_Duplicate(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	album, err := service.Add(ctx, musicRequest())
	require.NoError(t, err)
	for _, name := range []string{"Come Together", "Something"} {
		_, err := service.AddSong(ctx, album.UUID, music.SongRequest{Name: pointer.To(name), Length: 200, Note: pointer.To("")})
		require.NoError(t, err)
	}

	copied, err := service.Duplicate(ctx, album.UUID)
	require.NoError(t, err)
	assert.Equal(t, 400, copied.Length())
	require.Len(t, copied.Songs, 2)
	assert.Equal(t, "Come Together", copied.Songs[0].Name)
	assert.Equal(t, copied.ID, copied.Songs[1].ParentID)

	require.NoError(t, service.RemoveSong(ctx, copied.Songs[0].UUID))
	songs, err := service.ListSongs(ctx, album.UUID)
	require.NoError(t, err)
	assert.Len(t, songs, 2)

	require.NoError(t, service.Remove(ctx, copied.UUID))
	_, err = service.GetSong(ctx, copied.Songs[1].UUID)
	assert.Equal(t, []string{"SONG_NOT_EXIST"}, apperr.As(err).Codes())
}

/*
TestHandler_Songs verifies the song routes.
*/
func TestHandler_Songs(t *testing.T) {
	service := newService(t)
	album, err := service.Add(context.Background(), musicRequest())
	require.NoError(t, err)

	handler := music.NewHandler(service)

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/"+album.UUID+"/songs", strings.NewReader(`{"name":"Octopus's Garden","length":171,"note":""}`)))
	assert.Equal(t, http.StatusCreated, recorder.Code)

	recorder = httptest.NewRecorder()
	handler.SongRoutes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/not-a-uuid", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "SONG_NOT_EXIST")
}

/*
TestService_WriteNotExist verifies that writes addressed to an unknown music or
song report NOT_EXIST together with the field violations.
*/
func TestService_WriteNotExist(t *testing.T) {
	ctx := context.Background()
	service := newService(t)
	const missing = "0191b3a0-0000-7000-8000-0000000000ff"

	request := musicRequest()
	request.MediaCount = 0
	_, err := service.Update(ctx, missing, request)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
	assert.Equal(t, []string{"MUSIC_MEDIA_COUNT_NOT_POSITIVE", "MUSIC_NOT_EXIST"}, appErr.Codes())

	song := music.SongRequest{Name: pointer.To("Something"), Length: -1, Note: pointer.To("")}
	_, err = service.AddSong(ctx, missing, song)
	assert.Equal(t, []string{"SONG_LENGTH_NEGATIVE", "MUSIC_NOT_EXIST"}, apperr.As(err).Codes())

	_, err = service.UpdateSong(ctx, missing, song)
	assert.Equal(t, []string{"SONG_LENGTH_NEGATIVE", "SONG_NOT_EXIST"}, apperr.As(err).Codes())
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
}
