// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package show_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/catalog/facade/facadetest"
	"github.com/taibuivan/catalog/internal/catalog/genre"
	"github.com/taibuivan/catalog/internal/catalog/picture"
	"github.com/taibuivan/catalog/internal/catalog/show"
	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/existence"
	"github.com/taibuivan/catalog/pkg/pointer"
)

func newService(t *testing.T) *show.Service {
	env := facadetest.New(t)
	env.Registry.Register(existence.KindGenre, genre.NewRepository(env.Backend).Checker())
	env.Registry.Register(existence.KindPicture, picture.NewRepository(env.Backend).Checker())
	return show.NewService(show.NewRepository(env.Backend), env.Deps)
}

func showRequest() show.Request {
	return show.Request{
		CzechName:    pointer.To("Přátelé"),
		OriginalName: pointer.To("Friends"),
		Csfd:         pointer.To(""),
		ImdbCode:     108778,
		WikiEn:       pointer.To(""),
		WikiCz:       pointer.To(""),
		Note:         pointer.To(""),
		Genres:       []*string{},
	}
}

func seasonRequest(number int) show.SeasonRequest {
	return show.SeasonRequest{
		Number:    number,
		StartYear: 1994 + number,
		EndYear:   1995 + number,
		Language:  pointer.To("en"),
		Subtitles: []*string{pointer.To("CZ")},
		Note:      pointer.To(""),
	}
}

func episodeRequest(number int) show.EpisodeRequest {
	return show.EpisodeRequest{Number: number, Name: pointer.To(fmt.Sprintf("Episode %d", number)), Length: 22, Note: pointer.To("")}
}

// seed stores a show with the given number of seasons, each with episodes episodes.
func seed(t *testing.T, service *show.Service, seasons, episodes int) *show.Show {
	ctx := context.Background()

	added, err := service.Add(ctx, showRequest())
	require.NoError(t, err)

	for s := 1; s <= seasons; s++ {
		season, err := service.AddSeason(ctx, added.UUID, seasonRequest(s))
		require.NoError(t, err)

		for e := 1; e <= episodes; e++ {
			_, err := service.AddEpisode(ctx, season.UUID, episodeRequest(e))
			require.NoError(t, err)
		}
	}

	stored, err := service.Get(ctx, added.UUID)
	require.NoError(t, err)
	return stored
}

/*
TestService_Duplicate verifies the deep copy of a show with 2 seasons of 3 episodes.
*/
func TestService_Duplicate(t *testing.T) {
	ctx := context.Background()
	service := newService(t)
	source := seed(t, service, 2, 3)

	copied, err := service.Duplicate(ctx, source.UUID)
	require.NoError(t, err)

	assert.Equal(t, show.Statistics{Seasons: 2, Episodes: 6, Length: 132}, copied.Statistics())
	assert.NotEqual(t, source.UUID, copied.UUID)

	uuids := map[string]bool{}
	for _, node := range append(source.Descendants(), copied.Descendants()...) {
		uuids[node.UUID] = true
	}
	assert.Len(t, uuids, 16)

	for s, season := range copied.Seasons {
		assert.Equal(t, copied.ID, season.ParentID)
		assert.Equal(t, source.Seasons[s].Number, season.Number)
		for e, episode := range season.Episodes {
			assert.Equal(t, season.ID, episode.ParentID)
			assert.Equal(t, source.Seasons[s].Episodes[e].Name, episode.Name)
		}
	}

	count, err := service.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	original, err := service.Statistics(ctx, source.UUID)
	require.NoError(t, err)
	assert.Equal(t, 6, original.Episodes)
}

/*
TestService_Duplicate_Isolation verifies that changes to the copy leave the source untouched.
*/
func TestService_Duplicate_Isolation(t *testing.T) {
	ctx := context.Background()
	service := newService(t)
	source := seed(t, service, 1, 2)

	copied, err := service.Duplicate(ctx, source.UUID)
	require.NoError(t, err)

	_, err = service.UpdateEpisode(ctx, copied.Seasons[0].Episodes[0].UUID, show.EpisodeRequest{Number: 9, Name: pointer.To("Changed"), Note: pointer.To("")})
	require.NoError(t, err)
	require.NoError(t, service.RemoveEpisode(ctx, copied.Seasons[0].Episodes[1].UUID))

	episodes, err := service.ListEpisodes(ctx, source.Seasons[0].UUID)
	require.NoError(t, err)
	require.Len(t, episodes, 2)
	assert.Equal(t, "Episode 1", episodes[0].Name)

	episodes, err = service.ListEpisodes(ctx, copied.Seasons[0].UUID)
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, "Changed", episodes[0].Name)
}

/*
TestService_DuplicateSeason verifies that a season copy stays in the same show.
*/
func TestService_DuplicateSeason(t *testing.T) {
	ctx := context.Background()
	service := newService(t)
	source := seed(t, service, 1, 3)

	copied, err := service.DuplicateSeason(ctx, source.Seasons[0].UUID)
	require.NoError(t, err)
	assert.Equal(t, source.ID, copied.ParentID)
	assert.Len(t, copied.Episodes, 3)

	seasons, err := service.ListSeasons(ctx, source.UUID)
	require.NoError(t, err)
	require.Len(t, seasons, 2)
	assert.Equal(t, copied.UUID, seasons[1].UUID)

	episode, err := service.DuplicateEpisode(ctx, copied.Episodes[2].UUID)
	require.NoError(t, err)
	assert.Equal(t, copied.ID, episode.ParentID)

	season, err := service.GetSeason(ctx, copied.UUID)
	require.NoError(t, err)
	assert.Len(t, season.Episodes, 4)
}

/*
TestService_SeasonValidation verifies the season rules.
*/
func TestService_SeasonValidation(t *testing.T) {
	ctx := context.Background()
	service := newService(t)
	source := seed(t, service, 0, 0)

	request := seasonRequest(1)
	request.Number = 0
	request.StartYear, request.EndYear = 2001, 2000
	request.Language = pointer.To("XX")
	request.Note = nil

	_, err := service.AddSeason(ctx, source.UUID, request)
	assert.Equal(t, []string{
		"SEASON_NUMBER_NOT_POSITIVE",
		"SEASON_YEARS_NOT_VALID",
		"SEASON_NOTE_NULL",
		"REGISTER_VALUE_NOT_EXIST",
	}, apperr.As(err).Codes())

	_, err = service.AddSeason(ctx, "0191b3a0-0000-7000-8000-0000000000ff", seasonRequest(1))
	assert.Equal(t, []string{"SHOW_NOT_EXIST"}, apperr.As(err).Codes())
}

/*
TestService_ChildNotExist verifies the NOT_EXIST codes of seasons and episodes.
*/
func TestService_ChildNotExist(t *testing.T) {
	ctx := context.Background()
	service := newService(t)
	source := seed(t, service, 1, 1)

	_, err := service.GetSeason(ctx, source.Seasons[0].Episodes[0].UUID)
	assert.Equal(t, []string{"SEASON_NOT_EXIST"}, apperr.As(err).Codes())

	_, err = service.GetEpisode(ctx, source.Seasons[0].UUID)
	assert.Equal(t, []string{"EPISODE_NOT_EXIST"}, apperr.As(err).Codes())

	require.NoError(t, service.RemoveSeason(ctx, source.Seasons[0].UUID))
	_, err = service.GetEpisode(ctx, source.Seasons[0].Episodes[0].UUID)
	assert.Equal(t, []string{"EPISODE_NOT_EXIST"}, apperr.As(err).Codes())

	_, err = service.UpdateEpisode(ctx, "bogus", episodeRequest(1))
	assert.Equal(t, []string{"EPISODE_NOT_EXIST"}, apperr.As(err).Codes())
}

/*
TestService_WriteNotExist verifies that writes addressed to an unknown show,
season or episode report NOT_EXIST together with the field violations.
*/
func TestService_WriteNotExist(t *testing.T) {
	ctx := context.Background()
	service := newService(t)
	const missing = "0191b3a0-0000-7000-8000-0000000000ff"

	invalidShow := showRequest()
	invalidShow.CzechName = pointer.To("")
	invalidSeason := seasonRequest(0)
	invalidEpisode := episodeRequest(0)

	tests := []struct {
		name  string
		write func() error
		codes []string
	}{
		{"update show", func() error {
			_, err := service.Update(ctx, missing, invalidShow)
			return err
		}, []string{"SHOW_CZECH_NAME_EMPTY", "SHOW_NOT_EXIST"}},
		{"add season", func() error {
			_, err := service.AddSeason(ctx, missing, invalidSeason)
			return err
		}, []string{"SEASON_NUMBER_NOT_POSITIVE", "SHOW_NOT_EXIST"}},
		{"update season", func() error {
			_, err := service.UpdateSeason(ctx, missing, invalidSeason)
			return err
		}, []string{"SEASON_NUMBER_NOT_POSITIVE", "SEASON_NOT_EXIST"}},
		{"add episode", func() error {
			_, err := service.AddEpisode(ctx, missing, invalidEpisode)
			return err
		}, []string{"EPISODE_NUMBER_NOT_POSITIVE", "SEASON_NOT_EXIST"}},
		{"update episode", func() error {
			_, err := service.UpdateEpisode(ctx, missing, invalidEpisode)
			return err
		}, []string{"EPISODE_NUMBER_NOT_POSITIVE", "EPISODE_NOT_EXIST"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := apperr.As(tt.write())
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
			assert.Equal(t, tt.codes, appErr.Codes())
		})
	}
}

/*
TestService_GenreRemoval verifies that removing a genre unlinks it from shows
and that the show stays duplicable.
*/
func TestService_GenreRemoval(t *testing.T) {
	ctx := context.Background()
	env := facadetest.New(t)

	genres := genre.NewRepository(env.Backend)
	env.Registry.Register(existence.KindGenre, genres.Checker())
	env.Registry.Register(existence.KindPicture, picture.NewRepository(env.Backend).Checker())

	genreService := genre.NewService(genres, env.Deps)
	service := show.NewService(show.NewRepository(env.Backend), env.Deps)
	env.Deps.Links.Register(service, existence.KindGenre, existence.KindPicture)

	sitcom, err := genreService.Add(ctx, genre.Request{Name: pointer.To("Sitcom")})
	require.NoError(t, err)

	request := showRequest()
	request.Genres = []*string{pointer.To(sitcom.UUID)}
	source, err := service.Add(ctx, request)
	require.NoError(t, err)
	_, err = service.AddSeason(ctx, source.UUID, seasonRequest(1))
	require.NoError(t, err)

	require.NoError(t, genreService.Remove(ctx, sitcom.UUID))

	stored, err := service.Get(ctx, source.UUID)
	require.NoError(t, err)
	assert.Empty(t, stored.Genres)
	require.Len(t, stored.Seasons, 1)

	copied, err := service.Duplicate(ctx, source.UUID)
	require.NoError(t, err)
	assert.Len(t, copied.Seasons, 1)
}

/*
TestHandler_Seasons verifies the nested season routes.
*/
func TestHandler_Seasons(t *testing.T) {
	service := newService(t)
	source := seed(t, service, 2, 1)
	handler := show.NewHandler(service)

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/"+source.UUID+"/statistics", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"seasons_count":2,"episodes_count":2,"length":44}}`, recorder.Body.String())

	recorder = httptest.NewRecorder()
	handler.SeasonRoutes().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/"+source.Seasons[1].UUID+"/duplicate", nil))
	assert.Equal(t, http.StatusCreated, recorder.Code)

	recorder = httptest.NewRecorder()
	handler.EpisodeRoutes().ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/"+source.Seasons[0].Episodes[0].UUID, nil))
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
