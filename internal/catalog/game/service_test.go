// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package game_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/catalog/facade/facadetest"
	"github.com/taibuivan/catalog/internal/catalog/game"
	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/pkg/pointer"
)

func newService(t *testing.T) *game.Service {
	env := facadetest.New(t)
	return game.NewService(game.NewRepository(env.Backend), env.Deps)
}

func gameRequest() game.Request {
	return game.Request{
		Name:       pointer.To("Gothic"),
		WikiEn:     pointer.To(""),
		WikiCz:     pointer.To(""),
		MediaCount: 1,
		Format:     pointer.To("steam"),
		Crack:      true,
		OtherData:  pointer.To(""),
		Note:       pointer.To(""),
	}
}

func cheatRequest(actions ...string) game.CheatRequest {
	request := game.CheatRequest{GameSetting: pointer.To("console"), CheatSetting: pointer.To("marvin"), Data: []*game.CheatDataRequest{}}
	for _, action := range actions {
		request.Data = append(request.Data, &game.CheatDataRequest{Action: pointer.To(action), Description: pointer.To(action + " description")})
	}
	return request
}

/*
TestService_Validation verifies the game rules, including the register lookup.
*/
func TestService_Validation(t *testing.T) {
	service := newService(t)

	request := gameRequest()
	request.MediaCount = 0
	request.Format = pointer.To("PAPER")
	request.Note = nil

	_, err := service.Add(context.Background(), request)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, []string{"GAME_MEDIA_COUNT_NOT_POSITIVE", "GAME_NOTE_NULL", "REGISTER_VALUE_NOT_EXIST"}, appErr.Codes())
	assert.Equal(t, "Count of media must be positive number.", appErr.Details[0].Message)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

/*
TestService_Cheat verifies the single-cheat rule and the cheat lifecycle.
*/
func TestService_Cheat(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	added, err := service.Add(ctx, gameRequest())
	require.NoError(t, err)
	assert.Equal(t, "STEAM", added.Format)

	_, err = service.FindCheat(ctx, added.UUID)
	assert.Equal(t, []string{"CHEAT_NOT_EXIST"}, apperr.As(err).Codes())

	cheat, err := service.AddCheat(ctx, added.UUID, cheatRequest("god", "noclip"))
	require.NoError(t, err)
	assert.Equal(t, added.ID, cheat.ParentID)
	assert.Equal(t, cheat.ID, cheat.Data[1].ParentID)

	_, err = service.AddCheat(ctx, added.UUID, cheatRequest())
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, []string{"CHEAT_ALREADY_EXIST"}, appErr.Codes())
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
	assert.Equal(t, "Cheat already exists.", appErr.Details[0].Message)

	updated, err := service.UpdateCheat(ctx, cheat.UUID, cheatRequest("god", "ammo", "health"))
	require.NoError(t, err)
	require.Len(t, updated.Data, 3)
	assert.Equal(t, cheat.Data[0].UUID, updated.Data[0].UUID)
	assert.Equal(t, cheat.Data[1].UUID, updated.Data[1].UUID)
	assert.Equal(t, "ammo", updated.Data[1].Action)

	require.NoError(t, service.RemoveCheat(ctx, cheat.UUID))
	_, err = service.GetCheat(ctx, cheat.UUID)
	assert.Equal(t, []string{"CHEAT_NOT_EXIST"}, apperr.As(err).Codes())

	_, err = service.AddCheat(ctx, added.UUID, cheatRequest("god"))
	assert.NoError(t, err)
}

/*
TestService_CheatValidation verifies that line defects are reported once per kind.
*/
func TestService_CheatValidation(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	added, err := service.Add(ctx, gameRequest())
	require.NoError(t, err)

	request := game.CheatRequest{
		GameSetting: nil,
		Data: []*game.CheatDataRequest{
			nil,
			{Action: pointer.To(""), Description: nil},
			{Action: pointer.To(" "), Description: pointer.To("x")},
		},
	}

	_, err = service.AddCheat(ctx, added.UUID, request)
	assert.Equal(t, []string{
		"CHEAT_GAME_SETTING_NULL",
		"CHEAT_CHEAT_SETTING_NULL",
		"CHEAT_DATA_CONTAIN_NULL",
		"CHEAT_DATA_ACTION_EMPTY",
		"CHEAT_DATA_DESCRIPTION_NULL",
	}, apperr.As(err).Codes())
}

/*
TestService_Duplicate verifies the game -> cheat -> data copy.
*/
func TestService_Duplicate(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	source, err := service.Add(ctx, gameRequest())
	require.NoError(t, err)
	_, err = service.AddCheat(ctx, source.UUID, cheatRequest("god", "noclip"))
	require.NoError(t, err)
	source, err = service.Get(ctx, source.UUID)
	require.NoError(t, err)

	copied, err := service.Duplicate(ctx, source.UUID)
	require.NoError(t, err)

	require.NotNil(t, copied.Cheat)
	assert.NotEqual(t, source.Cheat.UUID, copied.Cheat.UUID)
	assert.Equal(t, copied.ID, copied.Cheat.ParentID)
	require.Len(t, copied.Cheat.Data, 2)
	assert.Equal(t, "noclip", copied.Cheat.Data[1].Action)
	assert.Equal(t, copied.Cheat.ID, copied.Cheat.Data[1].ParentID)

	cheat, err := service.FindCheat(ctx, copied.UUID)
	require.NoError(t, err)
	assert.Equal(t, copied.Cheat.UUID, cheat.UUID)
}

/*
TestHandler_Statistics verifies the media count summary.
*/
func TestHandler_Statistics(t *testing.T) {
	service := newService(t)
	for i := 0; i < 2; i++ {
		_, err := service.Add(context.Background(), gameRequest())
		require.NoError(t, err)
	}

	recorder := httptest.NewRecorder()
	game.NewHandler(service).Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/statistics", nil))
	assert.JSONEq(t, `{"data":{"count":2,"media_count":2}}`, recorder.Body.String())
}

/*
TestService_WriteNotExist verifies that writes addressed to an unknown game or
cheat report NOT_EXIST together with the field violations.
*/
func TestService_WriteNotExist(t *testing.T) {
	ctx := context.Background()
	service := newService(t)
	const missing = "0191b3a0-0000-7000-8000-0000000000ff"

	request := gameRequest()
	request.Note = nil
	_, err := service.Update(ctx, missing, request)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
	assert.Equal(t, []string{"GAME_NOTE_NULL", "GAME_NOT_EXIST"}, appErr.Codes())

	cheat := cheatRequest("god")
	cheat.GameSetting = nil
	_, err = service.AddCheat(ctx, missing, cheat)
	assert.Equal(t, []string{"CHEAT_GAME_SETTING_NULL", "GAME_NOT_EXIST"}, apperr.As(err).Codes())

	_, err = service.UpdateCheat(ctx, missing, cheat)
	assert.Equal(t, []string{"CHEAT_GAME_SETTING_NULL", "CHEAT_NOT_EXIST"}, apperr.As(err).Codes())
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
}
