// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package show

import (
	"net/http"

	requestutil "github.com/taibuivan/catalog/internal/platform/request"
	"github.com/taibuivan/catalog/internal/platform/respond"
)

func (handler *Handler) listSeasons(writer http.ResponseWriter, request *http.Request) {
	seasons, err := handler.service.ListSeasons(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, seasons)
}

func (handler *Handler) getSeason(writer http.ResponseWriter, request *http.Request) {
	season, err := handler.service.GetSeason(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, season)
}

func (handler *Handler) addSeason(writer http.ResponseWriter, request *http.Request) {
	var input SeasonRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	season, err := handler.service.AddSeason(request.Context(), requestutil.UUID(request, "uuid"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, season)
}

func (handler *Handler) updateSeason(writer http.ResponseWriter, request *http.Request) {
	var input SeasonRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	season, err := handler.service.UpdateSeason(request.Context(), requestutil.UUID(request, "uuid"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, season)
}

func (handler *Handler) removeSeason(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.RemoveSeason(request.Context(), requestutil.UUID(request, "uuid")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) duplicateSeason(writer http.ResponseWriter, request *http.Request) {
	season, err := handler.service.DuplicateSeason(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, season)
}
