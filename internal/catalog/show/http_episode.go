// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package show

import (
	"net/http"

	requestutil "github.com/taibuivan/catalog/internal/platform/request"
	"github.com/taibuivan/catalog/internal/platform/respond"
)

func (handler *Handler) listEpisodes(writer http.ResponseWriter, request *http.Request) {
	episodes, err := handler.service.ListEpisodes(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, episodes)
}

func (handler *Handler) getEpisode(writer http.ResponseWriter, request *http.Request) {
	episode, err := handler.service.GetEpisode(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, episode)
}

func (handler *Handler) addEpisode(writer http.ResponseWriter, request *http.Request) {
	var input EpisodeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	episode, err := handler.service.AddEpisode(request.Context(), requestutil.UUID(request, "uuid"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, episode)
}

func (handler *Handler) updateEpisode(writer http.ResponseWriter, request *http.Request) {
	var input EpisodeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	episode, err := handler.service.UpdateEpisode(request.Context(), requestutil.UUID(request, "uuid"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, episode)
}

func (handler *Handler) removeEpisode(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.RemoveEpisode(request.Context(), requestutil.UUID(request, "uuid")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) duplicateEpisode(writer http.ResponseWriter, request *http.Request) {
	episode, err := handler.service.DuplicateEpisode(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, episode)
}
