// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package music

import (
	"net/http"

	requestutil "github.com/taibuivan/catalog/internal/platform/request"
	"github.com/taibuivan/catalog/internal/platform/respond"
)

func (handler *Handler) listSongs(writer http.ResponseWriter, request *http.Request) {
	songs, err := handler.service.ListSongs(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, songs)
}

func (handler *Handler) getSong(writer http.ResponseWriter, request *http.Request) {
	song, err := handler.service.GetSong(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, song)
}

func (handler *Handler) addSong(writer http.ResponseWriter, request *http.Request) {
	var input SongRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	song, err := handler.service.AddSong(request.Context(), requestutil.UUID(request, "uuid"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, song)
}

func (handler *Handler) updateSong(writer http.ResponseWriter, request *http.Request) {
	var input SongRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	song, err := handler.service.UpdateSong(request.Context(), requestutil.UUID(request, "uuid"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, song)
}

func (handler *Handler) removeSong(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.RemoveSong(request.Context(), requestutil.UUID(request, "uuid")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
