// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package game

import (
	"net/http"

	requestutil "github.com/taibuivan/catalog/internal/platform/request"
	"github.com/taibuivan/catalog/internal/platform/respond"
)

func (handler *Handler) findCheat(writer http.ResponseWriter, request *http.Request) {
	cheat, err := handler.service.FindCheat(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, cheat)
}

func (handler *Handler) getCheat(writer http.ResponseWriter, request *http.Request) {
	cheat, err := handler.service.GetCheat(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, cheat)
}

func (handler *Handler) addCheat(writer http.ResponseWriter, request *http.Request) {
	var input CheatRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	cheat, err := handler.service.AddCheat(request.Context(), requestutil.UUID(request, "uuid"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, cheat)
}

func (handler *Handler) updateCheat(writer http.ResponseWriter, request *http.Request) {
	var input CheatRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	cheat, err := handler.service.UpdateCheat(request.Context(), requestutil.UUID(request, "uuid"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, cheat)
}

func (handler *Handler) removeCheat(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.RemoveCheat(request.Context(), requestutil.UUID(request, "uuid")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
