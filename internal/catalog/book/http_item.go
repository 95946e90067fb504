// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"net/http"

	requestutil "github.com/taibuivan/catalog/internal/platform/request"
	"github.com/taibuivan/catalog/internal/platform/respond"
)

func (handler *Handler) listItems(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.ListItems(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, items)
}

func (handler *Handler) getItem(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.service.GetItem(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

func (handler *Handler) addItem(writer http.ResponseWriter, request *http.Request) {
	var input ItemRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.AddItem(request.Context(), requestutil.UUID(request, "uuid"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, item)
}

func (handler *Handler) updateItem(writer http.ResponseWriter, request *http.Request) {
	var input ItemRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.UpdateItem(request.Context(), requestutil.UUID(request, "uuid"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

func (handler *Handler) removeItem(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.RemoveItem(request.Context(), requestutil.UUID(request, "uuid")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
