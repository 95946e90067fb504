// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/catalog/internal/platform/request"
	"github.com/taibuivan/catalog/internal/platform/respond"
	"github.com/taibuivan/catalog/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.searchAuthors)
	router.Post("/", handler.addAuthor)
	router.Get("/{uuid}", handler.getAuthor)
	router.Put("/{uuid}", handler.updateAuthor)
	router.Delete("/{uuid}", handler.removeAuthor)
	router.Post("/{uuid}/duplicate", handler.duplicateAuthor)
}

func (handler *Handler) searchAuthors(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	filter := Filter{
		Name:  requestutil.Query(request, "name"),
		Page:  params.Page,
		Limit: params.Limit,
	}

	result, err := handler.service.Search(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, result)
}

func (handler *Handler) getAuthor(writer http.ResponseWriter, request *http.Request) {
	author, err := handler.service.Get(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, author)
}

func (handler *Handler) addAuthor(writer http.ResponseWriter, request *http.Request) {
	var input Request
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	author, err := handler.service.Add(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, author)
}

func (handler *Handler) updateAuthor(writer http.ResponseWriter, request *http.Request) {
	var input Request
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	author, err := handler.service.Update(request.Context(), requestutil.UUID(request, "uuid"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, author)
}

func (handler *Handler) removeAuthor(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Remove(request.Context(), requestutil.UUID(request, "uuid")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) duplicateAuthor(writer http.ResponseWriter, request *http.Request) {
	author, err := handler.service.Duplicate(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, author)
}
