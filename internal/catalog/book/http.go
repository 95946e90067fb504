// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

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
	router.Get("/", handler.searchBooks)
	router.Post("/", handler.addBook)
	router.Get("/{uuid}", handler.getBook)
	router.Put("/{uuid}", handler.updateBook)
	router.Delete("/{uuid}", handler.removeBook)
	router.Post("/{uuid}/duplicate", handler.duplicateBook)
	router.Get("/{uuid}/items", handler.listItems)
	router.Post("/{uuid}/items", handler.addItem)
}

// ItemRoutes serves book items addressed by their own uuid.
func (handler *Handler) ItemRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{uuid}", handler.getItem)
	router.Put("/{uuid}", handler.updateItem)
	router.Delete("/{uuid}", handler.removeItem)
	return router
}

func (handler *Handler) searchBooks(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	filter := Filter{
		Name:   requestutil.Query(request, "name"),
		Author: requestutil.Query(request, "author"),
		Page:   params.Page,
		Limit:  params.Limit,
	}

	result, err := handler.service.Search(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, result)
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	book, err := handler.service.Get(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, book)
}

func (handler *Handler) addBook(writer http.ResponseWriter, request *http.Request) {
	var input Request
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.Add(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, book)
}

func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	var input Request
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.Update(request.Context(), requestutil.UUID(request, "uuid"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, book)
}

func (handler *Handler) removeBook(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Remove(request.Context(), requestutil.UUID(request, "uuid")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) duplicateBook(writer http.ResponseWriter, request *http.Request) {
	book, err := handler.service.Duplicate(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, book)
}
