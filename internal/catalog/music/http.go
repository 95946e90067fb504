// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package music

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
	router.Get("/", handler.searchMusics)
	router.Post("/", handler.addMusic)
	router.Get("/{uuid}", handler.getMusic)
	router.Put("/{uuid}", handler.updateMusic)
	router.Delete("/{uuid}", handler.removeMusic)
	router.Post("/{uuid}/duplicate", handler.duplicateMusic)
	router.Get("/{uuid}/songs", handler.listSongs)
	router.Post("/{uuid}/songs", handler.addSong)
}

// SongRoutes serves songs addressed by their own uuid.
func (handler *Handler) SongRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{uuid}", handler.getSong)
	router.Put("/{uuid}", handler.updateSong)
	router.Delete("/{uuid}", handler.removeSong)
	return router
}

func (handler *Handler) searchMusics(writer http.ResponseWriter, request *http.Request) {
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

func (handler *Handler) getMusic(writer http.ResponseWriter, request *http.Request) {
	music, err := handler.service.Get(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, music)
}

func (handler *Handler) addMusic(writer http.ResponseWriter, request *http.Request) {
	var input Request
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	music, err := handler.service.Add(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, music)
}

func (handler *Handler) updateMusic(writer http.ResponseWriter, request *http.Request) {
	var input Request
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	music, err := handler.service.Update(request.Context(), requestutil.UUID(request, "uuid"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, music)
}

func (handler *Handler) removeMusic(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Remove(request.Context(), requestutil.UUID(request, "uuid")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) duplicateMusic(writer http.ResponseWriter, request *http.Request) {
	music, err := handler.service.Duplicate(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, music)
}
