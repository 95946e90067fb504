// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package game

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
	router.Get("/", handler.searchGames)
	router.Post("/", handler.addGame)
	router.Get("/{uuid}", handler.getGame)
	router.Put("/{uuid}", handler.updateGame)
	router.Delete("/{uuid}", handler.removeGame)
	router.Post("/{uuid}/duplicate", handler.duplicateGame)
	router.Get("/{uuid}/cheat", handler.findCheat)
	router.Post("/{uuid}/cheat", handler.addCheat)
	router.Get("/statistics", handler.statistics)
}

// CheatRoutes serves cheats addressed by their own uuid.
func (handler *Handler) CheatRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{uuid}", handler.getCheat)
	router.Put("/{uuid}", handler.updateCheat)
	router.Delete("/{uuid}", handler.removeCheat)
	return router
}

func (handler *Handler) searchGames(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	filter := Filter{
		Name:   requestutil.Query(request, "name"),
		Format: requestutil.Query(request, "format"),
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

func (handler *Handler) getGame(writer http.ResponseWriter, request *http.Request) {
	game, err := handler.service.Get(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, game)
}

func (handler *Handler) addGame(writer http.ResponseWriter, request *http.Request) {
	var input Request
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	game, err := handler.service.Add(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, game)
}

func (handler *Handler) updateGame(writer http.ResponseWriter, request *http.Request) {
	var input Request
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	game, err := handler.service.Update(request.Context(), requestutil.UUID(request, "uuid"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, game)
}

func (handler *Handler) removeGame(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Remove(request.Context(), requestutil.UUID(request, "uuid")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) duplicateGame(writer http.ResponseWriter, request *http.Request) {
	game, err := handler.service.Duplicate(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, game)
}

func (handler *Handler) statistics(writer http.ResponseWriter, request *http.Request) {
	count, err := handler.service.Count(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	media, err := handler.service.TotalMediaCount(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]int{"count": count, "media_count": media})
}
