// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package show

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
	router.Get("/", handler.searchShows)
	router.Post("/", handler.addShow)
	router.Get("/{uuid}", handler.getShow)
	router.Put("/{uuid}", handler.updateShow)
	router.Delete("/{uuid}", handler.removeShow)
	router.Post("/{uuid}/duplicate", handler.duplicateShow)
	router.Get("/{uuid}/statistics", handler.showStatistics)
	router.Get("/{uuid}/seasons", handler.listSeasons)
	router.Post("/{uuid}/seasons", handler.addSeason)
}

// SeasonRoutes serves seasons addressed by their own uuid.
func (handler *Handler) SeasonRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{uuid}", handler.getSeason)
	router.Put("/{uuid}", handler.updateSeason)
	router.Delete("/{uuid}", handler.removeSeason)
	router.Post("/{uuid}/duplicate", handler.duplicateSeason)
	router.Get("/{uuid}/episodes", handler.listEpisodes)
	router.Post("/{uuid}/episodes", handler.addEpisode)
	return router
}

// EpisodeRoutes serves episodes addressed by their own uuid.
func (handler *Handler) EpisodeRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{uuid}", handler.getEpisode)
	router.Put("/{uuid}", handler.updateEpisode)
	router.Delete("/{uuid}", handler.removeEpisode)
	router.Post("/{uuid}/duplicate", handler.duplicateEpisode)
	return router
}

func (handler *Handler) searchShows(writer http.ResponseWriter, request *http.Request) {
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

func (handler *Handler) getShow(writer http.ResponseWriter, request *http.Request) {
	show, err := handler.service.Get(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, show)
}

func (handler *Handler) addShow(writer http.ResponseWriter, request *http.Request) {
	var input Request
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	show, err := handler.service.Add(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, show)
}

func (handler *Handler) updateShow(writer http.ResponseWriter, request *http.Request) {
	var input Request
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	show, err := handler.service.Update(request.Context(), requestutil.UUID(request, "uuid"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, show)
}

func (handler *Handler) removeShow(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Remove(request.Context(), requestutil.UUID(request, "uuid")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) duplicateShow(writer http.ResponseWriter, request *http.Request) {
	show, err := handler.service.Duplicate(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, show)
}

func (handler *Handler) showStatistics(writer http.ResponseWriter, request *http.Request) {
	statistics, err := handler.service.Statistics(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, statistics)
}
