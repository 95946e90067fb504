// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/catalog/internal/platform/request"
	"github.com/taibuivan/catalog/internal/platform/respond"
	"github.com/taibuivan/catalog/pkg/pagination"
	"github.com/taibuivan/catalog/pkg/slice"
)

// Handler implements the account endpoints. Responses never carry password hashes.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with account routes.
//
// # Endpoints
//   - POST /login : Authenticates and returns a JWT.
//   - GET, POST / and GET, PUT, DELETE /{uuid} : Account management.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/login", handler.login)
	router.Get("/", handler.searchAccounts)
	router.Post("/", handler.addAccount)
	router.Get("/{uuid}", handler.getAccount)
	router.Put("/{uuid}", handler.updateAccount)
	router.Delete("/{uuid}", handler.removeAccount)
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input Credentials
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, session)
}

func (handler *Handler) searchAccounts(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	result, err := handler.service.Search(request.Context(), Filter{
		Username: requestutil.Query(request, "username"),
		Page:     params.Page,
		Limit:    params.Limit,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profiles := slice.Map(result.Data, func(account *Account) Profile { return account.Profile() })
	if profiles == nil {
		profiles = []Profile{}
	}
	respond.Paginated(writer, pagination.Result[Profile]{Data: profiles, PagingInfo: result.PagingInfo})
}

func (handler *Handler) getAccount(writer http.ResponseWriter, request *http.Request) {
	account, err := handler.service.Get(request.Context(), requestutil.UUID(request, "uuid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, account.Profile())
}

func (handler *Handler) addAccount(writer http.ResponseWriter, request *http.Request) {
	var input Request
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.Add(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, account.Profile())
}

func (handler *Handler) updateAccount(writer http.ResponseWriter, request *http.Request) {
	var input Request
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.Update(request.Context(), requestutil.UUID(request, "uuid"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, account.Profile())
}

func (handler *Handler) removeAccount(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Remove(request.Context(), requestutil.UUID(request, "uuid")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
