// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package register

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/catalog/internal/platform/request"
	"github.com/taibuivan/catalog/internal/platform/respond"
	"github.com/taibuivan/catalog/pkg/query"
)

type Handler struct {
	table *Table
}

func NewHandler(table *Table) *Handler {
	return &Handler{table: table}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listRegisters)
	router.Get("/{register}", handler.listValues)
}

func (handler *Handler) listRegisters(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.table.Registers())
}

// listValues serves GET /{register}?keys=CZ,EN
func (handler *Handler) listValues(writer http.ResponseWriter, request *http.Request) {
	values, err := handler.table.Values(chi.URLParam(request, "register"), query.UpperSlice(requestutil.Query(request, "keys")))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, values)
}
