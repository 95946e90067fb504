// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
catalog handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/catalog/internal/catalog/account"
	"github.com/taibuivan/catalog/internal/catalog/author"
	"github.com/taibuivan/catalog/internal/catalog/book"
	"github.com/taibuivan/catalog/internal/catalog/game"
	"github.com/taibuivan/catalog/internal/catalog/genre"
	"github.com/taibuivan/catalog/internal/catalog/movie"
	"github.com/taibuivan/catalog/internal/catalog/music"
	"github.com/taibuivan/catalog/internal/catalog/picture"
	"github.com/taibuivan/catalog/internal/catalog/register"
	"github.com/taibuivan/catalog/internal/catalog/show"
	"github.com/taibuivan/catalog/internal/platform/config"
	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/metrics"
	"github.com/taibuivan/catalog/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all catalog HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. It returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Metrics exposes the Prometheus collectors on /metrics.
	Metrics *metrics.Collector

	Account  *account.Handler
	Register *register.Handler

	// Shared references
	Genre   *genre.Handler
	Picture *picture.Handler
	Author  *author.Handler

	// Aggregates
	Movie *movie.Handler
	Show  *show.Handler
	Book  *book.Handler
	Game  *game.Handler
	Music *music.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Authenticate runs before the logger so that access logs name the actor.
	r.Use(middleware.RequestID())
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.Instrument(h.Metrics))
	r.Use(middleware.ReportViolations(h.Metrics))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context, cfg.RateLimitRPS, cfg.RateLimitBurst))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Method(http.MethodGet, "/metrics", h.Metrics.Handler())

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/accounts", h.Account.Routes())
		api.Mount("/registers", h.Register.Routes())

		api.Mount("/genres", h.Genre.Routes())
		api.Mount("/pictures", h.Picture.Routes())
		api.Mount("/authors", h.Author.Routes())

		api.Mount("/movies", h.Movie.Routes())

		api.Mount("/shows", h.Show.Routes())
		api.Mount("/seasons", h.Show.SeasonRoutes())
		api.Mount("/episodes", h.Show.EpisodeRoutes())

		api.Mount("/books", h.Book.Routes())
		api.Mount("/book-items", h.Book.ItemRoutes())

		api.Mount("/games", h.Game.Routes())
		api.Mount("/cheats", h.Game.CheatRoutes())

		api.Mount("/music", h.Music.Routes())
		api.Mount("/songs", h.Music.SongRoutes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
