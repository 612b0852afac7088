// Package api is the HTTP transport: routing, auth middleware, and the
// single error boundary that maps failures to client-visible statuses.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"newshub/internal/auth"
	"newshub/internal/service"
	"newshub/internal/storage/memory"
)

type Server struct {
	auth     *auth.Service
	news     *service.NewsService
	activity *memory.Activity
	logger   *slog.Logger
}

func NewServer(authSvc *auth.Service, newsSvc *service.NewsService, activity *memory.Activity, logger *slog.Logger) *Server {
	return &Server{
		auth:     authSvc,
		news:     newsSvc,
		activity: activity,
		logger:   logger,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/preferences", s.handleGetPreferences)
			r.Put("/preferences", s.handleUpdatePreferences)
		})
	})

	r.Route("/api/news", func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/", s.handleGetNews)
		r.Get("/search/{keyword}", s.handleSearch)
		r.Get("/favorites", s.handleGetFavorites)
		r.Post("/{id}/favorite", s.handleMarkFavorite)
		r.Get("/read", s.handleGetRead)
		r.Post("/{id}/read", s.handleMarkRead)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
