package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleGetNews(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	articles, err := s.news.Personalized(r.Context(), claims.Preferences)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articles)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	keyword := chi.URLParam(r, "keyword")
	if keyword == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "keyword is required"})
		return
	}

	articles, err := s.news.Search(r.Context(), keyword)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articles)
}

// articleID extracts the {id} path parameter. Article ids are URLs, so
// callers send them percent-encoded.
func articleID(r *http.Request) string {
	id := chi.URLParam(r, "id")
	if decoded, err := url.PathUnescape(id); err == nil {
		return decoded
	}
	return id
}

func (s *Server) handleMarkFavorite(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	id := articleID(r)
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "article id is required"})
		return
	}

	s.activity.MarkFavorite(claims.Subject, id)

	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "article added to favorites",
		"favorites": s.activity.Favorites(claims.Subject),
	})
}

func (s *Server) handleGetFavorites(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	writeJSON(w, http.StatusOK, s.activity.Favorites(claims.Subject))
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	id := articleID(r)
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "article id is required"})
		return
	}

	s.activity.MarkRead(claims.Subject, id)

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "article marked as read",
		"read":    s.activity.Read(claims.Subject),
	})
}

func (s *Server) handleGetRead(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	writeJSON(w, http.StatusOK, s.activity.Read(claims.Subject))
}
