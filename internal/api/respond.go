package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"newshub/internal/auth"
	"newshub/internal/source/newsapi"
	"newshub/internal/storage/memory"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError is the single boundary mapping internal failures to
// client-visible statuses. Upstream and internal details stay in the server
// log; the client sees a generic message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var upstreamErr *newsapi.UpstreamError

	switch {
	case errors.As(err, &upstreamErr):
		s.logger.Error("upstream fetch failed",
			"path", r.URL.Path,
			"status", upstreamErr.StatusCode,
			"error", err,
		)
		writeJSON(w, http.StatusBadGateway, errorResponse{Message: "news provider unavailable"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: err.Error()})
	case errors.Is(err, memory.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "user not found"})
	case errors.Is(err, memory.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, errorResponse{Message: err.Error()})
	default:
		s.logger.Error("request failed",
			"path", r.URL.Path,
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
	}
}
