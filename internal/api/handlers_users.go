package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"newshub/internal/domain"
)

type registerRequest struct {
	FullName    string            `json:"fullName"`
	Email       string            `json:"email"`
	Password    string            `json:"password"`
	Preferences domain.Preference `json:"preferences"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	if strings.TrimSpace(req.FullName) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "full name is required"})
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "a valid email address is required"})
		return
	}
	if len(req.Password) < 6 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "password must be at least 6 characters"})
		return
	}

	// Accounts without preference data are valid; resolution falls back to
	// the default category.
	prefs := req.Preferences
	if prefs.Kind == domain.PreferenceNone {
		prefs = domain.CategoryList(nil)
	}

	user, err := s.auth.Register(req.FullName, req.Email, req.Password, prefs)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "user registered",
		"userId":  user.ID,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "email and password are required"})
		return
	}

	token, err := s.auth.Login(req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "login successful",
		"token":   token,
	})
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	prefs, err := s.auth.Preferences(claims.Subject)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]domain.Preference{"preferences": prefs})
}

type updatePreferencesRequest struct {
	Preferences domain.Preference `json:"preferences"`
}

func (s *Server) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	var req updatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	if req.Preferences.Kind == domain.PreferenceNone {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Message: `preferences must be a category object (e.g. {"category":"sports"}) or a category list`,
		})
		return
	}

	prefs, err := s.auth.UpdatePreferences(claims.Subject, req.Preferences)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "preferences updated",
		"preferences": prefs,
	})
}
