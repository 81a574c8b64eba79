package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
)

// GetProfile serves GET /profiles/{userID}.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.profiles.Get(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, profile)
}

// SaveProfile serves PUT /profiles/{userID}. The write is an upsert, so the
// response is 204 whether the profile existed before or not.
func (s *Server) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var profile domain.MemberProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		respondValidation(w, "request body must be valid JSON")
		return
	}

	if err := s.profiles.Save(r.Context(), chi.URLParam(r, "userID"), profile); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteProfile serves DELETE /profiles/{userID}.
func (s *Server) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := s.profiles.Delete(r.Context(), chi.URLParam(r, "userID")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
