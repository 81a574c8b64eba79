package handler

import (
	"encoding/json"
	"net/http"
)

type signInRequest struct {
	Provider   string `json:"provider,omitempty"`
	Email      string `json:"email,omitempty"`
	Password   string `json:"password,omitempty"`
	NewAccount bool   `json:"new_account,omitempty"`
}

// SignIn serves POST /auth/signin. A body naming a federated provider goes
// through SignIn; otherwise email/password credentials are expected.
func (s *Server) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(w, "request body must be valid JSON")
		return
	}

	if req.Provider != "" {
		session, err := s.auth.SignIn(r.Context(), req.Provider)
		if err != nil {
			respondError(w, err)
			return
		}
		respondData(w, http.StatusOK, session)
		return
	}

	if req.Email == "" {
		respondValidation(w, "either provider or email is required")
		return
	}

	session, err := s.auth.SignInWithPassword(r.Context(), req.Email, req.Password, req.NewAccount)
	if err != nil {
		respondError(w, err)
		return
	}

	status := http.StatusOK
	if req.NewAccount {
		status = http.StatusCreated
	}
	respondData(w, status, session)
}

// SignOut serves POST /auth/signout.
func (s *Server) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.SignOut(r.Context()); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
