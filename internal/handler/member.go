package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
)

// ListMembers serves GET /members with roster filters as query parameters.
func (s *Server) ListMembers(w http.ResponseWriter, r *http.Request) {
	qp := r.URL.Query()

	q := domain.MemberQuery{
		Interest:           qp.Get("interest"),
		PersonalityType:    qp.Get("personality_type"),
		PersonalityFamily:  domain.PersonalityFamily(qp.Get("personality_family")),
		RelationshipStatus: qp.Get("relationship_status"),
		GroupSize:          domain.GroupSize(qp.Get("group_size")),
		BudgetRange:        qp.Get("budget_range"),
		TravelMonth:        qp.Get("travel_month"),
	}

	members, err := s.members.List(r.Context(), q)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, members)
}

// GetMember serves GET /members/{id}.
func (s *Server) GetMember(w http.ResponseWriter, r *http.Request) {
	member, err := s.members.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, member)
}

// MostActiveMembers serves GET /members/most-active. "count" caps the result.
func (s *Server) MostActiveMembers(w http.ResponseWriter, r *http.Request) {
	count, err := intParam(r.URL.Query().Get("count"))
	if err != nil {
		respondValidation(w, "count must be an integer")
		return
	}

	members, err := s.members.MostActive(r.Context(), count)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, members)
}
