package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/links"
)

// GenerateSearchLinks serves POST /links/search. The body is a preference
// record; the response is one link per supported platform, in fixed order.
func (s *Server) GenerateSearchLinks(w http.ResponseWriter, r *http.Request) {
	var prefs links.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		respondValidation(w, "request body must be valid JSON")
		return
	}

	generated, err := s.links.Generate(r.Context(), prefs)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, generated)
}
