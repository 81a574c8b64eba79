package handler

import (
	"net/http"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/spec"
)

// GetOpenAPI serves the embedded API description.
func (s *Server) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
