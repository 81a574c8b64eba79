package handler

import "net/http"

// GetHealth reports liveness. The catalog is built in-process at boot, so a
// responding process is a healthy one.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
