package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
)

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type dataResponse struct {
	Data       any         `json:"data"`
	Pagination *pagination `json:"pagination,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("handler: encoding response", "error", err)
	}
}

func respondData(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, dataResponse{Data: data})
}

func respondPage(w http.ResponseWriter, data any, p domain.PaginationParams, total int) {
	respondJSON(w, http.StatusOK, dataResponse{
		Data:       data,
		Pagination: &pagination{Page: p.Page, Limit: p.Limit, Total: total},
	})
}

// respondError maps domain sentinel errors to HTTP statuses and emits the
// error envelope. Unrecognized errors become a 500 with a generic message so
// internal detail never leaks to clients.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: errorDetail{
			Code:    "not_found",
			Message: unwrapMessage(err),
		}})
	case errors.Is(err, domain.ErrValidation):
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: errorDetail{
			Code:    "validation",
			Message: unwrapMessage(err),
		}})
	case errors.Is(err, domain.ErrUnavailable):
		respondJSON(w, http.StatusServiceUnavailable, errorResponse{Error: errorDetail{
			Code:    "unavailable",
			Message: unwrapMessage(err),
		}})
	default:
		slog.Error("handler: unexpected error", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: errorDetail{
			Code:    "internal",
			Message: "internal server error",
		}})
	}
}

func respondValidation(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: errorDetail{
		Code:    "validation",
		Message: msg,
	}})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.TripService.List: validation error: invalid price range"
// → "invalid price range". The "pkg.Type.Method" wrap prefixes are dropped so
// internal call paths never reach clients.
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.Index(msg, "validation error: "); i >= 0 {
		return msg[i+len("validation error: "):]
	}
	parts := strings.Split(msg, ": ")
	for len(parts) > 1 && strings.Contains(parts[0], ".") {
		parts = parts[1:]
	}
	return strings.Join(parts, ": ")
}
