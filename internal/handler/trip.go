package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
)

// ListTrips serves GET /trips. Filters arrive as query parameters; "member"
// (optionally narrowed by "cohort") switches to the per-member lookup, which
// ignores the other filters.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	qp := r.URL.Query()

	if member := qp.Get("member"); member != "" {
		listings, err := s.trips.ForMember(r.Context(), member, qp.Get("cohort"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondData(w, http.StatusOK, listings)
		return
	}

	q := domain.TripQuery{
		Category:      domain.Category(qp.Get("category")),
		ActivityLevel: domain.ActivityLevel(qp.Get("activity_level")),
		Keyword:       qp.Get("q"),
		AvailableOnly: qp.Get("available") == "true",
		Sort:          domain.TripSort(qp.Get("sort")),
	}

	var err error
	if q.MinPrice, err = floatParam(qp.Get("min_price")); err != nil {
		respondValidation(w, "min_price must be a number")
		return
	}
	if q.MaxPrice, err = floatParam(qp.Get("max_price")); err != nil {
		respondValidation(w, "max_price must be a number")
		return
	}
	if q.MinDays, err = intParam(qp.Get("min_days")); err != nil {
		respondValidation(w, "min_days must be an integer")
		return
	}
	if q.MaxDays, err = intParam(qp.Get("max_days")); err != nil {
		respondValidation(w, "max_days must be an integer")
		return
	}

	page, err := pageParams(qp.Get("page"), qp.Get("limit"))
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	listings, total, err := s.trips.List(r.Context(), q, page)
	if err != nil {
		respondError(w, err)
		return
	}
	respondPage(w, listings, page, total)
}

// GetTrip serves GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	listing, err := s.trips.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, listing)
}

// MostBookedTrips serves GET /trips/most-booked.
func (s *Server) MostBookedTrips(w http.ResponseWriter, r *http.Request) {
	listings, err := s.trips.MostBooked(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, listings)
}

// FeaturedTrips serves GET /trips/featured. "limit" caps the result; absent
// or zero means all listings in featured order.
func (s *Server) FeaturedTrips(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r.URL.Query().Get("limit"))
	if err != nil {
		respondValidation(w, "limit must be an integer")
		return
	}

	listings, err := s.trips.Featured(r.Context(), limit)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, listings)
}

func floatParam(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func pageParams(rawPage, rawLimit string) (domain.PaginationParams, error) {
	var page, limit *int
	if rawPage != "" {
		v, err := strconv.Atoi(rawPage)
		if err != nil {
			return domain.PaginationParams{}, fmt.Errorf("page must be an integer")
		}
		page = &v
	}
	if rawLimit != "" {
		v, err := strconv.Atoi(rawLimit)
		if err != nil {
			return domain.PaginationParams{}, fmt.Errorf("limit must be an integer")
		}
		limit = &v
	}
	return domain.NewPaginationParams(page, limit), nil
}
