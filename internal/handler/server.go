// Package handler implements the HTTP handlers for the trip-discovery API.
// All handlers are methods on Server; they are split into resource-specific
// files (trip.go, member.go, ...) but share the same struct so they can reach
// its dependencies. Handlers translate HTTP to service calls and back — no
// business logic lives here.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/identity"
	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/links"
)

// TripServicer defines the listing operations the handlers depend on.
// Defining the interface here, in the consumer package, lets handler tests
// inject a mock without touching the catalog or service layer.
type TripServicer interface {
	List(ctx context.Context, q domain.TripQuery, p domain.PaginationParams) ([]domain.TripListing, int, error)
	GetByID(ctx context.Context, id string) (domain.TripListing, error)
	MostBooked(ctx context.Context) ([]domain.TripListing, error)
	Featured(ctx context.Context, limit int) ([]domain.TripListing, error)
	ForMember(ctx context.Context, name, cohort string) ([]domain.TripListing, error)
}

// MemberServicer defines the roster operations the handlers depend on.
type MemberServicer interface {
	List(ctx context.Context, q domain.MemberQuery) ([]domain.MemberProfile, error)
	GetByID(ctx context.Context, id string) (domain.MemberProfile, error)
	MostActive(ctx context.Context, count int) ([]domain.MemberProfile, error)
}

// LinkServicer defines the outbound-link operations the handlers depend on.
type LinkServicer interface {
	Generate(ctx context.Context, p links.Preferences) ([]links.SearchLink, error)
}

// ProfileServicer defines the profile-store operations the handlers depend on.
type ProfileServicer interface {
	Get(ctx context.Context, userID string) (domain.MemberProfile, error)
	Save(ctx context.Context, userID string, p domain.MemberProfile) error
	Delete(ctx context.Context, userID string) error
}

// Server holds the dependencies shared by every handler method.
type Server struct {
	trips    TripServicer
	members  MemberServicer
	links    LinkServicer
	profiles ProfileServicer
	auth     identity.Provider
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, members MemberServicer, links LinkServicer, profiles ProfileServicer, auth identity.Provider) *Server {
	return &Server{trips: trips, members: members, links: links, profiles: profiles, auth: auth}
}

// Routes returns the chi router for the full API surface.
// Literal segments (most-booked, most-active) are registered alongside the
// {id} patterns; chi gives literals priority.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Get("/most-booked", s.MostBookedTrips)
		r.Get("/featured", s.FeaturedTrips)
		r.Get("/{id}", s.GetTrip)
	})

	r.Route("/members", func(r chi.Router) {
		r.Get("/", s.ListMembers)
		r.Get("/most-active", s.MostActiveMembers)
		r.Get("/{id}", s.GetMember)
	})

	r.Post("/links/search", s.GenerateSearchLinks)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signin", s.SignIn)
		r.Post("/signout", s.SignOut)
	})

	r.Route("/profiles", func(r chi.Router) {
		r.Get("/{userID}", s.GetProfile)
		r.Put("/{userID}", s.SaveProfile)
		r.Delete("/{userID}", s.DeleteProfile)
	})

	return r
}
