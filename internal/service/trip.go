// Package service contains the business logic for the trip-discovery API.
// Services validate inputs and orchestrate catalog queries and repo calls.
// No SQL and no HTTP types live here.
package service

import (
	"context"
	"fmt"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/catalog"
	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
)

// TripService answers listing queries against the published catalog.
type TripService struct {
	catalog *catalog.Catalog
}

// NewTripService constructs a TripService over the given catalog.
func NewTripService(c *catalog.Catalog) *TripService {
	return &TripService{catalog: c}
}

// List applies q to the catalog and returns one page plus the total match
// count. The ctx parameter is unused today (the catalog is in-memory) but kept
// so the signature survives a move to external persistence.
func (s *TripService) List(ctx context.Context, q domain.TripQuery, p domain.PaginationParams) ([]domain.TripListing, int, error) {
	if err := validateTripQuery(q); err != nil {
		return nil, 0, err
	}

	matched := catalog.ApplyQuery(s.catalog.Listings(), q)
	start, end := p.Slice(len(matched))
	return matched[start:end], len(matched), nil
}

// GetByID returns a single listing.
func (s *TripService) GetByID(ctx context.Context, id string) (domain.TripListing, error) {
	return s.catalog.ListingByID(id)
}

// MostBooked returns the listings with the largest booked cohorts, capped at 20.
func (s *TripService) MostBooked(ctx context.Context) ([]domain.TripListing, error) {
	return catalog.MostBooked(s.catalog.Listings()), nil
}

// Featured returns the top listings by rating × ln(review count).
func (s *TripService) Featured(ctx context.Context, limit int) ([]domain.TripListing, error) {
	if limit < 0 {
		return nil, fmt.Errorf("service.TripService.Featured: %w: limit must not be negative", domain.ErrValidation)
	}
	return catalog.Featured(s.catalog.Listings(), limit), nil
}

// ForMember returns the listings whose cohorts involve the given display
// name. cohort narrows the search to "booked", "signed-up", or "saved";
// empty means all three.
func (s *TripService) ForMember(ctx context.Context, name, cohort string) ([]domain.TripListing, error) {
	if name == "" {
		return nil, fmt.Errorf("service.TripService.ForMember: %w: member name is required", domain.ErrValidation)
	}

	listings := s.catalog.Listings()
	switch cohort {
	case "":
		return catalog.Involving(listings, name), nil
	case "booked":
		return catalog.BookedBy(listings, name), nil
	case "signed-up":
		return catalog.SignedUpBy(listings, name), nil
	case "saved":
		return catalog.SavedBy(listings, name), nil
	default:
		return nil, fmt.Errorf("service.TripService.ForMember: %w: unknown cohort %q", domain.ErrValidation, cohort)
	}
}

// validateTripQuery rejects criteria that cannot match anything sensibly.
func validateTripQuery(q domain.TripQuery) error {
	if q.MinPrice < 0 || (q.MaxPrice > 0 && q.MaxPrice < q.MinPrice) {
		return fmt.Errorf("service.TripService.List: %w: invalid price range", domain.ErrValidation)
	}
	if q.MinDays < 0 || (q.MaxDays > 0 && q.MaxDays < q.MinDays) {
		return fmt.Errorf("service.TripService.List: %w: invalid duration range", domain.ErrValidation)
	}
	if q.Sort != "" && q.Sort != domain.SortFeatured && q.Sort != domain.SortTrending {
		return fmt.Errorf("service.TripService.List: %w: unknown sort %q", domain.ErrValidation, q.Sort)
	}
	return nil
}
