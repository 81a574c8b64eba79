// Package catalog owns the static trip catalog and the member roster, and
// provides the query layer over them.
//
// The catalog is built in two phases: the raw listing literals are constructed
// first, then each listing gets its derived engagement and ranking snapshots
// attached, and only the finished collection is published. Nothing mutates a
// listing after Build returns; consumers receive the one Catalog value built
// in main and share it freely across goroutines.
package catalog

import (
	"fmt"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/synth"
)

// Catalog is the published, immutable listing store.
type Catalog struct {
	listings []domain.TripListing
	members  []domain.MemberProfile
}

// Build constructs the catalog: raw listings first, then one derivation pass
// attaching member and ranking data keyed by each listing's 1-based position.
// The result is deterministic — two builds yield equal catalogs.
func Build() (*Catalog, error) {
	raw := seedListings()

	listings := make([]domain.TripListing, 0, len(raw))
	for i, l := range raw {
		seed := i + 1
		l.ID = fmt.Sprintf("trip-%03d", seed)

		md, err := synth.GenerateMemberData(seed)
		if err != nil {
			return nil, fmt.Errorf("catalog.Build: listing %d: %w", seed, err)
		}
		rd, err := synth.GenerateRankingData(seed, len(raw))
		if err != nil {
			return nil, fmt.Errorf("catalog.Build: listing %d: %w", seed, err)
		}

		l.MemberData = md
		l.RankingData = rd
		listings = append(listings, l)
	}

	return &Catalog{listings: listings, members: seedMembers()}, nil
}

// Listings returns a copy of the full listing slice in catalog order.
// The copy protects the published catalog from caller-side reordering.
func (c *Catalog) Listings() []domain.TripListing {
	out := make([]domain.TripListing, len(c.listings))
	copy(out, c.listings)
	return out
}

// Members returns a copy of the member roster.
func (c *Catalog) Members() []domain.MemberProfile {
	out := make([]domain.MemberProfile, len(c.members))
	copy(out, c.members)
	return out
}

// ListingByID returns the listing with the given ID, or domain.ErrNotFound.
func (c *Catalog) ListingByID(id string) (domain.TripListing, error) {
	for _, l := range c.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.TripListing{}, fmt.Errorf("catalog.ListingByID: %w", domain.ErrNotFound)
}

// MemberByID returns the member profile with the given ID, or domain.ErrNotFound.
func (c *Catalog) MemberByID(id string) (domain.MemberProfile, error) {
	for _, m := range c.members {
		if m.ID.String() == id {
			return m, nil
		}
	}
	return domain.MemberProfile{}, fmt.Errorf("catalog.MemberByID: %w", domain.ErrNotFound)
}
