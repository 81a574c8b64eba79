package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
)

// The query layer is a family of pure functions over a listing slice. Every
// function returns a fresh slice and leaves its input untouched, so filters
// compose in any order. Sorts are stable: equal keys keep catalog order.

// mostBookedLimit caps the MostBooked result set.
const mostBookedLimit = 20

// trendingThreshold is the minimum trending score for the trending view.
const trendingThreshold = 70

// FilterByCategory keeps listings in the given category.
func FilterByCategory(listings []domain.TripListing, c domain.Category) []domain.TripListing {
	return filter(listings, func(l domain.TripListing) bool {
		return l.Category == c
	})
}

// FilterByPriceRange keeps listings whose numeric price lies in [lo, hi],
// inclusive on both ends.
func FilterByPriceRange(listings []domain.TripListing, lo, hi float64) []domain.TripListing {
	return filter(listings, func(l domain.TripListing) bool {
		return l.PriceValue >= lo && l.PriceValue <= hi
	})
}

// FilterByDurationRange keeps listings whose length in days lies in
// [minDays, maxDays], inclusive.
func FilterByDurationRange(listings []domain.TripListing, minDays, maxDays int) []domain.TripListing {
	return filter(listings, func(l domain.TripListing) bool {
		return l.DurationDays >= minDays && l.DurationDays <= maxDays
	})
}

// FilterByActivityLevel keeps listings at the given activity level.
func FilterByActivityLevel(listings []domain.TripListing, level domain.ActivityLevel) []domain.TripListing {
	return filter(listings, func(l domain.TripListing) bool {
		return l.ActivityLevel == level
	})
}

// Search keeps listings where the keyword appears, case-insensitively, in the
// title, location, country, description, any tag, or any best-for label.
// It is a boolean filter, not a ranked search.
func Search(listings []domain.TripListing, keyword string) []domain.TripListing {
	q := strings.ToLower(keyword)
	return filter(listings, func(l domain.TripListing) bool {
		if containsFold(l.Title, q) || containsFold(l.Location, q) ||
			containsFold(l.Country, q) || containsFold(l.Description, q) {
			return true
		}
		for _, tag := range l.Tags {
			if containsFold(tag, q) {
				return true
			}
		}
		for _, b := range l.BestFor {
			if containsFold(b, q) {
				return true
			}
		}
		return false
	})
}

// Featured orders listings by rating × ln(review count), descending, and
// truncates to limit when limit > 0. The log term rewards review volume
// without letting it swamp quality; zero-review listings score zero.
func Featured(listings []domain.TripListing, limit int) []domain.TripListing {
	out := clone(listings)
	sort.SliceStable(out, func(i, j int) bool {
		return featuredScore(out[i]) > featuredScore(out[j])
	})
	return truncate(out, limit)
}

func featuredScore(l domain.TripListing) float64 {
	if l.ReviewCount < 1 {
		return 0
	}
	return l.Rating * math.Log(float64(l.ReviewCount))
}

// Trending keeps listings with a trending score of 70 or above, ordered by
// that score descending.
func Trending(listings []domain.TripListing) []domain.TripListing {
	out := filter(listings, func(l domain.TripListing) bool {
		return l.RankingData.TrendingScore >= trendingThreshold
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RankingData.TrendingScore > out[j].RankingData.TrendingScore
	})
	return out
}

// Available keeps listings that still have spots left.
func Available(listings []domain.TripListing) []domain.TripListing {
	return filter(listings, func(l domain.TripListing) bool {
		return l.MemberData.SpotsLeft > 0
	})
}

// MostBooked orders listings by booked-cohort size descending, truncated to
// the top 20.
func MostBooked(listings []domain.TripListing) []domain.TripListing {
	out := clone(listings)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MemberData.TotalBooked > out[j].MemberData.TotalBooked
	})
	return truncate(out, mostBookedLimit)
}

// BookedBy returns listings whose booked cohort contains the given display
// name. Cohort membership joins on exact name equality; two members sharing a
// display name are indistinguishable here.
func BookedBy(listings []domain.TripListing, name string) []domain.TripListing {
	return filter(listings, func(l domain.TripListing) bool {
		for _, m := range l.MemberData.Booked {
			if m.Name == name {
				return true
			}
		}
		return false
	})
}

// SignedUpBy returns listings whose signed-up cohort contains the name.
func SignedUpBy(listings []domain.TripListing, name string) []domain.TripListing {
	return filter(listings, func(l domain.TripListing) bool {
		for _, m := range l.MemberData.SignedUp {
			if m.Name == name {
				return true
			}
		}
		return false
	})
}

// SavedBy returns listings whose saved cohort contains the name.
func SavedBy(listings []domain.TripListing, name string) []domain.TripListing {
	return filter(listings, func(l domain.TripListing) bool {
		for _, m := range l.MemberData.Saved {
			if m.Name == name {
				return true
			}
		}
		return false
	})
}

// Involving returns listings where the name appears in any of the three
// cohorts. A listing appears at most once even when the name is in several
// cohorts — cohorts are disjoint per listing, so no dedup pass is needed.
func Involving(listings []domain.TripListing, name string) []domain.TripListing {
	return filter(listings, func(l domain.TripListing) bool {
		for _, m := range l.MemberData.Booked {
			if m.Name == name {
				return true
			}
		}
		for _, m := range l.MemberData.SignedUp {
			if m.Name == name {
				return true
			}
		}
		for _, m := range l.MemberData.Saved {
			if m.Name == name {
				return true
			}
		}
		return false
	})
}

// ApplyQuery composes the individual filters according to q, in a fixed order.
// The filters commute, so the order only matters for performance.
func ApplyQuery(listings []domain.TripListing, q domain.TripQuery) []domain.TripListing {
	out := clone(listings)
	if q.Category != "" {
		out = FilterByCategory(out, q.Category)
	}
	if q.ActivityLevel != "" {
		out = FilterByActivityLevel(out, q.ActivityLevel)
	}
	if q.MaxPrice > 0 {
		out = FilterByPriceRange(out, q.MinPrice, q.MaxPrice)
	} else if q.MinPrice > 0 {
		out = FilterByPriceRange(out, q.MinPrice, math.MaxFloat64)
	}
	if q.MaxDays > 0 {
		out = FilterByDurationRange(out, q.MinDays, q.MaxDays)
	} else if q.MinDays > 0 {
		out = FilterByDurationRange(out, q.MinDays, math.MaxInt32)
	}
	if q.Keyword != "" {
		out = Search(out, q.Keyword)
	}
	if q.AvailableOnly {
		out = Available(out)
	}
	switch q.Sort {
	case domain.SortFeatured:
		out = Featured(out, 0)
	case domain.SortTrending:
		out = Trending(out)
	}
	return out
}

// --- helpers ----------------------------------------------------------------

func filter(listings []domain.TripListing, keep func(domain.TripListing) bool) []domain.TripListing {
	out := []domain.TripListing{}
	for _, l := range listings {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}

func clone(listings []domain.TripListing) []domain.TripListing {
	out := make([]domain.TripListing, len(listings))
	copy(out, listings)
	return out
}

func truncate(listings []domain.TripListing, limit int) []domain.TripListing {
	if limit > 0 && len(listings) > limit {
		return listings[:limit]
	}
	return listings
}

// containsFold reports whether needle (already lowercased) occurs in s,
// ignoring case.
func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}
