package synth

import (
	"fmt"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
)

// rankDrops is how far above the current rank each history week sits,
// oldest first. The final week lands exactly on the current rank.
var rankDrops = [4]int{5, 3, 1, 0}

// GenerateRankingData derives a listing's popularity snapshot from its seed
// and the catalog size.
//
// CurrentRank is (seed mod totalListings) + 1, so always within
// [1, totalListings]. PreviousRank is CurrentRank + ((seed mod 5) − 2) with a
// floor of 1 and no ceiling. The rank comparison is evaluated before the
// "new" override: a seed divisible by 10 reports "new" only when the two
// ranks are equal.
func GenerateRankingData(seed, totalListings int) (domain.TripRankingData, error) {
	if seed < 1 {
		return domain.TripRankingData{}, fmt.Errorf("synth.GenerateRankingData: %w: seed must be positive, got %d", domain.ErrValidation, seed)
	}
	if totalListings < 1 {
		return domain.TripRankingData{}, fmt.Errorf("synth.GenerateRankingData: %w: totalListings must be positive, got %d", domain.ErrValidation, totalListings)
	}

	current := seed%totalListings + 1
	previous := current + seed%5 - 2
	if previous < 1 {
		previous = 1
	}

	var change domain.RankChange
	switch {
	case current < previous:
		change = domain.RankUp
	case current > previous:
		change = domain.RankDown
	case seed%10 == 0:
		change = domain.RankNew
	default:
		change = domain.RankSame
	}

	rd := domain.TripRankingData{
		CurrentRank:     current,
		PreviousRank:    previous,
		RankChange:      change,
		WeeklyViews:     seed*37%900 + 100, // [100, 999]
		MonthlyBookings: seed*7%25 + 5,     // [5, 29]
		TrendingScore:   seed*13%70 + 30,   // [30, 99]
	}

	// Synthetic rising-popularity narrative: rank falls toward the current
	// rank while weekly bookings climb.
	baseBookings := seed%5 + 1
	for week := 0; week < 4; week++ {
		rd.PopularityHistory = append(rd.PopularityHistory, domain.PopularityPoint{
			Week:     fmt.Sprintf("Week %d", week+1),
			Rank:     current + rankDrops[week],
			Bookings: baseBookings + week*2,
		})
	}

	return rd, nil
}
