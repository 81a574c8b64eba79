package domain

// RankChange describes a listing's week-over-week rank movement.
type RankChange string

const (
	RankUp   RankChange = "up"
	RankDown RankChange = "down"
	RankSame RankChange = "same"
	RankNew  RankChange = "new"
)

// PopularityPoint is one entry in a listing's popularity time series.
type PopularityPoint struct {
	Week     string `json:"week"`
	Rank     int    `json:"rank"`
	Bookings int    `json:"bookings"`
}

// TripRankingData is the popularity snapshot attached to every listing.
//
// CurrentRank is always within [1, totalListings]. PreviousRank has a floor
// of 1 but no ceiling, so it may exceed the catalog size. PopularityHistory
// holds exactly four chronological entries (oldest first) whose ranks descend
// toward CurrentRank; the final entry's rank equals CurrentRank.
type TripRankingData struct {
	CurrentRank  int        `json:"current_rank"`
	PreviousRank int        `json:"previous_rank"`
	RankChange   RankChange `json:"rank_change"`

	WeeklyViews     int `json:"weekly_views"`
	MonthlyBookings int `json:"monthly_bookings"`
	TrendingScore   int `json:"trending_score"`

	PopularityHistory []PopularityPoint `json:"popularity_history"`
}
