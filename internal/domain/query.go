package domain

// TripSort names the supported listing sort orders.
type TripSort string

const (
	// SortFeatured orders by rating × ln(review count), descending.
	SortFeatured TripSort = "featured"
	// SortTrending keeps listings with a trending score of 70 or above,
	// ordered by that score descending.
	SortTrending TripSort = "trending"
)

// TripQuery carries listing filter criteria from the HTTP layer to the query
// layer. Zero values mean "no filter": an empty Category matches everything,
// MaxPrice <= 0 means no upper price bound, MaxDays <= 0 no duration bound.
type TripQuery struct {
	Category      Category
	ActivityLevel ActivityLevel
	MinPrice      float64
	MaxPrice      float64
	MinDays       int
	MaxDays       int
	Keyword       string
	AvailableOnly bool
	Sort          TripSort
}

// MemberQuery carries member-roster filter criteria. Zero values mean
// "no filter". Interest is matched case-insensitively across all three
// interest categories.
type MemberQuery struct {
	Interest           string
	PersonalityType    string
	PersonalityFamily  PersonalityFamily
	RelationshipStatus string
	GroupSize          GroupSize
	BudgetRange        string
	TravelMonth        string
}
