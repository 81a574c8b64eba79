// Package domain contains the core data types for the trip-discovery API.
// This package has zero dependencies on other internal packages and is
// imported by every other layer (catalog, synth, service, handler, repo).
package domain

// Category classifies a listing into one of the fixed catalog categories.
type Category string

const (
	CategoryAdventure Category = "adventure"
	CategorySports    Category = "sports"
	CategoryWellness  Category = "wellness"
	CategoryCultural  Category = "cultural"
	CategoryBeach     Category = "beach"
	CategoryNature    Category = "nature"
	CategoryLuxury    Category = "luxury"
	CategoryBudget    Category = "budget"
	CategoryFamily    Category = "family"
	CategoryRomantic  Category = "romantic"
)

// ActivityLevel describes how physically demanding a trip is.
type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "low"
	ActivityModerate ActivityLevel = "moderate"
	ActivityHigh     ActivityLevel = "high"
	ActivityExtreme  ActivityLevel = "extreme"
)

// GroupSize describes the group shape a trip (or a member) suits best.
// GroupAny is a wildcard that matches every group-size filter.
type GroupSize string

const (
	GroupSoloFriendly GroupSize = "solo-friendly"
	GroupCouples      GroupSize = "couples"
	GroupSmall        GroupSize = "small-group"
	GroupLarge        GroupSize = "large-group"
	GroupAny          GroupSize = "any"
)

// TripListing is one travel product in the catalog.
//
// Price and Duration are display strings; PriceValue and DurationDays are the
// authoritative numeric fields used by every filter and sort. MemberData and
// RankingData are derived exactly once when the catalog is built and are never
// mutated afterwards.
type TripListing struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Host        string   `json:"host"`
	Location    string   `json:"location"`
	Country     string   `json:"country"`
	Continent   string   `json:"continent"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Highlights  []string `json:"highlights"`
	Included    []string `json:"included"`
	BestFor     []string `json:"best_for"`

	Category      Category      `json:"category"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	GroupSize     GroupSize     `json:"group_size"`

	Price        string  `json:"price"`
	PriceValue   float64 `json:"price_value"`
	Duration     string  `json:"duration"`
	DurationDays int     `json:"duration_days"`

	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`

	MemberData  TripMemberData  `json:"member_data"`
	RankingData TripRankingData `json:"ranking_data"`
}
