package domain

import "github.com/google/uuid"

// TripStatus describes a member's relationship to one trip in their history.
type TripStatus string

const (
	TripSignedUp  TripStatus = "signed-up"
	TripBooked    TripStatus = "booked"
	TripSaved     TripStatus = "saved"
	TripCreated   TripStatus = "created"
	TripCompleted TripStatus = "completed"
)

// PersonalityFamily is one of the four fixed groupings of the sixteen
// personality-type codes.
type PersonalityFamily string

const (
	FamilyAnalysts  PersonalityFamily = "analysts"
	FamilyDiplomats PersonalityFamily = "diplomats"
	FamilySentinels PersonalityFamily = "sentinels"
	FamilyExplorers PersonalityFamily = "explorers"
)

// personalityFamilies partitions the sixteen type codes four ways.
var personalityFamilies = map[string]PersonalityFamily{
	"INTJ": FamilyAnalysts, "INTP": FamilyAnalysts, "ENTJ": FamilyAnalysts, "ENTP": FamilyAnalysts,
	"INFJ": FamilyDiplomats, "INFP": FamilyDiplomats, "ENFJ": FamilyDiplomats, "ENFP": FamilyDiplomats,
	"ISTJ": FamilySentinels, "ISFJ": FamilySentinels, "ESTJ": FamilySentinels, "ESFJ": FamilySentinels,
	"ISTP": FamilyExplorers, "ISFP": FamilyExplorers, "ESTP": FamilyExplorers, "ESFP": FamilyExplorers,
}

// FamilyForPersonality returns the family a personality-type code belongs to.
// Unknown codes return the empty family and false.
func FamilyForPersonality(code string) (PersonalityFamily, bool) {
	f, ok := personalityFamilies[code]
	return f, ok
}

// TripHistoryEntry is one trip in a member's own history. It is a
// member-centric record and is not required to be mutually consistent with any
// listing's cohort data.
type TripHistoryEntry struct {
	TripID     string     `json:"trip_id"`
	Title      string     `json:"title"`
	Status     TripStatus `json:"status"`
	Date       string     `json:"date"`
	Location   string     `json:"location"`
	Companions int        `json:"companions,omitempty"` // 0 when none recorded
}

// MemberProfile is a community member record.
//
// BudgetRange and GroupSizePreference accept the wildcards "flexible" and
// GroupAny respectively; TravelMonths may contain "flexible" to match every
// month filter. TripsCompleted and TripsUpcoming are free-standing counters,
// not derived from TripHistory.
type MemberProfile struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar"`
	Age      int       `json:"age"`
	Location string    `json:"location"`
	Bio      string    `json:"bio"`

	SportsInterests        []string `json:"sports_interests"`
	EntertainmentInterests []string `json:"entertainment_interests"`
	LifestyleInterests     []string `json:"lifestyle_interests"`

	RelationshipStatus  string    `json:"relationship_status"`
	PersonalityType     string    `json:"personality_type"`
	GroupSizePreference GroupSize `json:"group_size_preference"`
	TravelMonths        []string  `json:"travel_months"`
	BudgetRange         string    `json:"budget_range"`

	TripHistory    []TripHistoryEntry `json:"trip_history"`
	TripsCompleted int                `json:"trips_completed"`
	TripsUpcoming  int                `json:"trips_upcoming"`
}
