package domain

// BookedMember is one entry in a listing's booked cohort: a member who has
// committed to the trip and reserved one or more spots.
type BookedMember struct {
	Name          string `json:"name"`
	Avatar        string `json:"avatar"`
	Date          string `json:"date"`
	SpotsReserved int    `json:"spots_reserved"`
}

// SignedUpMember is one entry in a listing's signed-up cohort: interest
// registered without a booking.
type SignedUpMember struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Date   string `json:"date"`
}

// SavedMember is one entry in a listing's saved cohort. SavedAgo is a
// human-readable relative time ("2 days ago"), not a parseable timestamp.
type SavedMember struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	SavedAgo string `json:"saved_ago"`
}

// TripMemberData is the social-proof snapshot attached to every listing.
//
// The three cohorts are disjoint by construction: one pool member appears in
// at most one cohort per listing. The Total* counters always equal the lengths
// of the corresponding slices, and SpotsLeft is MaxSpots minus all reserved
// spots, clamped to zero (overbooking is not modeled).
type TripMemberData struct {
	Booked   []BookedMember   `json:"booked"`
	SignedUp []SignedUpMember `json:"signed_up"`
	Saved    []SavedMember    `json:"saved"`

	TotalBooked  int `json:"total_booked"`
	TotalSignups int `json:"total_signups"`
	TotalSaved   int `json:"total_saved"`

	MaxSpots  int `json:"max_spots"`
	SpotsLeft int `json:"spots_left"`
}
