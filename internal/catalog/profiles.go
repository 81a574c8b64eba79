package catalog

import (
	"github.com/google/uuid"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
)

// seedMembers returns the community roster. IDs are fixed literals so two
// builds publish identical rosters. Display names overlap with the synth
// identity pool on purpose — cohort queries join on name.
func seedMembers() []domain.MemberProfile {
	return []domain.MemberProfile{
		{
			ID:                     uuid.MustParse("7c9b1f02-3d44-4b8a-9a10-111111111111"),
			Name:                   "Sofia Ramirez",
			Avatar:                 "https://i.pravatar.cc/150?img=1",
			Age:                    29,
			Location:               "Barcelona, Spain",
			Bio:                    "Weekend climber, weekday product designer. Always planning the next trek.",
			SportsInterests:        []string{"climbing", "hiking", "trail running"},
			EntertainmentInterests: []string{"live music", "documentaries"},
			LifestyleInterests:     []string{"vegetarian food", "photography"},
			RelationshipStatus:     "single",
			PersonalityType:        "ENFP",
			GroupSizePreference:    domain.GroupSmall,
			TravelMonths:           []string{"May", "June", "September"},
			BudgetRange:            "mid-range",
			TripHistory: []domain.TripHistoryEntry{
				{TripID: "trip-001", Title: "Inca Trail Trek to Machu Picchu", Status: domain.TripCompleted, Date: "2025-06-12", Location: "Cusco", Companions: 2},
				{TripID: "trip-006", Title: "Patagonia W Trek Expedition", Status: domain.TripBooked, Date: "2026-11-03", Location: "Torres del Paine"},
			},
			TripsCompleted: 8,
			TripsUpcoming:  2,
		},
		{
			ID:                     uuid.MustParse("7c9b1f02-3d44-4b8a-9a10-222222222222"),
			Name:                   "Liam O'Connor",
			Avatar:                 "https://i.pravatar.cc/150?img=2",
			Age:                    34,
			Location:               "Dublin, Ireland",
			Bio:                    "Software engineer chasing surf breaks and good coffee.",
			SportsInterests:        []string{"surfing", "cycling"},
			EntertainmentInterests: []string{"stand-up comedy", "podcasts"},
			LifestyleInterests:     []string{"coffee", "minimalism"},
			RelationshipStatus:     "in a relationship",
			PersonalityType:        "ISTP",
			GroupSizePreference:    domain.GroupCouples,
			TravelMonths:           []string{"flexible"},
			BudgetRange:            "mid-range",
			TripHistory: []domain.TripHistoryEntry{
				{TripID: "trip-003", Title: "Bali Yoga & Surf Retreat", Status: domain.TripCompleted, Date: "2025-03-20", Location: "Canggu", Companions: 1},
			},
			TripsCompleted: 5,
			TripsUpcoming:  1,
		},
		{
			ID:                     uuid.MustParse("7c9b1f02-3d44-4b8a-9a10-333333333333"),
			Name:                   "Yuki Tanaka",
			Avatar:                 "https://i.pravatar.cc/150?img=3",
			Age:                    41,
			Location:               "Osaka, Japan",
			Bio:                    "Food writer. Will travel any distance for a market worth photographing.",
			SportsInterests:        []string{"hiking"},
			EntertainmentInterests: []string{"cinema", "jazz"},
			LifestyleInterests:     []string{"street food", "photography", "tea"},
			RelationshipStatus:     "married",
			PersonalityType:        "INFJ",
			GroupSizePreference:    domain.GroupCouples,
			TravelMonths:           []string{"April", "October", "November"},
			BudgetRange:            "premium",
			TripHistory: []domain.TripHistoryEntry{
				{TripID: "trip-011", Title: "Marrakech Souks & Sahara Camp", Status: domain.TripCompleted, Date: "2024-10-08", Location: "Marrakech", Companions: 1},
				{TripID: "trip-014", Title: "Tuscany Slow Food & Wine Week", Status: domain.TripSaved, Date: "2026-02-14", Location: "Val d'Orcia"},
			},
			TripsCompleted: 12,
			TripsUpcoming:  1,
		},
		{
			ID:                     uuid.MustParse("7c9b1f02-3d44-4b8a-9a10-444444444444"),
			Name:                   "Amara Okafor",
			Avatar:                 "https://i.pravatar.cc/150?img=4",
			Age:                    26,
			Location:               "Lagos, Nigeria",
			Bio:                    "Medical resident collecting coastlines between shifts.",
			SportsInterests:        []string{"swimming", "volleyball"},
			EntertainmentInterests: []string{"afrobeats", "novels"},
			LifestyleInterests:     []string{"beaches", "languages"},
			RelationshipStatus:     "single",
			PersonalityType:        "ESFJ",
			GroupSizePreference:    domain.GroupAny,
			TravelMonths:           []string{"December", "January"},
			BudgetRange:            "budget",
			TripHistory: []domain.TripHistoryEntry{
				{TripID: "trip-017", Title: "Zanzibar Beach & Spice Escape", Status: domain.TripSignedUp, Date: "2026-12-19", Location: "Nungwi"},
			},
			TripsCompleted: 3,
			TripsUpcoming:  1,
		},
		{
			ID:                     uuid.MustParse("7c9b1f02-3d44-4b8a-9a10-555555555555"),
			Name:                   "Mateo Silva",
			Avatar:                 "https://i.pravatar.cc/150?img=5",
			Age:                    31,
			Location:               "Buenos Aires, Argentina",
			Bio:                    "Ski instructor in July, dive instructor in January.",
			SportsInterests:        []string{"skiing", "diving", "kitesurfing"},
			EntertainmentInterests: []string{"tango", "football"},
			LifestyleInterests:     []string{"asado", "van life"},
			RelationshipStatus:     "single",
			PersonalityType:        "ESTP",
			GroupSizePreference:    domain.GroupLarge,
			TravelMonths:           []string{"flexible"},
			BudgetRange:            "flexible",
			TripHistory: []domain.TripHistoryEntry{
				{TripID: "trip-013", Title: "Great Barrier Reef Dive Liveaboard", Status: domain.TripCompleted, Date: "2025-01-15", Location: "Cairns"},
				{TripID: "trip-009", Title: "Alps Ski Touring Week", Status: domain.TripCompleted, Date: "2025-02-22", Location: "Chamonix", Companions: 3},
				{TripID: "trip-016", Title: "New Zealand South Island Adrenaline Tour", Status: domain.TripBooked, Date: "2026-09-30", Location: "Queenstown"},
			},
			TripsCompleted: 15,
			TripsUpcoming:  2,
		},
		{
			ID:                     uuid.MustParse("7c9b1f02-3d44-4b8a-9a10-666666666666"),
			Name:                   "Elena Petrova",
			Avatar:                 "https://i.pravatar.cc/150?img=6",
			Age:                    38,
			Location:               "Sofia, Bulgaria",
			Bio:                    "Architect. Travels for buildings, stays for the food.",
			SportsInterests:        []string{"yoga"},
			EntertainmentInterests: []string{"opera", "museums"},
			LifestyleInterests:     []string{"architecture", "wine"},
			RelationshipStatus:     "divorced",
			PersonalityType:        "INTJ",
			GroupSizePreference:    domain.GroupSoloFriendly,
			TravelMonths:           []string{"September", "October"},
			BudgetRange:            "premium",
			TripHistory: []domain.TripHistoryEntry{
				{TripID: "trip-002", Title: "Kyoto Temples & Tea Ceremony Week", Status: domain.TripCompleted, Date: "2024-11-02", Location: "Kyoto"},
			},
			TripsCompleted: 10,
			TripsUpcoming:  0,
		},
		{
			ID:                     uuid.MustParse("7c9b1f02-3d44-4b8a-9a10-777777777777"),
			Name:                   "Noah Berg",
			Avatar:                 "https://i.pravatar.cc/150?img=7",
			Age:                    23,
			Location:               "Oslo, Norway",
			Bio:                    "Gap-year turned lifestyle. Budget spreadsheets are my love language.",
			SportsInterests:        []string{"snowboarding", "bouldering"},
			EntertainmentInterests: []string{"gaming", "electronic music"},
			LifestyleInterests:     []string{"hostels", "street food"},
			RelationshipStatus:     "single",
			PersonalityType:        "ENTP",
			GroupSizePreference:    domain.GroupLarge,
			TravelMonths:           []string{"flexible"},
			BudgetRange:            "budget",
			TripHistory: []domain.TripHistoryEntry{
				{TripID: "trip-010", Title: "Lisbon & Algarve Budget Roadtrip", Status: domain.TripCompleted, Date: "2025-07-05", Location: "Lisbon", Companions: 4},
				{TripID: "trip-015", Title: "Thai Islands Budget Hopper", Status: domain.TripSignedUp, Date: "2026-11-10", Location: "Krabi"},
			},
			TripsCompleted: 6,
			TripsUpcoming:  1,
		},
		{
			ID:                     uuid.MustParse("7c9b1f02-3d44-4b8a-9a10-888888888888"),
			Name:                   "Priya Sharma",
			Avatar:                 "https://i.pravatar.cc/150?img=8",
			Age:                    35,
			Location:               "Mumbai, India",
			Bio:                    "Two kids, one camper van, zero regrets.",
			SportsInterests:        []string{"swimming"},
			EntertainmentInterests: []string{"board games", "bollywood"},
			LifestyleInterests:     []string{"family travel", "camping"},
			RelationshipStatus:     "married",
			PersonalityType:        "ESFJ",
			GroupSizePreference:    domain.GroupLarge,
			TravelMonths:           []string{"May", "December"},
			BudgetRange:            "mid-range",
			TripHistory: []domain.TripHistoryEntry{
				{TripID: "trip-008", Title: "Costa Rica Family Jungle Adventure", Status: domain.TripBooked, Date: "2026-12-20", Location: "La Fortuna", Companions: 3},
			},
			TripsCompleted: 4,
			TripsUpcoming:  1,
		},
		{
			ID:                     uuid.MustParse("7c9b1f02-3d44-4b8a-9a10-999999999999"),
			Name:                   "Lucas Moreau",
			Avatar:                 "https://i.pravatar.cc/150?img=9",
			Age:                    45,
			Location:               "Lyon, France",
			Bio:                    "Sommelier. I plan trips around harvests.",
			SportsInterests:        []string{"cycling", "golf"},
			EntertainmentInterests: []string{"classical music"},
			LifestyleInterests:     []string{"wine", "fine dining", "slow travel"},
			RelationshipStatus:     "married",
			PersonalityType:        "ISFJ",
			GroupSizePreference:    domain.GroupCouples,
			TravelMonths:           []string{"September", "October"},
			BudgetRange:            "premium",
			TripHistory: []domain.TripHistoryEntry{
				{TripID: "trip-014", Title: "Tuscany Slow Food & Wine Week", Status: domain.TripCompleted, Date: "2025-09-28", Location: "Val d'Orcia", Companions: 1},
			},
			TripsCompleted: 9,
			TripsUpcoming:  1,
		},
		{
			ID:                     uuid.MustParse("7c9b1f02-3d44-4b8a-9a10-aaaaaaaaaaaa"),
			Name:                   "Hana Kim",
			Avatar:                 "https://i.pravatar.cc/150?img=10",
			Age:                    27,
			Location:               "Seoul, South Korea",
			Bio:                    "UX researcher logging wellness retreats like sprint retros.",
			SportsInterests:        []string{"yoga", "pilates", "hiking"},
			EntertainmentInterests: []string{"k-dramas", "indie music"},
			LifestyleInterests:     []string{"meditation", "matcha", "journaling"},
			RelationshipStatus:     "single",
			PersonalityType:        "INFP",
			GroupSizePreference:    domain.GroupSoloFriendly,
			TravelMonths:           []string{"March", "April", "flexible"},
			BudgetRange:            "mid-range",
			TripHistory: []domain.TripHistoryEntry{
				{TripID: "trip-003", Title: "Bali Yoga & Surf Retreat", Status: domain.TripCompleted, Date: "2025-04-11", Location: "Canggu"},
				{TripID: "trip-016", Title: "Amalfi Coast Wellness Retreat", Status: domain.TripSaved, Date: "2026-05-02", Location: "Positano"},
			},
			TripsCompleted: 7,
			TripsUpcoming:  0,
		},
		{
			ID:                     uuid.MustParse("7c9b1f02-3d44-4b8a-9a10-bbbbbbbbbbbb"),
			Name:                   "Diego Fuentes",
			Avatar:                 "https://i.pravatar.cc/150?img=11",
			Age:                    52,
			Location:               "Mexico City, Mexico",
			Bio:                    "History teacher with a rule: one ruin per trip, minimum.",
			SportsInterests:        []string{"walking"},
			EntertainmentInterests: []string{"museums", "history podcasts"},
			LifestyleInterests:     []string{"archaeology", "local markets"},
			RelationshipStatus:     "married",
			PersonalityType:        "ISTJ",
			GroupSizePreference:    domain.GroupSmall,
			TravelMonths:           []string{"July", "August"},
			BudgetRange:            "mid-range",
			TripHistory: []domain.TripHistoryEntry{
				{TripID: "trip-001", Title: "Inca Trail Trek to Machu Picchu", Status: domain.TripCompleted, Date: "2024-07-19", Location: "Cusco", Companions: 1},
				{TripID: "trip-002", Title: "Kyoto Temples & Tea Ceremony Week", Status: domain.TripSignedUp, Date: "2026-08-01", Location: "Kyoto"},
			},
			TripsCompleted: 11,
			TripsUpcoming:  1,
		},
		{
			ID:                     uuid.MustParse("7c9b1f02-3d44-4b8a-9a10-cccccccccccc"),
			Name:                   "Ingrid Larsen",
			Avatar:                 "https://i.pravatar.cc/150?img=12",
			Age:                    30,
			Location:               "Copenhagen, Denmark",
			Bio:                    "Wildlife vet. My camera roll is 90% birds.",
			SportsInterests:        []string{"kayaking", "hiking"},
			EntertainmentInterests: []string{"nature documentaries"},
			LifestyleInterests:     []string{"birdwatching", "photography", "camping"},
			RelationshipStatus:     "in a relationship",
			PersonalityType:        "ENFJ",
			GroupSizePreference:    domain.GroupSmall,
			TravelMonths:           []string{"June", "July"},
			BudgetRange:            "flexible",
			TripHistory: []domain.TripHistoryEntry{
				{TripID: "trip-004", Title: "Serengeti Great Migration Safari", Status: domain.TripBooked, Date: "2026-07-14", Location: "Serengeti", Companions: 1},
				{TripID: "trip-011", Title: "Iceland Ring Road Photo Expedition", Status: domain.TripCompleted, Date: "2025-06-20", Location: "Reykjavik"},
			},
			TripsCompleted: 6,
			TripsUpcoming:  2,
		},
	}
}
