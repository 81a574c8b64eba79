package catalog

import (
	"sort"
	"strings"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
)

// Member-roster queries. Same rules as the listing query layer: pure
// functions, fresh result slices, stable sorts.

// defaultMostActiveLimit is used when MostActiveMembers gets a non-positive count.
const defaultMostActiveLimit = 10

// FilterMembersByInterest keeps members carrying the interest tag in any of
// the three interest categories. Matching is case-insensitive.
func FilterMembersByInterest(members []domain.MemberProfile, interest string) []domain.MemberProfile {
	return filterMembers(members, func(m domain.MemberProfile) bool {
		for _, list := range [][]string{m.SportsInterests, m.EntertainmentInterests, m.LifestyleInterests} {
			for _, tag := range list {
				if strings.EqualFold(tag, interest) {
					return true
				}
			}
		}
		return false
	})
}

// FilterMembersByPersonalityType keeps members with the exact type code.
func FilterMembersByPersonalityType(members []domain.MemberProfile, code string) []domain.MemberProfile {
	want := strings.ToUpper(code)
	return filterMembers(members, func(m domain.MemberProfile) bool {
		return m.PersonalityType == want
	})
}

// FilterMembersByPersonalityFamily keeps members whose type code falls in the
// given family (analysts, diplomats, sentinels, explorers).
func FilterMembersByPersonalityFamily(members []domain.MemberProfile, family domain.PersonalityFamily) []domain.MemberProfile {
	return filterMembers(members, func(m domain.MemberProfile) bool {
		f, ok := domain.FamilyForPersonality(m.PersonalityType)
		return ok && f == family
	})
}

// FilterMembersByRelationshipStatus keeps members with the exact status.
func FilterMembersByRelationshipStatus(members []domain.MemberProfile, status string) []domain.MemberProfile {
	return filterMembers(members, func(m domain.MemberProfile) bool {
		return strings.EqualFold(m.RelationshipStatus, status)
	})
}

// FilterMembersByGroupSize keeps members preferring the given group size.
// A member whose preference is GroupAny matches every filter value.
func FilterMembersByGroupSize(members []domain.MemberProfile, size domain.GroupSize) []domain.MemberProfile {
	return filterMembers(members, func(m domain.MemberProfile) bool {
		return m.GroupSizePreference == size || m.GroupSizePreference == domain.GroupAny
	})
}

// FilterMembersByBudgetRange keeps members with the given budget range.
// The member-side wildcard "flexible" matches every filter value.
func FilterMembersByBudgetRange(members []domain.MemberProfile, budget string) []domain.MemberProfile {
	return filterMembers(members, func(m domain.MemberProfile) bool {
		return strings.EqualFold(m.BudgetRange, budget) || strings.EqualFold(m.BudgetRange, "flexible")
	})
}

// FilterMembersByTravelMonth keeps members who listed the month among their
// preferred travel months, or listed "flexible".
func FilterMembersByTravelMonth(members []domain.MemberProfile, month string) []domain.MemberProfile {
	return filterMembers(members, func(m domain.MemberProfile) bool {
		for _, t := range m.TravelMonths {
			if strings.EqualFold(t, month) || strings.EqualFold(t, "flexible") {
				return true
			}
		}
		return false
	})
}

// MostActiveMembers orders the roster by completed-trip count descending and
// truncates to count (default 10 when count <= 0).
func MostActiveMembers(members []domain.MemberProfile, count int) []domain.MemberProfile {
	if count <= 0 {
		count = defaultMostActiveLimit
	}
	out := make([]domain.MemberProfile, len(members))
	copy(out, members)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TripsCompleted > out[j].TripsCompleted
	})
	if len(out) > count {
		out = out[:count]
	}
	return out
}

// ApplyMemberQuery composes the roster filters according to q.
func ApplyMemberQuery(members []domain.MemberProfile, q domain.MemberQuery) []domain.MemberProfile {
	out := make([]domain.MemberProfile, len(members))
	copy(out, members)
	if q.Interest != "" {
		out = FilterMembersByInterest(out, q.Interest)
	}
	if q.PersonalityType != "" {
		out = FilterMembersByPersonalityType(out, q.PersonalityType)
	}
	if q.PersonalityFamily != "" {
		out = FilterMembersByPersonalityFamily(out, q.PersonalityFamily)
	}
	if q.RelationshipStatus != "" {
		out = FilterMembersByRelationshipStatus(out, q.RelationshipStatus)
	}
	if q.GroupSize != "" {
		out = FilterMembersByGroupSize(out, q.GroupSize)
	}
	if q.BudgetRange != "" {
		out = FilterMembersByBudgetRange(out, q.BudgetRange)
	}
	if q.TravelMonth != "" {
		out = FilterMembersByTravelMonth(out, q.TravelMonth)
	}
	return out
}

func filterMembers(members []domain.MemberProfile, keep func(domain.MemberProfile) bool) []domain.MemberProfile {
	out := []domain.MemberProfile{}
	for _, m := range members {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
