// Package synth derives the synthetic engagement and ranking snapshots
// attached to every catalog listing. Both generators are pure functions of
// their integer inputs: the same seed always produces the same output, so the
// catalog build is fully deterministic.
//
// The numbers are plausible-looking social proof, not measurements. Nothing in
// this package should be read as statistically rigorous.
package synth

import (
	"fmt"
	"math/rand"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
)

// poolMember is one sample identity available to the cohort generator.
type poolMember struct {
	name   string
	avatar string
}

// memberPool is the shared pool of sample identities cohorts draw from.
// Avatars point at a placeholder-image service keyed by index.
var memberPool = []poolMember{
	{"Sofia Ramirez", "https://i.pravatar.cc/150?img=1"},
	{"Liam O'Connor", "https://i.pravatar.cc/150?img=2"},
	{"Yuki Tanaka", "https://i.pravatar.cc/150?img=3"},
	{"Amara Okafor", "https://i.pravatar.cc/150?img=4"},
	{"Mateo Silva", "https://i.pravatar.cc/150?img=5"},
	{"Elena Petrova", "https://i.pravatar.cc/150?img=6"},
	{"Noah Berg", "https://i.pravatar.cc/150?img=7"},
	{"Priya Sharma", "https://i.pravatar.cc/150?img=8"},
	{"Lucas Moreau", "https://i.pravatar.cc/150?img=9"},
	{"Hana Kim", "https://i.pravatar.cc/150?img=10"},
	{"Diego Fuentes", "https://i.pravatar.cc/150?img=11"},
	{"Ingrid Larsen", "https://i.pravatar.cc/150?img=12"},
	{"Omar Haddad", "https://i.pravatar.cc/150?img=13"},
	{"Chloe Dubois", "https://i.pravatar.cc/150?img=14"},
	{"Marcus Webb", "https://i.pravatar.cc/150?img=15"},
	{"Aisha Diallo", "https://i.pravatar.cc/150?img=16"},
	{"Tomas Novak", "https://i.pravatar.cc/150?img=17"},
	{"Maya Lindberg", "https://i.pravatar.cc/150?img=18"},
	{"Ravi Patel", "https://i.pravatar.cc/150?img=19"},
	{"Isabella Rossi", "https://i.pravatar.cc/150?img=20"},
	{"Jonas Weber", "https://i.pravatar.cc/150?img=21"},
	{"Leilani Kahale", "https://i.pravatar.cc/150?img=22"},
	{"Felix Andersson", "https://i.pravatar.cc/150?img=23"},
	{"Zara Ahmed", "https://i.pravatar.cc/150?img=24"},
}

var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var savedAgoLabels = [7]string{
	"2 hours ago", "5 hours ago", "1 day ago", "2 days ago",
	"3 days ago", "1 week ago", "2 weeks ago",
}

// GenerateMemberData derives a listing's engagement snapshot from its seed
// (the listing's 1-based catalog position).
//
// Cohort sizes and capacity come from modular arithmetic over the seed:
// capacity 8–16, booked 1–6, signed-up 0–3, saved 2–9. The pool is permuted
// with a seeded PRNG and partitioned into three disjoint slices in the fixed
// order booked → signed-up → saved; when the pool runs short, later cohorts
// come back smaller than requested rather than reusing identities. SpotsLeft
// is clamped at zero.
func GenerateMemberData(seed int) (domain.TripMemberData, error) {
	if seed < 1 {
		return domain.TripMemberData{}, fmt.Errorf("synth.GenerateMemberData: %w: seed must be positive, got %d", domain.ErrValidation, seed)
	}

	maxSpots := seed%9 + 8
	bookedN := seed%6 + 1
	signedN := seed % 4
	savedN := seed%8 + 2

	pool := shuffledPool(seed)
	md := domain.TripMemberData{
		Booked:   []domain.BookedMember{},
		SignedUp: []domain.SignedUpMember{},
		Saved:    []domain.SavedMember{},
		MaxSpots: maxSpots,
	}

	reserved := 0
	for i, m := range slicePool(pool, 0, bookedN) {
		spots := 1
		if i%2 == 1 {
			spots = 2
		}
		reserved += spots
		md.Booked = append(md.Booked, domain.BookedMember{
			Name:          m.name,
			Avatar:        m.avatar,
			Date:          fmt.Sprintf("%s %d, 2026", monthLabels[(seed+i)%12], (seed*7+i*3)%28+1),
			SpotsReserved: spots,
		})
	}
	for i, m := range slicePool(pool, bookedN, signedN) {
		md.SignedUp = append(md.SignedUp, domain.SignedUpMember{
			Name:   m.name,
			Avatar: m.avatar,
			Date:   fmt.Sprintf("%s %d, 2026", monthLabels[(seed+bookedN+i)%12], (seed*5+i*3)%28+1),
		})
	}
	for i, m := range slicePool(pool, bookedN+signedN, savedN) {
		md.Saved = append(md.Saved, domain.SavedMember{
			Name:     m.name,
			Avatar:   m.avatar,
			SavedAgo: savedAgoLabels[(seed+i)%len(savedAgoLabels)],
		})
	}

	md.TotalBooked = len(md.Booked)
	md.TotalSignups = len(md.SignedUp)
	md.TotalSaved = len(md.Saved)

	md.SpotsLeft = maxSpots - reserved
	if md.SpotsLeft < 0 {
		md.SpotsLeft = 0
	}

	return md, nil
}

// shuffledPool returns a seeded pseudo-random permutation of the identity pool.
// math/rand with a fixed source replaces the original sin()-comparator shuffle:
// same determinism, better distribution.
func shuffledPool(seed int) []poolMember {
	out := make([]poolMember, len(memberPool))
	copy(out, memberPool)
	r := rand.New(rand.NewSource(int64(seed)))
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// slicePool returns pool[offset : offset+n] clamped to the pool bounds.
// No wraparound: a short pool yields a short slice.
func slicePool(pool []poolMember, offset, n int) []poolMember {
	if offset >= len(pool) || n <= 0 {
		return nil
	}
	end := offset + n
	if end > len(pool) {
		end = len(pool)
	}
	return pool[offset:end]
}
