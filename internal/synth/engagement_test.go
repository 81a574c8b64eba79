package synth_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/synth"
)

// TestGenerateMemberData_TotalsMatchCohorts verifies that for a range of seeds
// the aggregate counters always equal the lengths of the cohort slices.
func TestGenerateMemberData_TotalsMatchCohorts(t *testing.T) {
	for seed := 1; seed <= 200; seed++ {
		md, err := synth.GenerateMemberData(seed)
		require.NoError(t, err, "seed %d", seed)

		assert.Equal(t, len(md.Booked), md.TotalBooked, "seed %d", seed)
		assert.Equal(t, len(md.SignedUp), md.TotalSignups, "seed %d", seed)
		assert.Equal(t, len(md.Saved), md.TotalSaved, "seed %d", seed)
	}
}

// TestGenerateMemberData_CohortsDisjoint verifies that no identity appears in
// more than one cohort for the same listing.
func TestGenerateMemberData_CohortsDisjoint(t *testing.T) {
	for seed := 1; seed <= 200; seed++ {
		md, err := synth.GenerateMemberData(seed)
		require.NoError(t, err)

		seen := map[string]string{}
		record := func(name, cohort string) {
			prev, dup := seen[name]
			assert.False(t, dup, "seed %d: %q appears in both %s and %s", seed, name, prev, cohort)
			seen[name] = cohort
		}
		for _, m := range md.Booked {
			record(m.Name, "booked")
		}
		for _, m := range md.SignedUp {
			record(m.Name, "signed-up")
		}
		for _, m := range md.Saved {
			record(m.Name, "saved")
		}
	}
}

// TestGenerateMemberData_Ranges verifies the documented bounds on capacity and
// cohort sizes.
func TestGenerateMemberData_Ranges(t *testing.T) {
	for seed := 1; seed <= 200; seed++ {
		md, err := synth.GenerateMemberData(seed)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, md.MaxSpots, 8, "seed %d", seed)
		assert.LessOrEqual(t, md.MaxSpots, 16, "seed %d", seed)
		assert.GreaterOrEqual(t, md.TotalBooked, 1, "seed %d", seed)
		assert.LessOrEqual(t, md.TotalBooked, 6, "seed %d", seed)
		assert.LessOrEqual(t, md.TotalSignups, 3, "seed %d", seed)
		assert.LessOrEqual(t, md.TotalSaved, 9, "seed %d", seed)
	}
}

// TestGenerateMemberData_SpotsReservedAlternate verifies that booked entries
// reserve 1 or 2 spots, alternating by position.
func TestGenerateMemberData_SpotsReservedAlternate(t *testing.T) {
	md, err := synth.GenerateMemberData(5) // 5%6+1 = 6 booked entries
	require.NoError(t, err)
	require.Len(t, md.Booked, 6)

	for i, b := range md.Booked {
		want := 1
		if i%2 == 1 {
			want = 2
		}
		assert.Equal(t, want, b.SpotsReserved, "position %d", i)
	}
}

// TestGenerateMemberData_SpotsLeftNeverNegative verifies the clamp: capacity
// minus reservations never goes below zero.
func TestGenerateMemberData_SpotsLeftNeverNegative(t *testing.T) {
	for seed := 1; seed <= 500; seed++ {
		md, err := synth.GenerateMemberData(seed)
		require.NoError(t, err)

		reserved := 0
		for _, b := range md.Booked {
			reserved += b.SpotsReserved
		}
		if reserved <= md.MaxSpots {
			assert.Equal(t, md.MaxSpots-reserved, md.SpotsLeft, "seed %d", seed)
		} else {
			assert.Zero(t, md.SpotsLeft, "seed %d", seed)
		}
	}
}

// TestGenerateMemberData_Deterministic verifies that two calls with the same
// seed yield identical output — there is no hidden mutable state.
func TestGenerateMemberData_Deterministic(t *testing.T) {
	for _, seed := range []int{1, 7, 42, 99} {
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			first, err := synth.GenerateMemberData(seed)
			require.NoError(t, err)
			second, err := synth.GenerateMemberData(seed)
			require.NoError(t, err)

			assert.Equal(t, first, second)
		})
	}
}

// TestGenerateMemberData_InvalidSeed verifies that non-positive seeds are
// rejected with a validation error.
func TestGenerateMemberData_InvalidSeed(t *testing.T) {
	for _, seed := range []int{0, -1, -100} {
		_, err := synth.GenerateMemberData(seed)
		assert.ErrorIs(t, err, domain.ErrValidation, "seed %d", seed)
	}
}
