package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/catalog"
	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/service"
)

// newTripService builds a service over the real catalog. The catalog is
// static and cheap to build, so services are tested against it directly
// rather than through a mock.
func newTripService(t *testing.T) *service.TripService {
	t.Helper()
	c, err := catalog.Build()
	require.NoError(t, err)
	return service.NewTripService(c)
}

func TestTripService_List_NoFilters(t *testing.T) {
	svc := newTripService(t)

	got, total, err := svc.List(context.Background(), domain.TripQuery{}, domain.PaginationParams{Page: 1, Limit: 100})

	require.NoError(t, err)
	assert.NotEmpty(t, got)
	assert.Equal(t, len(got), total)
}

func TestTripService_List_Paginates(t *testing.T) {
	svc := newTripService(t)

	first, total, err := svc.List(context.Background(), domain.TripQuery{}, domain.PaginationParams{Page: 1, Limit: 5})
	require.NoError(t, err)
	require.Len(t, first, 5)
	assert.Greater(t, total, 5)

	second, _, err := svc.List(context.Background(), domain.TripQuery{}, domain.PaginationParams{Page: 2, Limit: 5})
	require.NoError(t, err)
	assert.NotEqual(t, first[0].ID, second[0].ID)
}

func TestTripService_List_PageBeyondEnd(t *testing.T) {
	svc := newTripService(t)

	got, total, err := svc.List(context.Background(), domain.TripQuery{}, domain.PaginationParams{Page: 99, Limit: 50})

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Greater(t, total, 0)
}

func TestTripService_List_CategoryFilter(t *testing.T) {
	svc := newTripService(t)

	got, _, err := svc.List(context.Background(), domain.TripQuery{Category: domain.CategoryAdventure}, domain.PaginationParams{Page: 1, Limit: 100})

	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, l := range got {
		assert.Equal(t, domain.CategoryAdventure, l.Category)
	}
}

func TestTripService_List_InvalidPriceRange(t *testing.T) {
	svc := newTripService(t)

	_, _, err := svc.List(context.Background(), domain.TripQuery{MinPrice: 500, MaxPrice: 100}, domain.PaginationParams{Page: 1, Limit: 20})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_List_UnknownSort(t *testing.T) {
	svc := newTripService(t)

	_, _, err := svc.List(context.Background(), domain.TripQuery{Sort: "alphabetical"}, domain.PaginationParams{Page: 1, Limit: 20})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_GetByID(t *testing.T) {
	svc := newTripService(t)

	got, err := svc.GetByID(context.Background(), "trip-001")
	require.NoError(t, err)
	assert.Equal(t, "trip-001", got.ID)

	_, err = svc.GetByID(context.Background(), "trip-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_MostBooked_CapsAt20(t *testing.T) {
	svc := newTripService(t)

	got, err := svc.MostBooked(context.Background())

	require.NoError(t, err)
	assert.LessOrEqual(t, len(got), 20)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].MemberData.TotalBooked, got[i].MemberData.TotalBooked)
	}
}

func TestTripService_Featured_NegativeLimit(t *testing.T) {
	svc := newTripService(t)

	_, err := svc.Featured(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_ForMember_CohortRouting(t *testing.T) {
	svc := newTripService(t)
	ctx := context.Background()

	// The synth pool guarantees every listing has at least one booked member;
	// use the first one as a known-present name.
	all, _, err := svc.List(ctx, domain.TripQuery{}, domain.PaginationParams{Page: 1, Limit: 1})
	require.NoError(t, err)
	require.NotEmpty(t, all)
	name := all[0].MemberData.Booked[0].Name

	booked, err := svc.ForMember(ctx, name, "booked")
	require.NoError(t, err)
	assert.NotEmpty(t, booked)

	involved, err := svc.ForMember(ctx, name, "")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(involved), len(booked))
}

func TestTripService_ForMember_Invalid(t *testing.T) {
	svc := newTripService(t)
	ctx := context.Background()

	_, err := svc.ForMember(ctx, "", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.ForMember(ctx, "Sofia Ramirez", "wishlisted")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
