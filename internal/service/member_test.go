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

func newMemberService(t *testing.T) *service.MemberService {
	t.Helper()
	c, err := catalog.Build()
	require.NoError(t, err)
	return service.NewMemberService(c)
}

func TestMemberService_List_NoFilters(t *testing.T) {
	svc := newMemberService(t)

	got, err := svc.List(context.Background(), domain.MemberQuery{})

	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestMemberService_List_FamilyFilter(t *testing.T) {
	svc := newMemberService(t)

	got, err := svc.List(context.Background(), domain.MemberQuery{PersonalityFamily: domain.FamilyAnalysts})

	require.NoError(t, err)
	for _, m := range got {
		f, ok := domain.FamilyForPersonality(m.PersonalityType)
		require.True(t, ok)
		assert.Equal(t, domain.FamilyAnalysts, f)
	}
}

func TestMemberService_List_UnknownFamily(t *testing.T) {
	svc := newMemberService(t)

	_, err := svc.List(context.Background(), domain.MemberQuery{PersonalityFamily: "wizards"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMemberService_GetByID(t *testing.T) {
	svc := newMemberService(t)

	all, err := svc.List(context.Background(), domain.MemberQuery{})
	require.NoError(t, err)
	require.NotEmpty(t, all)

	got, err := svc.GetByID(context.Background(), all[0].ID.String())
	require.NoError(t, err)
	assert.Equal(t, all[0].Name, got.Name)

	_, err = svc.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemberService_MostActive_DescendingByCompleted(t *testing.T) {
	svc := newMemberService(t)

	got, err := svc.MostActive(context.Background(), 0)

	require.NoError(t, err)
	assert.LessOrEqual(t, len(got), 10)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].TripsCompleted, got[i].TripsCompleted)
	}
}
