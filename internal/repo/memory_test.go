package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/repo"
)

// The in-memory repo must honor the same contract as the Postgres one.

func TestMemoryProfileRepo_RoundTrip(t *testing.T) {
	r := repo.NewMemoryProfileRepo()
	ctx := context.Background()

	want := profileFixture()
	require.NoError(t, r.Save(ctx, "user-1", want))

	got, err := r.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMemoryProfileRepo_GetMissing(t *testing.T) {
	r := repo.NewMemoryProfileRepo()

	_, err := r.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryProfileRepo_Delete(t *testing.T) {
	r := repo.NewMemoryProfileRepo()
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "user-1", profileFixture()))
	require.NoError(t, r.Delete(ctx, "user-1"))

	assert.ErrorIs(t, r.Delete(ctx, "user-1"), domain.ErrNotFound)
}
