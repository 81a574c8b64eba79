package identity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/identity"
)

func TestUnconfigured_DegradesToUnavailable(t *testing.T) {
	p := identity.Unconfigured{}

	_, err := p.SignIn(context.Background(), "google")
	assert.ErrorIs(t, err, domain.ErrUnavailable)

	_, err = p.SignInWithPassword(context.Background(), "a@b.test", "secretpass", false)
	assert.ErrorIs(t, err, domain.ErrUnavailable)

	assert.ErrorIs(t, p.SignOut(context.Background()), domain.ErrUnavailable)

	// Subscribe must still hand back a usable cancel func.
	cancel := p.Subscribe(func(identity.Session, bool) {
		t.Fatal("unconfigured provider must never fire callbacks")
	})
	cancel()
}

func TestLocal_SignUpThenSignIn(t *testing.T) {
	p := identity.NewLocal()

	created, err := p.SignInWithPassword(context.Background(), "ana@example.test", "hunter2hunter2", true)
	require.NoError(t, err)
	assert.NotEmpty(t, created.UserID)
	assert.Equal(t, "ana@example.test", created.Email)

	again, err := p.SignInWithPassword(context.Background(), "ana@example.test", "hunter2hunter2", false)
	require.NoError(t, err)
	// User IDs are stable per email across sessions.
	assert.Equal(t, created.UserID, again.UserID)
}

func TestLocal_SignInUnknownAccount(t *testing.T) {
	p := identity.NewLocal()

	_, err := p.SignInWithPassword(context.Background(), "ghost@example.test", "hunter2hunter2", false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLocal_SignUpExistingAccount(t *testing.T) {
	p := identity.NewLocal()

	_, err := p.SignInWithPassword(context.Background(), "ana@example.test", "hunter2hunter2", true)
	require.NoError(t, err)

	_, err = p.SignInWithPassword(context.Background(), "ana@example.test", "hunter2hunter2", true)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLocal_RejectsMalformedCredentials(t *testing.T) {
	p := identity.NewLocal()

	_, err := p.SignInWithPassword(context.Background(), "not-an-email", "hunter2hunter2", true)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = p.SignInWithPassword(context.Background(), "ana@example.test", "short", true)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = p.SignIn(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// TestLocal_SubscribeAndCancel verifies the subscription contract: callbacks
// fire on every state change, and a cancelled subscriber sees nothing more.
func TestLocal_SubscribeAndCancel(t *testing.T) {
	p := identity.NewLocal()

	var events []bool
	cancel := p.Subscribe(func(_ identity.Session, signedIn bool) {
		events = append(events, signedIn)
	})

	_, err := p.SignInWithPassword(context.Background(), "ana@example.test", "hunter2hunter2", true)
	require.NoError(t, err)
	require.NoError(t, p.SignOut(context.Background()))

	assert.Equal(t, []bool{true, false}, events)

	cancel()
	_, err = p.SignIn(context.Background(), "google")
	require.NoError(t, err)

	// No event after cancellation.
	assert.Equal(t, []bool{true, false}, events)
}

func TestLocal_SessionTracksState(t *testing.T) {
	p := identity.NewLocal()

	_, ok := p.Session()
	assert.False(t, ok)

	s, err := p.SignIn(context.Background(), "google")
	require.NoError(t, err)

	got, ok := p.Session()
	require.True(t, ok)
	assert.Equal(t, s, got)

	require.NoError(t, p.SignOut(context.Background()))
	_, ok = p.Session()
	assert.False(t, ok)
}
