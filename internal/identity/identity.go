// Package identity wraps the managed auth provider the front-end delegates
// sign-in to. The core never talks to the provider's SDK directly — it calls
// through the Provider interface and treats every failure as a plain error
// value surfaced to the caller, never a panic across the boundary.
//
// When no provider is configured the API still runs: Unconfigured satisfies
// the interface and degrades every call to domain.ErrUnavailable.
package identity

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
)

// Session identifies an authenticated user as reported by the provider.
type Session struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Provider    string `json:"provider"`
}

// Provider is the contract the core calls into for authentication.
//
// Subscribe replaces the SDK's push-style "notify on change" callback with an
// explicit registration: the returned cancel func must be called on teardown
// so a torn-down component never observes a stale session.
type Provider interface {
	// SignIn authenticates via a federated provider ("google", "apple", ...).
	SignIn(ctx context.Context, providerName string) (Session, error)

	// SignInWithPassword authenticates with email/password credentials,
	// creating the account first when newAccount is true.
	SignInWithPassword(ctx context.Context, email, password string, newAccount bool) (Session, error)

	// SignOut ends the current session.
	SignOut(ctx context.Context) error

	// Subscribe registers fn to be called with (session, signedIn) on every
	// auth-state change and returns a cancellation handle.
	Subscribe(fn func(Session, bool)) (cancel func())
}

// Unconfigured is the degraded-mode Provider used when no identity backend is
// configured. Every auth call fails with domain.ErrUnavailable; Subscribe is
// a no-op that never fires.
type Unconfigured struct{}

func (Unconfigured) SignIn(context.Context, string) (Session, error) {
	return Session{}, fmt.Errorf("identity.SignIn: %w", domain.ErrUnavailable)
}

func (Unconfigured) SignInWithPassword(context.Context, string, string, bool) (Session, error) {
	return Session{}, fmt.Errorf("identity.SignInWithPassword: %w", domain.ErrUnavailable)
}

func (Unconfigured) SignOut(context.Context) error {
	return fmt.Errorf("identity.SignOut: %w", domain.ErrUnavailable)
}

func (Unconfigured) Subscribe(func(Session, bool)) (cancel func()) {
	return func() {}
}

var _ Provider = Unconfigured{}

// Local is an in-process Provider for development and tests. It accepts any
// well-formed credentials, assigns stable user IDs per email, and fans out
// auth-state changes to subscribers.
type Local struct {
	mu      sync.Mutex
	users   map[string]string // email → user ID
	session *Session
	subs    map[int]func(Session, bool)
	nextSub int
}

// NewLocal returns an empty local provider.
func NewLocal() *Local {
	return &Local{
		users: map[string]string{},
		subs:  map[int]func(Session, bool){},
	}
}

// SignIn simulates a federated sign-in for the named provider.
func (l *Local) SignIn(ctx context.Context, providerName string) (Session, error) {
	if strings.TrimSpace(providerName) == "" {
		return Session{}, fmt.Errorf("identity.Local.SignIn: %w: provider name is required", domain.ErrValidation)
	}
	email := providerName + "-user@example.test"
	return l.establish(email, providerName), nil
}

// SignInWithPassword validates the credentials' shape and establishes a
// session. Existing emails must not be re-registered with newAccount.
func (l *Local) SignInWithPassword(ctx context.Context, email, password string, newAccount bool) (Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return Session{}, fmt.Errorf("identity.Local.SignInWithPassword: %w: a valid email is required", domain.ErrValidation)
	}
	if len(password) < 8 {
		return Session{}, fmt.Errorf("identity.Local.SignInWithPassword: %w: password must be at least 8 characters", domain.ErrValidation)
	}

	l.mu.Lock()
	_, exists := l.users[email]
	l.mu.Unlock()

	if newAccount && exists {
		return Session{}, fmt.Errorf("identity.Local.SignInWithPassword: %w: account already exists", domain.ErrValidation)
	}
	if !newAccount && !exists {
		return Session{}, fmt.Errorf("identity.Local.SignInWithPassword: %w", domain.ErrNotFound)
	}

	return l.establish(email, "password"), nil
}

// SignOut clears the session and notifies subscribers.
func (l *Local) SignOut(ctx context.Context) error {
	l.mu.Lock()
	l.session = nil
	subs := l.snapshot()
	l.mu.Unlock()

	for _, fn := range subs {
		fn(Session{}, false)
	}
	return nil
}

// Subscribe registers fn and returns its cancellation handle. A subscriber
// registered mid-session is not replayed the current state; it only sees
// changes from now on.
func (l *Local) Subscribe(fn func(Session, bool)) (cancel func()) {
	l.mu.Lock()
	id := l.nextSub
	l.nextSub++
	l.subs[id] = fn
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		delete(l.subs, id)
		l.mu.Unlock()
	}
}

// Session returns the current session, if any.
func (l *Local) Session() (Session, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.session == nil {
		return Session{}, false
	}
	return *l.session, true
}

func (l *Local) establish(email, providerName string) Session {
	l.mu.Lock()
	id, ok := l.users[email]
	if !ok {
		id = uuid.New().String()
		l.users[email] = id
	}
	s := Session{
		UserID:      id,
		Email:       email,
		DisplayName: strings.SplitN(email, "@", 2)[0],
		Provider:    providerName,
	}
	l.session = &s
	subs := l.snapshot()
	l.mu.Unlock()

	for _, fn := range subs {
		fn(s, true)
	}
	return s
}

// snapshot copies the subscriber set so callbacks run outside the lock.
// Callers must hold mu.
func (l *Local) snapshot() []func(Session, bool) {
	out := make([]func(Session, bool), 0, len(l.subs))
	for _, fn := range l.subs {
		out = append(out, fn)
	}
	return out
}

var _ Provider = (*Local)(nil)
