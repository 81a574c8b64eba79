package handler

import (
	"context"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/identity"
	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/links"
)

// mockTripService implements TripServicer via function fields so each test
// stubs only the call it exercises.
type mockTripService struct {
	ListFunc       func(ctx context.Context, q domain.TripQuery, p domain.PaginationParams) ([]domain.TripListing, int, error)
	GetByIDFunc    func(ctx context.Context, id string) (domain.TripListing, error)
	MostBookedFunc func(ctx context.Context) ([]domain.TripListing, error)
	FeaturedFunc   func(ctx context.Context, limit int) ([]domain.TripListing, error)
	ForMemberFunc  func(ctx context.Context, name, cohort string) ([]domain.TripListing, error)
}

func (m *mockTripService) List(ctx context.Context, q domain.TripQuery, p domain.PaginationParams) ([]domain.TripListing, int, error) {
	return m.ListFunc(ctx, q, p)
}

func (m *mockTripService) GetByID(ctx context.Context, id string) (domain.TripListing, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockTripService) MostBooked(ctx context.Context) ([]domain.TripListing, error) {
	return m.MostBookedFunc(ctx)
}

func (m *mockTripService) Featured(ctx context.Context, limit int) ([]domain.TripListing, error) {
	return m.FeaturedFunc(ctx, limit)
}

func (m *mockTripService) ForMember(ctx context.Context, name, cohort string) ([]domain.TripListing, error) {
	return m.ForMemberFunc(ctx, name, cohort)
}

var _ TripServicer = (*mockTripService)(nil)

type mockMemberService struct {
	ListFunc       func(ctx context.Context, q domain.MemberQuery) ([]domain.MemberProfile, error)
	GetByIDFunc    func(ctx context.Context, id string) (domain.MemberProfile, error)
	MostActiveFunc func(ctx context.Context, count int) ([]domain.MemberProfile, error)
}

func (m *mockMemberService) List(ctx context.Context, q domain.MemberQuery) ([]domain.MemberProfile, error) {
	return m.ListFunc(ctx, q)
}

func (m *mockMemberService) GetByID(ctx context.Context, id string) (domain.MemberProfile, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockMemberService) MostActive(ctx context.Context, count int) ([]domain.MemberProfile, error) {
	return m.MostActiveFunc(ctx, count)
}

var _ MemberServicer = (*mockMemberService)(nil)

type mockLinkService struct {
	GenerateFunc func(ctx context.Context, p links.Preferences) ([]links.SearchLink, error)
}

func (m *mockLinkService) Generate(ctx context.Context, p links.Preferences) ([]links.SearchLink, error) {
	return m.GenerateFunc(ctx, p)
}

var _ LinkServicer = (*mockLinkService)(nil)

type mockProfileService struct {
	GetFunc    func(ctx context.Context, userID string) (domain.MemberProfile, error)
	SaveFunc   func(ctx context.Context, userID string, p domain.MemberProfile) error
	DeleteFunc func(ctx context.Context, userID string) error
}

func (m *mockProfileService) Get(ctx context.Context, userID string) (domain.MemberProfile, error) {
	return m.GetFunc(ctx, userID)
}

func (m *mockProfileService) Save(ctx context.Context, userID string, p domain.MemberProfile) error {
	return m.SaveFunc(ctx, userID, p)
}

func (m *mockProfileService) Delete(ctx context.Context, userID string) error {
	return m.DeleteFunc(ctx, userID)
}

var _ ProfileServicer = (*mockProfileService)(nil)

type mockAuthProvider struct {
	SignInFunc             func(ctx context.Context, providerName string) (identity.Session, error)
	SignInWithPasswordFunc func(ctx context.Context, email, password string, newAccount bool) (identity.Session, error)
	SignOutFunc            func(ctx context.Context) error
}

func (m *mockAuthProvider) SignIn(ctx context.Context, providerName string) (identity.Session, error) {
	return m.SignInFunc(ctx, providerName)
}

func (m *mockAuthProvider) SignInWithPassword(ctx context.Context, email, password string, newAccount bool) (identity.Session, error) {
	return m.SignInWithPasswordFunc(ctx, email, password, newAccount)
}

func (m *mockAuthProvider) SignOut(ctx context.Context) error {
	return m.SignOutFunc(ctx)
}

func (m *mockAuthProvider) Subscribe(func(identity.Session, bool)) (cancel func()) {
	return func() {}
}

var _ identity.Provider = (*mockAuthProvider)(nil)

// newTestServer wires a Server from whichever mocks the test provides;
// untouched dependencies stay nil and panic loudly if reached.
func newTestServer(trips TripServicer, members MemberServicer, linkSvc LinkServicer, profiles ProfileServicer, auth identity.Provider) *Server {
	return NewServer(trips, members, linkSvc, profiles, auth)
}
