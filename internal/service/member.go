package service

import (
	"context"
	"fmt"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/catalog"
	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
)

// MemberService answers roster queries against the published catalog.
type MemberService struct {
	catalog *catalog.Catalog
}

// NewMemberService constructs a MemberService over the given catalog.
func NewMemberService(c *catalog.Catalog) *MemberService {
	return &MemberService{catalog: c}
}

// List applies q to the member roster.
func (s *MemberService) List(ctx context.Context, q domain.MemberQuery) ([]domain.MemberProfile, error) {
	if q.PersonalityFamily != "" {
		switch q.PersonalityFamily {
		case domain.FamilyAnalysts, domain.FamilyDiplomats, domain.FamilySentinels, domain.FamilyExplorers:
		default:
			return nil, fmt.Errorf("service.MemberService.List: %w: unknown personality family %q", domain.ErrValidation, q.PersonalityFamily)
		}
	}
	return catalog.ApplyMemberQuery(s.catalog.Members(), q), nil
}

// GetByID returns one member profile by UUID string.
func (s *MemberService) GetByID(ctx context.Context, id string) (domain.MemberProfile, error) {
	return s.catalog.MemberByID(id)
}

// MostActive returns the members with the most completed trips, capped at
// count (default 10 when count <= 0).
func (s *MemberService) MostActive(ctx context.Context, count int) ([]domain.MemberProfile, error) {
	return catalog.MostActiveMembers(s.catalog.Members(), count), nil
}
