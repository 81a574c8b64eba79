package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/repo"
)

// ProfileService manages the per-user profile documents saved through the
// identity bridge.
type ProfileService struct {
	repo repo.ProfileRepo
}

// NewProfileService constructs a ProfileService backed by the provided repo.
func NewProfileService(r repo.ProfileRepo) *ProfileService {
	return &ProfileService{repo: r}
}

// Get returns the stored profile for a user.
func (s *ProfileService) Get(ctx context.Context, userID string) (domain.MemberProfile, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.MemberProfile{}, fmt.Errorf("service.ProfileService.Get: %w: user id is required", domain.ErrValidation)
	}
	return s.repo.Get(ctx, userID)
}

// Save validates and stores a user's profile.
func (s *ProfileService) Save(ctx context.Context, userID string, p domain.MemberProfile) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("service.ProfileService.Save: %w: user id is required", domain.ErrValidation)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("service.ProfileService.Save: %w: name is required", domain.ErrValidation)
	}
	if p.Age < 0 {
		return fmt.Errorf("service.ProfileService.Save: %w: age must not be negative", domain.ErrValidation)
	}
	if p.PersonalityType != "" {
		if _, ok := domain.FamilyForPersonality(strings.ToUpper(p.PersonalityType)); !ok {
			return fmt.Errorf("service.ProfileService.Save: %w: unknown personality type %q", domain.ErrValidation, p.PersonalityType)
		}
		p.PersonalityType = strings.ToUpper(p.PersonalityType)
	}
	return s.repo.Save(ctx, userID, p)
}

// Delete removes a user's profile.
func (s *ProfileService) Delete(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("service.ProfileService.Delete: %w: user id is required", domain.ErrValidation)
	}
	return s.repo.Delete(ctx, userID)
}
