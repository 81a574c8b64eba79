package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/domain"
)

// MemoryProfileRepo is the ProfileRepo used when no DATABASE_URL is
// configured: profiles live for the process run only. It is safe for
// concurrent use.
type MemoryProfileRepo struct {
	mu       sync.RWMutex
	profiles map[string]domain.MemberProfile
}

// NewMemoryProfileRepo returns an empty in-memory profile store.
func NewMemoryProfileRepo() *MemoryProfileRepo {
	return &MemoryProfileRepo{profiles: map[string]domain.MemberProfile{}}
}

func (r *MemoryProfileRepo) Get(ctx context.Context, userID string) (domain.MemberProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[userID]
	if !ok {
		return domain.MemberProfile{}, fmt.Errorf("repo.MemoryProfileRepo.Get: %w", domain.ErrNotFound)
	}
	return p, nil
}

func (r *MemoryProfileRepo) Save(ctx context.Context, userID string, profile domain.MemberProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[userID] = profile
	return nil
}

func (r *MemoryProfileRepo) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[userID]; !ok {
		return fmt.Errorf("repo.MemoryProfileRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(r.profiles, userID)
	return nil
}

var _ ProfileRepo = (*MemoryProfileRepo)(nil)
