package service

import (
	"context"
	"strings"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/links"
)

// LinkService builds outbound platform search links from a preference record.
type LinkService struct{}

// NewLinkService constructs a LinkService.
func NewLinkService() *LinkService {
	return &LinkService{}
}

// Generate normalizes the preference record and returns the fixed-order link
// list. Whitespace-only fields are treated as absent so they never win the
// term-precedence resolution.
func (s *LinkService) Generate(ctx context.Context, p links.Preferences) ([]links.SearchLink, error) {
	p.Destination = strings.TrimSpace(p.Destination)
	p.Category = strings.TrimSpace(p.Category)
	for k, v := range p.SearchTerms {
		if strings.TrimSpace(v) == "" {
			delete(p.SearchTerms, k)
		}
	}
	return links.Generate(p), nil
}
