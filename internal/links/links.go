// Package links builds outbound search URLs for a fixed set of third-party
// travel platforms. It only assembles URLs — it never performs network I/O.
package links

import (
	"net/url"
)

// fallbackTerm is used when a preference record names no destination,
// category, or per-platform override.
const fallbackTerm = "adventure travel"

// Preferences is the input to the synthesizer. SearchTerms holds optional
// per-platform override strings keyed by platform name.
type Preferences struct {
	Destination string            `json:"destination,omitempty"`
	Category    string            `json:"category,omitempty"`
	Duration    string            `json:"duration,omitempty"`
	Budget      string            `json:"budget,omitempty"`
	SearchTerms map[string]string `json:"search_terms,omitempty"`
}

// SearchLink is one outbound navigation target.
type SearchLink struct {
	Platform    string `json:"platform"`
	URL         string `json:"url"`
	Description string `json:"description"`
	SearchTerm  string `json:"search_term"`
}

// platform couples a platform's metadata with its URL template.
type platform struct {
	name        string
	description string
	build       func(term string) string
}

// platforms is the fixed, ordered set of supported travel platforms.
// Generate always returns one link per entry in this order.
var platforms = []platform{
	{
		name:        "TripAdvisor",
		description: "Reviews, photos, and rankings from millions of travelers",
		build: func(term string) string {
			return "https://www.tripadvisor.com/Search?q=" + url.QueryEscape(term)
		},
	},
	{
		name:        "Booking.com",
		description: "Stays and packages with free-cancellation options",
		build: func(term string) string {
			return "https://www.booking.com/searchresults.html?ss=" + url.QueryEscape(term)
		},
	},
	{
		name:        "Expedia",
		description: "Bundled flights, hotels, and activities",
		build: func(term string) string {
			return "https://www.expedia.com/Hotel-Search?destination=" + url.QueryEscape(term)
		},
	},
	{
		name:        "GetYourGuide",
		description: "Bookable tours and local experiences",
		build: func(term string) string {
			return "https://www.getyourguide.com/s/?q=" + url.QueryEscape(term)
		},
	},
	{
		name:        "Viator",
		description: "Day trips and excursions with instant confirmation",
		build: func(term string) string {
			return "https://www.viator.com/searchResults/all?text=" + url.QueryEscape(term)
		},
	},
	{
		name:        "Airbnb Experiences",
		description: "Small-group activities hosted by locals",
		build: func(term string) string {
			return "https://www.airbnb.com/s/experiences?query=" + url.QueryEscape(term)
		},
	},
}

// Generate returns one outbound search link per platform, in fixed order.
//
// The effective search term per platform is resolved as: the platform-specific
// override from SearchTerms if present, else the destination, else the
// category, else "adventure travel".
func Generate(p Preferences) []SearchLink {
	out := make([]SearchLink, 0, len(platforms))
	for _, pl := range platforms {
		term := effectiveTerm(p, pl.name)
		out = append(out, SearchLink{
			Platform:    pl.name,
			URL:         pl.build(term),
			Description: pl.description,
			SearchTerm:  term,
		})
	}
	return out
}

func effectiveTerm(p Preferences, platformName string) string {
	if t := p.SearchTerms[platformName]; t != "" {
		return t
	}
	if p.Destination != "" {
		return p.Destination
	}
	if p.Category != "" {
		return p.Category
	}
	return fallbackTerm
}
