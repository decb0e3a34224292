package wcagref

import (
	"context"
	"time"
)

// Source names the W3C pages a partition is generated from.
type Source struct {
	Version           Version
	RecommendationURL string
	TechniquesURL     string
}

// Sources returns the published W3C pages for every supported version.
func Sources() []Source {
	return []Source{
		{
			Version:           Version20,
			RecommendationURL: "https://www.w3.org/TR/WCAG20/",
			TechniquesURL:     "https://www.w3.org/TR/WCAG20-TECHS/",
		},
		{
			Version:           Version21,
			RecommendationURL: "https://www.w3.org/TR/WCAG21/",
			TechniquesURL:     "https://www.w3.org/WAI/WCAG21/Techniques/",
		},
		{
			Version:           Version22,
			RecommendationURL: "https://www.w3.org/TR/WCAG22/",
			TechniquesURL:     "https://www.w3.org/WAI/WCAG22/Techniques/",
		},
	}
}

// SourceFor returns the published source for v.
func SourceFor(v Version) (Source, bool) {
	for _, s := range Sources() {
		if s.Version == v {
			return s, true
		}
	}
	return Source{}, false
}

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch returns the decoded HTML body of the page.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// PageParser extracts reference data from W3C pages.
// The page layout differs between WCAG 2.0 and later versions, so both
// methods take the version the page belongs to.
type PageParser interface {
	// ParseRecommendation extracts principles, guidelines and success
	// criteria from a recommendation page. pageURL resolves relative links.
	ParseRecommendation(v Version, pageURL, html string) (map[int]*Principle, error)

	// ParseTechniques extracts technique groups from a techniques index page.
	ParseTechniques(v Version, pageURL, html string) (map[string]*TechniqueGroup, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// GenerateProgress reports progress while generating a dataset.
type GenerateProgress struct {
	URL       string
	Completed int
	Total     int
	Duration  time.Duration
	Error     error
}

// GenerateProgressFunc is called as pages are processed.
type GenerateProgressFunc func(GenerateProgress)
