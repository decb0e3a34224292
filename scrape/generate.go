// Package scrape builds the WCAG dataset from the published W3C pages.
// It coordinates rate-limited fetching, retries and parsing; it is used by
// the offline generator only and never by the lookup path.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wcagref"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages fetched in parallel.
const DefaultConcurrency = 4

// Generator fetches and parses the sources of every requested version.
type Generator struct {
	Fetcher     wcagref.Fetcher
	Parser      wcagref.PageParser
	RateLimiter wcagref.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	Logger      *slog.Logger
}

// Result holds the generated dataset and the pages it was built from.
type Result struct {
	Dataset *wcagref.Dataset
	Pages   []Page
}

// Page describes one fetched source page.
type Page struct {
	Version wcagref.Version
	URL     string
	Bytes   int
	Hash    string
}

type pageKind int

const (
	recommendationPage pageKind = iota
	techniquesPage
)

type job struct {
	position int
	version  wcagref.Version
	kind     pageKind
	url      string
}

// Generate fetches the recommendation and techniques pages for versions and
// assembles a validated dataset. An empty versions list means every
// supported version. Any page that cannot be fetched or parsed fails the
// whole run because a partial dataset is never valid.
func (g *Generator) Generate(ctx context.Context, versions []wcagref.Version, progress wcagref.GenerateProgressFunc) (*Result, error) {
	if len(versions) == 0 {
		versions = wcagref.Versions()
	}

	partitions := make(map[wcagref.Version]*wcagref.Partition, len(versions))
	var jobs []job
	for _, v := range versions {
		src, ok := wcagref.SourceFor(v)
		if !ok {
			return nil, wcagref.ErrInvalidVersion
		}
		if _, dup := partitions[v]; dup {
			continue
		}
		partitions[v] = &wcagref.Partition{
			Version:    v,
			URL:        src.RecommendationURL,
			Techniques: wcagref.TechniqueIndex{URL: src.TechniquesURL},
		}
		jobs = append(jobs,
			job{position: len(jobs), version: v, kind: recommendationPage, url: src.RecommendationURL},
			job{position: len(jobs) + 1, version: v, kind: techniquesPage, url: src.TechniquesURL},
		)
	}

	concurrency := g.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	pages := make([]Page, len(jobs))
	var (
		mu        sync.Mutex
		completed int
	)
	report := func(j job, start time.Time, err error) {
		mu.Lock()
		defer mu.Unlock()
		completed++
		if progress != nil {
			progress(wcagref.GenerateProgress{
				URL:       j.url,
				Completed: completed,
				Total:     len(jobs),
				Duration:  time.Since(start),
				Error:     err,
			})
		}
	}

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)
	for _, j := range jobs {
		eg.Go(func() error {
			start := time.Now()
			html, err := g.fetch(egctx, j.url)
			if err == nil {
				err = g.parse(j, html, partitions[j.version], &mu)
			}
			report(j, start, err)
			if err != nil {
				return err
			}

			pages[j.position] = Page{
				Version: j.version,
				URL:     j.url,
				Bytes:   len(html),
				Hash:    computeHash(html),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	ds := &wcagref.Dataset{Partitions: partitions}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("generated dataset: %w", err)
	}
	return &Result{Dataset: ds, Pages: pages}, nil
}

// fetch waits for the host's rate limit and fetches rawURL with retries.
func (g *Generator) fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", wcagref.Errorf(wcagref.EINVALID, "invalid source URL %q", rawURL)
	}

	delays := g.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	fetchFn := func(ctx context.Context, url string) (string, error) {
		if g.RateLimiter != nil {
			if err := g.RateLimiter.Wait(ctx, u.Host); err != nil {
				return "", err
			}
		}
		return g.Fetcher.Fetch(ctx, url)
	}

	html, err := FetchWithRetryDelays(ctx, rawURL, fetchFn, g.logRetry, delays)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	return html, nil
}

// parse fills the partition half belonging to j. mu guards the partition
// since both pages of a version are parsed concurrently.
func (g *Generator) parse(j job, html string, p *wcagref.Partition, mu *sync.Mutex) error {
	switch j.kind {
	case recommendationPage:
		principles, err := g.Parser.ParseRecommendation(j.version, j.url, html)
		if err != nil {
			return fmt.Errorf("parse %s: %w", j.url, err)
		}
		mu.Lock()
		p.Principles = principles
		mu.Unlock()
	case techniquesPage:
		groups, err := g.Parser.ParseTechniques(j.version, j.url, html)
		if err != nil {
			return fmt.Errorf("parse %s: %w", j.url, err)
		}
		mu.Lock()
		p.Techniques.Groups = groups
		mu.Unlock()
	}
	return nil
}

func (g *Generator) logRetry(url string, attempt int, err error) {
	if g.Logger == nil {
		return
	}
	g.Logger.Warn("retrying fetch", "url", url, "attempt", attempt, "err", err)
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
