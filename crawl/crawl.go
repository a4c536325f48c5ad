// Package crawl provides documentation crawling orchestration.
// It coordinates fetching, platform detection, content and link
// extraction, Markdown conversion, and record writing for a single
// documentation site.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	flat "github.com/Ryan-Knowles/make-it-flat"
)

// Frontier configuration.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
)

// Crawler orchestrates the sequential crawling of a documentation site.
// Pages are fetched one at a time; the inter-request delay is enforced
// by the RateLimiter.
type Crawler struct {
	Fetcher     flat.Fetcher
	Strategies  flat.StrategyRegistry
	Fallback    flat.Extractor // used when the platform extractor finds no content
	Converter   flat.Converter
	Writer      flat.PageWriter
	RateLimiter flat.DomainLimiter

	// Platform forces a specific strategy and skips detection.
	Platform flat.Platform

	// MaxPages caps the number of pages fetched beyond the seed, so a
	// cap of N yields at most the seed plus N linked pages. Zero means
	// no cap.
	MaxPages int

	RetryDelays []time.Duration
}

// Result holds the outcome of a crawl operation.
type Result struct {
	Platform flat.Platform
	Saved    int
	Failed   int
	Bytes    int
}

// ProgressEvent reports progress during a crawl operation.
// Platform is set on the Started event, once the strategy is chosen;
// Hash carries the saved page's content hash on Completed events.
type ProgressEvent struct {
	Type     ProgressType
	Platform flat.Platform
	Saved    int
	URL      string
	Hash     string
	Error    error
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Run crawls the site starting from seedURL and appends every page to
// the Writer. The platform strategy is chosen once, from the seed page,
// and used for the whole crawl. Extra URLs (e.g. from sitemap
// discovery) pre-fill the frontier. Per-page failures are counted, not
// fatal; the crawl stops when the frontier is empty, MaxPages is
// reached, or the context is canceled.
func (c *Crawler) Run(ctx context.Context, seedURL string, extra []string, progress ProgressFunc) (*Result, error) {
	seed, err := NormalizeURL(seedURL)
	if err != nil {
		return nil, err
	}
	seedParsed, err := url.Parse(seed)
	if err != nil {
		return nil, flat.Errorf(flat.EINVALID, "invalid seed URL: %v", err)
	}
	pathPrefix := seedParsed.Path

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	// Fetch the seed page to pick the extraction strategy
	if err := c.wait(ctx, seedParsed.Host); err != nil {
		return nil, err
	}
	seedHTML, err := FetchWithRetryDelays(ctx, seed, c.Fetcher.Fetch, nil, delays)
	if err != nil {
		return nil, flat.Errorf(flat.EUNAVAILABLE, "fetch %s: %v", seed, err)
	}

	strategy, err := c.selectStrategy(seedHTML)
	if err != nil {
		return nil, err
	}

	result := &Result{Platform: strategy.Platform}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)

	// Push and immediately pop the seed so the frontier marks it seen,
	// then queue any pre-discovered URLs behind it.
	frontier.Push(flat.DiscoveredLink{URL: seed, Priority: flat.PriorityNavigation})
	seedLink, _ := frontier.Pop()
	for _, u := range extra {
		frontier.Push(flat.DiscoveredLink{URL: u, Priority: flat.PriorityNavigation})
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Platform: strategy.Platform, URL: seed})
	}

	// The seed is already fetched and does not count against MaxPages.
	fetched := 0
	c.processPage(ctx, seedLink.URL, seedHTML, strategy, frontier, seedParsed, pathPrefix, result, progress)

	for {
		if c.MaxPages > 0 && fetched >= c.MaxPages {
			break
		}
		link, ok := frontier.Pop()
		if !ok {
			break
		}
		if ctx.Err() != nil {
			break
		}

		linkURL, err := url.Parse(link.URL)
		if err != nil {
			result.Failed++
			continue
		}
		if err := c.wait(ctx, linkURL.Host); err != nil {
			break // context canceled
		}

		html, err := FetchWithRetryDelays(ctx, link.URL, c.Fetcher.Fetch, nil, delays)
		fetched++
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, URL: link.URL, Error: err})
			}
			continue
		}

		c.processPage(ctx, link.URL, html, strategy, frontier, seedParsed, pathPrefix, result, progress)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Saved: result.Saved})
	}

	return result, nil
}

// selectStrategy resolves the extraction strategy, honoring a forced platform.
func (c *Crawler) selectStrategy(html string) (*flat.Strategy, error) {
	if c.Platform != "" {
		strategy := c.Strategies.Get(c.Platform)
		if strategy == nil {
			return nil, flat.Errorf(flat.ENOTFOUND, "no strategy registered for platform %q", c.Platform)
		}
		return strategy, nil
	}
	strategy := c.Strategies.GetForHTML(html)
	if strategy == nil {
		return nil, flat.Errorf(flat.EINTERNAL, "strategy registry returned no fallback")
	}
	return strategy, nil
}

// processPage extracts links and content from a fetched page and
// appends the page record to the writer.
func (c *Crawler) processPage(ctx context.Context, pageURL, html string, strategy *flat.Strategy, frontier *Frontier, seed *url.URL, pathPrefix string, result *Result, progress ProgressFunc) {
	// Discover links first so a content failure doesn't stop the crawl
	if links, err := strategy.Links.ExtractLinks(html, pageURL); err == nil {
		for _, discovered := range links {
			if !c.inScope(discovered.URL, seed, pathPrefix) {
				continue
			}
			frontier.Push(discovered)
		}
	}

	extracted, err := c.extractContent(html, strategy)
	if err != nil {
		result.Failed++
		if progress != nil {
			progress(ProgressEvent{Type: ProgressFailed, URL: pageURL, Error: err})
		}
		return
	}

	markdown, err := c.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		result.Failed++
		if progress != nil {
			progress(ProgressEvent{Type: ProgressFailed, URL: pageURL, Error: err})
		}
		return
	}

	page := &flat.Page{
		URL:         pageURL,
		Title:       extracted.Title,
		Content:     markdown,
		ContentHash: computeHash(markdown),
	}

	if err := c.Writer.WritePage(ctx, page); err != nil {
		result.Failed++
		if progress != nil {
			progress(ProgressEvent{Type: ProgressFailed, URL: pageURL, Error: err})
		}
		return
	}

	result.Saved++
	result.Bytes += len(markdown)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressCompleted, Saved: result.Saved, URL: pageURL, Hash: page.ContentHash})
	}
}

// extractContent runs the platform extractor with a generic fallback
// for pages it cannot handle.
func (c *Crawler) extractContent(html string, strategy *flat.Strategy) (*flat.ExtractResult, error) {
	extracted, err := strategy.Content.Extract(html)
	if err == nil && strings.TrimSpace(extracted.ContentHTML) != "" {
		return extracted, nil
	}
	if c.Fallback == nil {
		if err != nil {
			return nil, err
		}
		return nil, flat.Errorf(flat.ENOTFOUND, "no main content found")
	}
	return c.Fallback.Extract(html)
}

// inScope reports whether a discovered URL belongs to the crawl: same
// host as the seed and within the seed's path prefix. Prefix matching
// respects path boundaries, so /docsomething is outside a /docs scope.
func (c *Crawler) inScope(rawURL string, seed *url.URL, pathPrefix string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Host != seed.Host {
		return false
	}
	if pathPrefix == "" || pathPrefix == "/" {
		return true
	}
	if u.Path == pathPrefix {
		return true
	}
	prefix := pathPrefix
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return strings.HasPrefix(u.Path, prefix)
}

// wait applies the inter-request delay for a domain, if configured.
func (c *Crawler) wait(ctx context.Context, domain string) error {
	if c.RateLimiter == nil {
		return nil
	}
	return c.RateLimiter.Wait(ctx, domain)
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
