package goquery

import flat "github.com/Ryan-Knowles/make-it-flat"

var _ flat.LinkSelector = (*GitBookSelector)(nil)

// GitBookSelector extracts links from GitBook documentation sites.
// It targets GitBook's data-testid attributes, which are stable across
// themes:
// - space.sidebar for the main navigation
// - page.desktopTableOfContents for the on-page TOC
type GitBookSelector struct{}

// NewGitBookSelector creates a new GitBookSelector.
func NewGitBookSelector() *GitBookSelector {
	return &GitBookSelector{}
}

// Name returns the selector's identifier.
func (s *GitBookSelector) Name() string {
	return "gitbook"
}

// ExtractLinks parses HTML and returns discovered links with priority.
// Links are deduplicated by URL, keeping the highest priority version.
// External links (different host than baseURL) are filtered out.
func (s *GitBookSelector) ExtractLinks(html string, baseURL string) ([]flat.DiscoveredLink, error) {
	configs := []SelectorConfig{
		{Selector: "[data-testid='page.desktopTableOfContents'] a[href]", Priority: flat.PriorityTOC, Source: "toc"},
		{Selector: "[data-testid='space.sidebar'] a[href]", Priority: flat.PriorityNavigation, Source: "sidebar"},
		{Selector: "[data-testid='space.header'] a[href]", Priority: flat.PriorityNavigation, Source: "header"},
		{Selector: "[data-testid='page.contentEditor'] a[href]", Priority: flat.PriorityContent, Source: "content"},
		{Selector: "main a[href]", Priority: flat.PriorityContent, Source: "content"},
		{Selector: "footer a[href]", Priority: flat.PriorityFooter, Source: "footer"},
	}
	return ExtractLinksWithConfigs(html, baseURL, configs)
}
