package goquery

import flat "github.com/Ryan-Knowles/make-it-flat"

var _ flat.LinkSelector = (*NextraSelector)(nil)

// NextraSelector extracts links from Nextra documentation sites.
// Nextra prefixes its structural classes with "nextra-":
// - .nextra-sidebar for the navigation menu
// - .nextra-toc for the table of contents
// - .nextra-navbar for the top navigation bar
type NextraSelector struct{}

// NewNextraSelector creates a new NextraSelector.
func NewNextraSelector() *NextraSelector {
	return &NextraSelector{}
}

// Name returns the selector's identifier.
func (s *NextraSelector) Name() string {
	return "nextra"
}

// ExtractLinks parses HTML and returns discovered links with priority.
// Links are deduplicated by URL, keeping the highest priority version.
// External links (different host than baseURL) are filtered out.
func (s *NextraSelector) ExtractLinks(html string, baseURL string) ([]flat.DiscoveredLink, error) {
	configs := []SelectorConfig{
		{Selector: ".nextra-toc a[href]", Priority: flat.PriorityTOC, Source: "toc"},
		{Selector: ".nextra-sidebar a[href]", Priority: flat.PriorityNavigation, Source: "sidebar"},
		{Selector: ".nextra-navbar a[href]", Priority: flat.PriorityNavigation, Source: "nav"},
		{Selector: "main a[href]", Priority: flat.PriorityContent, Source: "content"},
		{Selector: "article a[href]", Priority: flat.PriorityContent, Source: "content"},
		{Selector: "footer a[href]", Priority: flat.PriorityFooter, Source: "footer"},
	}
	return ExtractLinksWithConfigs(html, baseURL, configs)
}
