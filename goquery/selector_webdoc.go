package goquery

import flat "github.com/Ryan-Knowles/make-it-flat"

var _ flat.LinkSelector = (*WebdocSelector)(nil)

// WebdocSelector extracts links from Webdoc documentation sites.
//
// Webdoc puts next-page navigation in a nav element or a div.navigation
// container; some themes use a sidebar/menu container instead, which is
// treated as a low-priority fallback.
type WebdocSelector struct{}

// NewWebdocSelector creates a new WebdocSelector.
func NewWebdocSelector() *WebdocSelector {
	return &WebdocSelector{}
}

// Name returns the selector's identifier.
func (s *WebdocSelector) Name() string {
	return "webdoc"
}

// ExtractLinks parses HTML and returns discovered links with priority.
// Links are deduplicated by URL, keeping the highest priority version.
// External links (different host than baseURL) are filtered out.
func (s *WebdocSelector) ExtractLinks(html string, baseURL string) ([]flat.DiscoveredLink, error) {
	configs := []SelectorConfig{
		{Selector: "nav a[href]", Priority: flat.PriorityNavigation, Source: "nav"},
		{Selector: ".navigation a[href]", Priority: flat.PriorityNavigation, Source: "nav"},
		// Sidebar/menu containers back up themes without a nav element
		{Selector: ".sidebar a[href]", Priority: flat.PriorityFallback, Source: "sidebar"},
		{Selector: ".menu a[href]", Priority: flat.PriorityFallback, Source: "sidebar"},
		{Selector: ".side-nav a[href]", Priority: flat.PriorityFallback, Source: "sidebar"},
	}
	return ExtractLinksWithConfigs(html, baseURL, configs)
}
