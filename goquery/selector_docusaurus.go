package goquery

import flat "github.com/Ryan-Knowles/make-it-flat"

var _ flat.LinkSelector = (*DocusaurusSelector)(nil)

// DocusaurusSelector extracts links from Docusaurus documentation sites.
// Validated against Docusaurus v2.x and v3.x.
//
// It targets Docusaurus-specific navigation elements:
// - .theme-doc-sidebar-container for the docs sidebar
// - .table-of-contents for on-page TOC
// - .navbar for the top navigation bar
type DocusaurusSelector struct{}

// NewDocusaurusSelector creates a new DocusaurusSelector.
func NewDocusaurusSelector() *DocusaurusSelector {
	return &DocusaurusSelector{}
}

// Name returns the selector's identifier.
func (s *DocusaurusSelector) Name() string {
	return "docusaurus"
}

// ExtractLinks parses HTML and returns discovered links with priority.
// Links are deduplicated by URL, keeping the highest priority version.
// External links (different host than baseURL) are filtered out.
func (s *DocusaurusSelector) ExtractLinks(html string, baseURL string) ([]flat.DiscoveredLink, error) {
	configs := []SelectorConfig{
		{Selector: ".table-of-contents a[href]", Priority: flat.PriorityTOC, Source: "toc"},
		{Selector: ".theme-doc-sidebar-container a[href]", Priority: flat.PriorityNavigation, Source: "sidebar"},
		{Selector: "nav.navbar a[href]", Priority: flat.PriorityNavigation, Source: "navbar"},
		{Selector: "article a[href]", Priority: flat.PriorityContent, Source: "content"},
		{Selector: "main a[href]", Priority: flat.PriorityContent, Source: "content"},
		{Selector: "footer a[href]", Priority: flat.PriorityFooter, Source: "footer"},
	}
	return ExtractLinksWithConfigs(html, baseURL, configs)
}
