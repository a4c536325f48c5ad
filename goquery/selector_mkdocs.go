package goquery

import flat "github.com/Ryan-Knowles/make-it-flat"

var _ flat.LinkSelector = (*MkDocsSelector)(nil)

// MkDocsSelector extracts links from MkDocs Material documentation sites.
// It targets MkDocs-specific navigation elements:
// - .md-nav--primary for the main navigation
// - .md-sidebar--secondary for the on-page TOC
// - [data-md-component="navigation"] and [data-md-component="toc"]
type MkDocsSelector struct{}

// NewMkDocsSelector creates a new MkDocsSelector.
func NewMkDocsSelector() *MkDocsSelector {
	return &MkDocsSelector{}
}

// Name returns the selector's identifier.
func (s *MkDocsSelector) Name() string {
	return "mkdocs"
}

// ExtractLinks parses HTML and returns discovered links with priority.
// Links are deduplicated by URL, keeping the highest priority version.
// External links (different host than baseURL) are filtered out.
func (s *MkDocsSelector) ExtractLinks(html string, baseURL string) ([]flat.DiscoveredLink, error) {
	configs := []SelectorConfig{
		{Selector: ".md-sidebar--secondary a[href]", Priority: flat.PriorityTOC, Source: "toc"},
		{Selector: "[data-md-component='toc'] a[href]", Priority: flat.PriorityTOC, Source: "toc"},
		{Selector: ".md-nav--primary a[href]", Priority: flat.PriorityNavigation, Source: "nav"},
		{Selector: "[data-md-component='navigation'] a[href]", Priority: flat.PriorityNavigation, Source: "nav"},
		{Selector: ".md-content a[href]", Priority: flat.PriorityContent, Source: "content"},
		{Selector: "article a[href]", Priority: flat.PriorityContent, Source: "content"},
		{Selector: "footer a[href]", Priority: flat.PriorityFooter, Source: "footer"},
	}
	return ExtractLinksWithConfigs(html, baseURL, configs)
}
