package goquery

import flat "github.com/Ryan-Knowles/make-it-flat"

var _ flat.LinkSelector = (*VuePressSelector)(nil)

// VuePressSelector extracts links from VuePress and VitePress
// documentation sites:
// - .sidebar-links, .sidebar for VuePress classic
// - .VPSidebar, .VPNav for VitePress
// - .VPDocAsideOutline for the VitePress TOC
type VuePressSelector struct{}

// NewVuePressSelector creates a new VuePressSelector.
func NewVuePressSelector() *VuePressSelector {
	return &VuePressSelector{}
}

// Name returns the selector's identifier.
func (s *VuePressSelector) Name() string {
	return "vuepress"
}

// ExtractLinks parses HTML and returns discovered links with priority.
// Links are deduplicated by URL, keeping the highest priority version.
// External links (different host than baseURL) are filtered out.
func (s *VuePressSelector) ExtractLinks(html string, baseURL string) ([]flat.DiscoveredLink, error) {
	configs := []SelectorConfig{
		{Selector: ".VPDocAsideOutline a[href]", Priority: flat.PriorityTOC, Source: "toc"},
		{Selector: ".VPSidebar a[href]", Priority: flat.PriorityNavigation, Source: "sidebar"},
		{Selector: ".VPNav a[href]", Priority: flat.PriorityNavigation, Source: "nav"},
		{Selector: ".sidebar-links a[href]", Priority: flat.PriorityNavigation, Source: "sidebar"},
		{Selector: ".sidebar a[href]", Priority: flat.PriorityNavigation, Source: "sidebar"},
		{Selector: ".theme-default-content a[href]", Priority: flat.PriorityContent, Source: "content"},
		{Selector: ".VPDoc a[href]", Priority: flat.PriorityContent, Source: "content"},
		{Selector: "main a[href]", Priority: flat.PriorityContent, Source: "content"},
		{Selector: "footer a[href]", Priority: flat.PriorityFooter, Source: "footer"},
	}
	return ExtractLinksWithConfigs(html, baseURL, configs)
}
