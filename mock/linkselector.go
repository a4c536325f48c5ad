package mock

import flat "github.com/Ryan-Knowles/make-it-flat"

var _ flat.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of flat.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string, baseURL string) ([]flat.DiscoveredLink, error)
	NameFn         func() string
}

func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]flat.DiscoveredLink, error) {
	return s.ExtractLinksFn(html, baseURL)
}

func (s *LinkSelector) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}

var _ flat.PlatformDetector = (*PlatformDetector)(nil)

// PlatformDetector is a mock implementation of flat.PlatformDetector.
type PlatformDetector struct {
	DetectFn func(html string) flat.Platform
}

func (d *PlatformDetector) Detect(html string) flat.Platform {
	return d.DetectFn(html)
}
