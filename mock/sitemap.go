package mock

import (
	"context"

	flat "github.com/Ryan-Knowles/make-it-flat"
)

var _ flat.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of flat.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *flat.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *flat.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
