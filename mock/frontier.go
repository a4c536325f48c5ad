package mock

import (
	"context"

	flat "github.com/Ryan-Knowles/make-it-flat"
)

var _ flat.URLFrontier = (*Frontier)(nil)

// Frontier is a mock implementation of flat.URLFrontier.
type Frontier struct {
	PushFn func(link flat.DiscoveredLink) bool
	PopFn  func() (flat.DiscoveredLink, bool)
	LenFn  func() int
	SeenFn func(url string) bool
}

func (f *Frontier) Push(link flat.DiscoveredLink) bool {
	return f.PushFn(link)
}

func (f *Frontier) Pop() (flat.DiscoveredLink, bool) {
	return f.PopFn()
}

func (f *Frontier) Len() int {
	if f.LenFn == nil {
		return 0
	}
	return f.LenFn()
}

func (f *Frontier) Seen(url string) bool {
	if f.SeenFn == nil {
		return false
	}
	return f.SeenFn(url)
}

var _ flat.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of flat.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.WaitFn == nil {
		return nil
	}
	return d.WaitFn(ctx, domain)
}
