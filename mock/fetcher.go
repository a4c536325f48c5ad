package mock

import (
	"context"

	flat "github.com/Ryan-Knowles/make-it-flat"
)

var _ flat.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of flat.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
