package mock

import (
	"context"

	flat "github.com/Ryan-Knowles/make-it-flat"
)

var _ flat.PageWriter = (*PageWriter)(nil)

// PageWriter is a mock implementation of flat.PageWriter.
type PageWriter struct {
	WritePageFn func(ctx context.Context, page *flat.Page) error
	PathFn      func() string
	CloseFn     func() error
}

func (w *PageWriter) WritePage(ctx context.Context, page *flat.Page) error {
	return w.WritePageFn(ctx, page)
}

func (w *PageWriter) Path() string {
	if w.PathFn == nil {
		return ""
	}
	return w.PathFn()
}

func (w *PageWriter) Close() error {
	if w.CloseFn == nil {
		return nil
	}
	return w.CloseFn()
}
