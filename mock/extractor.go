package mock

import flat "github.com/Ryan-Knowles/make-it-flat"

var _ flat.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of flat.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*flat.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*flat.ExtractResult, error) {
	return e.ExtractFn(html)
}
