package mock

import flat "github.com/Ryan-Knowles/make-it-flat"

var _ flat.Converter = (*Converter)(nil)

// Converter is a mock implementation of flat.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
