package mock

import flat "github.com/Ryan-Knowles/make-it-flat"

var _ flat.StrategyRegistry = (*StrategyRegistry)(nil)

// StrategyRegistry is a mock implementation of flat.StrategyRegistry.
type StrategyRegistry struct {
	GetFn        func(platform flat.Platform) *flat.Strategy
	GetForHTMLFn func(html string) *flat.Strategy
	RegisterFn   func(platform flat.Platform, strategy *flat.Strategy)
	ListFn       func() []flat.Platform
}

func (r *StrategyRegistry) Get(platform flat.Platform) *flat.Strategy {
	return r.GetFn(platform)
}

func (r *StrategyRegistry) GetForHTML(html string) *flat.Strategy {
	return r.GetForHTMLFn(html)
}

func (r *StrategyRegistry) Register(platform flat.Platform, strategy *flat.Strategy) {
	if r.RegisterFn != nil {
		r.RegisterFn(platform, strategy)
	}
}

func (r *StrategyRegistry) List() []flat.Platform {
	if r.ListFn == nil {
		return nil
	}
	return r.ListFn()
}
