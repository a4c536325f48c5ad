package goquery

import flat "github.com/Ryan-Knowles/make-it-flat"

var _ flat.StrategyRegistry = (*Registry)(nil)

// Registry manages platform-specific extraction strategies and
// auto-detects platforms from HTML content. It uses a PlatformDetector
// to identify the documentation platform and returns the matching
// strategy, falling back to a generic strategy when the platform is
// unknown or no specific strategy is registered.
type Registry struct {
	detector   flat.PlatformDetector
	fallback   *flat.Strategy
	strategies map[flat.Platform]*flat.Strategy
}

// NewRegistry creates a new Registry with the given detector and
// fallback strategy. The fallback is used when GetForHTML cannot find a
// specific strategy for the detected platform.
func NewRegistry(detector flat.PlatformDetector, fallback *flat.Strategy) *Registry {
	return &Registry{
		detector:   detector,
		fallback:   fallback,
		strategies: make(map[flat.Platform]*flat.Strategy),
	}
}

// Get returns the strategy for a specific platform.
// Returns nil if no strategy is registered for the platform.
func (r *Registry) Get(platform flat.Platform) *flat.Strategy {
	if platform == flat.PlatformGeneric {
		return r.fallback
	}
	return r.strategies[platform]
}

// GetForHTML detects the platform from HTML and returns the appropriate
// strategy. Falls back to the fallback strategy if the platform is
// unknown or no strategy is registered for the detected platform.
func (r *Registry) GetForHTML(html string) *flat.Strategy {
	platform := r.detector.Detect(html)
	if strategy, ok := r.strategies[platform]; ok {
		return strategy
	}
	return r.fallback
}

// Register adds a strategy for a platform.
// If a strategy is already registered for the platform, it is replaced.
func (r *Registry) Register(platform flat.Platform, strategy *flat.Strategy) {
	r.strategies[platform] = strategy
}

// List returns all registered platforms.
func (r *Registry) List() []flat.Platform {
	platforms := make([]flat.Platform, 0, len(r.strategies))
	for p := range r.strategies {
		platforms = append(platforms, p)
	}
	return platforms
}
