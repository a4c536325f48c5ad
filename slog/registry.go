package slog

import (
	"log/slog"
	"time"

	flat "github.com/Ryan-Knowles/make-it-flat"
)

// Ensure LoggingRegistry implements flat.StrategyRegistry.
var _ flat.StrategyRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a StrategyRegistry with logging for platform detection.
type LoggingRegistry struct {
	next     flat.StrategyRegistry
	detector flat.PlatformDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next flat.StrategyRegistry, detector flat.PlatformDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(platform flat.Platform) *flat.Strategy {
	return r.next.Get(platform)
}

// GetForHTML detects the platform, logs it, and returns the appropriate strategy.
func (r *LoggingRegistry) GetForHTML(html string) *flat.Strategy {
	begin := time.Now()
	platform := r.detector.Detect(html)
	platformName := string(platform)
	if platform == flat.PlatformUnknown {
		platformName = "(unknown)"
	}
	r.logger.Info("platform detection",
		"platform", platformName,
		"duration", time.Since(begin),
	)
	return r.next.GetForHTML(html)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(platform flat.Platform, strategy *flat.Strategy) {
	r.next.Register(platform, strategy)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []flat.Platform {
	return r.next.List()
}
