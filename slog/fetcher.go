// Package slog provides logging decorators for the scraper's services
// using the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	flat "github.com/Ryan-Knowles/make-it-flat"
)

// Ensure LoggingFetcher implements flat.Fetcher at compile time.
var _ flat.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher and logs each fetch with size and timing.
type LoggingFetcher struct {
	next   flat.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next flat.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
