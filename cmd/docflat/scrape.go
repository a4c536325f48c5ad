package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	flat "github.com/Ryan-Knowles/make-it-flat"
	"github.com/Ryan-Knowles/make-it-flat/crawl"
	"github.com/Ryan-Knowles/make-it-flat/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher    flat.Fetcher
	Strategies flat.StrategyRegistry
	Fallback   flat.Extractor
	Converter  flat.Converter
	Sitemaps   flat.SitemapService
	Limiter    flat.DomainLimiter
	Logger     *slog.Logger
}

// ScrapeCmd handles the main scrape operation.
type ScrapeCmd struct {
	URL      string
	Out      string
	MaxPages int
	Platform flat.Platform
	Sitemap  bool
}

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	defer deps.Fetcher.Close()

	extractorLabel := string(flat.PlatformGeneric)
	if c.Platform != "" {
		extractorLabel = string(c.Platform)
	}

	writer, err := fs.NewAppendWriter(c.Out, c.URL, extractorLabel)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", flat.ErrorMessage(err))
		return err
	}
	defer writer.Close()

	// Optionally seed the frontier from the site's sitemap.
	var extra []string
	if c.Sitemap {
		urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL, nil)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "sitemap discovery failed: %v\n", err)
		} else {
			fmt.Fprintf(deps.Stdout, "Found %d URLs in sitemap\n", len(urls))
			extra = urls
		}
	}

	crawler := &crawl.Crawler{
		Fetcher:     deps.Fetcher,
		Strategies:  deps.Strategies,
		Fallback:    deps.Fallback,
		Converter:   deps.Converter,
		Writer:      writer,
		RateLimiter: deps.Limiter,
		Platform:    c.Platform,
		MaxPages:    c.MaxPages,
	}

	progress := func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressStarted:
			writer.SetExtractor(string(e.Platform))
			fmt.Fprintf(deps.Stdout, "Platform: %s\n", e.Platform)
		case crawl.ProgressCompleted:
			deps.Logger.Info("saved", "url", e.URL, "hash", e.Hash)
			fmt.Fprintf(deps.Stdout, "[%d] fetched: %s\n", e.Saved, crawl.TruncateURL(e.URL, 60))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", e.URL, e.Error)
		}
	}

	result, err := crawler.Run(deps.Ctx, c.URL, extra, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", flat.ErrorMessage(err))
		return err
	}

	if result.Saved > 0 {
		fmt.Fprintf(deps.Stdout, "Saved %d pages (%s) to %s\n",
			result.Saved, crawl.FormatBytes(result.Bytes), writer.Path())
	} else {
		fmt.Fprintln(deps.Stdout, "No pages saved")
	}
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "Failed to process %d pages\n", result.Failed)
	}

	return nil
}
