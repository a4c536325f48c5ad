package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	flat "github.com/Ryan-Knowles/make-it-flat"
	"github.com/Ryan-Knowles/make-it-flat/crawl"
	"github.com/Ryan-Knowles/make-it-flat/goquery"
	"github.com/Ryan-Knowles/make-it-flat/htmltomarkdown"
	flathttp "github.com/Ryan-Knowles/make-it-flat/http"
	flatslog "github.com/Ryan-Knowles/make-it-flat/slog"
	"github.com/Ryan-Knowles/make-it-flat/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docflat"),
		kong.Description("Scrape a documentation site into a single markdown file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire dependencies
	logDest := io.Discard
	if cli.Verbose {
		logDest = stderr
	}
	logger := slog.New(slog.NewTextHandler(logDest, nil)).With("run", uuid.New().String())

	httpFetcher := flathttp.NewFetcher(flathttp.WithTimeout(cli.Timeout))
	fetcher := flatslog.NewLoggingFetcher(httpFetcher, logger)

	detector := goquery.NewDetector()
	fallbackExtractor := trafilatura.NewExtractor()
	generic := &flat.Strategy{
		Platform: flat.PlatformGeneric,
		Content:  fallbackExtractor,
		Links:    goquery.NewGenericSelector(),
	}
	registry := goquery.NewRegistry(detector, generic)
	registerPlatformStrategies(registry)

	deps := &Dependencies{
		Ctx:        ctx,
		Stdout:     stdout,
		Stderr:     stderr,
		Fetcher:    fetcher,
		Strategies: flatslog.NewLoggingRegistry(registry, detector, logger),
		Fallback:   fallbackExtractor,
		Converter:  htmltomarkdown.NewConverter(),
		Sitemaps:   flatslog.NewLoggingSitemapService(flathttp.NewSitemapService(nil), logger),
		Limiter:    crawl.NewDomainLimiterWithDelay(cli.Delay),
		Logger:     logger,
	}

	cmd := &ScrapeCmd{
		URL:      cli.URL,
		Out:      cli.Out,
		MaxPages: cli.MaxPages,
		Platform: flat.Platform(cli.Platform),
		Sitemap:  cli.Sitemap,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL      string        `arg:"" required:"" help:"Documentation URL to scrape"`
	Out      string        `short:"o" default:"data" help:"Base output directory"`
	Delay    time.Duration `short:"d" default:"1s" help:"Delay between requests to the same domain"`
	MaxPages int           `short:"m" help:"Maximum number of pages to fetch (0 = no limit)"`
	Timeout  time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Platform string        `short:"p" help:"Force a platform strategy instead of auto-detection (webdoc, docusaurus, mkdocs, sphinx, vuepress, gitbook, nextra, generic)"`
	Sitemap  bool          `help:"Seed the crawl from the site's sitemap"`
	Verbose  bool          `short:"v" help:"Enable structured logging to stderr"`
}

// registerPlatformStrategies registers all platform-specific strategies with the registry.
func registerPlatformStrategies(registry *goquery.Registry) {
	registry.Register(flat.PlatformWebdoc, &flat.Strategy{
		Platform: flat.PlatformWebdoc,
		Content:  goquery.NewWebdocContent(),
		Links:    goquery.NewWebdocSelector(),
	})
	registry.Register(flat.PlatformDocusaurus, &flat.Strategy{
		Platform: flat.PlatformDocusaurus,
		Content:  goquery.NewDocusaurusContent(),
		Links:    goquery.NewDocusaurusSelector(),
	})
	registry.Register(flat.PlatformMkDocs, &flat.Strategy{
		Platform: flat.PlatformMkDocs,
		Content:  goquery.NewMkDocsContent(),
		Links:    goquery.NewMkDocsSelector(),
	})
	registry.Register(flat.PlatformSphinx, &flat.Strategy{
		Platform: flat.PlatformSphinx,
		Content:  goquery.NewSphinxContent(),
		Links:    goquery.NewSphinxSelector(),
	})
	registry.Register(flat.PlatformGitBook, &flat.Strategy{
		Platform: flat.PlatformGitBook,
		Content:  goquery.NewGitBookContent(),
		Links:    goquery.NewGitBookSelector(),
	})
	registry.Register(flat.PlatformVuePress, &flat.Strategy{
		Platform: flat.PlatformVuePress,
		Content:  goquery.NewVuePressContent(),
		Links:    goquery.NewVuePressSelector(),
	})
	registry.Register(flat.PlatformNextra, &flat.Strategy{
		Platform: flat.PlatformNextra,
		Content:  goquery.NewNextraContent(),
		Links:    goquery.NewNextraSelector(),
	})
}
