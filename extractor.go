package flat

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, scripts) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// Returns an ENOTFOUND error if no main content can be located,
	// allowing callers to fall back to a more general extractor.
	Extract(html string) (*ExtractResult, error)
}
