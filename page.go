package flat

// Page represents a fetched documentation page.
type Page struct {
	URL         string
	Title       string
	Content     string // Markdown
	ContentHash string
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}
