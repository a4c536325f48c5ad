package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	flat "github.com/Ryan-Knowles/make-it-flat"
)

var _ flat.Extractor = (*ContentSelector)(nil)

// ContentSelector extracts main content using platform-specific CSS
// selectors, tried in order. When none match it falls back to the page
// body with boilerplate elements (header, footer, nav, sidebar,
// scripts, styles) removed.
type ContentSelector struct {
	selectors []string
}

// NewContentSelector creates a ContentSelector that tries the given
// selectors in order.
func NewContentSelector(selectors ...string) *ContentSelector {
	return &ContentSelector{selectors: selectors}
}

// Extract processes raw HTML and returns the main content.
// The title comes from the <title> tag. Returns ENOTFOUND if no
// content can be located at all.
func (s *ContentSelector) Extract(rawHTML string) (*flat.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, flat.Errorf(flat.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, flat.Errorf(flat.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	for _, selector := range s.selectors {
		node := doc.Find(selector).First()
		if node.Length() == 0 {
			continue
		}
		stripNoise(node)
		html, err := goquery.OuterHtml(node)
		if err != nil {
			continue
		}
		if strings.TrimSpace(html) != "" {
			return &flat.ExtractResult{Title: title, ContentHTML: html}, nil
		}
	}

	// Fall back to the body with boilerplate removed
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil, flat.Errorf(flat.ENOTFOUND, "no main content found")
	}

	body.Find("header, footer, nav, aside").Remove()
	body.Find("[class*='sidebar'], [class*='menu'], [class*='side-nav']").Remove()
	stripNoise(body)

	html, err := goquery.OuterHtml(body)
	if err != nil || strings.TrimSpace(html) == "" {
		return nil, flat.Errorf(flat.ENOTFOUND, "no main content found")
	}

	return &flat.ExtractResult{Title: title, ContentHTML: html}, nil
}

// stripNoise removes script, style, and footer elements from a selection.
func stripNoise(sel *goquery.Selection) {
	sel.Find("script, style, footer").Remove()
}

// NewWebdocContent returns the content extractor for Webdoc pages.
// Webdoc puts the page body in div.main.
func NewWebdocContent() *ContentSelector {
	return NewContentSelector("div.main")
}

// NewDocusaurusContent returns the content extractor for Docusaurus pages.
func NewDocusaurusContent() *ContentSelector {
	return NewContentSelector("article", "main")
}

// NewMkDocsContent returns the content extractor for MkDocs Material pages.
func NewMkDocsContent() *ContentSelector {
	return NewContentSelector("article.md-content__inner", ".md-content")
}

// NewSphinxContent returns the content extractor for Sphinx pages.
// Covers both the ReadTheDocs theme and the classic theme.
func NewSphinxContent() *ContentSelector {
	return NewContentSelector("[role='main']", ".document", ".body")
}

// NewGitBookContent returns the content extractor for GitBook pages.
func NewGitBookContent() *ContentSelector {
	return NewContentSelector("[data-testid='page.contentEditor']", "main")
}

// NewVuePressContent returns the content extractor for VuePress and
// VitePress pages.
func NewVuePressContent() *ContentSelector {
	return NewContentSelector(".theme-default-content", ".VPDoc", "main")
}

// NewNextraContent returns the content extractor for Nextra pages.
func NewNextraContent() *ContentSelector {
	return NewContentSelector("main", "article")
}
