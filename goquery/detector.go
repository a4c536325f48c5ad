package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	flat "github.com/Ryan-Knowles/make-it-flat"
)

var _ flat.PlatformDetector = (*Detector)(nil)

// Detector identifies documentation platforms from HTML content.
// It checks for platform-specific CSS classes, data attributes, meta
// tags, and structural markers that are unique to each generator.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified platform.
// Returns PlatformUnknown if the platform cannot be determined.
func (d *Detector) Detect(html string) flat.Platform {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return flat.PlatformUnknown
	}

	// Meta generator tags are the most reliable signal when present
	if platform := d.detectFromMetaGenerator(doc); platform != flat.PlatformUnknown {
		return platform
	}

	// Webdoc signs itself in the page footer
	if d.isWebdocGenerated(doc) {
		return flat.PlatformWebdoc
	}

	// Docusaurus markers; __docusaurus_skipToContent_fallback is highly specific
	if d.hasSelector(doc, "#__docusaurus_skipToContent_fallback") ||
		d.hasSelector(doc, ".theme-doc-sidebar-container") ||
		d.hasSelector(doc, "[data-rh]") && d.hasSelector(doc, "[data-theme]") {
		return flat.PlatformDocusaurus
	}

	// MkDocs Material markers; data-md-* attributes are unique to it
	if d.hasSelector(doc, "[data-md-color-scheme]") ||
		d.hasSelector(doc, "[data-md-component]") ||
		d.hasSelector(doc, ".md-nav--primary") {
		return flat.PlatformMkDocs
	}

	// Sphinx markers (including the ReadTheDocs theme)
	if d.hasSelector(doc, ".toctree-wrapper") ||
		d.hasSelector(doc, ".wy-nav-side") ||
		d.hasSelector(doc, ".wy-menu-vertical") ||
		d.hasSelector(doc, ".sphinxsidebar") {
		return flat.PlatformSphinx
	}

	// VitePress and VuePress markers; VitePress is a VuePress successor
	// and shares the same extraction strategy
	if d.hasSelector(doc, "#VPContent") ||
		d.hasSelector(doc, ".VPDoc") ||
		d.hasSelector(doc, ".VPDocAsideOutline") ||
		d.hasSelector(doc, ".theme-default-content") ||
		d.hasSelector(doc, ".sidebar-links") ||
		d.hasSelector(doc, ".vuepress-navbar") {
		return flat.PlatformVuePress
	}

	// GitBook markers
	if d.hasSelector(doc, "[data-testid='space.sidebar']") ||
		d.hasSelector(doc, "[data-testid='page.desktopTableOfContents']") ||
		d.hasGitBookClasses(doc) {
		return flat.PlatformGitBook
	}

	// Nextra markers
	if d.hasSelector(doc, ".nextra-navbar") ||
		d.hasSelector(doc, ".nextra-sidebar") ||
		d.hasSelector(doc, ".nextra-toc") {
		return flat.PlatformNextra
	}

	return flat.PlatformUnknown
}

// detectFromMetaGenerator checks the meta generator tag for platform identification.
func (d *Detector) detectFromMetaGenerator(doc *goquery.Document) flat.Platform {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})

	if generator == "" {
		return flat.PlatformUnknown
	}

	switch {
	case strings.Contains(generator, "webdoc"):
		return flat.PlatformWebdoc
	case strings.Contains(generator, "sphinx"):
		return flat.PlatformSphinx
	case strings.Contains(generator, "gitbook"):
		return flat.PlatformGitBook
	case strings.Contains(generator, "docusaurus"):
		return flat.PlatformDocusaurus
	case strings.Contains(generator, "mkdocs"):
		return flat.PlatformMkDocs
	case strings.Contains(generator, "vuepress"), strings.Contains(generator, "vitepress"):
		return flat.PlatformVuePress
	case strings.Contains(generator, "nextra"):
		return flat.PlatformNextra
	}

	return flat.PlatformUnknown
}

// isWebdocGenerated checks for the Webdoc attribution footer: an anchor
// linking to webdoc-js/webdoc with "Webdoc" in its text, inside a
// "Documentation generated by" parent, or the same text in a
// footer.content-size element.
func (d *Detector) isWebdocGenerated(doc *goquery.Document) bool {
	found := false
	doc.Find("a[href*='webdoc-js/webdoc']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.Contains(s.Text(), "Webdoc") {
			return true
		}
		parent := s.Closest("div")
		if parent.Length() > 0 && strings.Contains(parent.Text(), "Documentation generated by") {
			found = true
			return false
		}
		return true
	})
	if found {
		return true
	}

	footer := doc.Find("footer.content-size")
	if footer.Length() > 0 {
		text := footer.Text()
		return strings.Contains(text, "Webdoc") && strings.Contains(text, "Documentation generated by")
	}

	return false
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}

// hasGitBookClasses checks for GitBook-specific classes on the html element.
// GitBook uses a combination of: circular-corners, theme-clean, tint
func (d *Detector) hasGitBookClasses(doc *goquery.Document) bool {
	htmlClass := ""
	doc.Find("html").Each(func(_ int, s *goquery.Selection) {
		if class, exists := s.Attr("class"); exists {
			htmlClass = class
		}
	})

	if htmlClass == "" {
		return false
	}

	count := 0
	for _, marker := range []string{"circular-corners", "theme-clean", "tint"} {
		if strings.Contains(htmlClass, marker) {
			count++
		}
	}

	// Require at least two of these GitBook-specific classes
	return count >= 2
}
