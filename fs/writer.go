// Package fs writes scraped pages to a single dated markdown file on disk.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	flat "github.com/Ryan-Knowles/make-it-flat"
)

// OutputPath computes the output file path for a scrape of rawURL started
// at the given time. The file is scoped by domain and dated by day:
//
//	<baseDir>/<host with dots as underscores>/api_YYYY_MM_DD.md
//
// Example: https://example.com/docs on 2024-03-01 →
// <baseDir>/example_com/api_2024_03_01.md
func OutputPath(baseDir, rawURL string, now time.Time) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", flat.Errorf(flat.EINVALID, "URL has no host: %s", rawURL)
	}

	domain := strings.ReplaceAll(u.Host, ".", "_")
	filename := "api_" + now.Format("2006_01_02") + ".md"

	return filepath.Join(baseDir, domain, filename), nil
}

// Timestamp formats a time for the output file header.
func Timestamp(t time.Time) string {
	return t.Format("2006-01-02:15:04:05")
}

// Ensure AppendWriter implements flat.PageWriter at compile time.
var _ flat.PageWriter = (*AppendWriter)(nil)

// AppendWriter appends page records to a single output file. The file and
// its parent directories are created lazily on the first write, so a crawl
// that saves nothing leaves no file behind.
//
// A newly created file starts with a header block:
//
//	----
//
//	Created: <timestamp>
//	Extractor: <name>
//
//	----
//
// Each page is then appended as:
//
//	<url>
//
//	----
//
//	<markdown content>
//
//	----
type AppendWriter struct {
	path      string
	extractor string
	now       func() time.Time

	f       *os.File
	needSep bool
}

// WriterOption configures an AppendWriter.
type WriterOption func(*AppendWriter)

// WithClock overrides the clock used for the file header timestamp.
func WithClock(now func() time.Time) WriterOption {
	return func(w *AppendWriter) {
		w.now = now
	}
}

// NewAppendWriter creates a writer appending to the dated output file for
// rawURL under baseDir. The extractor name is recorded in the file header.
func NewAppendWriter(baseDir, rawURL, extractor string, opts ...WriterOption) (*AppendWriter, error) {
	w := &AppendWriter{
		extractor: extractor,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}

	path, err := OutputPath(baseDir, rawURL, w.now())
	if err != nil {
		return nil, err
	}
	w.path = path

	return w, nil
}

// Path returns the output file path.
func (w *AppendWriter) Path() string {
	return w.path
}

// SetExtractor updates the extractor name recorded in the file header.
// It has no effect once the header has been written.
func (w *AppendWriter) SetExtractor(name string) {
	w.extractor = name
}

// WritePage appends a page record to the output file, writing the header
// first if the file is new.
func (w *AppendWriter) WritePage(ctx context.Context, page *flat.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := page.Validate(); err != nil {
		return err
	}

	if w.f == nil {
		if err := w.open(); err != nil {
			return err
		}
	}

	var b strings.Builder
	if w.needSep {
		b.WriteString("\n")
	}
	b.WriteString(page.URL)
	b.WriteString("\n\n----\n\n")
	b.WriteString(page.Content)
	b.WriteString("\n\n----\n")

	if _, err := w.f.WriteString(b.String()); err != nil {
		return err
	}
	w.needSep = true

	return nil
}

// Close closes the output file if it was opened.
func (w *AppendWriter) Close() error {
	if w.f == nil {
		return nil
	}
	err := w.f.Close()
	w.f = nil
	return err
}

func (w *AppendWriter) open() error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}

	if info.Size() == 0 {
		header := "----\n\nCreated: " + Timestamp(w.now()) + "\nExtractor: " + w.extractor + "\n\n----\n\n"
		if _, err := f.WriteString(header); err != nil {
			f.Close()
			return err
		}
	} else {
		// Appending to an existing file from an earlier run today.
		w.needSep = true
	}

	w.f = f
	return nil
}
