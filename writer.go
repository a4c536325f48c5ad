package flat

import "context"

// PageWriter appends formatted page records to a single output file.
// Implementations write a metadata header before the first record.
type PageWriter interface {
	// WritePage appends a page record to the output file.
	WritePage(ctx context.Context, page *Page) error

	// Path returns the destination file path.
	Path() string

	// Close flushes and closes the output file.
	Close() error
}
