// Package flat provides a documentation crawl-and-flatten utility.
// It fetches documentation pages starting from a seed URL, detects the
// platform that generated them, extracts the main content and the
// outgoing navigation links, converts the content to Markdown, and
// appends every page to a single growing output file.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// htmltomarkdown/, http/).
package flat
