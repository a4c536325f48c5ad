package crawl

import (
	"net/url"
	"strings"

	flat "github.com/Ryan-Knowles/make-it-flat"
)

// NormalizeURL canonicalizes a URL for visited tracking.
// Fragments are dropped, trailing slashes are stripped, and query
// parameters are preserved. URLs that differ only in fragment or
// trailing slash normalize to the same string.
func NormalizeURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", flat.Errorf(flat.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", flat.Errorf(flat.EINVALID, "URL %q is not absolute", rawURL)
	}

	normalized := u.Scheme + "://" + u.Host + u.Path
	normalized = strings.TrimRight(normalized, "/")

	if u.RawQuery != "" {
		normalized += "?" + u.RawQuery
	}

	return normalized, nil
}
