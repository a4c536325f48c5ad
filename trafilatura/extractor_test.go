package trafilatura_test

import (
	"testing"

	flat "github.com/Ryan-Knowles/make-it-flat"
	"github.com/Ryan-Knowles/make-it-flat/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements flat.Extractor at compile time.
var _ flat.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from metadata", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Getting Started - My Docs</title>
<meta property="og:title" content="Getting Started Guide">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Getting Started</h1>
<p>This is the main content of the documentation page.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main content including code blocks", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/docs">Docs</a></nav>
<article>
<h1>Documentation</h1>
<p>This is important documentation content that should be extracted.</p>
<pre><code>func main() { fmt.Println("Hello") }</code></pre>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "important documentation content")
		assert.Contains(t, result.ContentHTML, "func main()")
	})

	t.Run("empty input is invalid", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		assert.Equal(t, flat.EINVALID, flat.ErrorCode(err))
	})
}
