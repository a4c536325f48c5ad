package goquery_test

import (
	"testing"

	flat "github.com/Ryan-Knowles/make-it-flat"
	"github.com/Ryan-Knowles/make-it-flat/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genericStrategy() *flat.Strategy {
	return &flat.Strategy{
		Platform: flat.PlatformGeneric,
		Content:  goquery.NewContentSelector("main", "article"),
		Links:    goquery.NewGenericSelector(),
	}
}

func webdocStrategy() *flat.Strategy {
	return &flat.Strategy{
		Platform: flat.PlatformWebdoc,
		Content:  goquery.NewWebdocContent(),
		Links:    goquery.NewWebdocSelector(),
	}
}

func TestRegistry_Get_returns_registered_strategy(t *testing.T) {
	t.Parallel()

	r := goquery.NewRegistry(goquery.NewDetector(), genericStrategy())
	webdoc := webdocStrategy()
	r.Register(flat.PlatformWebdoc, webdoc)

	assert.Same(t, webdoc, r.Get(flat.PlatformWebdoc))
	assert.Nil(t, r.Get(flat.PlatformSphinx))
}

func TestRegistry_Get_generic_returns_fallback(t *testing.T) {
	t.Parallel()

	fallback := genericStrategy()
	r := goquery.NewRegistry(goquery.NewDetector(), fallback)

	assert.Same(t, fallback, r.Get(flat.PlatformGeneric))
}

func TestRegistry_GetForHTML_detects_and_selects(t *testing.T) {
	t.Parallel()

	r := goquery.NewRegistry(goquery.NewDetector(), genericStrategy())
	webdoc := webdocStrategy()
	r.Register(flat.PlatformWebdoc, webdoc)

	html := `<html><body>
		<footer class="content-size">Documentation generated by Webdoc</footer>
	</body></html>`

	assert.Same(t, webdoc, r.GetForHTML(html))
}

func TestRegistry_GetForHTML_falls_back_for_unknown_platform(t *testing.T) {
	t.Parallel()

	fallback := genericStrategy()
	r := goquery.NewRegistry(goquery.NewDetector(), fallback)
	r.Register(flat.PlatformWebdoc, webdocStrategy())

	html := `<html><body><p>plain page</p></body></html>`

	assert.Same(t, fallback, r.GetForHTML(html))
}

func TestRegistry_List_returns_registered_platforms(t *testing.T) {
	t.Parallel()

	r := goquery.NewRegistry(goquery.NewDetector(), genericStrategy())
	r.Register(flat.PlatformWebdoc, webdocStrategy())
	r.Register(flat.PlatformSphinx, &flat.Strategy{
		Platform: flat.PlatformSphinx,
		Content:  goquery.NewSphinxContent(),
		Links:    goquery.NewSphinxSelector(),
	})

	platforms := r.List()
	require.Len(t, platforms, 2)
	assert.ElementsMatch(t, []flat.Platform{flat.PlatformWebdoc, flat.PlatformSphinx}, platforms)
}
