package crawl_test

import (
	"testing"

	flat "github.com/Ryan-Knowles/make-it-flat"
	"github.com/Ryan-Knowles/make-it-flat/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips fragment",
			in:   "https://example.com/docs/page#section",
			want: "https://example.com/docs/page",
		},
		{
			name: "strips trailing slash",
			in:   "https://example.com/docs/page/",
			want: "https://example.com/docs/page",
		},
		{
			name: "strips repeated trailing slashes",
			in:   "https://example.com/docs/page///",
			want: "https://example.com/docs/page",
		},
		{
			name: "strips slash from bare host",
			in:   "https://example.com/",
			want: "https://example.com",
		},
		{
			name: "preserves query parameters",
			in:   "https://example.com/docs/page/?version=2",
			want: "https://example.com/docs/page?version=2",
		},
		{
			name: "leaves canonical URL unchanged",
			in:   "https://example.com/docs/page",
			want: "https://example.com/docs/page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := crawl.NormalizeURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeURL_RejectsRelativeURL(t *testing.T) {
	t.Parallel()

	_, err := crawl.NormalizeURL("/docs/page")
	assert.Equal(t, flat.EINVALID, flat.ErrorCode(err))
}

func TestNormalizeURL_EquatesFragmentVariants(t *testing.T) {
	t.Parallel()

	a, err := crawl.NormalizeURL("https://example.com/docs#intro")
	require.NoError(t, err)
	b, err := crawl.NormalizeURL("https://example.com/docs/#usage")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
