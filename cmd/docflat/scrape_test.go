package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	main "github.com/Ryan-Knowles/make-it-flat/cmd/docflat"
	"github.com/Ryan-Knowles/make-it-flat/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mkdocsIndexHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Project Docs</title>
  <meta name="generator" content="mkdocs-1.5.3">
</head>
<body>
  <nav class="md-nav--primary">
    <a href="/docs/guide">User Guide</a>
  </nav>
  <article class="md-content__inner">
    <h1>Project Docs</h1>
    <p>Welcome to the documentation for the project.</p>
  </article>
</body>
</html>`

const mkdocsGuideHTML = `<!DOCTYPE html>
<html>
<head>
  <title>User Guide</title>
  <meta name="generator" content="mkdocs-1.5.3">
</head>
<body>
  <nav class="md-nav--primary">
    <a href="/docs">Home</a>
  </nav>
  <article class="md-content__inner">
    <h1>User Guide</h1>
    <p>How to use the project in practice.</p>
  </article>
</body>
</html>`

func TestMain_Run_ScrapesSiteToSingleFile(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/docs":
			_, _ = w.Write([]byte(mkdocsIndexHTML))
		case "/docs/guide":
			_, _ = w.Write([]byte(mkdocsGuideHTML))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	outDir := t.TempDir()
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		server.URL + "/docs",
		"--out", outDir,
		"--delay", "0s",
	}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Platform: mkdocs")
	assert.Contains(t, stdout.String(), "Saved 2 pages")

	path, err := fs.OutputPath(outDir, server.URL+"/docs", time.Now())
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(content)
	assert.Contains(t, out, "Extractor: mkdocs")
	assert.Contains(t, out, server.URL+"/docs")
	assert.Contains(t, out, server.URL+"/docs/guide")
	assert.Contains(t, out, "# Project Docs")
	assert.Contains(t, out, "# User Guide")
}

func TestMain_Run_MaxPagesLimitsCrawl(t *testing.T) {
	t.Parallel()

	// Three reachable pages; --max-pages 1 allows the seed plus one link.
	indexHTML := `<!DOCTYPE html>
<html>
<head>
  <title>Project Docs</title>
  <meta name="generator" content="mkdocs-1.5.3">
</head>
<body>
  <nav class="md-nav--primary">
    <a href="/docs/guide">User Guide</a>
    <a href="/docs/api">API Reference</a>
  </nav>
  <article class="md-content__inner">
    <h1>Project Docs</h1>
  </article>
</body>
</html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/docs":
			_, _ = w.Write([]byte(indexHTML))
		case "/docs/guide", "/docs/api":
			_, _ = w.Write([]byte(mkdocsGuideHTML))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	outDir := t.TempDir()
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		server.URL + "/docs",
		"--out", outDir,
		"--delay", "0s",
		"--max-pages", "1",
	}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Saved 2 pages")
}

func TestMain_Run_ForcedPlatform(t *testing.T) {
	t.Parallel()

	// No generator meta; detection alone would fall back to generic.
	pageHTML := `<!DOCTYPE html>
<html>
<head><title>Guide</title></head>
<body>
  <article class="md-content__inner">
    <h1>Guide</h1>
    <p>Content extracted with the forced strategy.</p>
  </article>
</body>
</html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(pageHTML))
	}))
	defer server.Close()

	outDir := t.TempDir()
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		server.URL + "/guide",
		"--out", outDir,
		"--delay", "0s",
		"--platform", "mkdocs",
	}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Platform: mkdocs")

	path, err := fs.OutputPath(outDir, server.URL+"/guide", time.Now())
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Extractor: mkdocs")
	assert.Contains(t, string(content), "forced strategy")
}

func TestMain_Run_SeedFetchFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	outDir := t.TempDir()
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		server.URL + "/docs",
		"--out", outDir,
		"--delay", "0s",
	}, &stdout, &stderr)

	require.Error(t, err)

	// No output file is created when nothing was saved.
	path, pathErr := fs.OutputPath(outDir, server.URL+"/docs", time.Now())
	require.NoError(t, pathErr)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
