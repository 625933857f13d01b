// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"codeberg.org/pixivfe/masonry/config"
	"codeberg.org/pixivfe/masonry/core/masonry"
)

func newTestServer(t *testing.T, configure ...func(*config.ServerConfig)) *httptest.Server {
	t.Helper()

	config.Global.SetDefaults()
	config.Global.Masonry.BreakpointCols = masonry.MustParseBreakpoints("default:3,600:1")

	for _, fn := range configure {
		fn(&config.Global)
	}

	router := NewRouter()
	router.DefineRoutes()
	router.RegisterMiddleware()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server
}

// client does not follow redirects or negotiate compression on its own.
func client() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
		Transport:     &http.Transport{DisableCompression: true},
	}
}

func get(t *testing.T, server *httptest.Server, path string, header http.Header) *http.Response {
	t.Helper()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, server.URL+path, nil)
	require.NoError(t, err)

	for key, values := range header {
		req.Header[key] = values
	}

	resp, err := client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func TestRouterServesGallery(t *testing.T) {
	server := newTestServer(t)

	resp := get(t, server, "/?items=6", http.Header{"Sec-Ch-Viewport-Width": {"500"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, resp.Header.Get("Accept-CH"), "Sec-CH-Viewport-Width")
	assert.Contains(t, resp.Header.Get("Vary"), "Sec-CH-Viewport-Width")
	assert.Equal(t, config.BuildVersion, resp.Header.Get("Masonry-Version"))
	assert.Contains(t, resp.Header.Get("Server-Timing"), "render")

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find(".astro-masonry-grid_column").Length())
	assert.Equal(t, 6, doc.Find(".astro-masonry-grid_column figure").Length())
}

func TestRouterLayoutAPI(t *testing.T) {
	server := newTestServer(t)

	resp := get(t, server, "/api/layout?items=4", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, int64(3), gjson.GetBytes(body, "columns").Int())
	assert.JSONEq(t, `[[0,3],[1],[2]]`, gjson.GetBytes(body, "assignment").Raw)
}

func TestRouterCompressesLargeResponses(t *testing.T) {
	server := newTestServer(t)

	resp := get(t, server, "/?items=100", http.Header{"Accept-Encoding": {"gzip"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	reader, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(reader)
	require.NoError(t, err)
	assert.Equal(t, 100, doc.Find("figure").Length())
}

func TestRouterRedirectsAndErrors(t *testing.T) {
	server := newTestServer(t)

	resp := get(t, server, "/gallery?items=2", nil)
	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	assert.Equal(t, "/?items=2", resp.Header.Get("Location"))

	resp = get(t, server, "/api/layout/", nil)
	assert.Equal(t, http.StatusPermanentRedirect, resp.StatusCode)
	assert.Equal(t, "/api/layout", resp.Header.Get("Location"))

	resp = get(t, server, "/no-such-page", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = get(t, server, "/?cols=default:0", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouterLimiterRejectsBeforeOtherMiddleware(t *testing.T) {
	server := newTestServer(t, func(cfg *config.ServerConfig) {
		cfg.Limiter.Enabled = true
		cfg.Limiter.RequestsPerMinute = 1
		cfg.Limiter.Burst = 1
	})

	resp := get(t, server, "/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Masonry-Version"))

	resp = get(t, server, "/", http.Header{"Accept-Encoding": {"gzip"}})
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "60", resp.Header.Get("Retry-After"))

	// Neither the response headers nor the compression middleware ran.
	assert.Empty(t, resp.Header.Get("Masonry-Version"))
	assert.Empty(t, resp.Header.Get("Content-Security-Policy"))
	assert.Empty(t, resp.Header.Get("Content-Encoding"))
}
