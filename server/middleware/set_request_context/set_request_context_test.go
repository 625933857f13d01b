// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package set_request_context

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/pixivfe/masonry/core/masonry"
	"codeberg.org/pixivfe/masonry/server/middleware"
	"codeberg.org/pixivfe/masonry/server/request_context"
)

func TestWithRequestContextAttachesContext(t *testing.T) {
	t.Parallel()

	var (
		requestID  string
		statusCode int
		called     bool
	)

	handler := middleware.Wrap(WithRequestContext, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := request_context.FromRequest(r)

		called = true
		requestID = ctx.RequestID
		statusCode = ctx.StatusCode

		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))

	require.True(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, requestID)
	assert.Equal(t, http.StatusOK, statusCode)
}

func TestWithRequestContextGeneratesUniqueRequestIDs(t *testing.T) {
	t.Parallel()

	var requestIDs []string

	handler := middleware.Wrap(WithRequestContext, http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		requestIDs = append(requestIDs, request_context.FromRequest(r).RequestID)
	}))

	for range 3 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))
	}

	require.Len(t, requestIDs, 3)

	seen := make(map[string]bool)
	for _, id := range requestIDs {
		assert.False(t, seen[id], "duplicate request ID %s", id)
		seen[id] = true
	}
}

func TestWithRequestContextCarriesViewportWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		hint   string
		want   int
	}{
		{"no hint", "/", "", masonry.UnknownWidth},
		{"client hint", "/", "820", 820},
		{"query wins", "/?width=400", "820", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var rcWidth, gridWidth int

			handler := middleware.Wrap(WithRequestContext, http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				rcWidth = request_context.FromRequest(r).ViewportWidth
				gridWidth = masonry.WidthFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.hint != "" {
				req.Header.Set(request_context.HeaderViewportWidth, tt.hint)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, rcWidth)
			assert.Equal(t, tt.want, gridWidth)
		})
	}
}
