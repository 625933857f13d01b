// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package request_context provides per-request state management for HTTP handlers.

This package is separate because Go disallows a cyclic import graph.
*/
package request_context

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"
	"time"

	"codeberg.org/pixivfe/masonry/core/masonry"
)

// Client hint headers carrying the layout viewport width in CSS pixels.
//
// ref: https://wicg.github.io/responsive-image-client-hints/#sec-ch-viewport-width
const (
	HeaderViewportWidth       = "Sec-CH-Viewport-Width"
	HeaderLegacyViewportWidth = "Viewport-Width"
)

// RequestContext carries request-scoped data through the middleware chain.
type RequestContext struct {
	// RequestID is an identifier for tracing requests.
	RequestID string

	// Holds any critical error encountered during request processing.
	//
	// Automatically populated by middleware.CatchError when handlers return errors,
	// which interrupts normal response handling and renders an error page instead.
	RequestError error

	// HTTP status code to be sent in the response. Defaults to 200 OK.
	StatusCode int

	// ViewportWidth is the client's viewport width, or masonry.UnknownWidth.
	ViewportWidth int

	// Columns is the column count the handler laid the grid out with.
	// Zero when the route rendered no grid.
	Columns int
}

// requestContextKeyType defines a unique type for a RequestContext key.
type requestContextKeyType struct{}

// requestContextKey is a unique key used to access RequestContext
// values from a context.Context.
var requestContextKey = requestContextKeyType{}

// WithRequestContext initializes a new request context and attaches it to
// the parent context, together with the viewport width for the grid.
//
// This is called once per request, early in the middleware chain.
func WithRequestContext(ctx context.Context, r *http.Request) context.Context {
	rc := RequestContext{
		RequestID:     newRequestID(time.Now()),
		StatusCode:    http.StatusOK,
		ViewportWidth: ViewportWidth(r),
	}

	ctx = masonry.WithWidth(ctx, rc.ViewportWidth)

	return context.WithValue(ctx, requestContextKey, &rc)
}

// FromContext extracts the RequestContext from a context, always returning
// a valid pointer.
//
// If no context is found, returns a zero-value instance.
func FromContext(ctx context.Context) *RequestContext {
	if v := ctx.Value(requestContextKey); v != nil {
		if rc, ok := v.(*RequestContext); ok {
			return rc
		}
	}

	return &RequestContext{}
}

// FromRequest is a convenience wrapper for extracting RequestContext
// directly from HTTP requests.
//
// Prefer this in handlers that have access to the *http.Request object.
func FromRequest(r *http.Request) *RequestContext {
	return FromContext(r.Context())
}

// ViewportWidth returns the viewport width for r.
//
// An explicit ?width= query parameter wins over client hints so that layouts
// can be previewed from any device. Unparsable or non-positive values are
// ignored.
func ViewportWidth(r *http.Request) int {
	candidates := []string{
		r.URL.Query().Get("width"),
		r.Header.Get(HeaderViewportWidth),
		r.Header.Get(HeaderLegacyViewportWidth),
	}

	for _, raw := range candidates {
		// Client hints may be fractional, e.g. "412.5".
		raw, _, _ = strings.Cut(strings.TrimSpace(raw), ".")

		if width, err := strconv.Atoi(raw); err == nil && width > 0 {
			return width
		}
	}

	return masonry.UnknownWidth
}

// newRequestID makes a short ID from a 6 digit timestamp and 3 bytes of entropy.
func newRequestID(t time.Time) string {
	entropy := [3]byte{'a', 'a', 'a'}

	_, _ = rand.Read(entropy[:])

	return t.Format("150405") + base64.RawURLEncoding.EncodeToString(entropy[:])
}
