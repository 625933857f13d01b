// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"maps"
	"net/http"
	"strings"

	"codeberg.org/pixivfe/masonry/config"
	"codeberg.org/pixivfe/masonry/server/request_context"
)

var (
	// baseHeaders defines the default headers to be set in responses.
	//
	// Masonry-Version and Masonry-Revision are added dynamically in SetResponseHeaders.
	//
	// NOTE: we intentionally don't set CORP or HSTS headers.
	baseHeaders = http.Header{
		"Referrer-Policy":         {"no-referrer"},
		"X-Frame-Options":         {"DENY"},
		"X-Content-Type-Options":  {"nosniff"},
		"Permissions-Policy":      {strings.Join(defaultPermissionsPolicy, ", ")},
		"Content-Security-Policy": {strings.Join(baseCSP, "; ") + ";"},
		// Ask browsers to send their viewport width on subsequent requests.
		"Accept-Ch": {request_context.HeaderViewportWidth + ", " + request_context.HeaderLegacyViewportWidth},
		"Vary":      {request_context.HeaderViewportWidth + ", " + request_context.HeaderLegacyViewportWidth},
	}

	// baseCSP defines the CSP directives. Pages are self-contained, so
	// nothing beyond inline styles is needed.
	baseCSP = []string{
		"base-uri 'self'",
		"default-src 'self'",
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data:",
		"script-src 'none'",
		"form-action 'self'",
		"frame-ancestors 'none'",
	}

	// defaultPermissionsPolicy defines the default Permissions-Policy header.
	defaultPermissionsPolicy = []string{
		"accelerometer=()",
		"camera=()",
		"display-capture=()",
		"geolocation=()",
		"gyroscope=()",
		"magnetometer=()",
		"microphone=()",
		"payment=()",
		"usb=()",
		"xr-spatial-tracking=()",
	}
)

// SetResponseHeaders adds default headers to HTTP responses.
func SetResponseHeaders(w http.ResponseWriter, r *http.Request, next http.Handler) {
	headers := w.Header()

	maps.Insert(headers, maps.All(baseHeaders))

	setCacheControl(headers, r.URL.Path)

	headers.Set("Masonry-Version", config.BuildVersion)
	headers.Set("Masonry-Revision", config.Global.Build.Revision())

	next.ServeHTTP(w, r)
}

// setCacheControl sets appropriate cache control headers.
//
// Layouts depend on the viewport width, so pages are only stored in the
// browser cache and always revalidated.
func setCacheControl(headers http.Header, path string) {
	cacheDuration := "private, no-cache"

	// robots.txt gets moderate caching (1 day)
	if strings.HasSuffix(path, ".txt") {
		cacheDuration = "max-age=86400"
	}

	headers.Set("Cache-Control", cacheDuration)
}
