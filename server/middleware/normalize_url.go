// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"strings"
)

// indexAliases are paths served by the gallery at "/".
var indexAliases = []string{"/index.html", "/gallery"}

// NormalizeURL is a middleware that handles URL normalization by:
// 1. Redirecting aliases of the gallery to "/".
// 2. Removing trailing slashes from URLs (except root).
func NormalizeURL(w http.ResponseWriter, r *http.Request, next http.Handler) {
	if isIndexAlias(r) {
		redirectToPath(w, r, "/", http.StatusMovedPermanently)

		return
	}

	if hasTrailingSlash(r) {
		redirectToPath(w, r, strings.TrimRight(r.URL.Path, "/"), http.StatusPermanentRedirect)

		return
	}

	next.ServeHTTP(w, r)
}

// hasTrailingSlash checks if a request path has a trailing slash (except root).
func hasTrailingSlash(r *http.Request) bool {
	return r.URL.Path != "/" && strings.HasSuffix(r.URL.Path, "/")
}

func isIndexAlias(r *http.Request) bool {
	for _, alias := range indexAliases {
		if r.URL.Path == alias {
			return true
		}
	}

	return false
}

// redirectToPath redirects to path on the same host, keeping the query string.
func redirectToPath(w http.ResponseWriter, r *http.Request, path string, code int) {
	if path == "" {
		path = "/"
	}

	target := *r.URL
	target.Path = path

	http.Redirect(w, r, target.RequestURI(), code)
}
