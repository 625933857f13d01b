// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog/log"
)

// compressionMinSize is the smallest response body worth compressing.
const compressionMinSize = 512

// compressHandler is built once; gzhttp wrappers are safe for concurrent use.
var compressHandler = newCompressHandler()

func newCompressHandler() func(http.Handler) http.HandlerFunc {
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(compressionMinSize),
		gzhttp.ContentTypes([]string{"text/html", "application/json", "text/plain"}),
	)
	if err != nil {
		// Only reachable with invalid static options above.
		log.Panic().Err(err).Msg("Failed to build compression middleware")
	}

	return wrapper
}

// Compress gzips responses for clients that accept it.
func Compress(w http.ResponseWriter, r *http.Request, next http.Handler) {
	compressHandler(next).ServeHTTP(w, r)
}
