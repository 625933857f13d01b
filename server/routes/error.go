// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"bytes"
	"net/http"

	"github.com/rs/zerolog/log"

	"codeberg.org/pixivfe/masonry/assets/views"
	"codeberg.org/pixivfe/masonry/config"
	"codeberg.org/pixivfe/masonry/server/request_context"
)

// ErrorPage renders an error page using the status code and error held in the
// request context. It returns the number of body bytes written.
func ErrorPage(w http.ResponseWriter, r *http.Request) int {
	ctx := request_context.FromRequest(r)

	statusCode := ctx.StatusCode
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}

	pageData := views.ErrorData{
		StatusCode: statusCode,
		Error:      ctx.RequestError,
		RequestID:  ctx.RequestID,
		Version:    config.BuildVersion,
	}

	var buf bytes.Buffer
	if err := views.Error(pageData).Render(r.Context(), &buf); err != nil {
		log.Err(err).Str("request_id", ctx.RequestID).Msg("Failed to render error page")
	}

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	n, err := buf.WriteTo(w)
	if err != nil {
		log.Err(err).Str("request_id", ctx.RequestID).Msg("Failed to write error page")
	}

	return int(n)
}
