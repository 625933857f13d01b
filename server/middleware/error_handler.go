// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"errors"
	"maps"
	"net/http"
	"net/http/httptest"

	"github.com/rs/zerolog/log"

	"codeberg.org/pixivfe/masonry/config"
	"codeberg.org/pixivfe/masonry/core/audit"
	"codeberg.org/pixivfe/masonry/server/request_context"
	"codeberg.org/pixivfe/masonry/server/routes"
)

// CatchError wraps HTTP handlers that return an error, providing centralized error handling,
// response buffering, and request logging.
//
// The handler's output is buffered. Afterwards:
//   - A *routes.BadRequestError becomes a 400 error page.
//   - Any other error without an HTTP error status written, or a 404, becomes
//     the generic error page (500 or 404).
//   - Otherwise the buffered response is written to the client.
//
// Finally, the request is logged via the audit package.
func CatchError(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := request_context.FromRequest(r)

		span := audit.Span{
			RequestID: ctx.RequestID,
			Method:    r.Method,
			URL:       r.URL.String(),
			Width:     ctx.ViewportWidth,
		}

		r = r.WithContext(span.Begin(r.Context()))
		defer span.End()

		recorder := httptest.NewRecorder()

		err := handler(recorder, r)

		// Stop timing before anything is written so Server-Timing carries the duration.
		span.End()

		ctx.RequestError = err

		var badRequest *routes.BadRequestError

		switch {
		case errors.As(err, &badRequest):
			ctx.StatusCode = http.StatusBadRequest
			span.BodyLen = routes.ErrorPage(w, r)

		case (err != nil && recorder.Code < http.StatusBadRequest) || recorder.Code == http.StatusNotFound:
			if recorder.Code == http.StatusNotFound {
				ctx.StatusCode = http.StatusNotFound
			} else {
				ctx.StatusCode = http.StatusInternalServerError
			}

			span.BodyLen = routes.ErrorPage(w, r)

		default:
			ctx.StatusCode = recorder.Code
			span.BodyLen = recorder.Body.Len()

			maps.Copy(w.Header(), recorder.Header())
			w.WriteHeader(recorder.Code)

			if _, err := recorder.Body.WriteTo(w); err != nil {
				log.Err(err).Msg("Failed to write response body")
			}
		}

		span.StatusCode = ctx.StatusCode
		span.Error = ctx.RequestError
		span.Columns = ctx.Columns

		if !config.Global.ShouldSkipServerLogging(r.URL.Path) {
			span.Log()
		}
	}
}
