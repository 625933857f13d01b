// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
)

func pageHead(w io.Writer, title, style string) error {
	_, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
		`<meta name="viewport" content="width=device-width, initial-scale=1">`+
		`<title>`+templ.EscapeString(title)+`</title><style>`+style+`</style></head><body>`)

	return err
}

func pageFooter(version string) string {
	return `<footer><small>masonry ` + templ.EscapeString(version) + `</small></footer></body></html>`
}

// ErrorData is the data used to render the error page.
type ErrorData struct {
	StatusCode int
	Error      error
	RequestID  string
	Version    string
}

// Error renders the generic error page.
func Error(data ErrorData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		title := strconv.Itoa(data.StatusCode) + " " + http.StatusText(data.StatusCode)

		if err := pageHead(w, title, `body { font-family: sans-serif; }`); err != nil {
			return err
		}

		message := "Something went wrong."
		if data.Error != nil {
			message = data.Error.Error()
		}

		_, err := io.WriteString(w, `<main><h1>`+templ.EscapeString(title)+`</h1><p class="error-message">`+
			templ.EscapeString(message)+`</p><p><small>Request ID: <code>`+templ.EscapeString(data.RequestID)+
			`</code></small></p><p><a href="/">Back to the gallery</a></p></main>`+pageFooter(data.Version))

		return err
	})
}
