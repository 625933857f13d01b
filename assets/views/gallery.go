// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"codeberg.org/pixivfe/masonry/assets/components/fragments"
	"codeberg.org/pixivfe/masonry/assets/components/partials"
)

// GalleryData is the data used to render the demo gallery page.
type GalleryData struct {
	Title   string
	Grid    *fragments.MasonryGrid
	Items   int
	Columns int
	// Width is the viewport width the layout was resolved for, 0 if unknown.
	Width   int
	Version string
}

// Gallery renders the demo gallery page.
func Gallery(data GalleryData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		props := data.Grid.Props()

		if err := pageHead(w, data.Title, galleryStyle(props)); err != nil {
			return err
		}

		width := "unknown"
		if data.Width > 0 {
			width = strconv.Itoa(data.Width) + "px"
		}

		header := `<header><h1>` + templ.EscapeString(data.Title) + `</h1><p>` +
			strconv.Itoa(data.Items) + ` items in ` + strconv.Itoa(data.Columns) +
			` columns, viewport width ` + width + `, breakpoints <code>` +
			templ.EscapeString(props.BreakpointCols.String()) + `</code></p>` +
			`<form method="get" action="/"><label>Items <input type="number" name="items" min="0" value="` +
			strconv.Itoa(data.Items) + `"></label> <label>Columns <input type="text" name="cols" value="` +
			templ.EscapeString(props.BreakpointCols.String()) + `"></label> <button type="submit">Apply</button></form></header><main>`

		if _, err := io.WriteString(w, header); err != nil {
			return err
		}

		if err := data.Grid.Masonry(partials.Cards(data.Items)...).Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</main>`+pageFooter(data.Version))

		return err
	})
}

// galleryStyle lays the columns out side by side. Column widths are set inline
// by the grid itself.
func galleryStyle(props fragments.MasonryProps) string {
	return `.` + props.ClassName + ` { display: flex; margin-left: -16px; width: auto; }` +
		`.` + props.ColumnClassName + ` { padding-left: 16px; background-clip: padding-box; box-sizing: border-box; }` +
		`.masonry-card { margin: 0 0 16px; border-radius: 6px; background: #d8dee9; display: flex; align-items: end; }` +
		`.masonry-card figcaption { padding: 8px; font-family: sans-serif; }`
}
