// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/pixivfe/masonry/assets/views"
	"codeberg.org/pixivfe/masonry/config"
	"codeberg.org/pixivfe/masonry/server/request_context"
)

// GalleryPage is the handler for the / page.
func GalleryPage(w http.ResponseWriter, r *http.Request) error {
	grid, err := gridFromRequest(r)
	if err != nil {
		return err
	}

	items, err := itemCountFromRequest(r)
	if err != nil {
		return err
	}

	ctx := request_context.FromRequest(r)
	ctx.Columns = grid.Columns(r.Context())

	pageData := views.GalleryData{
		Title:   config.Global.Gallery.Title,
		Grid:    grid,
		Items:   items,
		Columns: ctx.Columns,
		Width:   ctx.ViewportWidth,
		Version: config.BuildVersion,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	return views.Gallery(pageData).Render(r.Context(), w)
}
