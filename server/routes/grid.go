// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"errors"
	"fmt"
	"net/http"

	"codeberg.org/pixivfe/masonry/assets/components/fragments"
	"codeberg.org/pixivfe/masonry/config"
	"codeberg.org/pixivfe/masonry/core/masonry"
	"codeberg.org/pixivfe/masonry/server/utils"
)

var errTooManyColumns = errors.New("too many columns")

// gridFromRequest builds the grid for a request. The cols query parameter
// overrides the configured breakpoints; a malformed value, or one that could
// resolve to more than gallery.maxColumns columns, is a bad request.
func gridFromRequest(r *http.Request) (*fragments.MasonryGrid, error) {
	props := config.Global.GridProps()

	if cols := utils.GetQueryParam(r, "cols"); cols != "" {
		breakpoints, err := masonry.ParseBreakpoints(cols)
		if err != nil {
			return nil, NewBadRequestError(err)
		}

		if most, limit := breakpoints.MaxColumns(), config.Global.Gallery.MaxColumns; most > limit {
			return nil, NewBadRequestError(fmt.Errorf("%w: cols allows %d, at most %d", errTooManyColumns, most, limit))
		}

		props.BreakpointCols = breakpoints
	}

	return fragments.NewMasonryGrid(props)
}

// itemCountFromRequest reads the items query parameter, clamped to the
// configured maximum.
func itemCountFromRequest(r *http.Request) (int, error) {
	items, err := utils.GetIntQueryParam(r, "items", config.Global.Gallery.DefaultItems, config.Global.Gallery.MaxItems)
	if err != nil {
		return 0, NewBadRequestError(err)
	}

	return items, nil
}
