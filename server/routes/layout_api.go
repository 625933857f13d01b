// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"codeberg.org/pixivfe/masonry/core/masonry"
	"codeberg.org/pixivfe/masonry/server/request_context"
)

// LayoutResponse is the body of GET /api/layout.
type LayoutResponse struct {
	Columns        int     `json:"columns"`
	Width          int     `json:"width"`
	BreakpointCols string  `json:"breakpointCols"`
	Assignment     [][]int `json:"assignment"`
}

// LayoutErrorResponse is the body of a failed GET /api/layout.
type LayoutErrorResponse struct {
	Error string `json:"error"`
}

// LayoutAPI reports which column each item index lands in for the request's
// viewport width.
//
// Errors are reported as JSON rather than through the error page.
func LayoutAPI(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json")

	grid, err := gridFromRequest(r)
	if err != nil {
		return writeLayoutError(w, err)
	}

	items, err := itemCountFromRequest(r)
	if err != nil {
		return writeLayoutError(w, err)
	}

	ctx := request_context.FromRequest(r)
	ctx.Columns = grid.Columns(r.Context())

	assignment, err := masonry.Indices(items, ctx.Columns)
	if err != nil {
		return err
	}

	return json.NewEncoder(w).Encode(LayoutResponse{
		Columns:        ctx.Columns,
		Width:          ctx.ViewportWidth,
		BreakpointCols: grid.Props().BreakpointCols.String(),
		Assignment:     assignment,
	})
}

// writeLayoutError answers with a JSON error body. Bad requests get a 400;
// anything else is returned for the error page.
func writeLayoutError(w http.ResponseWriter, err error) error {
	var badRequest *BadRequestError
	if !errors.As(err, &badRequest) {
		return err
	}

	w.WriteHeader(http.StatusBadRequest)

	if encodeErr := json.NewEncoder(w).Encode(LayoutErrorResponse{Error: badRequest.Error()}); encodeErr != nil {
		log.Err(encodeErr).Msg("Failed to write layout error")
	}

	return nil
}
