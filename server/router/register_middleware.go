// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"codeberg.org/pixivfe/masonry/config"
	"codeberg.org/pixivfe/masonry/server/middleware"
	"codeberg.org/pixivfe/masonry/server/middleware/limiter"
	"codeberg.org/pixivfe/masonry/server/middleware/set_request_context"
)

// RegisterMiddleware installs the middleware chain according to config.Global.
func (router *Router) RegisterMiddleware() {
	// the first middleware is the most outer / first executed one
	router.Use(middleware.WithServerTiming)

	// Rejected requests stop here, before any per-request work.
	if config.Global.Limiter.Enabled {
		router.Use(limiter.New(config.Global.Limiter.RequestsPerMinute, config.Global.Limiter.Burst).Evaluate)
	}

	router.Use(middleware.NormalizeURL)                // handle trailing slashes and index aliases
	router.Use(set_request_context.WithRequestContext) // needed for everything else
	router.Use(middleware.SetResponseHeaders)          // all pages need this

	if config.Global.Response.Compression {
		router.Use(middleware.Compress)
	}
}
