// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"net/http"
	"net/http/pprof"
	"runtime/trace"
	"time"

	"codeberg.org/pixivfe/masonry/config"
	"codeberg.org/pixivfe/masonry/server/middleware"
	"codeberg.org/pixivfe/masonry/server/routes"
)

// DefineRoutes sets up all the routes for the application using our custom Router.
//
// It does not register middleware; see RegisterMiddleware.
func (router *Router) DefineRoutes() {
	router.HandleFunc("GET /robots.txt", middleware.CatchError(routes.RobotsTxt))

	// JSON layout API
	router.HandleFunc("GET /api/layout", middleware.CatchError(routes.LayoutAPI))

	// Index page routes
	// /{$} matches only the root path
	router.HandleFunc("GET /{$}", middleware.CatchError(routes.GalleryPage))

	// Everything else gets the error page rather than the bare ServeMux 404.
	router.HandleFunc("/", middleware.CatchError(func(w http.ResponseWriter, r *http.Request) error {
		http.NotFound(w, r)

		return nil
	}))

	if config.Global.Development.InDevelopment {
		registerDebugRoutes(router)
	}
}

var flightRecorder = trace.NewFlightRecorder(trace.FlightRecorderConfig{MinAge: time.Minute})

func registerDebugRoutes(router *Router) {
	err := flightRecorder.Start()
	if err != nil {
		panic(err)
	}

	router.HandleFunc("GET /debug/pprof/", pprof.Index)
	router.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	router.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	router.HandleFunc("GET /debug/flight", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = flightRecorder.WriteTo(w)
	})
}
