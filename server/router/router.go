// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package router assembles the masonry server: routes on an http.ServeMux,
wrapped by the middleware chain.
*/
package router

import (
	"net/http"

	"codeberg.org/pixivfe/masonry/server/middleware"
)

// Router wraps http.ServeMux and provides middleware chaining functionality.
//
// Middleware runs for every request, including those the mux answers with
// a redirect or 404, so the request context always exists.
type Router struct {
	*http.ServeMux

	middlewares []middleware.Middleware
}

// NewRouter creates a new Router instance.
func NewRouter() *Router {
	return &Router{
		ServeMux: http.NewServeMux(),
	}
}

// Use appends middlewares to the chain. The first one registered runs first.
func (router *Router) Use(middlewares ...middleware.Middleware) {
	router.middlewares = append(router.middlewares, middlewares...)
}

// serve runs router.middlewares[i] and every one after it, then the mux.
func (router *Router) serve(i int, w http.ResponseWriter, r *http.Request) {
	if i == len(router.middlewares) {
		router.ServeMux.ServeHTTP(w, r)

		return
	}

	router.middlewares[i](w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		router.serve(i+1, w, r)
	}))
}

// ServeHTTP runs the request through all middleware and the mux.
func (router *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	router.serve(0, w, r)
}
