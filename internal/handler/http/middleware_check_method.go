// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A known path requested with an unregistered method gets 404 instead of
// chi's 405, so the surface does not advertise which methods exist.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		handlers := routeHandlers(router.Routes(), "", r.URL.Path)
		if _, ok := handlers[r.Method]; !ok {
			http.NotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}

// routeHandlers walks nested sub-routers looking for an exact pattern match.
func routeHandlers(routes []chi.Route, prefix, path string) map[string]http.Handler {
	for _, route := range routes {
		pattern := prefix + strings.TrimSuffix(route.Pattern, "/*")
		if route.SubRoutes != nil {
			if h := routeHandlers(route.SubRoutes.Routes(), pattern, path); h != nil {
				return h
			}
			continue
		}
		if pattern == path {
			return route.Handlers
		}
	}
	return nil
}
