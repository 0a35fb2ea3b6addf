// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-bookmarks/internal/app"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This function overrides that behaviour: if the requested
// method is not registered for the matched route, it responds with the
// regular JSON 404 body instead, so an unsupported method looks exactly like
// an unknown path.
//
// If the requested method IS registered for the exactly matching route
// pattern, the request is forwarded to the router's normal ServeHTTP
// pipeline. Parameterised and mounted patterns (e.g. "/bookmarks/{id}") never
// match exactly and always yield 404.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			writeStatus(w, http.StatusNotFound, app.MsgNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
