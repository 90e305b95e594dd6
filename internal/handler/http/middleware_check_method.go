// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-product-catalog/internal/utils"
	"github.com/MKhiriev/go-product-catalog/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// The route whose pattern equals the request path is looked up among the
// routes registered on router. Its methods are listed in the Allow header
// of a 405 Method Not Allowed JSON response. When no route matches exactly
// (parameterised or wildcard patterns are not expanded) the response is
// 404 Not Found.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router, r.URL.Path)
		if len(allowed) == 0 {
			notFound(w, r)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteJSON(w, models.ErrorResponse{Message: statusMessage(http.StatusMethodNotAllowed)}, http.StatusMethodNotAllowed)
	}
}

// notFound is the router's NotFound handler.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Message: statusMessage(http.StatusNotFound)}, http.StatusNotFound)
}

// allowedMethods returns the sorted methods registered for the route whose
// pattern equals path.
func allowedMethods(router *chi.Mux, path string) []string {
	for _, route := range router.Routes() {
		if route.Pattern != path {
			continue
		}
		methods := make([]string, 0, len(route.Handlers))
		for method := range route.Handlers {
			methods = append(methods, method)
		}
		slices.Sort(methods)
		return methods
	}
	return nil
}
