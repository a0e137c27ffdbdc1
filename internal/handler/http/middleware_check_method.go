// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-recipe-book/internal/utils"
	"github.com/go-chi/chi/v5"
)

var routableMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
}

// notFound answers unknown paths with the JSON error envelope.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "route "+r.URL.Path+" not found", http.StatusNotFound)
}

// methodNotAllowed returns the router's MethodNotAllowed handler. It lists
// the methods registered for the requested path in the Allow header and
// answers with the JSON error envelope.
//
// Usage:
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(methodNotAllowed(router))
//	// ... register routes ...
func methodNotAllowed(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", strings.Join(allowedMethods(router, r.URL.Path), ", "))
		utils.WriteError(w, "method "+r.Method+" is not allowed", http.StatusMethodNotAllowed)
	}
}

// allowedMethods reports which of routableMethods the router serves for path.
func allowedMethods(router *chi.Mux, path string) []string {
	var allowed []string
	for _, method := range routableMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
