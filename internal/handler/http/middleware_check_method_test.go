// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter registers a small route table without Handler.Init so that no
// services are needed.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Delete("/api/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name        string
		method      string
		path        string
		wantStatus  int
		wantAllow   string
		wantMessage string
	}{
		{name: "GET registered", method: http.MethodGet, path: "/api/items", wantStatus: http.StatusOK},
		{name: "POST registered", method: http.MethodPost, path: "/api/items", wantStatus: http.StatusCreated},
		{
			name:        "PUT on collection",
			method:      http.MethodPut,
			path:        "/api/items",
			wantStatus:  http.StatusMethodNotAllowed,
			wantAllow:   "GET, POST",
			wantMessage: `{"message":"method not allowed"}`,
		},
		{
			name:        "DELETE on collection",
			method:      http.MethodDelete,
			path:        "/api/items",
			wantStatus:  http.StatusMethodNotAllowed,
			wantAllow:   "GET, POST",
			wantMessage: `{"message":"method not allowed"}`,
		},
		{
			name:        "POST on version",
			method:      http.MethodPost,
			path:        "/api/version",
			wantStatus:  http.StatusMethodNotAllowed,
			wantAllow:   "GET",
			wantMessage: `{"message":"method not allowed"}`,
		},
		{
			name:        "parameterised pattern is not expanded",
			method:      http.MethodGet,
			path:        "/api/items/5",
			wantStatus:  http.StatusNotFound,
			wantMessage: `{"message":"not found"}`,
		},
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
			if tt.wantMessage != "" {
				assert.JSONEq(t, tt.wantMessage, rec.Body.String())
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestAllowedMethods(t *testing.T) {
	router := buildRouter()

	assert.Equal(t, []string{http.MethodGet, http.MethodPost}, allowedMethods(router, "/api/items"))
	assert.Equal(t, []string{http.MethodGet}, allowedMethods(router, "/api/version"))
	assert.Nil(t, allowedMethods(router, "/nope"))
}
