package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-product-catalog/internal/service"
	"github.com/MKhiriev/go-product-catalog/internal/store"
	"github.com/stretchr/testify/assert"
)

// mockHealthService implements service.HealthService for testing.
type mockHealthService struct {
	err   error
	calls int
}

func (m *mockHealthService) Check(_ context.Context) error {
	m.calls++
	return m.err
}

func TestIndex(t *testing.T) {
	rec := httptest.NewRecorder()

	newTestHandler(&service.Services{}).Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, indexPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "index", rec.Body.String())
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "storage reachable",
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
		{
			name:       "storage down",
			err:        &store.StorageError{Op: "ping", Err: store.ErrPingingDB, Retryable: true},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"message":"service unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			health := &mockHealthService{err: tt.err}
			rec := httptest.NewRecorder()

			newTestHandler(&service.Services{HealthService: health}).Init().
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, healthPath, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, 1, health.calls)
			if tt.err != nil {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
				return
			}
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}
