package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-product-catalog/internal/metrics"
	"github.com/MKhiriev/go-product-catalog/internal/service"
	"github.com/MKhiriev/go-product-catalog/internal/store"
	"github.com/MKhiriev/go-product-catalog/internal/validators"
	"github.com/MKhiriev/go-product-catalog/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	storageErr := &store.StorageError{Op: "count", Err: store.ErrExecutingQuery}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", validators.NewValidationError(models.FieldError{Field: "page", Message: "x"}), http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("listing: %w", validators.ErrValidation), http.StatusBadRequest},
		{"storage", storageErr, http.StatusInternalServerError},
		{"wrapped storage", fmt.Errorf("error counting products: %w", storageErr), http.StatusInternalServerError},
		{"storage timeout", &store.StorageError{Op: "count", Err: fmt.Errorf("%w: %w", store.ErrExecutingQuery, context.DeadlineExceeded)}, http.StatusGatewayTimeout},
		{"storage unavailable", fmt.Errorf("%w: %w", ErrStorageUnavailable, storageErr), http.StatusServiceUnavailable},
		{"body too large", ErrRequestBodyTooLarge, http.StatusRequestEntityTooLarge},
		{"nil repository", service.ErrNilRepository, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, "internal server error", statusMessage(http.StatusInternalServerError))
	assert.Equal(t, "method not allowed", statusMessage(http.StatusMethodNotAllowed))
	assert.Equal(t, "not found", statusMessage(http.StatusNotFound))
}

func TestWriteError_RecordsStorageErrors(t *testing.T) {
	m := metrics.NewManager(metrics.WithRegistry(prometheus.NewRegistry()))
	h := newTestHandler(&service.Services{})
	h.metrics = m

	rec := httptest.NewRecorder()
	h.writeError(rec, httptest.NewRequest(http.MethodGet, productsPath, nil),
		fmt.Errorf("error fetching products: %w", &store.StorageError{Op: "fetch", Err: store.ErrScanningRows, Retryable: true}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"internal server error"}`, rec.Body.String())

	count, err := testutil.GatherAndCount(m.Registry(), "catalog_products_storage_errors_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestWriteError_ValidationBody(t *testing.T) {
	h := newTestHandler(&service.Services{})
	rec := httptest.NewRecorder()

	h.writeError(rec, httptest.NewRequest(http.MethodPost, productsPath, nil),
		validators.NewValidationError(models.FieldError{Field: "name", Message: "is required"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"validation failed","errors":[{"field":"name","message":"is required"}]}`, rec.Body.String())
}
