package http

import (
	"testing"

	"github.com/MKhiriev/go-product-catalog/internal/config"
	"github.com/MKhiriev/go-product-catalog/internal/logger"
	"github.com/MKhiriev/go-product-catalog/internal/metrics"
	"github.com/MKhiriev/go-product-catalog/internal/pagination"
	"github.com/MKhiriev/go-product-catalog/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHandler builds a Handler with default configuration and no metrics.
func newTestHandler(svcs *service.Services) *Handler {
	return NewHandler(svcs, &config.StructuredConfig{}, nil, logger.Nop())
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()
	m := metrics.NewManager(metrics.WithRegistry(prometheus.NewRegistry()))

	h := NewHandler(svcs, &config.StructuredConfig{}, m, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, m, h.metrics)
	assert.Equal(t, log, h.logger)
}

func TestNewHandler_PaginationDefaults(t *testing.T) {
	h := newTestHandler(&service.Services{})

	assert.Equal(t, pagination.NewParser(pagination.DefaultPerPage, pagination.MaxPerPage), h.parser)
}

func TestNewHandler_PaginationFromConfig(t *testing.T) {
	cfg := &config.StructuredConfig{
		Pagination: config.Pagination{DefaultPerPage: 25, MaxPerPage: 50},
		Server:     config.Server{CORSAllowedOrigins: []string{"https://shop.example"}},
	}

	h := NewHandler(&service.Services{}, cfg, nil, logger.Nop())

	assert.Equal(t, int64(25), h.parser.DefaultPerPage)
	assert.Equal(t, int64(50), h.parser.MaxPerPage)
	assert.Equal(t, []string{"https://shop.example"}, h.cfg.CORSAllowedOrigins)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := newTestHandler(&service.Services{})
	h2 := newTestHandler(&service.Services{})

	assert.NotSame(t, h1, h2)
}
