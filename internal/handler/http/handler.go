package http

import (
	"github.com/MKhiriev/go-product-catalog/internal/config"
	"github.com/MKhiriev/go-product-catalog/internal/logger"
	"github.com/MKhiriev/go-product-catalog/internal/metrics"
	"github.com/MKhiriev/go-product-catalog/internal/pagination"
	"github.com/MKhiriev/go-product-catalog/internal/service"
)

type Handler struct {
	services *service.Services
	parser   pagination.Parser
	cfg      config.Server

	// metrics may be nil; the /metrics route is then not registered.
	metrics *metrics.Manager

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, metrics *metrics.Manager, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		parser:   pagination.NewParser(cfg.Pagination.DefaultPerPage, cfg.Pagination.MaxPerPage),
		cfg:      cfg.Server,
		metrics:  metrics,
		logger:   logger,
	}
}
