package handler

import (
	"github.com/MKhiriev/go-product-catalog/internal/config"
	"github.com/MKhiriev/go-product-catalog/internal/handler/grpc"
	"github.com/MKhiriev/go-product-catalog/internal/handler/http"
	"github.com/MKhiriev/go-product-catalog/internal/logger"
	"github.com/MKhiriev/go-product-catalog/internal/metrics"
	"github.com/MKhiriev/go-product-catalog/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, metrics *metrics.Manager, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, metrics, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
