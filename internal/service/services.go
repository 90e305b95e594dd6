package service

import (
	"fmt"

	"github.com/MKhiriev/go-product-catalog/internal/config"
	"github.com/MKhiriev/go-product-catalog/internal/logger"
	"github.com/MKhiriev/go-product-catalog/internal/store"
)

// Services aggregates the services consumed by the transport layer.
type Services struct {
	ProductService ProductService
	AppInfoService AppInfoService
	HealthService  HealthService
}

// NewServices wires the services over storages. The product service is
// decorated with input validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	if storages == nil || storages.ProductRepository == nil {
		return nil, ErrNilRepository
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	productService := NewProductValidationService().
		Wrap(NewProductService(storages.ProductRepository, logger))

	return &Services{
		ProductService: productService,
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages.ProductRepository),
	}, nil
}
