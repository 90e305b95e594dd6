package service

import (
	"context"

	"github.com/MKhiriev/go-product-catalog/internal/store"
)

type healthService struct {
	repository store.ProductRepository
}

// NewHealthService returns a [HealthService] that pings repository.
func NewHealthService(repository store.ProductRepository) HealthService {
	return &healthService{repository: repository}
}

func (s *healthService) Check(ctx context.Context) error {
	return s.repository.Ping(ctx)
}
