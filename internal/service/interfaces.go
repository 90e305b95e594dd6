package service

import (
	"context"

	"github.com/MKhiriev/go-product-catalog/models"
)

// ProductService lists and creates catalog products.
type ProductService interface {
	// ListProducts returns the page of products selected by params together
	// with the collection totals.
	ListProducts(ctx context.Context, params models.PageParams) (models.ProductPage, error)

	// CreateProduct stores p under a freshly generated id and returns the
	// stored record. Any id supplied by the caller is discarded.
	CreateProduct(ctx context.Context, p models.Product) (models.Product, error)
}

// AppInfoService exposes build and runtime information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the storage collaborator is reachable.
type HealthService interface {
	Check(ctx context.Context) error
}

// ProductServiceWrapper defines middleware composition for ProductService.
// Implementations wrap an existing ProductService to add behavior such as
// logging or validating.
type ProductServiceWrapper interface {
	Wrap(ProductService) ProductService // returns a decorated ProductService applying additional behavior
}
