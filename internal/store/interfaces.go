package store

//go:generate mockgen -destination=../mock/product_repository_mock.go -package=mock github.com/MKhiriev/go-product-catalog/internal/store ProductRepository

import (
	"context"

	"github.com/MKhiriev/go-product-catalog/models"
)

// ProductRepository persists and reads back catalog products.
//
// Records are ordered by ascending id, which makes page windows stable
// between requests as long as nothing is inserted in between.
type ProductRepository interface {
	// Insert stores p, ignoring p.ID, and returns the generated id.
	Insert(ctx context.Context, p models.Product) (int64, error)

	// Count returns the number of stored products.
	Count(ctx context.Context) (int64, error)

	// FetchRange returns at most limit products starting at zero-based
	// position offset.
	FetchRange(ctx context.Context, offset, limit int64) ([]models.Product, error)

	// Ping checks that the underlying database is reachable.
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
