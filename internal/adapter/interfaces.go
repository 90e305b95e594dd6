// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the Go client of the product catalog REST API.
//
// [CatalogAdapter] hides the transport from callers. Non-2xx responses are
// mapped to the sentinel errors in errors.go, so callers can use
// [errors.Is] (e.g. [ErrBadRequest] for 400) and [AsAPIError] to reach the
// field errors reported by the server.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-product-catalog/models"
)

// CatalogAdapter talks to a running catalog server.
type CatalogAdapter interface {
	// ListProducts fetches one page of the collection. Zero page or perPage
	// leaves the parameter out so that the server defaults apply.
	ListProducts(ctx context.Context, page, perPage int64) (models.ProductPage, error)

	// CreateProduct stores a new product and returns it with its id.
	CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// Health returns nil when the server and its storage are reachable.
	Health(ctx context.Context) error
}
