// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-product-catalog/internal/logger"
	"github.com/MKhiriev/go-product-catalog/internal/pagination"
	"github.com/MKhiriev/go-product-catalog/internal/store"
	"github.com/MKhiriev/go-product-catalog/models"
)

// productService implements [ProductService] on top of a [store.ProductRepository].
// It holds no mutable state; every call reads the repository afresh.
type productService struct {
	repository store.ProductRepository
	logger     *logger.Logger
}

// NewProductService constructs the core [ProductService].
func NewProductService(repository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		repository: repository,
		logger:     logger,
	}
}

// ListProducts counts the collection, computes the page window and fetches
// only the records inside it. Pages past the end yield no objects and skip
// the fetch.
func (s *productService) ListProducts(ctx context.Context, params models.PageParams) (models.ProductPage, error) {
	log := logger.FromContext(ctx)

	total, err := s.repository.Count(ctx)
	if err != nil {
		return models.ProductPage{}, fmt.Errorf("error counting products: %w", err)
	}

	window, err := pagination.Window(total, params.Page, params.PerPage)
	if err != nil {
		return models.ProductPage{}, err
	}

	var objects []models.Product
	if !window.Empty() {
		objects, err = s.repository.FetchRange(ctx, window.Offset(), window.Limit())
		if err != nil {
			return models.ProductPage{}, fmt.Errorf("error fetching products: %w", err)
		}
	}

	log.Debug().
		Str("func", "productService.ListProducts").
		Int64("page", params.Page).
		Int64("per_page", params.PerPage).
		Int64("total", total).
		Int("returned", len(objects)).
		Msg("products listed")

	return pagination.NewPage(objects, total, params), nil
}

// CreateProduct performs exactly one insert.
func (s *productService) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	p.ID = 0

	id, err := s.repository.Insert(ctx, p)
	if err != nil {
		return models.Product{}, fmt.Errorf("error saving product: %w", err)
	}
	p.ID = id

	logger.FromContext(ctx).Info().
		Str("func", "productService.CreateProduct").
		Int64("id", id).
		Msg("product created")

	return p, nil
}
