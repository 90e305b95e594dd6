// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-product-catalog/internal/logger"
	"github.com/MKhiriev/go-product-catalog/models"
)

// productRepository is the database/sql implementation of [ProductRepository].
// Queries are built with squirrel using the placeholder format of the driver.
//
// Every method logs through the context-scoped logger so failures carry the
// request trace id.
type productRepository struct {
	*DB
	logger *logger.Logger
}

// NewProductRepository constructs a [ProductRepository] on top of db.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating sql product repository")
	return &productRepository{
		DB:     db,
		logger: logger,
	}
}

// Insert stores p and returns the id generated by the database.
func (r *productRepository) Insert(ctx context.Context, p models.Product) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProductQuery(r.builder, p)
	if err != nil {
		log.Err(err).Str("func", "productRepository.Insert").Msg("failed to build query")
		return 0, newStorageError("insert", ErrBuildingSQLQuery, err, nil)
	}

	var id int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).
			Str("func", "productRepository.Insert").
			Str("name", p.Name).
			Msg("failed to insert product")

		if errors.Is(err, sql.ErrNoRows) {
			return 0, newStorageError("insert", ErrProductNotSaved, nil, nil)
		}
		return 0, newStorageError("insert", ErrExecutingQuery, err, r.errorClassificator)
	}

	log.Debug().Str("func", "productRepository.Insert").Int64("id", id).Msg("product saved")
	return id, nil
}

// Count returns the number of stored products.
func (r *productRepository) Count(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountProductsQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "productRepository.Count").Msg("failed to build query")
		return 0, newStorageError("count", ErrBuildingSQLQuery, err, nil)
	}

	var total int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "productRepository.Count").Msg("failed to count products")
		if errors.Is(err, sql.ErrNoRows) {
			return 0, newStorageError("count", ErrScanningRow, err, nil)
		}
		return 0, newStorageError("count", ErrExecutingQuery, err, r.errorClassificator)
	}

	return total, nil
}

// FetchRange returns products at positions [offset, offset+limit) in id order.
// A zero limit returns an empty slice without touching the database.
func (r *productRepository) FetchRange(ctx context.Context, offset, limit int64) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	if limit == 0 {
		return []models.Product{}, nil
	}

	query, args, err := buildFetchRangeQuery(r.builder, offset, limit)
	if err != nil {
		log.Err(err).Str("func", "productRepository.FetchRange").Msg("failed to build query")
		return nil, newStorageError("fetch range", ErrBuildingSQLQuery, err, nil)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.FetchRange").
			Int64("offset", offset).
			Int64("limit", limit).
			Msg("failed to execute query")
		return nil, newStorageError("fetch range", ErrExecutingQuery, err, r.errorClassificator)
	}
	defer rows.Close()

	products := make([]models.Product, 0, limit)
	for rows.Next() {
		var p models.Product
		if scanErr := rows.Scan(&p.ID, &p.Name, &p.Inventory); scanErr != nil {
			log.Err(scanErr).Str("func", "productRepository.FetchRange").Msg("failed to scan product row")
			return nil, newStorageError("fetch range", ErrScanningRow, scanErr, nil)
		}
		products = append(products, p)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "productRepository.FetchRange").Msg("error occurred during rows iteration")
		return nil, newStorageError("fetch range", ErrScanningRows, rowsErr, r.errorClassificator)
	}

	return products, nil
}

// Ping checks database connectivity.
func (r *productRepository) Ping(ctx context.Context) error {
	if err := r.DB.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "productRepository.Ping").Msg("database ping failed")
		return newStorageError("ping", ErrPingingDB, err, r.errorClassificator)
	}
	return nil
}
