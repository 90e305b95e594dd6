// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-product-catalog/internal/logger"
	"github.com/MKhiriev/go-product-catalog/internal/mock"
	"github.com/MKhiriev/go-product-catalog/internal/store"
	"github.com/MKhiriev/go-product-catalog/internal/validators"
	"github.com/MKhiriev/go-product-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProductService(t *testing.T) (ProductService, *mock.MockProductRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProductRepository(ctrl)
	return NewProductService(repo, logger.Nop()), repo
}

func makeProducts(from, to int64) []models.Product {
	out := make([]models.Product, 0, to-from)
	for id := from; id < to; id++ {
		out = append(out, models.Product{ID: id + 1, Name: "p", Inventory: id})
	}
	return out
}

// ─────────────────────────────────────────────
// ListProducts
// ─────────────────────────────────────────────

func TestListProducts_FirstPage(t *testing.T) {
	svc, repo := newTestProductService(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Count(ctx).Return(int64(25), nil),
		repo.EXPECT().FetchRange(ctx, int64(0), int64(10)).Return(makeProducts(0, 10), nil),
	)

	page, err := svc.ListProducts(ctx, models.PageParams{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, page.Objects, 10)
	assert.Equal(t, int64(25), page.NumResults)
	assert.Equal(t, int64(1), page.Page)
	assert.Equal(t, int64(10), page.PerPage)
	assert.Equal(t, int64(3), page.TotalPages)
}

func TestListProducts_LastPartialPage(t *testing.T) {
	svc, repo := newTestProductService(t)
	ctx := context.Background()

	repo.EXPECT().Count(ctx).Return(int64(25), nil)
	repo.EXPECT().FetchRange(ctx, int64(20), int64(5)).Return(makeProducts(20, 25), nil)

	page, err := svc.ListProducts(ctx, models.PageParams{Page: 3, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, page.Objects, 5)
	assert.Equal(t, int64(21), page.Objects[0].ID)
}

func TestListProducts_PastTheEnd_SkipsFetch(t *testing.T) {
	svc, repo := newTestProductService(t)
	ctx := context.Background()

	repo.EXPECT().Count(ctx).Return(int64(25), nil)
	repo.EXPECT().FetchRange(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	page, err := svc.ListProducts(ctx, models.PageParams{Page: 4, PerPage: 10})
	require.NoError(t, err)
	assert.NotNil(t, page.Objects)
	assert.Empty(t, page.Objects)
	assert.Equal(t, int64(25), page.NumResults)
}

func TestListProducts_InvalidParams(t *testing.T) {
	svc, repo := newTestProductService(t)
	ctx := context.Background()

	repo.EXPECT().Count(ctx).Return(int64(25), nil)

	_, err := svc.ListProducts(ctx, models.PageParams{Page: 0, PerPage: 10})
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestListProducts_StorageErrors(t *testing.T) {
	storageErr := &store.StorageError{Op: "count", Err: store.ErrExecutingQuery}

	t.Run("count fails", func(t *testing.T) {
		svc, repo := newTestProductService(t)
		repo.EXPECT().Count(gomock.Any()).Return(int64(0), storageErr)

		_, err := svc.ListProducts(context.Background(), models.PageParams{Page: 1, PerPage: 10})
		assert.ErrorIs(t, err, store.ErrStorage)
	})

	t.Run("fetch fails", func(t *testing.T) {
		svc, repo := newTestProductService(t)
		repo.EXPECT().Count(gomock.Any()).Return(int64(3), nil)
		repo.EXPECT().FetchRange(gomock.Any(), int64(0), int64(3)).Return(nil, storageErr)

		_, err := svc.ListProducts(context.Background(), models.PageParams{Page: 1, PerPage: 10})
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
	})
}

// ─────────────────────────────────────────────
// CreateProduct
// ─────────────────────────────────────────────

func TestCreateProduct_DiscardsClientID(t *testing.T) {
	svc, repo := newTestProductService(t)
	ctx := context.Background()

	repo.EXPECT().
		Insert(ctx, models.Product{Name: "apple", Inventory: 3}).
		Return(int64(42), nil).
		Times(1)

	created, err := svc.CreateProduct(ctx, models.Product{ID: 7, Name: "apple", Inventory: 3})
	require.NoError(t, err)
	assert.Equal(t, models.Product{ID: 42, Name: "apple", Inventory: 3}, created)
}

func TestCreateProduct_StorageError(t *testing.T) {
	svc, repo := newTestProductService(t)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		Return(int64(0), &store.StorageError{Op: "insert", Err: errors.New("disk full")}).
		Times(1)

	created, err := svc.CreateProduct(context.Background(), models.Product{Name: "apple"})
	assert.ErrorIs(t, err, store.ErrStorage)
	assert.Equal(t, models.Product{}, created)
}

// ─────────────────────────────────────────────
// Health
// ─────────────────────────────────────────────

func TestHealthService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProductRepository(ctrl)
	svc := NewHealthService(repo)

	repo.EXPECT().Ping(gomock.Any()).Return(nil)
	assert.NoError(t, svc.Check(context.Background()))

	repo.EXPECT().Ping(gomock.Any()).Return(store.ErrPingingDB)
	assert.ErrorIs(t, svc.Check(context.Background()), store.ErrPingingDB)
}
