// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-product-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func ptrString(s string) *string { return &s }
func ptrInt64(i int64) *int64    { return &i }

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	vErr, ok := AsValidationError(err)
	require.True(t, ok, "expected *ValidationError, got %T", err)

	names := make([]string, 0, len(vErr.Fields))
	for _, f := range vErr.Fields {
		names = append(names, f.Field)
	}
	return names
}

// ─────────────────────────────────────────────
// Dispatch
// ─────────────────────────────────────────────

func TestNewProductValidator(t *testing.T) {
	require.NotNil(t, NewProductValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewProductValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("product value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.Product{Name: "Tea", Inventory: 3}))
	})

	t.Run("product pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.Product{Name: "Tea"}))
	})

	t.Run("page params pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.PageParams{Page: 1, PerPage: 10}))
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, models.Product{Name: "Tea"}, FieldPage)
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

// ─────────────────────────────────────────────
// Product
// ─────────────────────────────────────────────

func TestValidate_Product(t *testing.T) {
	v := NewProductValidator()
	ctx := context.Background()

	tests := []struct {
		name       string
		product    models.Product
		wantFields []string
	}{
		{name: "valid", product: models.Product{Name: "Tea", Inventory: 0}},
		{name: "empty name", product: models.Product{Inventory: 1}, wantFields: []string{"name"}},
		{name: "negative inventory", product: models.Product{Name: "Tea", Inventory: -1}, wantFields: []string{"inventory"}},
		{name: "name too long", product: models.Product{Name: strings.Repeat("a", 256)}, wantFields: []string{"name"}},
		{name: "both invalid", product: models.Product{Inventory: -5}, wantFields: []string{"name", "inventory"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.product)
			if tt.wantFields == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.wantFields, fieldNames(t, err))
		})
	}
}

func TestValidate_Product_FieldScoping(t *testing.T) {
	v := NewProductValidator()

	err := v.Validate(context.Background(), models.Product{Inventory: -1}, FieldInventory)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, []string{"inventory"}, fieldNames(t, err))
}

// ─────────────────────────────────────────────
// ProductInput
// ─────────────────────────────────────────────

func TestValidate_ProductInput(t *testing.T) {
	v := NewProductValidator()
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		in := models.ProductInput{Name: ptrString("Tea"), Inventory: ptrInt64(0)}
		require.NoError(t, v.Validate(ctx, in))
	})

	t.Run("missing fields", func(t *testing.T) {
		err := v.Validate(ctx, models.ProductInput{})
		require.ErrorIs(t, err, ErrValidation)

		vErr, _ := AsValidationError(err)
		assert.Equal(t, []models.FieldError{
			{Field: "name", Message: "is required"},
			{Field: "inventory", Message: "is required"},
		}, vErr.Fields)
	})

	t.Run("empty name", func(t *testing.T) {
		err := v.Validate(ctx, &models.ProductInput{Name: ptrString(""), Inventory: ptrInt64(1)})
		require.ErrorIs(t, err, ErrValidation)

		vErr, _ := AsValidationError(err)
		assert.Equal(t, []models.FieldError{{Field: "name", Message: "must not be empty"}}, vErr.Fields)
	})

	t.Run("negative inventory", func(t *testing.T) {
		err := v.Validate(ctx, models.ProductInput{Name: ptrString("Tea"), Inventory: ptrInt64(-2)})
		require.ErrorIs(t, err, ErrValidation)

		vErr, _ := AsValidationError(err)
		assert.Equal(t, []models.FieldError{
			{Field: "inventory", Message: "must be greater than or equal to 0"},
		}, vErr.Fields)
	})
}

// ─────────────────────────────────────────────
// PageParams
// ─────────────────────────────────────────────

func TestValidate_PageParams(t *testing.T) {
	v := NewProductValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.PageParams{Page: 3, PerPage: 1}))

	err := v.Validate(ctx, models.PageParams{Page: 0, PerPage: -1})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, []string{"page", "per_page"}, fieldNames(t, err))
}

// ─────────────────────────────────────────────
// ValidationError
// ─────────────────────────────────────────────

func TestValidationError(t *testing.T) {
	t.Run("empty reports no error", func(t *testing.T) {
		vErr := NewValidationError()
		assert.False(t, vErr.HasErrors())
		assert.NoError(t, vErr.Err())
	})

	t.Run("message lists fields", func(t *testing.T) {
		vErr := NewValidationError()
		vErr.Add("page", "must be a positive integer")
		vErr.Add("per_page", "must be a positive integer")

		assert.Equal(t,
			"validation failed: page must be a positive integer; per_page must be a positive integer",
			vErr.Error())
	})

	t.Run("wrapped error is still matched", func(t *testing.T) {
		err := errors.Join(errors.New("context"), NewValidationError(models.FieldError{Field: "name", Message: "is required"}))
		assert.ErrorIs(t, err, ErrValidation)

		vErr, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Len(t, vErr.Fields, 1)
	})

	t.Run("merge", func(t *testing.T) {
		vErr := NewValidationError(models.FieldError{Field: "a", Message: "x"})
		vErr.Merge(NewValidationError(models.FieldError{Field: "b", Message: "y"}))
		vErr.Merge(nil)
		assert.Len(t, vErr.Fields, 2)
	})
}
