package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-product-catalog/internal/validators"
	"github.com/MKhiriev/go-product-catalog/models"
)

// ProductValidationService re-checks input against the product rules
// before delegating to the wrapped [ProductService].
type ProductValidationService struct {
	inner     ProductService
	validator validators.Validator
}

func NewProductValidationService() ProductServiceWrapper {
	return &ProductValidationService{
		validator: validators.NewProductValidator(),
	}
}

func (v *ProductValidationService) ListProducts(ctx context.Context, params models.PageParams) (models.ProductPage, error) {
	if err := v.validator.Validate(ctx, params); err != nil {
		return models.ProductPage{}, fmt.Errorf("error during page params validation: %w", err)
	}

	return v.inner.ListProducts(ctx, params)
}

func (v *ProductValidationService) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	if err := v.validator.Validate(ctx, p); err != nil {
		return models.Product{}, fmt.Errorf("error during product validation before saving: %w", err)
	}

	return v.inner.CreateProduct(ctx, p)
}

func (v *ProductValidationService) Wrap(wrapped ProductService) ProductService {
	v.inner = wrapped
	return v
}
