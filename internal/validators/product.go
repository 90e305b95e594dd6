// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/MKhiriev/go-product-catalog/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants restrict validation to a subset of struct fields.
// They are Go field names, which is what validator.StructPartial expects.
const (
	// FieldName targets the product display name.
	FieldName = "Name"

	// FieldInventory targets the product stock count.
	FieldInventory = "Inventory"

	// FieldPage targets the 1-based page number of a listing request.
	FieldPage = "Page"

	// FieldPerPage targets the page size of a listing request.
	FieldPerPage = "PerPage"
)

var (
	productFields    = []string{FieldName, FieldInventory}
	pageParamsFields = []string{FieldPage, FieldPerPage}
)

// ProductValidator implements Validator for models.Product,
// models.ProductInput and models.PageParams, both value and pointer forms.
// Failures are reported under the JSON names of the offending fields.
type ProductValidator struct {
	validate *validator.Validate
}

// NewProductValidator constructs a ProductValidator and returns it as Validator.
func NewProductValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &ProductValidator{validate: v}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.Product / *models.Product
//   - models.ProductInput / *models.ProductInput
//   - models.PageParams / *models.PageParams
//
// Returns ErrUnsupportedType for anything else and ErrUnknownField when a
// requested field does not belong to the type.
func (v *ProductValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Product:
		return v.validateStruct(ctx, value, productFields, fields...)
	case *models.Product:
		return v.validateStruct(ctx, *value, productFields, fields...)

	case models.ProductInput:
		return v.validateStruct(ctx, value, productFields, fields...)
	case *models.ProductInput:
		return v.validateStruct(ctx, *value, productFields, fields...)

	case models.PageParams:
		return v.validateStruct(ctx, value, pageParamsFields, fields...)
	case *models.PageParams:
		return v.validateStruct(ctx, *value, pageParamsFields, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ProductValidator) validateStruct(ctx context.Context, obj any, allowed []string, fields ...string) error {
	for _, f := range fields {
		if !slices.Contains(allowed, f) {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	vErr := NewValidationError()
	for _, fe := range validationErrors {
		vErr.Add(fe.Field(), messageFor(fe))
	}
	return vErr.Err()
}

// messageFor renders a human-readable message for a failed rule.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			if fe.Param() == "1" {
				return "must not be empty"
			}
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
