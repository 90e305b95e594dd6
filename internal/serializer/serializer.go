// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package serializer converts products to and from their JSON wire form.
//
// Deserialize is all-or-nothing: it either returns a fully valid product or
// a *validators.ValidationError naming every missing or malformed field.
package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"slices"

	"github.com/MKhiriev/go-product-catalog/internal/validators"
	"github.com/MKhiriev/go-product-catalog/models"
)

const (
	keyID        = "id"
	keyName      = "name"
	keyInventory = "inventory"

	// bodyField names the request body itself in validation errors.
	bodyField = "body"
)

var fieldOrder = []string{bodyField, keyID, keyName, keyInventory}

var productValidator = validators.NewProductValidator()

// Serialize returns the JSON representation of p.
func Serialize(p models.Product) ([]byte, error) {
	return json.Marshal(p)
}

// Deserialize decodes and validates a product from its JSON representation.
// Unknown keys are ignored. A present id is kept; one that is not an
// integer is a validation error even though create discards it.
func Deserialize(data []byte) (models.Product, error) {
	return DeserializeContext(context.Background(), data)
}

// DeserializeContext is Deserialize with a caller-supplied context for the
// validation step.
func DeserializeContext(ctx context.Context, data []byte) (models.Product, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return models.Product{}, validators.NewValidationError(models.FieldError{
			Field:   bodyField,
			Message: "must be a JSON object",
		})
	}

	var (
		input   models.ProductInput
		vErr    = validators.NewValidationError()
		toCheck []string
	)

	if msg, ok := decodeField(raw, keyID, &input.ID, "must be an integer"); !ok {
		vErr.Add(keyID, msg)
	}
	if msg, ok := decodeField(raw, keyName, &input.Name, "must be a string"); !ok {
		vErr.Add(keyName, msg)
	} else {
		toCheck = append(toCheck, validators.FieldName)
	}
	if msg, ok := decodeField(raw, keyInventory, &input.Inventory, "must be an integer"); !ok {
		vErr.Add(keyInventory, msg)
	} else {
		toCheck = append(toCheck, validators.FieldInventory)
	}

	if len(toCheck) > 0 {
		err := productValidator.Validate(ctx, input, toCheck...)
		if ruleErr, ok := validators.AsValidationError(err); ok {
			vErr.Merge(ruleErr)
		} else if err != nil {
			return models.Product{}, err
		}
	}

	if vErr.HasErrors() {
		slices.SortStableFunc(vErr.Fields, func(a, b models.FieldError) int {
			return slices.Index(fieldOrder, a.Field) - slices.Index(fieldOrder, b.Field)
		})
		return models.Product{}, vErr
	}

	return input.Product(), nil
}

// decodeField unmarshals raw[key] into dst. A missing key or JSON null leaves
// dst untouched and is reported as ok; presence is enforced by validation.
func decodeField[T any](raw map[string]json.RawMessage, key string, dst **T, typeMsg string) (string, bool) {
	value, found := raw[key]
	if !found || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		return "", true
	}

	var v T
	if err := json.Unmarshal(value, &v); err != nil {
		return typeMsg, false
	}
	*dst = &v
	return "", true
}
