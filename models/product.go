// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Product is the single record type exposed by the catalog.
//
// ID is assigned by storage on insert and never changes afterwards.
// Name and Inventory are the scalar fields declared by the schema.
type Product struct {
	// ID is the storage-assigned unique identifier.
	ID int64 `json:"id"`

	// Name is the human-readable product name.
	Name string `json:"name" validate:"required,max=255"`

	// Inventory is the number of units in stock.
	Inventory int64 `json:"inventory" validate:"gte=0"`
}

// ProductInput is the decoded wire form of a product before validation.
//
// Pointer fields distinguish a missing (or null) key from a zero value,
// which lets validation report absent fields by name.
type ProductInput struct {
	ID        *int64  `json:"id,omitempty"`
	Name      *string `json:"name" validate:"required,min=1,max=255"`
	Inventory *int64  `json:"inventory" validate:"required,gte=0"`
}

// Product converts a validated input into a [Product].
// Nil fields are converted to zero values.
func (in ProductInput) Product() Product {
	var p Product
	if in.ID != nil {
		p.ID = *in.ID
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Inventory != nil {
		p.Inventory = *in.Inventory
	}
	return p
}

// NewProductInput builds the wire input for p. The ID is omitted when zero.
func NewProductInput(p Product) ProductInput {
	in := ProductInput{
		Name:      &p.Name,
		Inventory: &p.Inventory,
	}
	if p.ID != 0 {
		in.ID = &p.ID
	}
	return in
}
