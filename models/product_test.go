package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductInput_Product(t *testing.T) {
	id, name, inv := int64(7), "apple", int64(3)

	p := ProductInput{ID: &id, Name: &name, Inventory: &inv}.Product()

	assert.Equal(t, Product{ID: 7, Name: "apple", Inventory: 3}, p)
}

func TestProductInput_Product_NilFields(t *testing.T) {
	assert.Equal(t, Product{}, ProductInput{}.Product())
}

func TestNewProductInput_OmitsZeroID(t *testing.T) {
	in := NewProductInput(Product{Name: "pear", Inventory: 1})

	assert.Nil(t, in.ID)
	require.NotNil(t, in.Name)
	assert.Equal(t, "pear", *in.Name)
	require.NotNil(t, in.Inventory)
	assert.Equal(t, int64(1), *in.Inventory)
}

func TestNewProductInput_RoundTrip(t *testing.T) {
	p := Product{ID: 42, Name: "plum", Inventory: 0}

	assert.Equal(t, p, NewProductInput(p).Product())
}
