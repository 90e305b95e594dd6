package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-product-catalog/models"
)

const (
	productsTable = "products"

	columnID        = "id"
	columnName      = "name"
	columnInventory = "inventory"
)

// buildInsertProductQuery inserts name and inventory and returns the new id.
// Both postgres and sqlite (3.35+) support RETURNING.
func buildInsertProductQuery(b sq.StatementBuilderType, p models.Product) (string, []any, error) {
	query, args, err := b.Insert(productsTable).
		Columns(columnName, columnInventory).
		Values(p.Name, p.Inventory).
		Suffix("RETURNING " + columnID).
		ToSql()
	if err != nil {
		return "", nil, err
	}
	return query, args, nil
}

func buildCountProductsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select("COUNT(*)").
		From(productsTable).
		ToSql()
	if err != nil {
		return "", nil, err
	}
	return query, args, nil
}

// buildFetchRangeQuery selects limit products after skipping offset, in id order.
func buildFetchRangeQuery(b sq.StatementBuilderType, offset, limit int64) (string, []any, error) {
	if offset < 0 || limit < 0 {
		return "", nil, fmt.Errorf("negative offset %d or limit %d", offset, limit)
	}

	query, args, err := b.Select(columnID, columnName, columnInventory).
		From(productsTable).
		OrderBy(columnID + " ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return "", nil, err
	}
	return query, args, nil
}
