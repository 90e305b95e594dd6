package models

// PageParams holds a validated page request.
type PageParams struct {
	// Page is the 1-based page number.
	Page int64 `json:"page" validate:"gte=1"`

	// PerPage is the page size after capping to the configured maximum.
	PerPage int64 `json:"per_page" validate:"gte=1"`
}

// ProductPage is one page of the product collection together with the
// pagination metadata returned by GET /api/products.
type ProductPage struct {
	Objects    []Product `json:"objects"`
	NumResults int64     `json:"num_results"`
	Page       int64     `json:"page"`
	PerPage    int64     `json:"per_page"`
	TotalPages int64     `json:"total_pages"`
}
