// Package pagination computes the slice of a result set shown on one page
// and parses the page query parameters of listing requests.
//
// Pages are 1-based. A page that starts past the end of the collection is
// not an error; it simply selects nothing.
package pagination

import (
	"github.com/MKhiriev/go-product-catalog/internal/validators"
	"github.com/MKhiriev/go-product-catalog/models"
)

const (
	// DefaultPerPage is the page size used when a request does not specify one.
	DefaultPerPage int64 = 10

	// MaxPerPage bounds the page size a client may ask for.
	MaxPerPage int64 = 100
)

// Range is a half-open interval [Start, End) of zero-based positions within
// an ordered collection.
type Range struct {
	Start int64
	End   int64
}

// Offset returns the number of records to skip.
func (r Range) Offset() int64 {
	return r.Start
}

// Limit returns the number of records to fetch.
func (r Range) Limit() int64 {
	return r.End - r.Start
}

// Len is an alias of Limit.
func (r Range) Len() int64 {
	return r.Limit()
}

// Empty reports whether the range selects nothing.
func (r Range) Empty() bool {
	return r.Start >= r.End
}

// Window returns the range of positions covered by page of size perPage in a
// collection of total records: [(page-1)*perPage, min(page*perPage, total)).
//
// Pages past the end yield an empty range anchored at total.
// page < 1 or perPage < 1 is reported as *validators.ValidationError.
func Window(total, page, perPage int64) (Range, error) {
	vErr := validators.NewValidationError()
	if page < 1 {
		vErr.Add("page", "must be a positive integer")
	}
	if perPage < 1 {
		vErr.Add("per_page", "must be a positive integer")
	}
	if err := vErr.Err(); err != nil {
		return Range{}, err
	}

	if total < 0 {
		total = 0
	}

	start := (page - 1) * perPage
	// overflow or past the end
	if start < 0 || start/perPage != page-1 || start >= total {
		return Range{Start: total, End: total}, nil
	}

	end := min(start+perPage, total)
	return Range{Start: start, End: end}, nil
}

// TotalPages returns ceil(total/perPage), or 0 for an empty collection.
func TotalPages(total, perPage int64) int64 {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// NewPage assembles the page envelope for objects selected by params
// out of total matching records.
func NewPage(objects []models.Product, total int64, params models.PageParams) models.ProductPage {
	if objects == nil {
		objects = []models.Product{}
	}
	return models.ProductPage{
		Objects:    objects,
		NumResults: total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: TotalPages(total, params.PerPage),
	}
}
