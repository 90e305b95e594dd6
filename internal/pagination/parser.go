package pagination

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-product-catalog/internal/validators"
	"github.com/MKhiriev/go-product-catalog/models"
)

// Parser turns raw page/per_page query values into models.PageParams.
type Parser struct {
	DefaultPerPage int64
	MaxPerPage     int64
}

// NewParser returns a Parser; non-positive arguments fall back to
// DefaultPerPage and MaxPerPage.
func NewParser(defaultPerPage, maxPerPage int64) Parser {
	if defaultPerPage <= 0 {
		defaultPerPage = DefaultPerPage
	}
	if maxPerPage <= 0 {
		maxPerPage = MaxPerPage
	}
	if defaultPerPage > maxPerPage {
		defaultPerPage = maxPerPage
	}
	return Parser{DefaultPerPage: defaultPerPage, MaxPerPage: maxPerPage}
}

// Parse validates page and perPage. Empty values take the defaults
// (page 1, p.DefaultPerPage). Every malformed value is listed in the
// returned *validators.ValidationError. perPage above p.MaxPerPage is capped.
func (p Parser) Parse(page, perPage string) (models.PageParams, error) {
	params := models.PageParams{Page: 1, PerPage: p.DefaultPerPage}
	if params.PerPage <= 0 {
		params.PerPage = DefaultPerPage
	}

	vErr := validators.NewValidationError()
	if n, ok := parsePositive(page); !ok {
		vErr.Add("page", "must be a positive integer")
	} else if n > 0 {
		params.Page = n
	}
	if n, ok := parsePositive(perPage); !ok {
		vErr.Add("per_page", "must be a positive integer")
	} else if n > 0 {
		params.PerPage = n
	}
	if err := vErr.Err(); err != nil {
		return models.PageParams{}, err
	}

	if p.MaxPerPage > 0 && params.PerPage > p.MaxPerPage {
		params.PerPage = p.MaxPerPage
	}
	return params, nil
}

// parsePositive returns 0, true for an absent value.
func parsePositive(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
