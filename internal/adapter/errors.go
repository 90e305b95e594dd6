package adapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-product-catalog/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrRequestTooLarge     = errors.New("request entity too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrEmptyAddress   = errors.New("empty address")
	ErrInvalidAddress = errors.New("address must include host and scheme")
)

// APIError is a non-2xx answer of the catalog server.
type APIError struct {
	StatusCode int
	Response   models.ErrorResponse
	Err        error
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v (status %d)", e.Err, e.StatusCode)
	if e.Response.Message != "" && e.Response.Message != e.Err.Error() {
		b.WriteString(": ")
		b.WriteString(e.Response.Message)
	}
	for i, fieldErr := range e.Response.Errors {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s %s", fieldErr.Field, fieldErr.Message)
	}
	return b.String()
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// AsAPIError returns the *APIError in err's chain, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
